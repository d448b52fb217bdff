package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gitlab.com/dirk.krummacker/persons-service/internal/logging"
	"gitlab.com/dirk.krummacker/persons-service/internal/metrics"
	"gitlab.com/dirk.krummacker/persons-service/internal/model"
	"gitlab.com/dirk.krummacker/persons-service/internal/store"
	"gitlab.com/dirk.krummacker/persons-service/internal/validation"
	dto "gitlab.com/dirk.krummacker/persons-service/pkg/model"
)

// CountryLookup resolves a country id to a country.
type CountryLookup interface {
	GetCountryByCountryID(ctx context.Context, id *uuid.UUID) (*dto.CountryResponse, error)
}

// PersonsService manages person records.
type PersonsService struct {
	persons   store.PersonStore
	countries CountryLookup
	metrics   *metrics.Metrics

	// now is the clock used for computing ages.
	now func() time.Time
}

// NewPersonsService returns a service on top of the given store. Country names of added and
// updated persons are resolved through countries.
func NewPersonsService(persons store.PersonStore, countries CountryLookup, m *metrics.Metrics) *PersonsService {
	return &PersonsService{persons: persons, countries: countries, metrics: m, now: time.Now}
}

// AddPerson validates the request and stores a new person under a fresh id. Persons without a
// tax identification number get model.DefaultTIN.
func (s *PersonsService) AddPerson(ctx context.Context, request *dto.PersonAddRequest) (*dto.PersonResponse, error) {
	if request == nil {
		return nil, fmt.Errorf("%w: person add request", ErrNullArgument)
	}
	if err := validation.Validate(request); err != nil {
		return nil, err
	}

	person := toPerson(uuid.New(), request)
	if err := s.persons.AddPerson(ctx, &person); err != nil {
		return nil, err
	}
	s.metrics.PersonsAdded.Inc()
	logging.FromContext(ctx).Info("person added", "person_id", person.PersonID)
	return s.resolve(ctx, person)
}

// GetAllPersons returns every person with its country name, in storage order.
func (s *PersonsService) GetAllPersons(ctx context.Context) ([]dto.PersonResponse, error) {
	persons, err := s.persons.FindAllPersons(ctx)
	if err != nil {
		return nil, err
	}
	now := s.now()
	responses := make([]dto.PersonResponse, 0, len(persons))
	for _, person := range persons {
		responses = append(responses, toPersonResponse(person, now))
	}
	return responses, nil
}

// GetPersonByPersonID returns the matching person, or nil if id is nil or unknown.
func (s *PersonsService) GetPersonByPersonID(ctx context.Context, id *uuid.UUID) (*dto.PersonResponse, error) {
	if id == nil {
		return nil, nil
	}
	person, err := s.persons.FindPersonByID(ctx, *id)
	if err != nil || person == nil {
		return nil, err
	}
	response := toPersonResponse(*person, s.now())
	return &response, nil
}

// GetFilteredPersons returns the persons whose searchBy field contains searchString, ignoring
// case. See FilterPersons for the rules.
func (s *PersonsService) GetFilteredPersons(ctx context.Context, searchBy, searchString string) ([]dto.PersonResponse, error) {
	persons, err := s.GetAllPersons(ctx)
	if err != nil {
		return nil, err
	}
	return FilterPersons(persons, searchBy, searchString), nil
}

// GetSortedPersons returns the persons ordered by sortBy. See SortPersons for the rules.
func (s *PersonsService) GetSortedPersons(persons []dto.PersonResponse, sortBy string, order SortOrder) []dto.PersonResponse {
	return SortPersons(persons, sortBy, order)
}

// UpdatePerson validates the request and overwrites all mutable fields of the person with the
// request's id. The tax identification number is kept.
func (s *PersonsService) UpdatePerson(ctx context.Context, request *dto.PersonUpdateRequest) (*dto.PersonResponse, error) {
	if request == nil {
		return nil, fmt.Errorf("%w: person update request", ErrNullArgument)
	}
	if err := validation.Validate(request); err != nil {
		return nil, err
	}

	matching, err := s.persons.FindPersonByID(ctx, request.PersonID)
	if err != nil {
		return nil, err
	}
	if matching == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPerson, request.PersonID)
	}
	person := matching.Person
	applyUpdate(&person, request)

	found, err := s.persons.UpdatePerson(ctx, &person)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPerson, request.PersonID)
	}
	s.metrics.PersonsUpdated.Inc()
	logging.FromContext(ctx).Info("person updated", "person_id", person.PersonID)
	return s.resolve(ctx, person)
}

// DeletePerson removes the person with the given id. It reports false if id is nil or unknown.
func (s *PersonsService) DeletePerson(ctx context.Context, id *uuid.UUID) (bool, error) {
	if id == nil {
		return false, nil
	}
	deleted, err := s.persons.DeletePerson(ctx, *id)
	if err != nil || !deleted {
		return false, err
	}
	s.metrics.PersonsDeleted.Inc()
	logging.FromContext(ctx).Info("person deleted", "person_id", *id)
	return true, nil
}

// resolve builds the response for a stored person, looking up the name of its country.
func (s *PersonsService) resolve(ctx context.Context, person model.Person) (*dto.PersonResponse, error) {
	details := model.PersonDetails{Person: person}
	if person.CountryID.Valid {
		country, err := s.countries.GetCountryByCountryID(ctx, &person.CountryID.UUID)
		if err != nil {
			return nil, err
		}
		if country != nil {
			details.CountryName = country.CountryName
		}
	}
	response := toPersonResponse(details, s.now())
	return &response, nil
}
