package service

import (
	"math"
	"time"

	"github.com/google/uuid"
	"gitlab.com/dirk.krummacker/persons-service/internal/model"
	dto "gitlab.com/dirk.krummacker/persons-service/pkg/model"
)

func toCountryResponse(country model.Country) dto.CountryResponse {
	return dto.CountryResponse{
		CountryID:   country.CountryID,
		CountryName: country.CountryName,
	}
}

// toPerson converts an add request into a new person with the given id.
func toPerson(id uuid.UUID, request *dto.PersonAddRequest) model.Person {
	person := model.Person{
		PersonID:           id,
		Name:               request.Name,
		Email:              request.Email,
		DateOfBirth:        dateOnly(request.DateOfBirth),
		Gender:             genderString(request.Gender),
		CountryID:          nullUUID(request.CountryID),
		Address:            request.Address,
		ReceiveNewsLetters: request.ReceiveNewsLetters,
	}
	tin := model.DefaultTIN
	person.TIN = &tin
	return person
}

// applyUpdate overwrites the mutable fields of person with the values of the request.
func applyUpdate(person *model.Person, request *dto.PersonUpdateRequest) {
	person.Name = request.Name
	person.Email = request.Email
	person.DateOfBirth = dateOnly(request.DateOfBirth)
	person.Gender = genderString(request.Gender)
	person.CountryID = nullUUID(request.CountryID)
	person.Address = request.Address
	person.ReceiveNewsLetters = request.ReceiveNewsLetters
}

func toPersonResponse(person model.PersonDetails, now time.Time) dto.PersonResponse {
	response := dto.PersonResponse{
		PersonID:           person.PersonID,
		Name:               person.Name,
		Email:              person.Email,
		DateOfBirth:        person.DateOfBirth,
		Gender:             person.Gender,
		CountryName:        person.CountryName,
		Address:            person.Address,
		ReceiveNewsLetters: person.ReceiveNewsLetters,
		Age:                age(person.DateOfBirth, now),
	}
	if person.CountryID.Valid {
		id := person.CountryID.UUID
		response.CountryID = &id
	}
	return response
}

// age is the number of years between the date of birth and now, rounded to the nearest year.
func age(dateOfBirth *time.Time, now time.Time) *int {
	if dateOfBirth == nil {
		return nil
	}
	years := int(math.Round(now.Sub(*dateOfBirth).Hours() / 24 / 365.25))
	return &years
}

// dateOnly drops the time of day, since only the date of birth is stored.
func dateOnly(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return &d
}

func genderString(gender *dto.Gender) *string {
	if gender == nil {
		return nil
	}
	s := string(*gender)
	return &s
}

func nullUUID(id *uuid.UUID) uuid.NullUUID {
	if id == nil {
		return uuid.NullUUID{}
	}
	return uuid.NullUUID{UUID: *id, Valid: true}
}
