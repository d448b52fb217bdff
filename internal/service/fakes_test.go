package service

import (
	"context"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"gitlab.com/dirk.krummacker/persons-service/internal/metrics"
	"gitlab.com/dirk.krummacker/persons-service/internal/model"
	"gitlab.com/dirk.krummacker/persons-service/internal/store"
	dto "gitlab.com/dirk.krummacker/persons-service/pkg/model"
)

// fixedNow is the clock used by all person tests.
var fixedNow = time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

// memoryCountries keeps countries in a slice. It enforces unique names like the database does.
type memoryCountries struct {
	mu        sync.Mutex
	countries []model.Country
}

func (m *memoryCountries) AddCountry(_ context.Context, country *model.Country) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.countries {
		if c.CountryName != nil && country.CountryName != nil && *c.CountryName == *country.CountryName {
			return store.ErrDuplicate
		}
	}
	m.countries = append(m.countries, *country)
	return nil
}

func (m *memoryCountries) FindAllCountries(context.Context) ([]model.Country, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.countries), nil
}

func (m *memoryCountries) FindCountryByID(_ context.Context, id uuid.UUID) (*model.Country, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.countries {
		if c.CountryID == id {
			return &c, nil
		}
	}
	return nil, nil
}

func (m *memoryCountries) CountCountriesByName(_ context.Context, name string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	count := 0
	for _, c := range m.countries {
		if c.CountryName != nil && *c.CountryName == name {
			count++
		}
	}
	return count, nil
}

// memoryPersons keeps persons in a slice and joins the country names from countries.
type memoryPersons struct {
	mu        sync.Mutex
	persons   []model.Person
	countries *memoryCountries
}

func (m *memoryPersons) AddPerson(_ context.Context, person *model.Person) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.persons = append(m.persons, *person)
	return nil
}

func (m *memoryPersons) details(person model.Person) model.PersonDetails {
	details := model.PersonDetails{Person: person}
	if person.CountryID.Valid {
		country, _ := m.countries.FindCountryByID(context.Background(), person.CountryID.UUID)
		if country != nil {
			details.CountryName = country.CountryName
		}
	}
	return details
}

func (m *memoryPersons) FindAllPersons(context.Context) ([]model.PersonDetails, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	all := make([]model.PersonDetails, 0, len(m.persons))
	for _, p := range m.persons {
		all = append(all, m.details(p))
	}
	return all, nil
}

func (m *memoryPersons) FindPersonByID(_ context.Context, id uuid.UUID) (*model.PersonDetails, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.persons {
		if p.PersonID == id {
			details := m.details(p)
			return &details, nil
		}
	}
	return nil, nil
}

func (m *memoryPersons) UpdatePerson(_ context.Context, person *model.Person) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, p := range m.persons {
		if p.PersonID == person.PersonID {
			updated := *person
			updated.TIN = p.TIN
			m.persons[i] = updated
			return true, nil
		}
	}
	return false, nil
}

func (m *memoryPersons) DeletePerson(_ context.Context, id uuid.UUID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, p := range m.persons {
		if p.PersonID == id {
			m.persons = slices.Delete(m.persons, i, i+1)
			return true, nil
		}
	}
	return false, nil
}

// memoryOrders returns orders in insertion order, which the tests insert oldest first.
type memoryOrders struct {
	buys  []model.BuyOrder
	sells []model.SellOrder
}

func (m *memoryOrders) AddBuyOrder(_ context.Context, order *model.BuyOrder) error {
	m.buys = append(m.buys, *order)
	return nil
}

func (m *memoryOrders) AddSellOrder(_ context.Context, order *model.SellOrder) error {
	m.sells = append(m.sells, *order)
	return nil
}

func (m *memoryOrders) FindBuyOrders(context.Context) ([]model.BuyOrder, error) {
	orders := slices.Clone(m.buys)
	slices.Reverse(orders)
	return orders, nil
}

func (m *memoryOrders) FindSellOrders(context.Context) ([]model.SellOrder, error) {
	orders := slices.Clone(m.sells)
	slices.Reverse(orders)
	return orders, nil
}

// fixture holds services on top of in-memory stores.
type fixture struct {
	countries *CountriesService
	persons   *PersonsService
	stocks    *StocksService
	metrics   *metrics.Metrics
	store     *memoryPersons
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	m := metrics.New(prometheus.NewRegistry())
	countryStore := &memoryCountries{}
	personStore := &memoryPersons{countries: countryStore}
	countries := NewCountriesService(countryStore, m)
	persons := NewPersonsService(personStore, countries, m)
	persons.now = func() time.Time { return fixedNow }
	return &fixture{
		countries: countries,
		persons:   persons,
		stocks:    NewStocksService(&memoryOrders{}, m),
		metrics:   m,
		store:     personStore,
	}
}

func strPtr(s string) *string {
	return &s
}

func datePtr(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}

func genderPtr(g string) *dto.Gender {
	gender := dto.Gender(g)
	return &gender
}
