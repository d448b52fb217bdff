// Package service implements the business operations on countries, persons and stock orders.
package service

import (
	"database/sql"

	"github.com/jmoiron/sqlx"
	"gitlab.com/dirk.krummacker/persons-service/internal/metrics"
	"gitlab.com/dirk.krummacker/persons-service/internal/store"
)

// Services bundles the services that the HTTP API is built on.
type Services struct {
	Countries *CountriesService
	Persons   *PersonsService
	Stocks    *StocksService
}

// SetupServices initializes the database wrappers on top of the specified sql database, prepares
// all statements and creates the services. The database argument can be a real database for
// production use or a mock database within unit tests.
func SetupServices(sqlDB *sql.DB, m *metrics.Metrics) (*Services, error) {
	db := sqlx.NewDb(sqlDB, "mysql")

	countryTable, err := store.NewCountryTable(db)
	if err != nil {
		return nil, err
	}
	personTable, err := store.NewPersonTable(db)
	if err != nil {
		return nil, err
	}
	orm, err := store.OpenORM(sqlDB)
	if err != nil {
		return nil, err
	}

	countries := NewCountriesService(countryTable, m)
	return &Services{
		Countries: countries,
		Persons:   NewPersonsService(personTable, countries, m),
		Stocks:    NewStocksService(store.NewOrderTable(orm), m),
	}, nil
}
