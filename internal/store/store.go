// Package store persists countries, persons and stock orders in MySQL.
//
// Countries and persons are accessed through sqlx with statements prepared once per store.
// Orders are plain records without joins and go through gorm.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"gitlab.com/dirk.krummacker/persons-service/internal/config"
	"gitlab.com/dirk.krummacker/persons-service/internal/model"
)

// mysqlDuplicateEntry is the MySQL server error number for a violated unique key.
const mysqlDuplicateEntry = 1062

// ErrDuplicate is returned when an insert violates a unique constraint.
var ErrDuplicate = errors.New("duplicate entry")

// CountryStore gives access to the countries table.
type CountryStore interface {
	AddCountry(ctx context.Context, country *model.Country) error
	FindAllCountries(ctx context.Context) ([]model.Country, error)
	// FindCountryByID returns nil without error if no country has the id.
	FindCountryByID(ctx context.Context, id uuid.UUID) (*model.Country, error)
	CountCountriesByName(ctx context.Context, name string) (int, error)
}

// PersonStore gives access to the persons table. Reads join the country name.
type PersonStore interface {
	AddPerson(ctx context.Context, person *model.Person) error
	FindAllPersons(ctx context.Context) ([]model.PersonDetails, error)
	// FindPersonByID returns nil without error if no person has the id.
	FindPersonByID(ctx context.Context, id uuid.UUID) (*model.PersonDetails, error)
	// UpdatePerson overwrites the mutable columns and reports whether the person exists.
	UpdatePerson(ctx context.Context, person *model.Person) (bool, error)
	// DeletePerson reports whether a person was removed.
	DeletePerson(ctx context.Context, id uuid.UUID) (bool, error)
}

// OrderStore gives access to the buy and sell order tables.
type OrderStore interface {
	AddBuyOrder(ctx context.Context, order *model.BuyOrder) error
	AddSellOrder(ctx context.Context, order *model.SellOrder) error
	// FindBuyOrders returns all buy orders, newest first.
	FindBuyOrders(ctx context.Context) ([]model.BuyOrder, error)
	// FindSellOrders returns all sell orders, newest first.
	FindSellOrders(ctx context.Context) ([]model.SellOrder, error)
}

// OpenDatabase opens the MySQL connection pool described by cfg.
//
// ClientFoundRows makes UPDATE report matched rather than changed rows, so that an update that
// leaves all values as they were is still recognized as hitting an existing person.
func OpenDatabase(cfg config.DatabaseConfig) (*sql.DB, error) {
	dsn := mysql.NewConfig()
	dsn.User = cfg.User
	dsn.Passwd = cfg.Password
	dsn.Net = "tcp"
	dsn.Addr = cfg.Host
	dsn.DBName = cfg.Name
	dsn.ParseTime = true
	dsn.ClientFoundRows = true

	sqlDB, err := sql.Open("mysql", dsn.FormatDSN())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	return sqlDB, nil
}

// translate maps driver errors to the errors of this package.
func translate(err error) error {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry {
		return fmt.Errorf("%w: %s", ErrDuplicate, mysqlErr.Message)
	}
	return err
}
