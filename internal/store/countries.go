package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"gitlab.com/dirk.krummacker/persons-service/internal/model"
)

// CountryTable is the sqlx implementation of CountryStore.
type CountryTable struct {
	db *sqlx.DB

	// insert creates a country.
	insert *sqlx.NamedStmt

	// selectAll selects all countries in storage order.
	selectAll *sqlx.Stmt

	// selectWhereID selects countries with a given id.
	selectWhereID *sqlx.Stmt

	// countWhereName counts countries with exactly the given name.
	countWhereName *sqlx.Stmt
}

// NewCountryTable prepares all statements of the countries table.
func NewCountryTable(db *sqlx.DB) (*CountryTable, error) {
	t := &CountryTable{db: db}
	var err error
	t.insert, err = db.PrepareNamed(`
		INSERT INTO countries (country_id, country_name)
		VALUES (:country_id, :country_name)
	`)
	if err != nil {
		return nil, fmt.Errorf("prepare country insert: %w", err)
	}
	t.selectAll, err = db.Preparex(`
		SELECT country_id, country_name FROM countries
	`)
	if err != nil {
		return nil, fmt.Errorf("prepare country select: %w", err)
	}
	t.selectWhereID, err = db.Preparex(`
		SELECT country_id, country_name FROM countries WHERE country_id = ?
	`)
	if err != nil {
		return nil, fmt.Errorf("prepare country select by id: %w", err)
	}
	t.countWhereName, err = db.Preparex(`
		SELECT COUNT(*) FROM countries WHERE country_name = ?
	`)
	if err != nil {
		return nil, fmt.Errorf("prepare country count by name: %w", err)
	}
	return t, nil
}

func (t *CountryTable) AddCountry(ctx context.Context, country *model.Country) error {
	if _, err := t.insert.ExecContext(ctx, country); err != nil {
		return fmt.Errorf("insert country: %w", translate(err))
	}
	return nil
}

func (t *CountryTable) FindAllCountries(ctx context.Context) ([]model.Country, error) {
	countries := []model.Country{}
	if err := t.selectAll.SelectContext(ctx, &countries); err != nil {
		return nil, fmt.Errorf("select countries: %w", err)
	}
	return countries, nil
}

func (t *CountryTable) FindCountryByID(ctx context.Context, id uuid.UUID) (*model.Country, error) {
	var countries []model.Country
	if err := t.selectWhereID.SelectContext(ctx, &countries, id); err != nil {
		return nil, fmt.Errorf("select country %s: %w", id, err)
	}
	if len(countries) == 0 {
		return nil, nil
	}
	return &countries[0], nil
}

func (t *CountryTable) CountCountriesByName(ctx context.Context, name string) (int, error) {
	var count int
	if err := t.countWhereName.GetContext(ctx, &count, name); err != nil {
		return 0, fmt.Errorf("count countries named %q: %w", name, err)
	}
	return count, nil
}
