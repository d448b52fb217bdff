package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"gitlab.com/dirk.krummacker/persons-service/internal/model"
)

// selectPersons is the join of persons with the name of their country.
const selectPersons = `
	SELECT p.person_id, p.name, p.email, p.date_of_birth, p.gender, p.country_id,
		p.address, p.receive_news_letters, p.tin, c.country_name
	FROM persons p
	LEFT JOIN countries c ON c.country_id = p.country_id`

// PersonTable is the sqlx implementation of PersonStore.
type PersonTable struct {
	db *sqlx.DB

	// insert creates a person.
	insert *sqlx.NamedStmt

	// selectAll selects all persons in storage order.
	selectAll *sqlx.Stmt

	// selectWhereID selects persons with a given id.
	selectWhereID *sqlx.Stmt

	// update overwrites the mutable columns of a person. The tax identification number is
	// not touched.
	update *sqlx.NamedStmt

	// deleteWhereID deletes a person with a given id.
	deleteWhereID *sqlx.Stmt
}

// NewPersonTable prepares all statements of the persons table.
func NewPersonTable(db *sqlx.DB) (*PersonTable, error) {
	t := &PersonTable{db: db}
	var err error
	t.insert, err = db.PrepareNamed(`
		INSERT INTO persons (person_id, name, email, date_of_birth, gender, country_id,
			address, receive_news_letters, tin)
		VALUES (:person_id, :name, :email, :date_of_birth, :gender, :country_id,
			:address, :receive_news_letters, :tin)
	`)
	if err != nil {
		return nil, fmt.Errorf("prepare person insert: %w", err)
	}
	t.selectAll, err = db.Preparex(selectPersons)
	if err != nil {
		return nil, fmt.Errorf("prepare person select: %w", err)
	}
	t.selectWhereID, err = db.Preparex(selectPersons + ` WHERE p.person_id = ?`)
	if err != nil {
		return nil, fmt.Errorf("prepare person select by id: %w", err)
	}
	t.update, err = db.PrepareNamed(`
		UPDATE persons
		SET name = :name, email = :email, date_of_birth = :date_of_birth, gender = :gender,
			country_id = :country_id, address = :address,
			receive_news_letters = :receive_news_letters
		WHERE person_id = :person_id
	`)
	if err != nil {
		return nil, fmt.Errorf("prepare person update: %w", err)
	}
	t.deleteWhereID, err = db.Preparex(`
		DELETE FROM persons WHERE person_id = ?
	`)
	if err != nil {
		return nil, fmt.Errorf("prepare person delete: %w", err)
	}
	return t, nil
}

func (t *PersonTable) AddPerson(ctx context.Context, person *model.Person) error {
	if _, err := t.insert.ExecContext(ctx, person); err != nil {
		return fmt.Errorf("insert person: %w", translate(err))
	}
	return nil
}

func (t *PersonTable) FindAllPersons(ctx context.Context) ([]model.PersonDetails, error) {
	persons := []model.PersonDetails{}
	if err := t.selectAll.SelectContext(ctx, &persons); err != nil {
		return nil, fmt.Errorf("select persons: %w", err)
	}
	return persons, nil
}

func (t *PersonTable) FindPersonByID(ctx context.Context, id uuid.UUID) (*model.PersonDetails, error) {
	var persons []model.PersonDetails
	if err := t.selectWhereID.SelectContext(ctx, &persons, id); err != nil {
		return nil, fmt.Errorf("select person %s: %w", id, err)
	}
	if len(persons) == 0 {
		return nil, nil
	}
	return &persons[0], nil
}

func (t *PersonTable) UpdatePerson(ctx context.Context, person *model.Person) (bool, error) {
	result, err := t.update.ExecContext(ctx, person)
	if err != nil {
		return false, fmt.Errorf("update person %s: %w", person.PersonID, translate(err))
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("update person %s: %w", person.PersonID, err)
	}
	return rowsAffected > 0, nil
}

func (t *PersonTable) DeletePerson(ctx context.Context, id uuid.UUID) (bool, error) {
	result, err := t.deleteWhereID.ExecContext(ctx, id)
	if err != nil {
		return false, fmt.Errorf("delete person %s: %w", id, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete person %s: %w", id, err)
	}
	return rowsAffected == 1, nil
}
