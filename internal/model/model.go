package model

import (
	"time"

	"github.com/google/uuid"
)

// DefaultTIN is stored for persons whose tax identification number is unknown.
const DefaultTIN = "ABC12345"

// Country is a row of the countries table.
type Country struct {
	CountryID   uuid.UUID `db:"country_id"`
	CountryName *string   `db:"country_name"`
}

// Person is a row of the persons table. All fields with the exception of the PersonID field
// are nullable on the database.
type Person struct {
	PersonID           uuid.UUID     `db:"person_id"`
	Name               *string       `db:"name"`
	Email              *string       `db:"email"`
	DateOfBirth        *time.Time    `db:"date_of_birth"`
	Gender             *string       `db:"gender"`
	CountryID          uuid.NullUUID `db:"country_id"`
	Address            *string       `db:"address"`
	ReceiveNewsLetters bool          `db:"receive_news_letters"`
	TIN                *string       `db:"tin"`
}

// PersonDetails is a person joined with the name of its country. CountryName is nil if the
// person has no country or if the referenced country does not exist.
type PersonDetails struct {
	Person
	CountryName *string `db:"country_name"`
}
