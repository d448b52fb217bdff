package model

import (
	"time"

	"github.com/google/uuid"
)

// Gender is one of the values offered for a person's gender.
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

// CountryAddRequest is the data structure for adding a country.
type CountryAddRequest struct {
	CountryName *string `json:"countryName"`
}

// CountryResponse is a country as returned by the service.
type CountryResponse struct {
	CountryID   uuid.UUID `json:"countryId"`
	CountryName *string   `json:"countryName,omitempty"`
}

// PersonAddRequest is the data structure for adding a person.
type PersonAddRequest struct {
	Name               *string    `json:"name"                         validate:"required,min=1,max=40"               msg:"required:Person Name can't be blank|min:Person Name can't be blank|max:Person Name can't be longer than 40 characters"`
	Email              *string    `json:"email"                        validate:"required,min=1,max=40,email"         msg:"required:Email can't be blank|min:Email can't be blank|max:Email can't be longer than 40 characters|email:Email value should be valid"`
	DateOfBirth        *time.Time `json:"dateOfBirth,omitempty"`
	Gender             *Gender    `json:"gender"                       validate:"required,oneof=Male Female Other"    msg:"required:Please select a gender|oneof:Please select a gender"`
	CountryID          *uuid.UUID `json:"countryId"                    validate:"required"                            msg:"required:Please select a country"`
	Address            *string    `json:"address,omitempty"            validate:"omitempty,max=200"                   msg:"max:Address can't be longer than 200 characters"`
	ReceiveNewsLetters bool       `json:"receiveNewsLetters"`
}

// PersonUpdateRequest is the data structure for updating a person. The gender and the country
// are optional on update.
type PersonUpdateRequest struct {
	PersonID           uuid.UUID  `json:"personId"                     validate:"required"                            msg:"required:Person Id can't be blank"`
	Name               *string    `json:"name"                         validate:"required,min=1,max=40"               msg:"required:Person Name can't be blank|min:Person Name can't be blank|max:Person Name can't be longer than 40 characters"`
	Email              *string    `json:"email"                        validate:"required,min=1,max=40,email"         msg:"required:Email can't be blank|min:Email can't be blank|max:Email can't be longer than 40 characters|email:Email value should be valid"`
	DateOfBirth        *time.Time `json:"dateOfBirth,omitempty"`
	Gender             *Gender    `json:"gender,omitempty"             validate:"omitempty,oneof=Male Female Other"   msg:"oneof:Please select a gender"`
	CountryID          *uuid.UUID `json:"countryId,omitempty"`
	Address            *string    `json:"address,omitempty"            validate:"omitempty,max=200"                   msg:"max:Address can't be longer than 200 characters"`
	ReceiveNewsLetters bool       `json:"receiveNewsLetters"`
}

// PersonResponse is a person as returned by the service, with the age and the country name
// resolved.
type PersonResponse struct {
	PersonID           uuid.UUID  `json:"personId"`
	Name               *string    `json:"name,omitempty"`
	Email              *string    `json:"email,omitempty"`
	DateOfBirth        *time.Time `json:"dateOfBirth,omitempty"`
	Gender             *string    `json:"gender,omitempty"`
	CountryID          *uuid.UUID `json:"countryId,omitempty"`
	CountryName        *string    `json:"countryName,omitempty"`
	Address            *string    `json:"address,omitempty"`
	ReceiveNewsLetters bool       `json:"receiveNewsLetters"`
	Age                *int       `json:"age,omitempty"`
}

// ToPersonUpdateRequest prefills an update request with the values of the response.
func (p PersonResponse) ToPersonUpdateRequest() PersonUpdateRequest {
	var gender *Gender
	if p.Gender != nil {
		g := Gender(*p.Gender)
		gender = &g
	}
	return PersonUpdateRequest{
		PersonID:           p.PersonID,
		Name:               p.Name,
		Email:              p.Email,
		DateOfBirth:        p.DateOfBirth,
		Gender:             gender,
		CountryID:          p.CountryID,
		Address:            p.Address,
		ReceiveNewsLetters: p.ReceiveNewsLetters,
	}
}
