package validation

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/dirk.krummacker/persons-service/pkg/model"
)

func ptr[T any](v T) *T {
	return &v
}

func validPersonAddRequest() *model.PersonAddRequest {
	return &model.PersonAddRequest{
		Name:      ptr("Erika Mustermann"),
		Email:     ptr("erika@example.com"),
		Gender:    ptr(model.GenderFemale),
		CountryID: ptr(uuid.New()),
	}
}

// TestValidRequest expects that a complete request passes.
func TestValidRequest(t *testing.T) {
	assert.NoError(t, Validate(validPersonAddRequest()))
}

// TestMissingFields expects one failure with the declared message per missing field.
func TestMissingFields(t *testing.T) {
	err := Validate(&model.PersonAddRequest{})
	var verr *Error
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Failures, 4)
	assert.Contains(t, verr.Failures, FieldError{Field: "name", Message: "Person Name can't be blank"})
	assert.Contains(t, verr.Failures, FieldError{Field: "email", Message: "Email can't be blank"})
	assert.Contains(t, verr.Failures, FieldError{Field: "gender", Message: "Please select a gender"})
	assert.Contains(t, verr.Failures, FieldError{Field: "countryId", Message: "Please select a country"})
}

// TestEmptyNameIsMissing expects that an empty string counts as a missing value.
func TestEmptyNameIsMissing(t *testing.T) {
	request := validPersonAddRequest()
	request.Name = ptr("")
	err := Validate(request)
	var verr *Error
	require.ErrorAs(t, err, &verr)
	assert.True(t, verr.HasField("name"))
	assert.Len(t, verr.Failures, 1)
}

// TestEmptyEmailIsMissing expects the blank message rather than the format message.
func TestEmptyEmailIsMissing(t *testing.T) {
	request := validPersonAddRequest()
	request.Email = ptr("")
	err := Validate(request)
	var verr *Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []FieldError{{Field: "email", Message: "Email can't be blank"}}, verr.Failures)
}

// TestMaximumLengths expects names and emails of 40 characters to pass and longer ones to fail.
func TestMaximumLengths(t *testing.T) {
	request := validPersonAddRequest()
	request.Name = ptr(strings.Repeat("N", 40))
	request.Email = ptr(strings.Repeat("e", 28) + "@example.com")
	assert.NoError(t, Validate(request))

	request.Name = ptr(strings.Repeat("N", 41))
	request.Email = ptr(strings.Repeat("e", 40) + "@example.com")
	err := Validate(request)
	var verr *Error
	require.ErrorAs(t, err, &verr)
	assert.ElementsMatch(t, []FieldError{
		{Field: "name", Message: "Person Name can't be longer than 40 characters"},
		{Field: "email", Message: "Email can't be longer than 40 characters"},
	}, verr.Failures)
}

// TestInvalidEmail expects the format message rather than the required message.
func TestInvalidEmail(t *testing.T) {
	request := validPersonAddRequest()
	request.Email = ptr("not-an-email")
	err := Validate(request)
	var verr *Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []FieldError{{Field: "email", Message: "Email value should be valid"}}, verr.Failures)
}

// TestUnknownGender expects that values outside of the enumeration are rejected.
func TestUnknownGender(t *testing.T) {
	request := validPersonAddRequest()
	request.Gender = ptr(model.Gender("Robot"))
	err := Validate(request)
	var verr *Error
	require.ErrorAs(t, err, &verr)
	assert.True(t, verr.HasField("gender"))
}

// TestOrderRules checks the rules of the embedded order fields, including the order date.
func TestOrderRules(t *testing.T) {
	request := &model.BuyOrderRequest{OrderRequest: model.OrderRequest{
		StockSymbol:        "MSFT",
		StockName:          "Microsoft",
		DateAndTimeOfOrder: time.Date(1999, time.December, 31, 0, 0, 0, 0, time.UTC),
		Quantity:           0,
		Price:              20000,
	}}
	err := Validate(request)
	var verr *Error
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Failures, FieldError{Field: "dateAndTimeOfOrder", Message: "Order date should not be older than Jan 01, 2000"})
	assert.Contains(t, verr.Failures, FieldError{Field: "quantity", Message: "Quantity should be between 1 and 100000"})
	assert.Contains(t, verr.Failures, FieldError{Field: "price", Message: "Price should be between 1 and 10000"})

	request.DateAndTimeOfOrder = time.Date(2024, time.May, 1, 10, 0, 0, 0, time.UTC)
	request.Quantity = 10
	request.Price = 99.5
	assert.NoError(t, Validate(request))
}

// TestErrorMessage expects that the error text joins all messages.
func TestErrorMessage(t *testing.T) {
	err := &Error{Failures: []FieldError{
		{Field: "name", Message: "Person Name can't be blank"},
		{Field: "email", Message: "Email can't be blank"},
	}}
	assert.Equal(t, "validation failed: Person Name can't be blank; Email can't be blank", err.Error())
}
