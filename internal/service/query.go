package service

import (
	"cmp"
	"slices"
	"strings"
	"time"

	dto "gitlab.com/dirk.krummacker/persons-service/pkg/model"
)

// DateOfBirthSearchLayout is the format the date of birth is matched in when filtering.
const DateOfBirthSearchLayout = "02 January 2006"

// PersonField is a person attribute that can be searched or sorted by.
type PersonField int

const (
	FieldName PersonField = iota + 1
	FieldEmail
	FieldDateOfBirth
	FieldAge
	FieldGender
	FieldCountryName
	FieldAddress
	FieldReceiveNewsLetters
)

var personFieldNames = map[string]PersonField{
	"Name":               FieldName,
	"Email":              FieldEmail,
	"DateOfBirth":        FieldDateOfBirth,
	"Age":                FieldAge,
	"Gender":             FieldGender,
	"CountryName":        FieldCountryName,
	"Address":            FieldAddress,
	"ReceiveNewsLetters": FieldReceiveNewsLetters,
}

// ParsePersonField maps a field name such as "DateOfBirth" to its PersonField.
func ParsePersonField(name string) (PersonField, bool) {
	field, ok := personFieldNames[name]
	return field, ok
}

func (f PersonField) String() string {
	for name, field := range personFieldNames {
		if field == f {
			return name
		}
	}
	return "Unknown"
}

// SortOrder is the direction of a sort.
type SortOrder string

const (
	SortAscending  SortOrder = "ASC"
	SortDescending SortOrder = "DESC"
)

// ParseSortOrder returns SortDescending for "desc" in any case and SortAscending otherwise.
func ParseSortOrder(order string) SortOrder {
	if strings.EqualFold(order, string(SortDescending)) {
		return SortDescending
	}
	return SortAscending
}

// searchValues extract the text a filter matches against. An empty string means the value is
// absent.
var searchValues = map[PersonField]func(dto.PersonResponse) string{
	FieldName:  func(p dto.PersonResponse) string { return deref(p.Name) },
	FieldEmail: func(p dto.PersonResponse) string { return deref(p.Email) },
	FieldDateOfBirth: func(p dto.PersonResponse) string {
		if p.DateOfBirth == nil {
			return ""
		}
		return p.DateOfBirth.Format(DateOfBirthSearchLayout)
	},
	FieldGender:      func(p dto.PersonResponse) string { return deref(p.Gender) },
	FieldCountryName: func(p dto.PersonResponse) string { return deref(p.CountryName) },
	FieldAddress:     func(p dto.PersonResponse) string { return deref(p.Address) },
}

// comparators order persons by one field, ascending.
var comparators = map[PersonField]func(a, b dto.PersonResponse) int{
	FieldName:  func(a, b dto.PersonResponse) int { return compareFold(a.Name, b.Name) },
	FieldEmail: func(a, b dto.PersonResponse) int { return compareFold(a.Email, b.Email) },
	FieldDateOfBirth: func(a, b dto.PersonResponse) int {
		return compareNullable(a.DateOfBirth, b.DateOfBirth, func(x, y time.Time) int { return x.Compare(y) })
	},
	FieldAge: func(a, b dto.PersonResponse) int {
		return compareNullable(a.Age, b.Age, cmp.Compare[int])
	},
	FieldGender:      func(a, b dto.PersonResponse) int { return compareFold(a.Gender, b.Gender) },
	FieldCountryName: func(a, b dto.PersonResponse) int { return compareFold(a.CountryName, b.CountryName) },
	FieldAddress:     func(a, b dto.PersonResponse) int { return compareFold(a.Address, b.Address) },
	FieldReceiveNewsLetters: func(a, b dto.PersonResponse) int {
		return compareBool(a.ReceiveNewsLetters, b.ReceiveNewsLetters)
	},
}

// FilterPersons keeps the persons whose searchBy field contains searchString, ignoring case.
//
// The full list is returned if either argument is empty or if searchBy does not name a
// searchable field (Name, Email, DateOfBirth, Gender, CountryName, Address). A person whose
// field is absent or empty always passes the filter. The date of birth is matched in the
// DateOfBirthSearchLayout format.
func FilterPersons(persons []dto.PersonResponse, searchBy, searchString string) []dto.PersonResponse {
	if searchBy == "" || searchString == "" {
		return persons
	}
	field, ok := ParsePersonField(searchBy)
	if !ok {
		return persons
	}
	value, ok := searchValues[field]
	if !ok {
		return persons
	}

	needle := strings.ToLower(searchString)
	matching := make([]dto.PersonResponse, 0, len(persons))
	for _, person := range persons {
		v := value(person)
		if v == "" || strings.Contains(strings.ToLower(v), needle) {
			matching = append(matching, person)
		}
	}
	return matching
}

// SortPersons returns a sorted copy of persons. The sort is stable; strings compare ignoring
// case and absent values sort first in ascending order. An empty or unknown sortBy returns
// persons unchanged.
func SortPersons(persons []dto.PersonResponse, sortBy string, order SortOrder) []dto.PersonResponse {
	field, ok := ParsePersonField(sortBy)
	if !ok {
		return persons
	}
	compare := comparators[field]
	if order == SortDescending {
		ascending := compare
		compare = func(a, b dto.PersonResponse) int { return ascending(b, a) }
	}
	sorted := slices.Clone(persons)
	slices.SortStableFunc(sorted, compare)
	return sorted
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func compareFold(a, b *string) int {
	return compareNullable(a, b, func(x, y string) int {
		return strings.Compare(strings.ToLower(x), strings.ToLower(y))
	})
}

// compareNullable orders nil before any value.
func compareNullable[T any](a, b *T, compare func(x, y T) int) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	return compare(*a, *b)
}

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	}
	return 1
}
