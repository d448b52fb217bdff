package service

import (
	"context"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	dto "gitlab.com/dirk.krummacker/persons-service/pkg/model"
)

var expectedHeader = []string{
	"PersonId", "Name", "Email", "DateOfBirth", "Age", "Gender", "CountryName", "Address", "ReceiveNewsLetters",
}

// addExportPersons adds one complete person and one without optional values.
func addExportPersons(t *testing.T, f *fixture) (*dto.PersonResponse, *dto.PersonResponse) {
	t.Helper()
	complete := addPerson(t, f, personRequest("Anna, the First", "anna@example.com", addCountry(t, f, "Germany")))
	sparse := personRequest("Bert", "bert@example.com", addCountry(t, f, "Norway"))
	sparse.DateOfBirth = nil
	sparse.Address = nil
	sparse.ReceiveNewsLetters = false
	return complete, addPerson(t, f, sparse)
}

// TestGetPersonCSV expects the header and one record per person. Absent values are blank and
// values containing commas are quoted.
func TestGetPersonCSV(t *testing.T) {
	f := newFixture(t)
	complete, sparse := addExportPersons(t, f)

	reader, err := f.persons.GetPersonCSV(context.Background())
	require.NoError(t, err)
	records, err := csv.NewReader(reader).ReadAll()
	require.NoError(t, err)

	require.Len(t, records, 3)
	assert.Equal(t, expectedHeader, records[0])
	assert.Equal(t, []string{
		complete.PersonID.String(), "Anna, the First", "anna@example.com", "1990-03-02", "34",
		"Female", "Germany", "Hauptstrasse 1", "true",
	}, records[1])
	assert.Equal(t, []string{
		sparse.PersonID.String(), "Bert", "bert@example.com", "", "",
		"Female", "Norway", "", "false",
	}, records[2])
}

// TestGetPersonCSVEmpty expects only the header.
func TestGetPersonCSVEmpty(t *testing.T) {
	f := newFixture(t)
	reader, err := f.persons.GetPersonCSV(context.Background())
	require.NoError(t, err)
	records, err := csv.NewReader(reader).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, [][]string{expectedHeader}, records)
}

// TestGetPersonExcel expects the persons sheet with the header in row 1.
func TestGetPersonExcel(t *testing.T) {
	f := newFixture(t)
	complete, sparse := addExportPersons(t, f)

	reader, err := f.persons.GetPersonExcel(context.Background())
	require.NoError(t, err)
	workbook, err := excelize.OpenReader(reader)
	require.NoError(t, err)
	defer workbook.Close()

	assert.Equal(t, []string{PersonsWorksheet}, workbook.GetSheetList())
	rows, err := workbook.GetRows(PersonsWorksheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, expectedHeader, rows[0])
	assert.Equal(t, complete.PersonID.String(), rows[1][0])
	assert.Equal(t, "1990-03-02", rows[1][3])
	assert.Equal(t, "true", rows[1][8])
	assert.Equal(t, sparse.PersonID.String(), rows[2][0])
	assert.Equal(t, "", rows[2][3])
}

// TestExportRecordDate expects the date formatted without time of day.
func TestExportRecordDate(t *testing.T) {
	record := exportRecord(dto.PersonResponse{DateOfBirth: datePtr(2001, time.December, 24)})
	assert.Equal(t, "2001-12-24", record[3])
	assert.Equal(t, "false", record[8])
}
