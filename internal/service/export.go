package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"
	"gitlab.com/dirk.krummacker/persons-service/internal/logging"
	dto "gitlab.com/dirk.krummacker/persons-service/pkg/model"
)

// PersonsWorksheet is the worksheet written by GetPersonExcel.
const PersonsWorksheet = "PersonsSheet"

// exportDateLayout is the date of birth format in exported files.
const exportDateLayout = "2006-01-02"

// exportColumns is the header row of the CSV and Excel exports.
var exportColumns = []string{
	"PersonId", "Name", "Email", "DateOfBirth", "Age", "Gender", "CountryName", "Address", "ReceiveNewsLetters",
}

// exportRecord renders one person in the order of exportColumns. Absent values are blank.
func exportRecord(person dto.PersonResponse) []string {
	var dateOfBirth, age string
	if person.DateOfBirth != nil {
		dateOfBirth = person.DateOfBirth.Format(exportDateLayout)
	}
	if person.Age != nil {
		age = strconv.Itoa(*person.Age)
	}
	return []string{
		person.PersonID.String(),
		deref(person.Name),
		deref(person.Email),
		dateOfBirth,
		age,
		deref(person.Gender),
		deref(person.CountryName),
		deref(person.Address),
		strconv.FormatBool(person.ReceiveNewsLetters),
	}
}

// GetPersonCSV renders all persons as CSV, header first.
func (s *PersonsService) GetPersonCSV(ctx context.Context) (*bytes.Reader, error) {
	persons, err := s.GetAllPersons(ctx)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	csvWriter := csv.NewWriter(&buf)
	if err := csvWriter.Write(exportColumns); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	for _, person := range persons {
		if err := csvWriter.Write(exportRecord(person)); err != nil {
			return nil, fmt.Errorf("write csv record: %w", err)
		}
	}
	csvWriter.Flush()
	if err := csvWriter.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	logging.FromContext(ctx).Debug("persons exported", "format", "csv", "rows", len(persons))
	return bytes.NewReader(buf.Bytes()), nil
}

// GetPersonExcel renders all persons into the PersonsSheet worksheet of a new workbook.
func (s *PersonsService) GetPersonExcel(ctx context.Context) (*bytes.Reader, error) {
	persons, err := s.GetAllPersons(ctx)
	if err != nil {
		return nil, err
	}

	workbook := excelize.NewFile()
	defer workbook.Close()
	// A new workbook starts with Sheet1, which becomes the persons sheet.
	if err := workbook.SetSheetName(workbook.GetSheetName(0), PersonsWorksheet); err != nil {
		return nil, fmt.Errorf("name worksheet: %w", err)
	}

	if err := setRow(workbook, 1, exportColumns); err != nil {
		return nil, err
	}
	for i, person := range persons {
		if err := setRow(workbook, i+2, exportRecord(person)); err != nil {
			return nil, err
		}
	}

	buf, err := workbook.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	logging.FromContext(ctx).Debug("persons exported", "format", "xlsx", "rows", len(persons))
	return bytes.NewReader(buf.Bytes()), nil
}

func setRow(workbook *excelize.File, row int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	cells := make([]any, len(values))
	for i, v := range values {
		cells[i] = v
	}
	if err := workbook.SetSheetRow(PersonsWorksheet, cell, &cells); err != nil {
		return fmt.Errorf("write row %d: %w", row, err)
	}
	return nil
}
