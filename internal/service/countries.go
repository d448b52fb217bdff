package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"gitlab.com/dirk.krummacker/persons-service/internal/logging"
	"gitlab.com/dirk.krummacker/persons-service/internal/metrics"
	"gitlab.com/dirk.krummacker/persons-service/internal/model"
	"gitlab.com/dirk.krummacker/persons-service/internal/store"
	dto "gitlab.com/dirk.krummacker/persons-service/pkg/model"
)

// CountriesWorksheet is the worksheet read by UploadCountriesFromExcelFile.
const CountriesWorksheet = "Countries"

// MaxCountryNameLength is the width of the country name column in characters.
const MaxCountryNameLength = 100

// CountriesService manages country records.
type CountriesService struct {
	countries store.CountryStore
	metrics   *metrics.Metrics
}

// NewCountriesService returns a service on top of the given store.
func NewCountriesService(countries store.CountryStore, m *metrics.Metrics) *CountriesService {
	return &CountriesService{countries: countries, metrics: m}
}

// AddCountry stores a new country under a fresh id. The name is required and must not be used
// by another country yet; the comparison is case-sensitive.
func (s *CountriesService) AddCountry(ctx context.Context, request *dto.CountryAddRequest) (*dto.CountryResponse, error) {
	if request == nil {
		return nil, fmt.Errorf("%w: country add request", ErrNullArgument)
	}
	if request.CountryName == nil {
		return nil, fmt.Errorf("%w: country name is required", ErrInvalidArgument)
	}
	if utf8.RuneCountInString(*request.CountryName) > MaxCountryNameLength {
		return nil, fmt.Errorf("%w: country name can't be longer than %d characters", ErrInvalidArgument, MaxCountryNameLength)
	}
	count, err := s.countries.CountCountriesByName(ctx, *request.CountryName)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, fmt.Errorf("%w: given country name already exists", ErrInvalidArgument)
	}

	country := model.Country{CountryID: uuid.New(), CountryName: request.CountryName}
	if err := s.countries.AddCountry(ctx, &country); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, fmt.Errorf("%w: given country name already exists", ErrInvalidArgument)
		}
		return nil, err
	}
	s.metrics.CountriesAdded.Inc()
	logging.FromContext(ctx).Info("country added", "country_id", country.CountryID, "country_name", *country.CountryName)

	response := toCountryResponse(country)
	return &response, nil
}

// GetAllCountries returns every country in storage order.
func (s *CountriesService) GetAllCountries(ctx context.Context) ([]dto.CountryResponse, error) {
	countries, err := s.countries.FindAllCountries(ctx)
	if err != nil {
		return nil, err
	}
	responses := make([]dto.CountryResponse, 0, len(countries))
	for _, country := range countries {
		responses = append(responses, toCountryResponse(country))
	}
	return responses, nil
}

// GetCountryByCountryID returns the matching country, or nil if id is nil or unknown.
func (s *CountriesService) GetCountryByCountryID(ctx context.Context, id *uuid.UUID) (*dto.CountryResponse, error) {
	if id == nil {
		return nil, nil
	}
	country, err := s.countries.FindCountryByID(ctx, *id)
	if err != nil || country == nil {
		return nil, err
	}
	response := toCountryResponse(*country)
	return &response, nil
}

// UploadCountriesFromExcelFile inserts the country names found in the first column of the
// Countries worksheet, starting at row 2. Blank names, names longer than MaxCountryNameLength and
// names that already exist are skipped. It returns the number of countries inserted.
func (s *CountriesService) UploadCountriesFromExcelFile(ctx context.Context, file io.Reader) (int, error) {
	if file == nil {
		return 0, fmt.Errorf("%w: excel file", ErrNullArgument)
	}
	workbook, err := excelize.OpenReader(file)
	if err != nil {
		return 0, fmt.Errorf("%w: cannot read excel file: %v", ErrInvalidArgument, err)
	}
	defer workbook.Close()

	if !slices.Contains(workbook.GetSheetList(), CountriesWorksheet) {
		return 0, fmt.Errorf("%w: worksheet %q not found", ErrInvalidArgument, CountriesWorksheet)
	}
	rows, err := workbook.GetRows(CountriesWorksheet)
	if err != nil {
		return 0, fmt.Errorf("%w: cannot read worksheet %q: %v", ErrInvalidArgument, CountriesWorksheet, err)
	}

	logger := logging.FromContext(ctx)
	inserted := 0
	for i := 1; i < len(rows); i++ {
		if len(rows[i]) == 0 || strings.TrimSpace(rows[i][0]) == "" {
			continue
		}
		name := rows[i][0]
		if utf8.RuneCountInString(name) > MaxCountryNameLength {
			logger.Warn("country name too long, row skipped", "row", i+1, "length", utf8.RuneCountInString(name))
			continue
		}
		count, err := s.countries.CountCountriesByName(ctx, name)
		if err != nil {
			return inserted, err
		}
		if count > 0 {
			continue
		}
		country := model.Country{CountryID: uuid.New(), CountryName: &name}
		if err := s.countries.AddCountry(ctx, &country); err != nil {
			if errors.Is(err, store.ErrDuplicate) {
				continue
			}
			return inserted, err
		}
		inserted++
	}
	s.metrics.CountriesImported.Add(float64(inserted))
	logger.Info("countries uploaded", "rows", max(len(rows)-1, 0), "inserted", inserted)
	return inserted, nil
}
