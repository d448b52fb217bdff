package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	dto "gitlab.com/dirk.krummacker/persons-service/pkg/model"
)

// uploadField is the multipart form field carrying the spreadsheet.
const uploadField = "excelFile"

// findCountries responds with all countries as JSON.
//
// Example REST API call:
//
//	> curl http://localhost:8080/countries
func (h *handler) findCountries(c *gin.Context) {
	countries, err := h.services.Countries.GetAllCountries(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.IndentedJSON(http.StatusOK, countries)
}

// createCountry adds the country specified in the request's JSON. Country names are unique.
//
// Example REST API call:
//
//	> curl http://localhost:8080/countries --request "POST" --include --header "Content-Type: application/json" --data '{"countryName": "Czechia"}'
func (h *handler) createCountry(c *gin.Context) {
	var request dto.CountryAddRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "invalid JSON"})
		return
	}
	country, err := h.services.Countries.AddCountry(c.Request.Context(), &request)
	if err != nil {
		respondError(c, err)
		return
	}
	c.IndentedJSON(http.StatusCreated, country)
}

// findCountryByID responds with the country whose id matches the id parameter of the request URL.
//
// Example REST API call:
//
//	> curl http://localhost:8080/countries/4c0d8f7e-5f55-4b58-a1a5-b1f4a5c6f2f4
func (h *handler) findCountryByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	country, err := h.services.Countries.GetCountryByCountryID(c.Request.Context(), &id)
	if err != nil {
		respondError(c, err)
		return
	}
	if country == nil {
		c.IndentedJSON(http.StatusNotFound, gin.H{"message": "country not found"})
		return
	}
	c.IndentedJSON(http.StatusOK, country)
}

// uploadCountries adds the countries listed in the first column of the 'Countries' worksheet of
// an uploaded xlsx file. The first row is a header. It responds with the number of countries
// inserted.
//
// Example REST API call:
//
//	> curl http://localhost:8080/countries/upload --request "POST" --form "excelFile=@countries.xlsx"
func (h *handler) uploadCountries(c *gin.Context) {
	if h.maxUploadSize > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadSize)
	}
	header, err := c.FormFile(uploadField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, gin.H{"message": "file too large"})
			return
		}
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "please select an xlsx file"})
		return
	}
	file, err := header.Open()
	if err != nil {
		respondError(c, err)
		return
	}
	defer file.Close()

	inserted, err := h.services.Countries.UploadCountriesFromExcelFile(c.Request.Context(), file)
	if err != nil {
		respondError(c, err)
		return
	}
	c.IndentedJSON(http.StatusOK, gin.H{"inserted": inserted})
}
