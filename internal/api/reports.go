package api

import (
	"bytes"
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

const excelContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// exportPersonsCSV responds with all persons as a CSV attachment.
//
// Example REST API call:
//
//	> curl -OJ http://localhost:8080/reports/persons/csv
func (h *handler) exportPersonsCSV(c *gin.Context) {
	attachment(c, "persons.csv", "application/octet-stream", h.services.Persons.GetPersonCSV)
}

// exportPersonsExcel responds with all persons as an Excel attachment.
//
// Example REST API call:
//
//	> curl -OJ http://localhost:8080/reports/persons/excel
func (h *handler) exportPersonsExcel(c *gin.Context) {
	attachment(c, "persons.xlsx", excelContentType, h.services.Persons.GetPersonExcel)
}

func attachment(c *gin.Context, filename, contentType string, render func(context.Context) (*bytes.Reader, error)) {
	reader, err := render(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.DataFromReader(http.StatusOK, reader.Size(), contentType, reader, map[string]string{
		"Content-Disposition": fmt.Sprintf(`attachment; filename="%s"`, filename),
	})
}
