package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gitlab.com/dirk.krummacker/persons-service/internal/service"
	dto "gitlab.com/dirk.krummacker/persons-service/pkg/model"
)

// defaultSortBy is the field the person list is sorted by if the request names none.
const defaultSortBy = "Name"

// findPersons responds with a list of persons as JSON.
//
// The URL parameters 'searchBy' and 'searchString' restrict the list to persons whose searchBy
// field contains the search string, ignoring case. Searchable fields are 'Name', 'Email',
// 'DateOfBirth', 'Gender', 'CountryName' and 'Address'. Persons without a value in the searched
// field are always listed.
//
// The URL parameter 'sortBy' names the field the list is sorted by and defaults to 'Name'. If
// the URL parameter 'sortOrder' is 'DESC' the order is reversed. An unknown 'sortBy' leaves the
// list in storage order.
//
// REST API calls:
//
//	> curl "http://localhost:8080/persons"
//	> curl "http://localhost:8080/persons?searchBy=Name&searchString=jo"
//	> curl "http://localhost:8080/persons?sortBy=DateOfBirth&sortOrder=DESC"
func (h *handler) findPersons(c *gin.Context) {
	persons, err := h.services.Persons.GetFilteredPersons(c.Request.Context(), c.Query("searchBy"), c.Query("searchString"))
	if err != nil {
		respondError(c, err)
		return
	}
	sortBy := c.DefaultQuery("sortBy", defaultSortBy)
	order := service.ParseSortOrder(c.Query("sortOrder"))
	c.IndentedJSON(http.StatusOK, h.services.Persons.GetSortedPersons(persons, sortBy, order))
}

// createPerson adds the person specified in the request's JSON. It responds with the full person
// data including the newly assigned id.
//
// Example REST API call:
//
//	> curl http://localhost:8080/persons --request "POST" --include --header "Content-Type: application/json" --data '{"name": "Hans Wurst", "email": "hans@example.com", "gender": "Male", "countryId": "4c0d8f7e-5f55-4b58-a1a5-b1f4a5c6f2f4", "dateOfBirth": "1969-03-02T00:00:00Z"}'
func (h *handler) createPerson(c *gin.Context) {
	var request dto.PersonAddRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "invalid JSON"})
		return
	}
	person, err := h.services.Persons.AddPerson(c.Request.Context(), &request)
	if err != nil {
		respondError(c, err)
		return
	}
	c.IndentedJSON(http.StatusCreated, person)
}

// findPersonByID locates the person whose id matches the id parameter of the request URL, then
// returns that person as a response.
//
// Example REST API call:
//
//	> curl http://localhost:8080/persons/0b6e1b1c-3a43-4a9e-9f44-6f1a2c8f3d11
func (h *handler) findPersonByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	person, err := h.services.Persons.GetPersonByPersonID(c.Request.Context(), &id)
	if err != nil {
		respondError(c, err)
		return
	}
	if person == nil {
		c.IndentedJSON(http.StatusNotFound, gin.H{"message": "person not found"})
		return
	}
	c.IndentedJSON(http.StatusOK, person)
}

// updatePersonByID replaces all mutable values of the person whose id matches the id parameter
// of the request URL with the values of the JSON and responds with the new version of the
// person. The id in the URL takes precedence over an id in the JSON.
//
// Example REST API call:
//
//	> curl http://localhost:8080/persons/0b6e1b1c-3a43-4a9e-9f44-6f1a2c8f3d11 --request "PUT" --include --header "Content-Type: application/json" --data '{"name": "Hans Wurst", "email": "wurst@example.com"}'
func (h *handler) updatePersonByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var request dto.PersonUpdateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "invalid JSON"})
		return
	}
	request.PersonID = id
	person, err := h.services.Persons.UpdatePerson(c.Request.Context(), &request)
	if err != nil {
		respondError(c, err)
		return
	}
	c.IndentedJSON(http.StatusOK, person)
}

// deletePersonByID deletes the person whose id matches the id parameter of the request URL.
//
// Example REST API call:
//
//	> curl http://localhost:8080/persons/0b6e1b1c-3a43-4a9e-9f44-6f1a2c8f3d11 --request "DELETE"
func (h *handler) deletePersonByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	deleted, err := h.services.Persons.DeletePerson(c.Request.Context(), &id)
	if err != nil {
		respondError(c, err)
		return
	}
	if deleted {
		c.IndentedJSON(http.StatusOK, gin.H{"message": "person deleted"})
	} else {
		c.IndentedJSON(http.StatusNotFound, gin.H{"message": "person not found"})
	}
}

// parseID reads the id parameter of the request URL. It responds with 404 and reports false if
// the parameter is not a UUID.
func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"message": "invalid id parameter"})
		return uuid.Nil, false
	}
	return id, true
}
