package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gitlab.com/dirk.krummacker/persons-service/internal/logging"
	"gitlab.com/dirk.krummacker/persons-service/internal/service"
	"gitlab.com/dirk.krummacker/persons-service/internal/validation"
)

// respondError aborts the request with the status that fits err. Errors the client cannot fix
// are logged and answered without details.
func respondError(c *gin.Context, err error) {
	var validationErr *validation.Error
	switch {
	case errors.As(err, &validationErr):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"message": "validation failed",
			"errors":  validationErr.Failures,
		})
	case errors.Is(err, service.ErrUnknownPerson):
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"message": "person not found"})
	case errors.Is(err, service.ErrNullArgument), errors.Is(err, service.ErrInvalidArgument):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	default:
		logging.FromContext(c.Request.Context()).Error("request failed",
			"method", c.Request.Method, "path", c.Request.URL.Path, "error", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
	}
}
