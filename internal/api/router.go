// Package api exposes the persons service as a JSON REST API.
package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gitlab.com/dirk.krummacker/persons-service/internal/logging"
	"gitlab.com/dirk.krummacker/persons-service/internal/service"
)

// RequestIDHeader carries the id that correlates the log entries of a request.
const RequestIDHeader = "X-Request-ID"

// Options tune the router.
type Options struct {
	// RequestLogging enables one log entry per request.
	RequestLogging bool

	// MaxUploadSize limits the size of uploaded spreadsheets in bytes. Zero means no limit.
	MaxUploadSize int64

	// Metrics serves /metrics if set.
	Metrics http.Handler
}

// handler holds the services the endpoints delegate to.
type handler struct {
	services      *service.Services
	maxUploadSize int64
}

// NewRouter initializes the REST API router and registers all endpoints.
func NewRouter(services *service.Services, opts Options) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestID())
	if opts.RequestLogging {
		router.Use(requestLogger())
	} else {
		slog.Info("Turning off HTTP request logging.")
	}
	if opts.MaxUploadSize > 0 {
		router.MaxMultipartMemory = opts.MaxUploadSize
	}

	h := &handler{services: services, maxUploadSize: opts.MaxUploadSize}

	router.GET("/persons", h.findPersons)
	router.POST("/persons", h.createPerson)
	router.GET("/persons/:id", h.findPersonByID)
	router.PUT("/persons/:id", h.updatePersonByID)
	router.DELETE("/persons/:id", h.deletePersonByID)

	router.GET("/reports/persons/csv", h.exportPersonsCSV)
	router.GET("/reports/persons/excel", h.exportPersonsExcel)

	router.GET("/countries", h.findCountries)
	router.POST("/countries", h.createCountry)
	router.GET("/countries/:id", h.findCountryByID)
	router.POST("/countries/upload", h.uploadCountries)

	router.GET("/orders/buy", h.findBuyOrders)
	router.POST("/orders/buy", h.createBuyOrder)
	router.GET("/orders/sell", h.findSellOrders)
	router.POST("/orders/sell", h.createSellOrder)

	if opts.Metrics != nil {
		router.GET("/metrics", gin.WrapH(opts.Metrics))
	}
	return router
}

// requestID assigns every request an id, taken from the X-Request-ID header if the client sent
// one. The id is echoed in the response and stored in the request context for logging.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(RequestIDHeader, id)
		c.Request = c.Request.WithContext(logging.WithRequestID(c.Request.Context(), id))
		c.Next()
	}
}

// requestLogger logs method, path, status and duration of each request.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logging.FromContext(c.Request.Context()).Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
			"ip", c.ClientIP(),
			"user_agent", c.Request.UserAgent(),
		)
	}
}
