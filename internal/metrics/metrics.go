// Package metrics defines the Prometheus counters for domain events of the persons service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus counters for domain events.
type Metrics struct {
	CountriesAdded    prometheus.Counter
	CountriesImported prometheus.Counter
	PersonsAdded      prometheus.Counter
	PersonsUpdated    prometheus.Counter
	PersonsDeleted    prometheus.Counter
	OrdersCreated     *prometheus.CounterVec
}

// New creates the metrics and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		CountriesAdded: factory.NewCounter(prometheus.CounterOpts{
			Name: "persons_service_countries_added_total",
			Help: "Total number of countries added one by one",
		}),
		CountriesImported: factory.NewCounter(prometheus.CounterOpts{
			Name: "persons_service_countries_imported_total",
			Help: "Total number of countries inserted from spreadsheet uploads",
		}),
		PersonsAdded: factory.NewCounter(prometheus.CounterOpts{
			Name: "persons_service_persons_added_total",
			Help: "Total number of persons added",
		}),
		PersonsUpdated: factory.NewCounter(prometheus.CounterOpts{
			Name: "persons_service_persons_updated_total",
			Help: "Total number of persons updated",
		}),
		PersonsDeleted: factory.NewCounter(prometheus.CounterOpts{
			Name: "persons_service_persons_deleted_total",
			Help: "Total number of persons deleted",
		}),
		OrdersCreated: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "persons_service_orders_created_total",
			Help: "Total number of stock orders created, by side",
		}, []string{"side"}),
	}
}

// IncrementOrdersCreated counts one order for the given side ("buy" or "sell").
func (m *Metrics) IncrementOrdersCreated(side string) {
	m.OrdersCreated.WithLabelValues(side).Inc()
}
