// Package metrics expone los contadores de la tienda en formato Prometheus.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "grooming_shop"

// Collector es un prometheus.Collector con las métricas HTTP y de negocio.
type Collector struct {
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec

	appointmentsBooked *prometheus.CounterVec
	bookingsRejected   *prometheus.CounterVec
	stockRefusals      *prometheus.CounterVec

	revenue      prometheus.Gauge
	expenses     prometheus.Gauge
	balance      prometheus.Gauge
	serviceCount prometheus.Gauge
	productStock *prometheus.GaugeVec
}

func NewCollector() *Collector {
	return &Collector{
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "HTTP requests by method, route pattern and status code.",
			}, []string{"method", "route", "status"},
		),
		httpDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency by method and route pattern.",
				Buckets:   prometheus.DefBuckets,
			}, []string{"method", "route"},
		),
		appointmentsBooked: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "appointments_booked_total",
				Help:      "Appointments booked by service.",
			}, []string{"service"},
		),
		bookingsRejected: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "bookings_rejected_total",
				Help:      "Booking attempts rejected by reason.",
			}, []string{"reason"},
		),
		stockRefusals: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "inventory_refusals_total",
				Help:      "Inventory operations refused by operation.",
			}, []string{"operation"},
		),
		revenue: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "revenue",
			Help:      "Accumulated revenue of the financial record.",
		}),
		expenses: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "expenses",
			Help:      "Accumulated expenses of the financial record.",
		}),
		balance: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "balance",
			Help:      "Revenue minus expenses.",
		}),
		serviceCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "services_performed",
			Help:      "Number of services credited to the financial record.",
		}),
		productStock: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "product_stock",
				Help:      "Units in stock by product code.",
			}, []string{"code"},
		),
	}
}

// Describe is part of the prometheus.Collector interface.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	c.httpRequests.Describe(ch)
	c.httpDuration.Describe(ch)
	c.appointmentsBooked.Describe(ch)
	c.bookingsRejected.Describe(ch)
	c.stockRefusals.Describe(ch)
	c.revenue.Describe(ch)
	c.expenses.Describe(ch)
	c.balance.Describe(ch)
	c.serviceCount.Describe(ch)
	c.productStock.Describe(ch)
}

// Collect is part of the prometheus.Collector interface.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.httpRequests.Collect(ch)
	c.httpDuration.Collect(ch)
	c.appointmentsBooked.Collect(ch)
	c.bookingsRejected.Collect(ch)
	c.stockRefusals.Collect(ch)
	c.revenue.Collect(ch)
	c.expenses.Collect(ch)
	c.balance.Collect(ch)
	c.serviceCount.Collect(ch)
	c.productStock.Collect(ch)
}

func (c *Collector) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	c.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func (c *Collector) AppointmentBooked(service string) {
	c.appointmentsBooked.WithLabelValues(service).Inc()
}

// BookingRejected: reason es past, closed, invalid o not_found.
func (c *Collector) BookingRejected(reason string) {
	c.bookingsRejected.WithLabelValues(reason).Inc()
}

func (c *Collector) InventoryRefused(operation string) {
	c.stockRefusals.WithLabelValues(operation).Inc()
}

// SetFinance refleja el estado actual del registro financiero.
func (c *Collector) SetFinance(revenue, expenses float64, services int) {
	c.revenue.Set(revenue)
	c.expenses.Set(expenses)
	c.balance.Set(revenue - expenses)
	c.serviceCount.Set(float64(services))
}

func (c *Collector) SetStock(code, stock int) {
	c.productStock.WithLabelValues(strconv.Itoa(code)).Set(float64(stock))
}
