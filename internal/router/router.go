package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "pet-grooming-shop/docs"
	"pet-grooming-shop/internal/domain/appointments"
	"pet-grooming-shop/internal/domain/catalog"
	"pet-grooming-shop/internal/domain/clients"
	"pet-grooming-shop/internal/domain/finance"
	"pet-grooming-shop/internal/domain/inventory"
	"pet-grooming-shop/internal/domain/schedule"
	"pet-grooming-shop/internal/middleware"
	"pet-grooming-shop/internal/platform/logger"
	"pet-grooming-shop/internal/platform/metrics"
	"pet-grooming-shop/internal/shop"
)

type Options struct {
	Logger logger.Logger // puede ser nil (descarta logs)

	// Opcional: si no viene, se crea una tienda vacía en time.Local.
	Shop *shop.Shop

	// 0 desactiva el rate limit.
	RateLimitRPS   float64
	RateLimitBurst int
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	s := opts.Shop
	if s == nil {
		var err error
		// con Options vacías no puede fallar
		if s, err = shop.New(shop.Options{}); err != nil {
			panic(err)
		}
	}

	// Registry propio por router, así los tests pueden crear varios.
	collector := metrics.NewCollector()
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collector,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	summary := s.Ledger.Summary()
	collector.SetFinance(summary.Revenue, summary.Expenses, summary.ServiceCount)

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Recover(log))
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Metrics(collector))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// Rutas por módulo
	r.Group(func(api chi.Router) {
		api.Use(middleware.RateLimit(log, opts.RateLimitRPS, opts.RateLimitBurst))

		catalog.RegisterRoutes(api)
		schedule.RegisterRoutes(api)
		clients.RegisterRoutes(api, s.Clients, log, s.Location)
		appointments.RegisterRoutes(api, s.Appointments, s.Ledger, log, collector, s.Location)
		finance.RegisterRoutes(api, s.Ledger, log, collector, s.Location)
		inventory.RegisterRoutes(api, s.Inventory, log, collector)
	})

	return r
}
