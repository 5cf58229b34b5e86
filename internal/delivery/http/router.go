package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/Pesokrava/beverage_stock/internal/config"
	"github.com/Pesokrava/beverage_stock/internal/delivery/http/handler"
	"github.com/Pesokrava/beverage_stock/internal/delivery/http/middleware"
	"github.com/Pesokrava/beverage_stock/internal/delivery/http/response"
	"github.com/Pesokrava/beverage_stock/internal/pkg/logger"
	"github.com/Pesokrava/beverage_stock/internal/usecase/inventory"
)

// Router holds HTTP handlers and router configuration
type Router struct {
	productHandler   *handler.ProductHandler
	saleHandler      *handler.SaleHandler
	incomingHandler  *handler.IncomingHandler
	dashboardHandler *handler.DashboardHandler
	activityHandler  *handler.ActivityHandler
	recordedHandler  *handler.RecordedAlertHandler
	logger           *logger.Logger
	cfg              *config.Config
}

// NewRouter creates a new HTTP router with one handler per resource, all
// sharing the same store. alerts may be nil, in which case the recorded
// alerts route is not mounted.
func NewRouter(store *inventory.Store, alerts handler.AlertReader, cfg *config.Config, log *logger.Logger) *Router {
	var recorded *handler.RecordedAlertHandler
	if alerts != nil {
		recorded = handler.NewRecordedAlertHandler(alerts, log)
	}

	return &Router{
		productHandler:   handler.NewProductHandler(store, log),
		saleHandler:      handler.NewSaleHandler(store, log),
		incomingHandler:  handler.NewIncomingHandler(store, log),
		dashboardHandler: handler.NewDashboardHandler(store, log),
		activityHandler:  handler.NewActivityHandler(store, cfg.Export.FilenamePrefix, log),
		recordedHandler:  recorded,
		logger:           log,
		cfg:              cfg,
	}
}

// Setup configures and returns the HTTP router
func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Recovery(rt.logger))
	r.Use(middleware.Logger(rt.logger))
	if rt.cfg.Server.RequestTimeout > 0 {
		r.Use(chimw.Timeout(rt.cfg.Server.RequestTimeout))
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   rt.cfg.Server.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/health", rt.healthCheck)
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", rt.healthCheck)

		r.Route("/products", func(r chi.Router) {
			r.Get("/", rt.productHandler.List)
			r.Post("/", rt.productHandler.Create)
			r.Get("/{id}", rt.productHandler.GetByID)
			r.Put("/{id}", rt.productHandler.Update)
			r.Delete("/{id}", rt.productHandler.Delete)

			r.Post("/{id}/variants", rt.productHandler.AddVariant)
			r.Get("/{id}/variants/{volume}", rt.productHandler.GetVariant)
			r.Patch("/{id}/variants/{volume}", rt.productHandler.UpdateVariant)
			r.Delete("/{id}/variants/{volume}", rt.productHandler.DeleteVariant)
			r.Put("/{id}/variants/{volume}/threshold", rt.productHandler.UpdateThreshold)
		})

		r.Route("/sales", func(r chi.Router) {
			r.Get("/", rt.saleHandler.List)
			r.Post("/", rt.saleHandler.Create)
			r.Get("/today", rt.saleHandler.Today)
			r.Get("/recent", rt.saleHandler.Recent)
		})

		r.Route("/incoming", func(r chi.Router) {
			r.Get("/", rt.incomingHandler.List)
			r.Post("/", rt.incomingHandler.Create)
		})

		r.Get("/dashboard", rt.dashboardHandler.Dashboard)
		r.Get("/alerts", rt.dashboardHandler.Alerts)
		if rt.recordedHandler != nil {
			r.Get("/alerts/recorded", rt.recordedHandler.List)
		}
		r.Get("/activity", rt.activityHandler.Preview)
		r.Get("/export/{range}", rt.activityHandler.Export)
	})

	return r
}

// healthCheck handles health check requests
func (rt *Router) healthCheck(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
	})
}
