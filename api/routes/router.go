package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Greenkack/pvoffer-backend/api/controllers"
	"github.com/Greenkack/pvoffer-backend/api/middleware"
	"github.com/Greenkack/pvoffer-backend/internal/calc"
	"github.com/Greenkack/pvoffer-backend/internal/catalog"
	"github.com/Greenkack/pvoffer-backend/internal/export"
	"github.com/Greenkack/pvoffer-backend/internal/importer"
	"github.com/Greenkack/pvoffer-backend/pkg/config"
	"github.com/Greenkack/pvoffer-backend/pkg/db"
	"github.com/Greenkack/pvoffer-backend/pkg/logger"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	repo *catalog.Repository,
	importService *importer.Service,
	bridge *calc.Bridge,
	exportService *export.Service,
	registry *prometheus.Registry,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP))
	})

	if registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/catalog", func(r chi.Router) {
			r.Get("/stats", controllers.CatalogStats(repo, logg))

			r.Post("/modules", controllers.ModuleCreate(repo, logg))
			r.Patch("/modules/{id}", controllers.ModuleUpdate(repo, logg))
			r.Post("/inverters", controllers.InverterCreate(repo, logg))
			r.Patch("/inverters/{id}", controllers.InverterUpdate(repo, logg))
			r.Post("/storages", controllers.StorageCreate(repo, logg))
			r.Patch("/storages/{id}", controllers.StorageUpdate(repo, logg))
			r.Post("/accessories", controllers.AccessoryCreate(repo, logg))
			r.Patch("/accessories/{id}", controllers.AccessoryUpdate(repo, logg))
			r.Post("/companies", controllers.CompanyCreate(repo, logg))
			r.Patch("/companies/{id}", controllers.CompanyUpdate(repo, logg))

			r.Get("/{category}", controllers.CatalogList(repo, logg))
			r.Post("/{category}/clear", controllers.CatalogClear(repo, logg))
			r.Get("/{category}/{id}", controllers.CatalogGet(repo, logg))
			r.Delete("/{category}/{id}", controllers.CatalogDelete(repo, logg))
		})

		r.Route("/projects", func(r chi.Router) {
			r.Get("/", controllers.ProjectList(repo, logg))
			r.Post("/", controllers.ProjectCreate(repo, logg))
			r.Get("/{projectId}", controllers.ProjectDetail(repo, logg))
			r.Delete("/{projectId}", controllers.ProjectDelete(repo, logg))
		})

		r.Post("/imports/{category}", controllers.ImportSpreadsheet(importService, logg))

		r.Route("/calculations", func(r chi.Router) {
			r.Post("/", controllers.CalculationRun(bridge, logg))
			r.Post("/kill", controllers.CalculationKill(bridge, logg))
			r.Get("/status", controllers.CalculationStatus(bridge, logg))
		})

		r.Route("/exports", func(r chi.Router) {
			r.Get("/catalog.xlsx", controllers.ExportCatalogXLSX(repo, exportService, logg))
			r.Post("/offer.pdf", controllers.ExportOfferPDF(repo, exportService, logg))
		})
	})

	return r
}
