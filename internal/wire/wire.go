// internal/wire/wire.go
package wire

import (
	"net/http"

	"movie-catalog/internal/adaptor"
	"movie-catalog/internal/data/repository"
	"movie-catalog/internal/usecase"
	"movie-catalog/pkg/middleware"
	"movie-catalog/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// App holds a ready router
type App struct {
	Router *chi.Mux
}

// WiringCollection builds the self-hosted collection server
func WiringCollection(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, logger)
	handler := adaptor.NewHandler(service, logger)

	r := newRouter(logger)
	wireCollection(r, handler.Collection, config.Collection, logger)

	return &App{Router: r}
}

// WiringCatalog builds the catalog API over one view session
func WiringCatalog(catalog adaptor.Catalog, logger *zap.Logger) *App {
	handler := adaptor.NewCatalogHandler(catalog, logger)

	r := newRouter(logger)
	wireCatalog(r, handler)

	return &App{Router: r}
}

// newRouter applies the global middleware and the operational endpoints
func newRouter(logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	r.Handle("/metrics", promhttp.Handler())

	return r
}
