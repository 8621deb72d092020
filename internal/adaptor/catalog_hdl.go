package adaptor

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"movie-catalog/internal/data/entity"
	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/dto/response"
	"movie-catalog/internal/remote"
	"movie-catalog/internal/usecase"
	"movie-catalog/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Catalog is the view-session surface the catalog API drives.
// *usecase.CatalogSync implements it.
type Catalog interface {
	List(ctx context.Context) error
	Get(ctx context.Context, id string) (*entity.Movie, error)
	Add(ctx context.Context, draft request.MovieRequest) (*entity.Movie, error)
	Update(ctx context.Context, id string, movie request.MovieRequest) (*entity.Movie, error)
	Remove(ctx context.Context, id string) error
	SetFilter(threshold int) error
	Filter() int
	Visible() []entity.Movie
}

type CatalogHandler struct {
	catalog Catalog
	log     *zap.Logger
}

func NewCatalogHandler(catalog Catalog, log *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalog: catalog,
		log:     log.With(zap.String("handler", "catalog")),
	}
}

// GetMovies handles GET /api/movies?age_limit=N&page=P&per_page=S.
// Passing age_limit also selects it. The list is paginated only when page or per_page is given.
func (h *CatalogHandler) GetMovies(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	if query.Has("age_limit") {
		threshold, err := utils.ParseThreshold(query.Get("age_limit"))
		if err != nil {
			utils.ResponseBadRequest(w, err.Error(), nil)
			return
		}
		if err := h.catalog.SetFilter(threshold); err != nil {
			utils.ResponseBadRequest(w, err.Error(), nil)
			return
		}
	}

	var page *request.PaginatedRequest
	if query.Has("page") || query.Has("per_page") {
		page = &request.PaginatedRequest{
			Page:    utils.ParseInt(query.Get("page"), 1),
			PerPage: utils.ParseInt(query.Get("per_page"), 10),
		}
		if err := utils.Validate(page); err != nil {
			h.handleServiceError(w, err, "list movies")
			return
		}
	}

	utils.ResponseSuccess(w, "success", h.listResponse(page))
}

// Refresh handles POST /api/movies/refresh
func (h *CatalogHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	if err := h.catalog.List(r.Context()); err != nil {
		h.handleServiceError(w, err, "refresh movies")
		return
	}

	utils.ResponseSuccess(w, "Movies refreshed", h.listResponse(nil))
}

func (h *CatalogHandler) listResponse(page *request.PaginatedRequest) response.MovieListResponse {
	visible := h.catalog.Visible()
	resp := response.MovieListResponse{
		AgeLimit: h.catalog.Filter(),
		Total:    len(visible),
	}

	if page != nil {
		start, end := page.Bounds(len(visible))
		visible = visible[start:end]
		resp.Pagination = response.NewPaginationMeta(page.Page, page.Limit(), resp.Total)
	}

	resp.Movies = response.MoviesToResponse(visible)
	return resp
}

// GetMovieByID handles GET /api/movies/{id}
func (h *CatalogHandler) GetMovieByID(w http.ResponseWriter, r *http.Request) {
	movie, err := h.catalog.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.handleServiceError(w, err, "get movie")
		return
	}

	utils.ResponseSuccess(w, "Movie retrieved successfully", response.MovieToResponse(*movie))
}

// CreateMovie handles POST /api/movies
func (h *CatalogHandler) CreateMovie(w http.ResponseWriter, r *http.Request) {
	var req request.MovieRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	movie, err := h.catalog.Add(r.Context(), req)
	if err != nil {
		h.handleServiceError(w, err, "create movie")
		return
	}

	utils.ResponseCreated(w, "Movie created successfully", response.MovieToResponse(*movie))
}

// UpdateMovie handles PUT /api/movies/{id} with the full replacement record
func (h *CatalogHandler) UpdateMovie(w http.ResponseWriter, r *http.Request) {
	var req request.MovieRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	movie, err := h.catalog.Update(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil && movie == nil {
		h.handleServiceError(w, err, "update movie")
		return
	}
	if err != nil {
		// The remote accepted the write; only the refetch failed.
		h.log.Warn("Movie updated but refresh failed", zap.Error(err))
		utils.ResponseSuccess(w, "Movie updated; refresh failed, showing local copy", response.MovieToResponse(*movie))
		return
	}

	utils.ResponseSuccess(w, "Movie updated successfully", response.MovieToResponse(*movie))
}

// DeleteMovie handles DELETE /api/movies/{id}
func (h *CatalogHandler) DeleteMovie(w http.ResponseWriter, r *http.Request) {
	if err := h.catalog.Remove(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.handleServiceError(w, err, "delete movie")
		return
	}

	utils.ResponseSuccess(w, "Movie deleted successfully", nil)
}

// handleServiceError maps catalog errors to responses. Remote failures were
// already logged by the catalog, so they are only logged here at debug level.
func (h *CatalogHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	if fields, ok := utils.ValidationFields(err); ok {
		utils.ResponseBadRequest(w, "Validation failed", fields)
		return
	}

	switch {
	case errors.Is(err, usecase.ErrMissingMovieID):
		utils.ResponseBadRequest(w, err.Error(), nil)

	case remote.IsNotFound(err):
		h.log.Debug(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, "Movie not found")

	case errors.Is(err, remote.ErrRemoteOperationFailed):
		h.log.Debug(operation+" failed - remote", zap.Error(err))
		utils.ResponseBadGateway(w, "Remote collection request failed")

	case errors.Is(err, usecase.ErrSessionClosed):
		utils.ResponseServiceUnavailable(w, err.Error())

	default:
		h.log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
