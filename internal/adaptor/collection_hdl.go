package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/usecase"
	"movie-catalog/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// CollectionHandler serves the remote collection contract: raw JSON bodies,
// records carry their id as _id, errors are plain status codes with a short message.
type CollectionHandler struct {
	service usecase.CollectionService
	log     *zap.Logger
}

func NewCollectionHandler(service usecase.CollectionService, log *zap.Logger) *CollectionHandler {
	return &CollectionHandler{
		service: service,
		log:     log.With(zap.String("handler", "collection")),
	}
}

type errorBody struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// List handles GET /{collection}
func (h *CollectionHandler) List(w http.ResponseWriter, r *http.Request) {
	movies, err := h.service.ListMovies(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "list movies")
		return
	}
	utils.WriteJSON(w, http.StatusOK, movies)
}

// Get handles GET /{collection}/{id}
func (h *CollectionHandler) Get(w http.ResponseWriter, r *http.Request) {
	movie, err := h.service.GetMovie(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.handleServiceError(w, err, "get movie")
		return
	}
	utils.WriteJSON(w, http.StatusOK, movie)
}

// Create handles POST /{collection}
func (h *CollectionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.MovieRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, errorBody{Error: "invalid request body"})
		return
	}

	movie, err := h.service.CreateMovie(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create movie")
		return
	}
	utils.WriteJSON(w, http.StatusCreated, movie)
}

// Replace handles PUT /{collection}/{id}. An _id in the body is ignored.
func (h *CollectionHandler) Replace(w http.ResponseWriter, r *http.Request) {
	var req request.MovieRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, errorBody{Error: "invalid request body"})
		return
	}

	movie, err := h.service.ReplaceMovie(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		h.handleServiceError(w, err, "replace movie")
		return
	}
	utils.WriteJSON(w, http.StatusOK, movie)
}

// Delete handles DELETE /{collection}/{id}
func (h *CollectionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteMovie(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.handleServiceError(w, err, "delete movie")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CollectionHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	if fields, ok := utils.ValidationFields(err); ok {
		h.log.Warn(operation+" validation failed", zap.Error(err))
		utils.WriteJSON(w, http.StatusBadRequest, errorBody{Error: "validation failed", Fields: fields})
		return
	}

	if errors.Is(err, usecase.ErrMovieNotFound) {
		utils.WriteJSON(w, http.StatusNotFound, errorBody{Error: err.Error()})
		return
	}

	h.log.Error("Failed to "+operation, zap.Error(err), zap.String("operation", operation))
	utils.WriteJSON(w, http.StatusInternalServerError, errorBody{Error: "internal server error"})
}
