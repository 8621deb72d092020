package adaptor

import (
	"movie-catalog/internal/usecase"

	"go.uber.org/zap"
)

// Handler groups the handlers of the collection server.
type Handler struct {
	Collection *CollectionHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Collection: NewCollectionHandler(service.Collection, log),
	}
}
