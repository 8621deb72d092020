package usecase

import (
	"movie-catalog/internal/data/repository"

	"go.uber.org/zap"
)

// Service groups the services behind the collection server. CatalogSync is
// not part of it: each view session owns its own.
type Service struct {
	Collection CollectionService
}

func NewService(repo *repository.Repository, log *zap.Logger) *Service {
	return &Service{
		Collection: NewCollectionService(repo.Movie, log),
	}
}
