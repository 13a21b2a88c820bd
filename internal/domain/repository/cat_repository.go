package repository

import (
	"context"

	"github.com/catwiki/catwiki-api/internal/domain/entity"
)

// CatRepository is the port to the upstream breed catalogue.
type CatRepository interface {
	List(ctx context.Context, page, limit int) ([]entity.Breed, error)
	Search(ctx context.Context, query string) ([]entity.Breed, error)
	// GetByID returns ErrNotFound for unknown breed ids.
	GetByID(ctx context.Context, breedID string) (*entity.Breed, error)
}

// ImageRepository is the port to the upstream breed photo catalogue.
type ImageRepository interface {
	ByBreedID(ctx context.Context, breedID string, limit int) ([]entity.CatImage, error)
	// ByReferenceID returns ErrNotFound for unknown reference ids.
	ByReferenceID(ctx context.Context, referenceImageID string) (*entity.CatImage, error)
}
