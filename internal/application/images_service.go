package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/catwiki/catwiki-api/internal/domain/entity"
	repo "github.com/catwiki/catwiki-api/internal/domain/repository"
)

// imagesPerBreed caps how many photos a breed lookup returns.
const imagesPerBreed = 20

var (
	ErrBreedIDRequired     = errors.New("breed id is required")
	ErrReferenceIDRequired = errors.New("reference image id is required")
)

// ImagesService is a pass-through to the upstream image catalogue.
type ImagesService struct {
	Repo   repo.ImageRepository
	Logger *logrus.Logger
}

func NewImagesService(r repo.ImageRepository, logger *logrus.Logger) *ImagesService {
	return &ImagesService{Repo: r, Logger: logger}
}

func (s *ImagesService) GetImagesByBreedID(ctx context.Context, breedID string) ([]entity.CatImage, error) {
	if breedID == "" {
		return nil, ErrBreedIDRequired
	}
	return s.Repo.ByBreedID(ctx, breedID, imagesPerBreed)
}

// GetImageByReferenceID propagates repository.ErrNotFound for unknown
// reference ids.
func (s *ImagesService) GetImageByReferenceID(ctx context.Context, referenceImageID string) (*entity.CatImage, error) {
	if referenceImageID == "" {
		return nil, ErrReferenceIDRequired
	}
	return s.Repo.ByReferenceID(ctx, referenceImageID)
}
