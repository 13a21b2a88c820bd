package catapi

import (
	"context"
	"net/url"
	"strconv"

	"github.com/catwiki/catwiki-api/internal/domain/entity"
	"github.com/catwiki/catwiki-api/internal/domain/repository"
)

// ImageRepository adapts TheCatAPI's /images endpoints to the
// ImageRepository port.
type ImageRepository struct {
	client *Client
}

func NewImageRepository(client *Client) *ImageRepository {
	return &ImageRepository{client: client}
}

func (r *ImageRepository) ByBreedID(ctx context.Context, breedID string, limit int) ([]entity.CatImage, error) {
	q := url.Values{}
	q.Set("breed_ids", breedID)
	q.Set("limit", strconv.Itoa(limit))

	var images []entity.CatImage
	if err := r.client.getJSON(ctx, "/images/search", q, &images); err != nil {
		return nil, err
	}
	return images, nil
}

func (r *ImageRepository) ByReferenceID(ctx context.Context, referenceImageID string) (*entity.CatImage, error) {
	var image entity.CatImage
	if err := r.client.getJSON(ctx, "/images/"+url.PathEscape(referenceImageID), nil, &image); err != nil {
		return nil, err
	}
	return &image, nil
}

var _ repository.ImageRepository = (*ImageRepository)(nil)
