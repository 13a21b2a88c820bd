package catapi

import (
	"context"
	"net/url"
	"strconv"

	"github.com/catwiki/catwiki-api/internal/domain/entity"
	"github.com/catwiki/catwiki-api/internal/domain/repository"
)

// BreedRepository adapts TheCatAPI's /breeds endpoints to the
// CatRepository port.
type BreedRepository struct {
	client *Client
}

func NewBreedRepository(client *Client) *BreedRepository {
	return &BreedRepository{client: client}
}

func (r *BreedRepository) List(ctx context.Context, page, limit int) ([]entity.Breed, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))

	var breeds []entity.Breed
	if err := r.client.getJSON(ctx, "/breeds", q, &breeds); err != nil {
		return nil, err
	}
	return breeds, nil
}

func (r *BreedRepository) Search(ctx context.Context, query string) ([]entity.Breed, error) {
	q := url.Values{}
	q.Set("q", query)

	var breeds []entity.Breed
	if err := r.client.getJSON(ctx, "/breeds/search", q, &breeds); err != nil {
		return nil, err
	}
	return breeds, nil
}

func (r *BreedRepository) GetByID(ctx context.Context, breedID string) (*entity.Breed, error) {
	var breed entity.Breed
	if err := r.client.getJSON(ctx, "/breeds/"+url.PathEscape(breedID), nil, &breed); err != nil {
		return nil, err
	}
	// The upstream API answers unknown ids with 200 and an empty body
	// rather than a 404.
	if breed.ID == "" {
		return nil, repository.ErrNotFound
	}
	return &breed, nil
}

var _ repository.CatRepository = (*BreedRepository)(nil)
