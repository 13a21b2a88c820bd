package application

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/catwiki/catwiki-api/internal/domain/entity"
	repo "github.com/catwiki/catwiki-api/internal/domain/repository"
	"github.com/catwiki/catwiki-api/pkg/helpers"
)

// ErrSearchQueryRequired guards the breed search entry point.
var ErrSearchQueryRequired = fmt.Errorf("search query is required")

// CatsService serves breed lookups from the upstream catalogue, with a
// redis TTL cache in front of the list and detail calls. Redis is
// optional; nil disables caching. Search is never cached (unbounded
// key space).
type CatsService struct {
	Repo     repo.CatRepository
	Redis    *redis.Client
	CacheTTL time.Duration
	Logger   *logrus.Logger
}

func NewCatsService(r repo.CatRepository, rdb *redis.Client, cacheTTL time.Duration, logger *logrus.Logger) *CatsService {
	return &CatsService{Repo: r, Redis: rdb, CacheTTL: cacheTTL, Logger: logger}
}

func breedsKey(page, limit int) string {
	return fmt.Sprintf("cats:breeds:p%d:l%d", page, limit)
}

func breedKey(id string) string {
	return "cats:breed:" + id
}

func (s *CatsService) ListBreeds(ctx context.Context, page, limit int) ([]entity.Breed, error) {
	key := breedsKey(page, limit)
	if s.Redis != nil {
		var cached []entity.Breed
		if hit, err := helpers.RedisGetJSON(ctx, s.Redis, key, &cached); err == nil && hit {
			return cached, nil
		}
	}

	breeds, err := s.Repo.List(ctx, page, limit)
	if err != nil {
		return nil, err
	}
	s.cache(ctx, key, breeds)
	return breeds, nil
}

func (s *CatsService) SearchBreeds(ctx context.Context, query string) ([]entity.Breed, error) {
	if query == "" {
		return nil, ErrSearchQueryRequired
	}
	return s.Repo.Search(ctx, query)
}

// GetBreedByID propagates repository.ErrNotFound for unknown ids.
func (s *CatsService) GetBreedByID(ctx context.Context, breedID string) (*entity.Breed, error) {
	key := breedKey(breedID)
	if s.Redis != nil {
		var cached entity.Breed
		if hit, err := helpers.RedisGetJSON(ctx, s.Redis, key, &cached); err == nil && hit {
			return &cached, nil
		}
	}

	breed, err := s.Repo.GetByID(ctx, breedID)
	if err != nil {
		return nil, err
	}
	s.cache(ctx, key, breed)
	return breed, nil
}

// cache is best-effort; a redis outage never fails a lookup.
func (s *CatsService) cache(ctx context.Context, key string, value any) {
	if s.Redis == nil {
		return
	}
	if err := helpers.RedisSetJSON(ctx, s.Redis, key, value, s.CacheTTL); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("key", key).Warn("breed cache write failed")
	}
}
