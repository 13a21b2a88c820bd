package repository

import (
	"context"
	"errors"

	"github.com/catwiki/catwiki-api/internal/domain/entity"
)

// ErrNotFound is returned by lookups with no matching record. Use cases
// translate it into their own contract (domain error, nil result, or
// generic credentials failure).
var ErrNotFound = errors.New("not found")

// UserRepository is the persistence port for the auth domain.
type UserRepository interface {
	// Save persists a new user and returns it with the store-assigned id.
	Save(ctx context.Context, u *entity.User) (*entity.User, error)
	FindByID(ctx context.Context, id entity.UserID) (*entity.User, error)
	FindByEmail(ctx context.Context, email entity.Email) (*entity.User, error)
	ExistsByEmail(ctx context.Context, email entity.Email) (bool, error)
}
