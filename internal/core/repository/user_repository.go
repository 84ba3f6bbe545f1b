package repository

import (
	"context"
	"errors"

	"github.com/martijn/userhub/internal/core/domain"
)

var (
	// ErrNotFound is returned when no user matches the given id or email.
	ErrNotFound = errors.New("user not found")
	// ErrEmailTaken is returned when a write would violate the unique
	// email constraint.
	ErrEmailTaken = errors.New("email already registered")
)

// UserFilter contains filtering/pagination options for listing users.
type UserFilter struct {
	// Search substring-matches name OR email
	Search string
	// Pagination; PerPage <= 0 disables it
	Page    int
	PerPage int
}

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context, filter UserFilter) ([]*domain.User, error)
	Count(ctx context.Context, filter UserFilter) (int, error)
	Update(ctx context.Context, id int64, update domain.UserUpdate) (*domain.User, error)
	Delete(ctx context.Context, id int64) error
}
