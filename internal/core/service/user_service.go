package service

import (
	"context"
	"strings"

	"github.com/martijn/userhub/internal/core/domain"
	"github.com/martijn/userhub/internal/core/repository"
)

type UserService struct {
	userRepo repository.UserRepository
	hasher   *PasswordHasher
}

func NewUserService(userRepo repository.UserRepository, hasher *PasswordHasher) *UserService {
	return &UserService{
		userRepo: userRepo,
		hasher:   hasher,
	}
}

// CreateUserInput carries the fields accepted on creation. Password is the
// plaintext; it is hashed before it reaches the repository.
type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	Phone    *string
}

// UpdateUserInput carries a partial update. A nil field keeps the stored
// value; the password only changes when a non-empty plaintext is supplied.
type UpdateUserInput struct {
	Name     *string
	Email    *string
	Password *string
	Phone    *string
}

func (s *UserService) CreateUser(ctx context.Context, in CreateUserInput) (*domain.User, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, &ValidationError{Field: "name"}
	}
	if strings.TrimSpace(in.Email) == "" {
		return nil, &ValidationError{Field: "email"}
	}
	if in.Password == "" {
		return nil, &ValidationError{Field: "password"}
	}

	digest, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	user := domain.NewUser(in.Name, in.Email, digest, in.Phone)
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *UserService) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	return s.userRepo.FindByID(ctx, id)
}

func (s *UserService) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.userRepo.FindByEmail(ctx, email)
}

func (s *UserService) UpdateUser(ctx context.Context, id int64, in UpdateUserInput) (*domain.User, error) {
	update := domain.UserUpdate{
		Name:  in.Name,
		Email: in.Email,
		Phone: in.Phone,
	}

	if in.Password != nil && *in.Password != "" {
		digest, err := s.hasher.Hash(*in.Password)
		if err != nil {
			return nil, err
		}
		update.PasswordDigest = &digest
	}

	return s.userRepo.Update(ctx, id, update)
}

func (s *UserService) DeleteUser(ctx context.Context, id int64) error {
	return s.userRepo.Delete(ctx, id)
}

func (s *UserService) ListUsers(ctx context.Context, filter repository.UserFilter) ([]*domain.User, error) {
	return s.userRepo.List(ctx, filter)
}

func (s *UserService) CountUsers(ctx context.Context, filter repository.UserFilter) (int, error) {
	return s.userRepo.Count(ctx, filter)
}
