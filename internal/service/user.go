package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jil-inventory/inventory-api/internal/domain"
	"github.com/jil-inventory/inventory-api/internal/repository"
)

var (
	ErrUserNotFound = repository.ErrUserNotFound
	ErrUserInactive = errors.New("user is deactivated")
)

type UserRepository interface {
	FindByID(ctx context.Context, id uint) (domain.User, error)
}

// UserService resolves the user behind a bearer token.
type UserService struct {
	repo UserRepository
}

func NewUserService(repo UserRepository) *UserService {
	return &UserService{
		repo: repo,
	}
}

// GetUser returns the user with the given id. A token issued before the
// account was deactivated no longer identifies anyone.
func (s *UserService) GetUser(ctx context.Context, id uint) (domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if !user.Active {
		return domain.User{}, ErrUserInactive
	}

	return user, nil
}
