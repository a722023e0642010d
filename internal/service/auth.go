package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/dlclark/regexp2"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/jil-inventory/inventory-api/internal/domain"
	"github.com/jil-inventory/inventory-api/internal/repository"
)

const passwordRegexPattern = `^(?=.*[A-Za-z])(?=.*\d).{8,}$`

var (
	ErrUserEmailExists = repository.ErrUserEmailExists
	ErrWrongPassword   = errors.New("wrong password")
	ErrWeakPassword    = errors.New("the password must be at least 8 characters and contain 1 letter and 1 number")
)

var passwordExp = regexp2.MustCompile(passwordRegexPattern, regexp2.None)

type AuthUserRepository interface {
	Create(ctx context.Context, user domain.User) (domain.User, error)
	FindByEmail(ctx context.Context, email string) (domain.User, error)
	Count(ctx context.Context) (int64, error)
}

type AuthService struct {
	repo AuthUserRepository
}

func NewAuthService(repo AuthUserRepository) *AuthService {
	return &AuthService{
		repo: repo,
	}
}

func (s *AuthService) Login(ctx context.Context, email, password string) (domain.User, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domain.User{}, ErrUserNotFound
		}

		return domain.User{}, fmt.Errorf("s.repo.FindByEmail -> %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return domain.User{}, ErrWrongPassword
	}

	return user, nil
}

// EnsureAdmin creates an admin account with the given credentials when no
// user exists yet. It reports whether a user was created.
func (s *AuthService) EnsureAdmin(ctx context.Context, email, password string) (bool, error) {
	n, err := s.repo.Count(ctx)
	if err != nil {
		return false, fmt.Errorf("s.repo.Count -> %w", err)
	}
	if n > 0 {
		return false, nil
	}

	if err = checkPassword(password); err != nil {
		return false, err
	}

	hashedPassword, err := hashPassword(password)
	if err != nil {
		return false, err
	}

	created, err := s.repo.Create(ctx, domain.User{
		Email:    email,
		Password: hashedPassword,
		Role:     domain.RoleAdmin,
		Active:   true,
	})
	if err != nil {
		return false, fmt.Errorf("s.repo.Create -> %w", err)
	}

	zap.L().Info("admin user created", zap.Uint("userID", created.ID), zap.String("email", created.Email))

	return true, nil
}

func checkPassword(password string) error {
	ok, err := passwordExp.MatchString(password)
	if err != nil {
		return fmt.Errorf("passwordExp.MatchString -> %w", err)
	}
	if !ok {
		return ErrWeakPassword
	}

	return nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
