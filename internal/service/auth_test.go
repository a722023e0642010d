package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jil-inventory/inventory-api/internal/domain"
	"github.com/jil-inventory/inventory-api/internal/repository"
)

type fakeUserRepo struct {
	users map[string]domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]domain.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, user domain.User) (domain.User, error) {
	if _, ok := r.users[user.Email]; ok {
		return domain.User{}, repository.ErrUserEmailExists
	}
	user.ID = uint(len(r.users) + 1)
	r.users[user.Email] = user

	return user, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (domain.User, error) {
	u, ok := r.users[email]
	if !ok {
		return domain.User{}, repository.ErrUserNotFound
	}

	return u, nil
}

func (r *fakeUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

func TestAuthService_EnsureAdmin(t *testing.T) {
	ctx := context.Background()

	t.Run("weak password", func(t *testing.T) {
		svc := NewAuthService(newFakeUserRepo())
		for _, pw := range []string{"short1", "onlyletters", "12345678"} {
			_, err := svc.EnsureAdmin(ctx, "admin@example.com", pw)
			assert.ErrorIs(t, err, ErrWeakPassword, pw)
		}
	})

	t.Run("creates once", func(t *testing.T) {
		repo := newFakeUserRepo()
		svc := NewAuthService(repo)

		created, err := svc.EnsureAdmin(ctx, "admin@example.com", "s3cretpass")
		require.NoError(t, err)
		assert.True(t, created)

		u := repo.users["admin@example.com"]
		assert.Equal(t, domain.RoleAdmin, u.Role)
		assert.True(t, u.Active)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("s3cretpass")))

		created, err = svc.EnsureAdmin(ctx, "other@example.com", "s3cretpass")
		require.NoError(t, err)
		assert.False(t, created)
		assert.Len(t, repo.users, 1)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	repo := newFakeUserRepo()
	svc := NewAuthService(repo)

	_, err := svc.EnsureAdmin(ctx, "admin@example.com", "s3cretpass")
	require.NoError(t, err)

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{name: "ok", email: "admin@example.com", password: "s3cretpass"},
		{name: "wrong password", email: "admin@example.com", password: "nope1234", wantErr: ErrWrongPassword},
		{name: "unknown user", email: "ghost@example.com", password: "s3cretpass", wantErr: ErrUserNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := svc.Login(ctx, tt.email, tt.password)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.email, user.Email)
		})
	}
}
