package services

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"postboard/dto"
	"postboard/internal/repository"
	"postboard/model"
)

var testSecret = []byte("test-secret")

func newAuthService() *AuthService {
	return NewAuthService(repository.NewMemoryUserStore(), testSecret)
}

func TestRegisterValidation(t *testing.T) {
	svc := newAuthService()
	ctx := context.Background()

	tests := []struct {
		name   string
		body   dto.RegisterDTO
		fields []string
	}{
		{
			name:   "everything missing",
			body:   dto.RegisterDTO{},
			fields: []string{"name", "email", "password"},
		},
		{
			name:   "bad email",
			body:   dto.RegisterDTO{Name: "Alice", Email: "not-an-email", Password: "secret1"},
			fields: []string{"email"},
		},
		{
			name:   "short password",
			body:   dto.RegisterDTO{Name: "Alice", Email: "alice@example.com", Password: "abc"},
			fields: []string{"password"},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Register(ctx, tc.body)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			require.Len(t, verr.Errors, len(tc.fields))
			for i, f := range tc.fields {
				assert.Equal(t, f, verr.Errors[i].Field)
			}
		})
	}
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newAuthService()
	ctx := context.Background()

	user, err := svc.Register(ctx, dto.RegisterDTO{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "hunter22",
		Avatar:   "alice.png",
	})
	require.NoError(t, err)
	assert.NotEqual(t, "hunter22", user.Password, "password must be stored hashed")

	_, err = svc.Register(ctx, dto.RegisterDTO{
		Name:     "Imposter",
		Email:    "alice@example.com",
		Password: "hunter22",
	})
	assert.ErrorIs(t, err, model.ErrEmailTaken)

	_, err = svc.Login(ctx, dto.LoginDTO{Email: "alice@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, model.ErrNotAuthorized)

	_, err = svc.Login(ctx, dto.LoginDTO{Email: "nobody@example.com", Password: "hunter22"})
	assert.ErrorIs(t, err, model.ErrNotAuthorized)

	token, err := svc.Login(ctx, dto.LoginDTO{Email: "alice@example.com", Password: "hunter22"})
	require.NoError(t, err)

	// the token subject is the user id hex the middleware will resolve
	var claims jwt.RegisteredClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		return testSecret, nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)
	assert.Equal(t, user.ID.Hex(), claims.Subject)

	got, err := svc.Current(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.Name)
}
