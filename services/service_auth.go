package services

import (
	"context"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/v2/bson"
	"golang.org/x/crypto/bcrypt"

	"postboard/dto"
	"postboard/internal/repository"
	"postboard/model"
)

const tokenTTL = 72 * time.Hour

// AuthService handles register/login and token issue. Verification on
// incoming requests lives in the middleware package.
type AuthService struct {
	Users  repository.UserStore
	Secret []byte
}

func NewAuthService(users repository.UserStore, secret []byte) *AuthService {
	return &AuthService{Users: users, Secret: secret}
}

func validateRegister(body dto.RegisterDTO) *ValidationError {
	var fields []dto.FieldError
	if body.Name == "" {
		fields = append(fields, dto.FieldError{Field: "name", Message: "name is required"})
	}
	if body.Email == "" || !strings.Contains(body.Email, "@") {
		fields = append(fields, dto.FieldError{Field: "email", Message: "a valid email is required"})
	}
	if len(body.Password) < 6 {
		fields = append(fields, dto.FieldError{Field: "password", Message: "password must be at least 6 characters"})
	}
	if len(fields) > 0 {
		return &ValidationError{Errors: fields}
	}
	return nil
}

func (s *AuthService) Register(ctx context.Context, body dto.RegisterDTO) (*model.User, error) {
	if verr := validateRegister(body); verr != nil {
		return nil, verr
	}
	if _, err := s.Users.FindByEmail(ctx, body.Email); err == nil {
		return nil, model.ErrEmailTaken
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &model.User{
		ID:        bson.NewObjectID(),
		Name:      body.Name,
		Email:     body.Email,
		Password:  string(hash),
		Avatar:    body.Avatar,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Users.Insert(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies the password and issues an HS256 token whose subject is
// the user id hex.
func (s *AuthService) Login(ctx context.Context, body dto.LoginDTO) (string, error) {
	if body.Email == "" || body.Password == "" {
		return "", &ValidationError{Errors: []dto.FieldError{
			{Field: "email", Message: "email and password are required"},
		}}
	}
	user, err := s.Users.FindByEmail(ctx, body.Email)
	if err != nil {
		return "", model.ErrNotAuthorized
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(body.Password)) != nil {
		return "", model.ErrNotAuthorized
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   user.ID.Hex(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.Secret)
}

func (s *AuthService) Current(ctx context.Context, id bson.ObjectID) (*model.User, error) {
	return s.Users.FindByID(ctx, id)
}
