// Package service implements the application's domain logic on top of the
// repository layer.
package service

import (
	"context"

	"devconnect/internal/gravatar"
	"devconnect/internal/models"
	"devconnect/internal/observability"
	"devconnect/internal/repository"
	"devconnect/internal/token"
	"devconnect/internal/validation"

	"golang.org/x/crypto/bcrypt"
)

// AuthService handles registration, login, and current-user lookup.
type AuthService struct {
	userRepo  repository.UserRepository
	jwtSecret string
}

type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func NewAuthService(userRepo repository.UserRepository, jwtSecret string) *AuthService {
	return &AuthService{userRepo: userRepo, jwtSecret: jwtSecret}
}

// Register creates an account and returns a signed token for it. Every field
// violation is reported in one response rather than first-failure-only.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (string, error) {
	var msgs []string
	if err := validation.ValidateName(in.Name); err != nil {
		msgs = append(msgs, err.Error())
	}
	if err := validation.ValidateEmail(in.Email); err != nil {
		msgs = append(msgs, err.Error())
	}
	if err := validation.ValidatePassword(in.Password); err != nil {
		msgs = append(msgs, err.Error())
	}
	if len(msgs) > 0 {
		return "", models.NewValidationErrors(msgs)
	}

	existing, err := s.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return "", models.NewConflictError("User already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", models.NewInternalError(err)
	}

	user := &models.User{
		Name:     in.Name,
		Email:    in.Email,
		Password: string(hash),
		Avatar:   gravatar.URL(in.Email),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return "", err
	}

	signed, err := token.Issue(s.jwtSecret, user.ID)
	if err != nil {
		return "", models.NewInternalError(err)
	}
	observability.TokensIssued.WithLabelValues("register").Inc()
	return signed, nil
}

// Login verifies credentials and returns a signed token. Unknown email and
// wrong password produce the same response so the check leaks nothing.
func (s *AuthService) Login(ctx context.Context, in LoginInput) (string, error) {
	user, err := s.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return "", err
	}
	if user == nil {
		observability.AuthFailures.WithLabelValues("bad_credentials").Inc()
		return "", models.NewValidationError("Invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(in.Password)); err != nil {
		observability.AuthFailures.WithLabelValues("bad_credentials").Inc()
		return "", models.NewValidationError("Invalid email or password")
	}

	signed, err := token.Issue(s.jwtSecret, user.ID)
	if err != nil {
		return "", models.NewInternalError(err)
	}
	observability.TokensIssued.WithLabelValues("login").Inc()
	return signed, nil
}

// CurrentUser returns the authenticated user's record.
func (s *AuthService) CurrentUser(ctx context.Context, userID uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}
