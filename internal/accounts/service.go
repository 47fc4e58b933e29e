package accounts

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"resume-builder/internal/shared/auth"
	"resume-builder/internal/shared/metrics"
)

const minPasswordLen = 8

var (
	ErrInvalidInput = errors.New("invalid input")

	// ErrBadCredentials is deliberately generic: login failures never reveal
	// whether the email exists.
	ErrBadCredentials = errors.New("invalid email or password")
)

// RegisterInput carries the registration form fields.
type RegisterInput struct {
	Email       string
	Password    string
	FirstName   string
	LastName    string
	DateOfBirth string
}

// Service implements account registration, login and lookup.
type Service struct {
	Repo   Repo
	Tokens *auth.Manager
}

// NewService constructs a Service.
func NewService(repo Repo, tokens *auth.Manager) *Service {
	return &Service{Repo: repo, Tokens: tokens}
}

// Register creates a local account and issues an access token.
func (s *Service) Register(ctx context.Context, in RegisterInput) (User, string, error) {
	in.Email = NormalizeEmail(in.Email)
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.DateOfBirth = strings.TrimSpace(in.DateOfBirth)

	if in.Email == "" || in.Password == "" || in.FirstName == "" || in.LastName == "" || in.DateOfBirth == "" {
		return User{}, "", fmt.Errorf("%w: all fields are required", ErrInvalidInput)
	}
	if !strings.Contains(in.Email, "@") {
		return User{}, "", fmt.Errorf("%w: email is invalid", ErrInvalidInput)
	}
	if len(in.Password) < minPasswordLen {
		return User{}, "", fmt.Errorf("%w: password must be at least 8 characters", ErrInvalidInput)
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return User{}, "", err
	}

	user := User{
		ID:           uuid.NewString(),
		Email:        in.Email,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		PasswordHash: hash,
		DateOfBirth:  in.DateOfBirth,
		AuthProvider: AuthProviderLocal,
	}
	if err := s.Repo.Create(ctx, user); err != nil {
		return User{}, "", err
	}

	token, err := s.issueToken(user)
	if err != nil {
		return User{}, "", err
	}
	metrics.IncRegister()
	return user, token, nil
}

// Login verifies credentials and issues an access token.
func (s *Service) Login(ctx context.Context, email, password string) (User, string, error) {
	email = NormalizeEmail(email)
	if email == "" || password == "" {
		return User{}, "", ErrBadCredentials
	}

	user, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return User{}, "", ErrBadCredentials
		}
		return User{}, "", err
	}
	if user.PasswordHash == "" || !auth.CheckPassword(user.PasswordHash, password) {
		return User{}, "", ErrBadCredentials
	}

	token, err := s.issueToken(user)
	if err != nil {
		return User{}, "", err
	}
	metrics.IncLogin()
	return user, token, nil
}

// Get fetches an account by ID.
func (s *Service) Get(ctx context.Context, userID string) (User, error) {
	if strings.TrimSpace(userID) == "" {
		return User{}, ErrNotFound
	}
	return s.Repo.GetByID(ctx, userID)
}

// UpsertFromOAuth creates or refreshes an account from an identity provider
// profile and issues an access token.
func (s *Service) UpsertFromOAuth(ctx context.Context, email, firstName, lastName string) (User, string, error) {
	email = NormalizeEmail(email)
	if email == "" {
		return User{}, "", fmt.Errorf("%w: email is required", ErrInvalidInput)
	}

	user, err := s.Repo.Upsert(ctx, User{
		ID:           uuid.NewString(),
		Email:        email,
		FirstName:    strings.TrimSpace(firstName),
		LastName:     strings.TrimSpace(lastName),
		AuthProvider: AuthProviderGoogle,
	})
	if err != nil {
		return User{}, "", err
	}

	token, err := s.issueToken(user)
	if err != nil {
		return User{}, "", err
	}
	metrics.IncLogin()
	return user, token, nil
}

func (s *Service) issueToken(user User) (string, error) {
	return s.Tokens.Sign(auth.Claims{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.FullName(),
	})
}

// NormalizeEmail lowercases and trims an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
