package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"thoughts-api/internal/domain"
	"thoughts-api/internal/repository"
)

// accessTokenBytes is the entropy of a generated access token; it is
// hex-encoded before storage, so the credential itself is twice as long.
const accessTokenBytes = 128

const minPasswordLength = 10

var (
	// ErrInvalidCredentials indicates that provided login credentials are incorrect.
	// The caller must not learn whether the username or the password was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrPasswordTooShort is returned when a registration password fails the length check.
	ErrPasswordTooShort = fmt.Errorf("password must be at least %d characters", minPasswordLength)
	// ErrUserAlreadyExists is returned when attempting to register with an existing username.
	ErrUserAlreadyExists = errors.New("user already exists")
	// ErrUnknownToken indicates the presented access token matches no user.
	ErrUnknownToken = errors.New("unknown access token")
	// ErrUsernameRequired is returned when a registration username is empty.
	ErrUsernameRequired = errors.New("username is required")
)

// UserService describes account lifecycle operations.
type UserService interface {
	Register(ctx context.Context, username, password string) (*domain.User, error)
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)
	ResolveToken(ctx context.Context, token string) (*domain.User, error)
}

type userService struct {
	users repository.UserRepository
}

func NewUserService(users repository.UserRepository) UserService {
	return &userService{users: users}
}

// Register validates the password length, hashes the password and issues the
// user's permanent access token. A duplicate username is rejected by the
// store's uniqueness constraint, never by an application-level check.
func (s *userService) Register(ctx context.Context, username, password string) (*domain.User, error) {
	username = strings.TrimSpace(username)

	if username == "" {
		return nil, ErrUsernameRequired
	}
	if len(password) < minPasswordLength {
		return nil, ErrPasswordTooShort
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	token, err := generateAccessToken()
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: string(hash),
		AccessToken:  token,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, ErrUserAlreadyExists
		}
		return nil, err
	}

	return user, nil
}

// Authenticate verifies a username/password pair and returns the stored user,
// including the access token issued at registration. The token is never
// rotated here.
func (s *userService) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// ResolveToken maps a presented access token to its user. Tokens never
// expire; a token stays valid until the user record is removed out-of-band.
func (s *userService) ResolveToken(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, ErrUnknownToken
	}

	user, err := s.users.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUnknownToken
		}
		return nil, err
	}
	return user, nil
}

func generateAccessToken() (string, error) {
	buf := make([]byte, accessTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
