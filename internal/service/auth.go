// Package service contains the business logic behind the HTTP handlers:
// credential management and the append-only calculation ledger with its
// tree view.
package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/ubudab109/number-discussion/internal/domain"
	"github.com/ubudab109/number-discussion/internal/repository"
	"github.com/ubudab109/number-discussion/internal/token"
)

// AuthService handles registration and login. Passwords are stored as
// bcrypt hashes; successful registration logs the user straight in by
// issuing a session token.
type AuthService struct {
	users  repository.UserRepository
	tokens *token.Manager
	cost   int
}

// NewAuthService constructs an AuthService. cost is the bcrypt cost factor.
func NewAuthService(users repository.UserRepository, tokens *token.Manager, cost int) *AuthService {
	return &AuthService{users: users, tokens: tokens, cost: cost}
}

// Register creates a user and returns a session token plus the new user's
// id. Fails with domain.ErrDuplicateUsername if the username is taken.
func (s *AuthService) Register(ctx context.Context, username, password string) (string, uint, error) {
	if _, err := s.users.FindByUsername(ctx, username); err == nil {
		return "", 0, domain.ErrDuplicateUsername
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return "", 0, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return "", 0, err
	}

	user := &domain.User{Username: username, Password: string(hash)}
	if err := s.users.Create(ctx, user); err != nil {
		return "", 0, err
	}

	tok, err := s.tokens.Issue(user.ID, user.Username)
	if err != nil {
		return "", 0, err
	}
	return tok, user.ID, nil
}

// Login verifies the credentials and returns a session token plus the
// user's id. Unknown usernames and wrong passwords both fail with
// domain.ErrInvalidCredentials so callers cannot enumerate usernames.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, uint, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", 0, domain.ErrInvalidCredentials
		}
		return "", 0, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", 0, domain.ErrInvalidCredentials
	}

	tok, err := s.tokens.Issue(user.ID, user.Username)
	if err != nil {
		return "", 0, err
	}
	return tok, user.ID, nil
}
