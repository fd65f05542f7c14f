package usecase

import (
	"context"
	"fmt"
	"regexp"

	"gaia/internal/auth"
	"gaia/internal/core/domain"
	"gaia/internal/core/port"
	"gaia/internal/crypto"
)

const minPasswordLen = 12

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// AuthUseCase implements registration, login and guest entry.
type AuthUseCase struct {
	users  port.UserRepository
	tokens *auth.TokenManager
}

// NewAuthUseCase creates the auth service.
func NewAuthUseCase(users port.UserRepository, tokens *auth.TokenManager) *AuthUseCase {
	return &AuthUseCase{users: users, tokens: tokens}
}

// Register validates input, stores the account and signs the user in.
func (u *AuthUseCase) Register(ctx context.Context, email, password string) (*port.AuthResult, error) {
	if email == "" || password == "" {
		return nil, domain.Validationf("email and password are required")
	}
	if !emailPattern.MatchString(email) {
		return nil, domain.Validationf("invalid email address")
	}
	if len(password) < minPasswordLen {
		return nil, domain.Validationf("password must be at least %d characters", minPasswordLen)
	}

	hash, err := crypto.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user, err := u.users.Create(ctx, email, hash)
	if err != nil {
		return nil, err
	}

	token, err := u.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &port.AuthResult{Token: token, UserID: user.ID, Email: user.Email}, nil
}

// Login verifies credentials and issues a token. An unknown email and a
// wrong password produce the same error so the endpoint does not leak which
// addresses are registered.
func (u *AuthUseCase) Login(ctx context.Context, email, password string) (*port.AuthResult, error) {
	if email == "" || password == "" {
		return nil, domain.Validationf("email and password are required")
	}

	user, err := u.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil || !crypto.VerifyPassword(password, user.PasswordHash) {
		return nil, fmt.Errorf("%w: wrong email or password", domain.ErrUnauthorized)
	}

	token, err := u.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &port.AuthResult{Token: token, UserID: user.ID, Email: user.Email}, nil
}

// GuestToken issues the fixed demo identity with a 24h expiry.
func (u *AuthUseCase) GuestToken() (*port.AuthResult, error) {
	token, err := u.tokens.IssueGuest()
	if err != nil {
		return nil, fmt.Errorf("issue guest token: %w", err)
	}
	return &port.AuthResult{
		Token:   token,
		UserID:  domain.GuestID,
		Email:   domain.GuestEmail,
		IsGuest: true,
	}, nil
}
