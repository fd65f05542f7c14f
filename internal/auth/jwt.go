package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"gaia/internal/core/domain"
)

// TokenManager issues and verifies HS256 bearer tokens. There is no
// server-side revocation list: a token is valid until its expiry, full stop.
type TokenManager struct {
	secret   []byte
	issuer   string
	userTTL  time.Duration
	guestTTL time.Duration
}

// NewTokenManager creates a manager. The secret should be at least 32
// characters; config validation enforces that before we get here.
func NewTokenManager(secret, issuer string, userTTL, guestTTL time.Duration) *TokenManager {
	return &TokenManager{
		secret:   []byte(secret),
		issuer:   issuer,
		userTTL:  userTTL,
		guestTTL: guestTTL,
	}
}

type accessClaims struct {
	jwt.RegisteredClaims
	Email   string `json:"email"`
	IsGuest bool   `json:"isGuest,omitempty"`
}

// Issue signs a token for a registered user with the standard TTL.
func (m *TokenManager) Issue(userID uuid.UUID, email string) (string, error) {
	return m.sign(userID, email, false, m.userTTL)
}

// IssueGuest signs a token for the fixed guest identity with the longer
// demo TTL.
func (m *TokenManager) IssueGuest() (string, error) {
	return m.sign(domain.GuestID, domain.GuestEmail, true, m.guestTTL)
}

func (m *TokenManager) sign(userID uuid.UUID, email string, guest bool, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := accessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Email:   email,
		IsGuest: guest,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a token, returning the embedded identity.
func (m *TokenManager) Verify(tokenString string) (domain.Identity, error) {
	if tokenString == "" {
		return domain.Identity{}, fmt.Errorf("token is empty")
	}

	token, err := jwt.ParseWithClaims(tokenString, &accessClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return domain.Identity{}, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(*accessClaims)
	if !ok || !token.Valid {
		return domain.Identity{}, fmt.Errorf("invalid token claims")
	}
	if claims.Issuer != m.issuer {
		return domain.Identity{}, fmt.Errorf("invalid issuer %q", claims.Issuer)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("invalid subject: %w", err)
	}

	return domain.Identity{UserID: userID, Email: claims.Email, IsGuest: claims.IsGuest}, nil
}
