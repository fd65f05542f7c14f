package configs

import "time"

// Auth holds the secrets and token lifetimes for authentication. Neither
// secret has a default; startup refuses to run without them.
type Auth struct {
	// JWTSecret signs access tokens (HS256). Required, minimum 32 characters.
	JWTSecret string `env:"JWT_SECRET,notEmpty"`
	// AESKey is the process-wide secret the API-key blobs are encrypted
	// under. Rotating it invalidates all stored blobs.
	AESKey string `env:"AES_KEY,notEmpty"`
	// TokenTTL is the access-token lifetime for registered users.
	TokenTTL time.Duration `env:"TOKEN_TTL" envDefault:"15m"`
	// GuestTokenTTL is the lifetime of guest demo tokens.
	GuestTokenTTL time.Duration `env:"GUEST_TOKEN_TTL" envDefault:"24h"`
	// Issuer is the iss claim on every token.
	Issuer string `env:"ISSUER" envDefault:"gaia"`
	// AdminToken guards the administrative wipe endpoint. Empty disables it.
	AdminToken string `env:"ADMIN_TOKEN"`
}
