package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered dashboard account. EncryptedAPIKeys holds
// the AES-encrypted blob of advertising-platform credentials; it is empty
// until the user saves keys for the first time.
type User struct {
	ID               uuid.UUID `json:"id"`
	Email            string    `json:"email"`
	PasswordHash     string    `json:"-"`
	EncryptedAPIKeys string    `json:"-"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// APIKeys is the decrypted set of platform credentials. A nil field means
// the user has not stored a key for that platform.
type APIKeys struct {
	GoogleAds *string `json:"google_ads"`
	Instagram *string `json:"instagram"`
	WhatsApp  *string `json:"whatsapp"`
}

// Empty reports whether no key field is set.
func (k APIKeys) Empty() bool {
	return k.GoogleAds == nil && k.Instagram == nil && k.WhatsApp == nil
}

// Identity is the authenticated caller attached to a request after token
// verification. Guest identities are issued by the guest endpoint and never
// map to a persisted user row.
type Identity struct {
	UserID  uuid.UUID
	Email   string
	IsGuest bool
}

// GuestID and GuestEmail identify the fixed demo pseudo-user. Guest requests
// are served synthetic data and are rejected from all mutating operations.
var (
	GuestID    = uuid.MustParse("00000000-0000-0000-0000-00000000de30")
	GuestEmail = "guest@gaia.demo"
)
