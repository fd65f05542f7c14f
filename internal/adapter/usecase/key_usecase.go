package usecase

import (
	"context"
	"log/slog"

	"gaia/internal/core/domain"
	"gaia/internal/core/port"
	"gaia/internal/crypto"
)

// recentLogLimit caps the audit entries returned by the key-read operation.
const recentLogLimit = 10

// KeyUseCase manages the encrypted platform credentials.
type KeyUseCase struct {
	users  port.UserRepository
	logs   port.AccessLogRepository
	cipher *crypto.BlobCipher
	logger *slog.Logger
}

// NewKeyUseCase creates the key service.
func NewKeyUseCase(users port.UserRepository, logs port.AccessLogRepository, cipher *crypto.BlobCipher, logger *slog.Logger) *KeyUseCase {
	return &KeyUseCase{users: users, logs: logs, cipher: cipher, logger: logger}
}

// SaveKeys merges the provided keys into the stored set and re-encrypts the
// blob. A nil field leaves the stored value untouched. Concurrent saves for
// the same user race; the last write wins.
func (u *KeyUseCase) SaveKeys(ctx context.Context, ident domain.Identity, keys domain.APIKeys) (*domain.User, error) {
	if ident.IsGuest {
		return nil, domain.ErrGuestReadOnly
	}
	if keys.Empty() {
		return nil, domain.Validationf("at least one API key must be provided")
	}

	user, err := u.users.FindByID(ctx, ident.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}

	merged := u.decryptStored(user)
	if keys.GoogleAds != nil {
		merged.GoogleAds = keys.GoogleAds
	}
	if keys.Instagram != nil {
		merged.Instagram = keys.Instagram
	}
	if keys.WhatsApp != nil {
		merged.WhatsApp = keys.WhatsApp
	}

	blob, err := u.cipher.EncryptKeys(merged)
	if err != nil {
		return nil, err
	}
	if err := u.users.UpdateAPIKeys(ctx, user.ID, blob); err != nil {
		return nil, err
	}
	return user, nil
}

// GetKeys returns the caller's profile, decrypted keys and recent access
// logs. Guests receive the fixed demo keys and no logs.
func (u *KeyUseCase) GetKeys(ctx context.Context, ident domain.Identity) (*port.KeysView, error) {
	if ident.IsGuest {
		return &port.KeysView{
			User: &domain.User{ID: domain.GuestID, Email: domain.GuestEmail},
			Keys: DemoKeys(),
			// demo logs stay empty: guests have no audit trail
			RecentLogs: []domain.AccessLogEntry{},
			IsGuest:    true,
		}, nil
	}

	user, err := u.users.FindByID(ctx, ident.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}

	logs, err := u.logs.RecentByUser(ctx, user.ID, recentLogLimit)
	if err != nil {
		return nil, err
	}
	if logs == nil {
		logs = []domain.AccessLogEntry{}
	}

	return &port.KeysView{
		User:       user,
		Keys:       u.decryptStored(user),
		RecentLogs: logs,
	}, nil
}

// decryptStored degrades to empty keys when the blob is missing or corrupt.
// A blob one user managed to break must never fail their requests, let alone
// anyone else's.
func (u *KeyUseCase) decryptStored(user *domain.User) domain.APIKeys {
	if user.EncryptedAPIKeys == "" {
		return domain.APIKeys{}
	}
	keys, err := u.cipher.DecryptKeys(user.EncryptedAPIKeys)
	if err != nil {
		u.logger.Warn("stored key blob failed to decrypt",
			slog.String("userId", user.ID.String()), slog.Any("error", err))
		return domain.APIKeys{}
	}
	return keys
}
