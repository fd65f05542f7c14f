// Package crypto wraps password hashing and the symmetric cipher used for
// stored API-key blobs. The encryption key is a single process-wide secret;
// rotating it invalidates every stored blob. Known limitation, not a feature.
package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"

	"golang.org/x/crypto/bcrypt"

	"gaia/internal/core/domain"
)

// bcryptCost matches the work factor the product has always used.
const bcryptCost = 12

// HashPassword hashes a plaintext password with bcrypt and a per-password salt.
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword reports whether plain matches the stored bcrypt hash.
func VerifyPassword(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// BlobCipher encrypts and decrypts API-key blobs with AES-256-GCM. The
// 32-byte key is derived from the configured secret via SHA-256, so any
// non-empty secret string works.
type BlobCipher struct {
	key [32]byte
}

// NewBlobCipher derives a cipher from the configured secret.
func NewBlobCipher(secret string) *BlobCipher {
	return &BlobCipher{key: sha256.Sum256([]byte(secret))}
}

// EncryptKeys serializes the key set and encrypts it. Output is base64 with
// the random nonce prepended.
func (c *BlobCipher) EncryptKeys(keys domain.APIKeys) (string, error) {
	plaintext, err := json.Marshal(keys)
	if err != nil {
		return "", fmt.Errorf("marshal keys: %w", err)
	}
	return c.encrypt(plaintext)
}

// DecryptKeys reverses EncryptKeys. Any tamper or wrong-key failure surfaces
// as domain.ErrDecrypt; callers on the read path degrade to empty keys.
func (c *BlobCipher) DecryptKeys(blob string) (domain.APIKeys, error) {
	plaintext, err := c.decrypt(blob)
	if err != nil {
		return domain.APIKeys{}, err
	}
	var keys domain.APIKeys
	if err := json.Unmarshal(plaintext, &keys); err != nil {
		return domain.APIKeys{}, fmt.Errorf("%w: %v", domain.ErrDecrypt, err)
	}
	return keys, nil
}

func (c *BlobCipher) encrypt(plaintext []byte) (string, error) {
	block, err := aes.NewCipher(c.key[:])
	if err != nil {
		return "", err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", err
	}
	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", err
	}
	sealed := gcm.Seal(nonce, nonce, plaintext, nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

func (c *BlobCipher) decrypt(blob string) ([]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDecrypt, err)
	}
	block, err := aes.NewCipher(c.key[:])
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	if len(raw) < gcm.NonceSize() {
		return nil, fmt.Errorf("%w: blob too short", domain.ErrDecrypt)
	}
	nonce, ciphertext := raw[:gcm.NonceSize()], raw[gcm.NonceSize():]
	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDecrypt, err)
	}
	return plaintext, nil
}
