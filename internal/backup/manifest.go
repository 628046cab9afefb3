// Package backup provides an optional, passphrase-protected digital
// copy of a created share set. It is purely additive: the printable
// salt and shares remain the primary, offline backup (paper or metal),
// and recovery never requires this bundle to exist.
package backup

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"
)

var (
	// ErrBundleNotFound indicates the backup file was not found.
	ErrBundleNotFound = errors.New("backup bundle not found")

	// ErrBundleCorrupted indicates the backup checksum failed.
	ErrBundleCorrupted = errors.New("backup bundle corrupted - checksum mismatch")

	// ErrDecryptionFailed indicates backup decryption failed.
	ErrDecryptionFailed = errors.New("backup bundle decryption failed")

	// ErrInvalidFormat indicates the backup format is invalid.
	ErrInvalidFormat = errors.New("invalid backup bundle format")
)

// BundleVersion is the current backup bundle format version.
const BundleVersion = 1

// Bundle is a complete, encrypted digital backup of one create() run.
type Bundle struct {
	// Version is the backup bundle format version.
	Version int `json:"version"`

	// Manifest contains non-secret metadata about the backup.
	Manifest Manifest `json:"manifest"`

	// EncryptedData is the age-encrypted ShareSet, see ShareSet.
	EncryptedData []byte `json:"encrypted_data"`

	// Checksum is the SHA256 hash of EncryptedData.
	Checksum string `json:"checksum"`
}

// Manifest describes a backup bundle without revealing any secret.
type Manifest struct {
	// CreatedAt is when the backup was created.
	CreatedAt time.Time `json:"created_at"`

	// Threshold and Shares are the T and N of the scheme backed up.
	Threshold int `json:"threshold"`
	Shares    int `json:"shares"`

	// EncryptionMethod describes the encryption used.
	EncryptionMethod string `json:"encryption_method"`
}

// ShareSet is the plaintext sealed inside a Bundle's EncryptedData: the
// printable salt and every printable share produced by one create()
// run, encoded exactly as they would be transcribed onto paper.
type ShareSet struct {
	SaltHeader  [2]byte   `json:"salt_header"`
	SaltBody    []byte    `json:"salt_body"`
	SaltECC     []byte    `json:"salt_ecc"`
	ShareHeader [][3]byte `json:"share_header"`
	ShareYs     [][]byte  `json:"share_ys"`
	ShareECC    [][]byte  `json:"share_ecc"`
	WalletName  string    `json:"wallet_name,omitempty"`
}

// NewManifest creates a new backup manifest for a T-of-N scheme.
func NewManifest(threshold, shares int) Manifest {
	return Manifest{
		CreatedAt:        time.Now().UTC(),
		Threshold:        threshold,
		Shares:           shares,
		EncryptionMethod: "age-scrypt",
	}
}

// CalculateChecksum computes the SHA256 checksum of data.
func CalculateChecksum(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// VerifyChecksum verifies that data matches the expected checksum.
func VerifyChecksum(data []byte, expected string) error {
	actual := CalculateChecksum(data)
	if actual != expected {
		return fmt.Errorf("%w: expected %s, got %s", ErrBundleCorrupted, expected, actual)
	}
	return nil
}

// NewBundle creates a new Bundle with the given manifest and encrypted data.
func NewBundle(manifest Manifest, encryptedData []byte) *Bundle {
	return &Bundle{
		Version:       BundleVersion,
		Manifest:      manifest,
		EncryptedData: encryptedData,
		Checksum:      CalculateChecksum(encryptedData),
	}
}

// Validate checks the backup bundle for structural consistency.
func (b *Bundle) Validate() error {
	if b.Version != BundleVersion {
		return fmt.Errorf("%w: unsupported version %d", ErrInvalidFormat, b.Version)
	}

	if b.Manifest.Threshold < 2 {
		return fmt.Errorf("%w: missing threshold", ErrInvalidFormat)
	}

	if len(b.EncryptedData) == 0 {
		return fmt.Errorf("%w: no encrypted data", ErrInvalidFormat)
	}

	return VerifyChecksum(b.EncryptedData, b.Checksum)
}
