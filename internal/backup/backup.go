package backup

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sbk-go/sbk/internal/secret"
)

const (
	// BundleExtension is the file extension for backup bundles.
	BundleExtension = ".sbkbackup"

	// DirPermissions is the permission mode for the backup directory.
	DirPermissions = 0o750

	// FilePermissions is the permission mode for backup bundle files.
	FilePermissions = 0o600
)

// Service writes and reads encrypted digital backup bundles.
type Service struct {
	backupDir string
}

// NewService creates a new backup Service rooted at backupDir.
func NewService(backupDir string) *Service {
	return &Service{backupDir: backupDir}
}

// Create seals bundle's printable salt and shares into a single
// passphrase-protected file. The passphrase should be zeroed by the
// caller after this call returns. This is additive to create(): the
// printable salt and shares transcribed onto paper remain the primary
// backup, and this bundle is never required to recover.
func (s *Service) Create(bundle *secret.Bundle, passphrase, walletName string) (*Bundle, string, error) {
	set := ShareSet{
		SaltHeader:  bundle.SaltHeader,
		SaltBody:    append([]byte(nil), bundle.RawSalt.Bytes()...),
		SaltECC:     bundle.SaltECC,
		ShareHeader: bundle.ShareHeaders,
		ShareYs:     bundle.ShareYs,
		ShareECC:    bundle.ShareECC,
		WalletName:  walletName,
	}

	setJSON, err := json.Marshal(set)
	if err != nil {
		return nil, "", fmt.Errorf("serializing share set: %w", err)
	}

	encrypted, err := ageEncrypt(setJSON, passphrase)
	if err != nil {
		return nil, "", fmt.Errorf("encrypting backup bundle: %w", err)
	}

	manifest := NewManifest(bundle.Params.SssT, len(bundle.ShareHeaders))
	bun := NewBundle(manifest, encrypted)

	path, err := s.writeBundle(bun)
	if err != nil {
		return nil, "", fmt.Errorf("writing backup bundle: %w", err)
	}

	return bun, path, nil
}

// Verify checks a backup bundle file's structural integrity without
// decrypting it.
func (s *Service) Verify(path string) (*Manifest, error) {
	bun, err := s.readBundle(path)
	if err != nil {
		return nil, err
	}

	if err := bun.Validate(); err != nil {
		return nil, err
	}

	return &bun.Manifest, nil
}

// VerifyWithDecryption checks a backup bundle's integrity and confirms
// the passphrase actually decrypts it.
func (s *Service) VerifyWithDecryption(path, passphrase string) (*Manifest, error) {
	bun, err := s.readBundle(path)
	if err != nil {
		return nil, err
	}

	if err := bun.Validate(); err != nil {
		return nil, err
	}

	if _, err := ageDecrypt(bun.EncryptedData, passphrase); err != nil {
		return nil, ErrDecryptionFailed
	}

	return &bun.Manifest, nil
}

// Restore decrypts a backup bundle back into its ShareSet, ready to
// feed into internal/secret.Recover.
func (s *Service) Restore(path, passphrase string) (*ShareSet, error) {
	bun, err := s.readBundle(path)
	if err != nil {
		return nil, err
	}

	if err := bun.Validate(); err != nil {
		return nil, err
	}

	decrypted, err := ageDecrypt(bun.EncryptedData, passphrase)
	if err != nil {
		return nil, ErrDecryptionFailed
	}

	var set ShareSet
	if err := json.Unmarshal(decrypted, &set); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFormat, err)
	}

	return &set, nil
}

// List returns all backup bundle files in the backup directory.
func (s *Service) List() ([]string, error) {
	if err := os.MkdirAll(s.backupDir, DirPermissions); err != nil {
		return nil, fmt.Errorf("creating backup directory: %w", err)
	}

	entries, err := os.ReadDir(s.backupDir)
	if err != nil {
		return nil, fmt.Errorf("reading backup directory: %w", err)
	}

	var bundles []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if filepath.Ext(entry.Name()) == BundleExtension {
			bundles = append(bundles, entry.Name())
		}
	}

	return bundles, nil
}

// BundlePath returns the path to a backup bundle file.
func (s *Service) BundlePath(filename string) string {
	return filepath.Join(s.backupDir, filename)
}

func (s *Service) writeBundle(bun *Bundle) (string, error) {
	if err := os.MkdirAll(s.backupDir, DirPermissions); err != nil {
		return "", fmt.Errorf("creating backup directory: %w", err)
	}

	timestamp := time.Now().Format("2006-01-02-150405")
	filename := fmt.Sprintf("sbk-%s%s", timestamp, BundleExtension)
	path := filepath.Join(s.backupDir, filename)

	data, err := json.MarshalIndent(bun, "", "  ")
	if err != nil {
		return "", fmt.Errorf("serializing backup bundle: %w", err)
	}

	if err := os.WriteFile(path, data, FilePermissions); err != nil {
		return "", fmt.Errorf("writing backup bundle file: %w", err)
	}

	return path, nil
}

func (s *Service) readBundle(path string) (*Bundle, error) {
	// #nosec G304 -- path is caller-supplied, not web-facing
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrBundleNotFound
		}
		return nil, fmt.Errorf("reading backup bundle file: %w", err)
	}

	var bun Bundle
	if err := json.Unmarshal(data, &bun); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFormat, err)
	}

	return &bun, nil
}
