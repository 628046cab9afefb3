package cli

import (
	"crypto/rand"
	"fmt"
	"os"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/sbk-go/sbk/internal/backup"
	"github.com/sbk-go/sbk/internal/mnemonic"
	"github.com/sbk-go/sbk/internal/params"
	"github.com/sbk-go/sbk/internal/sbkconfig"
	"github.com/sbk-go/sbk/internal/secret"
	"github.com/sbk-go/sbk/pkg/sbkerrors"
)

//nolint:gochecknoglobals // cobra command definition
var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Create or inspect an optional encrypted digital backup bundle",
	Long: `A backup bundle is an additive convenience: an age-encrypted file
holding the printable salt and every share from one create() run. The
printable shares transcribed onto paper or metal remain the primary
backup; recover never requires this bundle to exist.`,
}

//nolint:gochecknoglobals // cobra flag targets
var (
	backupDir        string
	backupThreshold  int
	backupShares     int
	backupWalletName string
)

//nolint:gochecknoglobals // cobra command definition
var backupCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new share set and seal it into a passphrase-protected bundle",
	RunE: func(cmd *cobra.Command, _ []string) error {
		p := params.Normalize(params.Parameters{Version: 0, KdfM: 512, KdfT: 1, SssT: backupThreshold})
		p.SssN = backupShares

		bundle, err := secret.Create(rand.Reader, p, secret.DefaultRawSaltLen, secret.DefaultBrainKeyLen)
		if err != nil {
			return err
		}
		defer bundle.RawSalt.Destroy()
		defer bundle.BrainKey.Destroy()

		passphrase, err := promptNewPassphrase()
		if err != nil {
			return err
		}
		defer zeroBytes(passphrase)

		svc := backup.NewService(resolveBackupDir())
		_, path, err := svc.Create(bundle, string(passphrase), backupWalletName)
		if err != nil {
			return err
		}

		cmd.Printf("wrote encrypted backup bundle: %s\n", path)
		return nil
	},
}

//nolint:gochecknoglobals // cobra command definition
var backupVerifyCmd = &cobra.Command{
	Use:   "verify <path>",
	Short: "Check a backup bundle's structural integrity, without decrypting it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := backup.NewService(resolveBackupDir())
		manifest, err := svc.Verify(args[0])
		if err != nil {
			return err
		}

		cmd.Printf("%d-of-%d scheme, created %s\n", manifest.Threshold, manifest.Shares, manifest.CreatedAt.Format("2006-01-02T15:04:05Z07:00"))
		return nil
	},
}

//nolint:gochecknoglobals // cobra command definition
var backupRestoreCmd = &cobra.Command{
	Use:   "restore <path>",
	Short: "Decrypt a backup bundle and print its salt and shares",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		passphrase, err := promptPassphrase("Enter backup passphrase: ")
		if err != nil {
			return err
		}
		defer zeroBytes(passphrase)

		svc := backup.NewService(resolveBackupDir())
		set, err := svc.Restore(args[0], string(passphrase))
		if err != nil {
			return err
		}

		cmd.Printf("wallet name: %s\n", set.WalletName)
		cmd.Printf("share count: %d\n", len(set.ShareYs))
		cmd.Printf("salt: %s\n", mnemonic.BytesToPhrase(set.SaltBody))
		for i := range set.ShareYs {
			if i < len(set.ShareHeader) {
				cmd.Printf("share %d: %s\n", i+1, shareHex(set.ShareHeader[i], set.ShareYs[i]))
			}
		}
		return nil
	},
}

func resolveBackupDir() string {
	if backupDir != "" {
		return backupDir
	}
	home := cfg.Home
	if home == "" {
		home = sbkconfig.DefaultHome()
	}
	return filepath.Join(home, "backups")
}

// promptPassphraseFn is a package-level indirection so tests can
// substitute a canned passphrase without a real terminal.
//
//nolint:gochecknoglobals // test seam
var promptPassphraseFn = readPassphraseFromTerminal

func readPassphraseFromTerminal(prompt string) ([]byte, error) {
	fmt.Fprint(os.Stderr, prompt)
	passphrase, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return nil, fmt.Errorf("reading passphrase: %w", err)
	}
	return passphrase, nil
}

func promptPassphrase(prompt string) ([]byte, error) {
	return promptPassphraseFn(prompt)
}

func promptNewPassphrase() ([]byte, error) {
	passphrase, err := promptPassphrase("Enter backup passphrase: ")
	if err != nil {
		return nil, err
	}
	if len(passphrase) < 8 {
		zeroBytes(passphrase)
		return nil, sbkerrors.Wrap(sbkerrors.ErrInvalidInput, "passphrase must be at least 8 characters")
	}

	confirm, err := promptPassphrase("Confirm backup passphrase: ")
	if err != nil {
		zeroBytes(passphrase)
		return nil, err
	}
	defer zeroBytes(confirm)

	if string(passphrase) != string(confirm) {
		zeroBytes(passphrase)
		return nil, sbkerrors.Wrap(sbkerrors.ErrInvalidInput, "passphrases do not match")
	}

	return passphrase, nil
}

//nolint:gochecknoinits // cobra flag registration
func init() {
	backupCmd.PersistentFlags().StringVar(&backupDir, "backup-dir", "", "directory to write/read backup bundles (default: home/backups)")
	backupCreateCmd.Flags().IntVar(&backupThreshold, "threshold", 2, "number of shares required to recover")
	backupCreateCmd.Flags().IntVar(&backupShares, "shares", 3, "total number of shares to produce")
	backupCreateCmd.Flags().StringVar(&backupWalletName, "wallet-name", secret.DefaultWalletName, "wallet name recorded in the bundle")

	backupCmd.AddCommand(backupCreateCmd)
	backupCmd.AddCommand(backupVerifyCmd)
	backupCmd.AddCommand(backupRestoreCmd)
}
