package cli

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sbk-go/sbk/internal/mnemonic"
	"github.com/sbk-go/sbk/internal/secret"
	"github.com/sbk-go/sbk/pkg/sbkerrors"
)

//nolint:gochecknoglobals // cobra flag targets
var (
	recoverShareHex []string
	recoverSaltLen  int
)

//nolint:gochecknoglobals // cobra command definition
var recoverCmd = &cobra.Command{
	Use:   "recover",
	Short: "Recover raw_salt and brainkey from a quorum of shares",
	Long: `Each --share is the hex encoding of one share's 3-byte header
followed by its Y-coordinate bytes, as produced by "sbk create --output hex".`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if len(recoverShareHex) == 0 {
			return sbkerrors.ErrInsufficientShares
		}

		shares := make([]secret.RecoveredShare, 0, len(recoverShareHex))
		for _, h := range recoverShareHex {
			raw, err := hex.DecodeString(h)
			if err != nil {
				return fmt.Errorf("%w: %w", sbkerrors.ErrInvalidInput, err)
			}
			if len(raw) < 3 {
				return sbkerrors.ErrInvalidInput
			}
			var header [3]byte
			copy(header[:], raw[:3])
			shares = append(shares, secret.RecoveredShare{Header: header, Ys: raw[3:]})
		}

		rawSalt, brainKey, err := secret.Recover(shares, recoverSaltLen)
		if err != nil {
			return err
		}
		defer rawSalt.Destroy()
		defer brainKey.Destroy()

		cmd.Println("Recovered raw_salt:")
		cmd.Printf("  %s\n", mnemonic.BytesToPhrase(rawSalt.Bytes()))
		cmd.Println("Recovered brainkey:")
		cmd.Printf("  %s\n", mnemonic.BytesToPhrase(brainKey.Bytes()))

		return nil
	},
}

//nolint:gochecknoinits // cobra flag registration
func init() {
	recoverCmd.Flags().StringArrayVar(&recoverShareHex, "share", nil, "hex-encoded header+Ys for one share (repeatable)")
	recoverCmd.Flags().IntVar(&recoverSaltLen, "salt-len", secret.DefaultRawSaltLen, "raw salt length in bytes")
}
