package cli

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/spf13/cobra"

	"github.com/sbk-go/sbk/internal/mnemonic"
	"github.com/sbk-go/sbk/internal/params"
	"github.com/sbk-go/sbk/internal/sbkoutput"
	"github.com/sbk-go/sbk/internal/secret"
)

//nolint:gochecknoglobals // cobra flag targets
var (
	createThreshold  int
	createShares     int
	createRawSaltLen int
	createBrainLen   int
	createKdfM       int
	createKdfT       int
	createShowQR     bool
)

// createdShare is the JSON shape of one share in --output json mode.
// Hex is header(3B)||Ys hex-encoded, the exact string "sbk recover
// --share" expects; Words is the same share as a mnemonic phrase.
type createdShare struct {
	Index int    `json:"index"`
	Total int    `json:"total"`
	Words string `json:"words"`
	Hex   string `json:"hex"`
}

// createdShareSet is the JSON shape of a full create() run in
// --output json mode.
type createdShareSet struct {
	Salt     string         `json:"salt"`
	BrainKey string         `json:"brainkey"`
	Shares   []createdShare `json:"shares"`
}

//nolint:gochecknoglobals // cobra command definition
var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new salt, brainkey, and set of threshold shares",
	RunE: func(cmd *cobra.Command, _ []string) error {
		p := params.Normalize(params.Parameters{
			Version: 0,
			KdfM:    createKdfM,
			KdfT:    createKdfT,
			SssT:    createThreshold,
		})
		p.SssN = createShares

		bundle, err := secret.Create(rand.Reader, p, createRawSaltLen, createBrainLen)
		if err != nil {
			return err
		}
		defer bundle.RawSalt.Destroy()
		defer bundle.BrainKey.Destroy()

		saltPhrase := mnemonic.BytesToPhrase(bundle.RawSalt.Bytes())
		brainPhrase := mnemonic.BytesToPhrase(bundle.BrainKey.Bytes())

		format := sbkoutput.DetectFormat(cmd.OutOrStdout(), sbkoutput.ParseFormat(outputFormat))
		if format == sbkoutput.FormatJSON {
			set := createdShareSet{Salt: saltPhrase, BrainKey: brainPhrase}
			for i := range bundle.ShareHeaders {
				set.Shares = append(set.Shares, createdShare{
					Index: i + 1,
					Total: len(bundle.ShareHeaders),
					Words: mnemonic.BytesToPhrase(bundle.ShareYs[i]),
					Hex:   shareHex(bundle.ShareHeaders[i], bundle.ShareYs[i]),
				})
			}
			return sbkoutput.NewFormatter(sbkoutput.FormatJSON, cmd.OutOrStdout()).Print(set)
		}

		if format == sbkoutput.FormatHex {
			cmd.Printf("Salt (write this down, %d-of-%d threshold):\n", p.SssT, p.SssN)
			cmd.Printf("  %s\n", saltPhrase)
			cmd.Println()
			cmd.Println("Brainkey (memorize this, never write it down):")
			cmd.Printf("  %s\n", brainPhrase)
			cmd.Println()
			for i := range bundle.ShareHeaders {
				cmd.Printf("Share %d of %d (hex, for \"sbk recover --share\"):\n", i+1, len(bundle.ShareHeaders))
				cmd.Printf("  %s\n", shareHex(bundle.ShareHeaders[i], bundle.ShareYs[i]))
			}
			return nil
		}

		cmd.Printf("Salt (write this down, %d-of-%d threshold):\n", p.SssT, p.SssN)
		cmd.Printf("  %s\n", saltPhrase)
		if createShowQR {
			sbkoutput.RenderQR(cmd.OutOrStdout(), saltPhrase, sbkoutput.DefaultQRConfig())
		}
		cmd.Println()
		cmd.Println("Brainkey (memorize this, never write it down):")
		cmd.Printf("  %s\n", brainPhrase)
		cmd.Println()

		for i := range bundle.ShareHeaders {
			cmd.Printf("Share %d of %d:\n", i+1, len(bundle.ShareHeaders))
			cmd.Printf("  %s\n", mnemonic.BytesToPhrase(bundle.ShareYs[i]))
			if createShowQR {
				sbkoutput.RenderQR(cmd.OutOrStdout(), mnemonic.BytesToPhrase(bundle.ShareYs[i]), sbkoutput.DefaultQRConfig())
			}
		}

		return nil
	},
}

// shareHex returns header||ys hex-encoded, the exact form
// "sbk recover --share" decodes.
func shareHex(header [3]byte, ys []byte) string {
	raw := make([]byte, 0, len(header)+len(ys))
	raw = append(raw, header[:]...)
	raw = append(raw, ys...)
	return hex.EncodeToString(raw)
}

//nolint:gochecknoinits // cobra flag registration
func init() {
	createCmd.Flags().IntVar(&createThreshold, "threshold", 2, "number of shares required to recover")
	createCmd.Flags().IntVar(&createShares, "shares", 3, "total number of shares to produce")
	createCmd.Flags().IntVar(&createRawSaltLen, "salt-len", secret.DefaultRawSaltLen, "raw salt length in bytes")
	createCmd.Flags().IntVar(&createBrainLen, "brainkey-len", secret.DefaultBrainKeyLen, "brainkey length in bytes")
	createCmd.Flags().IntVar(&createKdfM, "kdf-m", 512, "Argon2id memory parameter in MiB before quantization")
	createCmd.Flags().IntVar(&createKdfT, "kdf-t", 1, "Argon2id time parameter before quantization")
	createCmd.Flags().BoolVar(&createShowQR, "qr", false, "also render each phrase as a terminal QR code")
}
