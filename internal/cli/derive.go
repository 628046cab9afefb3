package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/sbk-go/sbk/internal/mnemonic"
	"github.com/sbk-go/sbk/internal/params"
	"github.com/sbk-go/sbk/internal/secret"
	"github.com/sbk-go/sbk/internal/securemem"
)

//nolint:gochecknoglobals // cobra flag targets
var (
	deriveSaltPhrase  string
	deriveBrainPhrase string
	deriveWalletName  string
	deriveSaltLen     int
	deriveBrainLen    int
	deriveKdfM        int
	deriveKdfT        int
)

//nolint:gochecknoglobals // cobra command definition
var deriveCmd = &cobra.Command{
	Use:   "derive",
	Short: "Derive the final wallet seed from raw_salt, brainkey, and a wallet name",
	RunE: func(cmd *cobra.Command, _ []string) error {
		saltBytes, err := mnemonic.PhraseToBytes(deriveSaltPhrase, deriveSaltLen)
		if err != nil {
			return err
		}
		rawSalt := securemem.FromSlice(saltBytes)
		defer rawSalt.Destroy()
		zeroBytes(saltBytes)

		brainBytes, err := mnemonic.PhraseToBytes(deriveBrainPhrase, deriveBrainLen)
		if err != nil {
			return err
		}
		brainKey := securemem.FromSlice(brainBytes)
		defer brainKey.Destroy()
		zeroBytes(brainBytes)

		p := params.Normalize(params.Parameters{Version: 0, KdfM: deriveKdfM, KdfT: deriveKdfT, SssT: params.MinThreshold})

		progress := func(fraction float64) {
			cmd.Printf("\rderiving... %.0f%%", fraction*100)
		}

		seed, err := secret.DeriveWalletSeed(context.Background(), rawSalt, brainKey, deriveWalletName, p, progress)
		if err != nil {
			return err
		}
		defer zeroBytes(seed)

		cmd.Println()
		cmd.Printf("wallet seed: %x\n", seed)
		return nil
	},
}

func zeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

//nolint:gochecknoinits // cobra flag registration
func init() {
	deriveCmd.Flags().StringVar(&deriveSaltPhrase, "salt", "", "recovered raw_salt mnemonic phrase")
	deriveCmd.Flags().StringVar(&deriveBrainPhrase, "brainkey", "", "recovered brainkey mnemonic phrase")
	deriveCmd.Flags().StringVar(&deriveWalletName, "wallet-name", secret.DefaultWalletName, "wallet name suffix")
	deriveCmd.Flags().IntVar(&deriveSaltLen, "salt-len", secret.DefaultRawSaltLen, "raw salt length in bytes")
	deriveCmd.Flags().IntVar(&deriveBrainLen, "brainkey-len", secret.DefaultBrainKeyLen, "brainkey length in bytes")
	deriveCmd.Flags().IntVar(&deriveKdfM, "kdf-m", 512, "Argon2id memory parameter in MiB before quantization")
	deriveCmd.Flags().IntVar(&deriveKdfT, "kdf-t", 1, "Argon2id time parameter before quantization")
}
