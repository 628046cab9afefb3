package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/sbk-go/sbk/internal/kdf"
	"github.com/sbk-go/sbk/internal/params"
)

//nolint:gochecknoglobals // cobra flag targets
var (
	calibrateKdfM   int
	calibrateKdfT   int
	calibrateTarget float64
	calibrateCap    time.Duration
)

//nolint:gochecknoglobals // cobra command definition
var calibrateCmd = &cobra.Command{
	Use:   "calibrate",
	Short: "Probe this host and find a kdf_t that reaches the target duration",
	RunE: func(cmd *cobra.Command, _ []string) error {
		baseline := params.Normalize(params.Parameters{Version: 0, KdfM: calibrateKdfM, KdfT: calibrateKdfT, SssT: params.MinThreshold})

		result := kdf.Calibrate(baseline, calibrateTarget, calibrateCap)

		cmd.Printf("kdf_m = %d MiB\n", result.KdfM)
		cmd.Printf("kdf_t = %d\n", result.KdfT)
		return nil
	},
}

//nolint:gochecknoinits // cobra flag registration
func init() {
	calibrateCmd.Flags().IntVar(&calibrateKdfM, "kdf-m", 512, "Argon2id memory parameter in MiB before quantization")
	calibrateCmd.Flags().IntVar(&calibrateKdfT, "kdf-t", 1, "starting Argon2id time parameter before quantization")
	calibrateCmd.Flags().Float64Var(&calibrateTarget, "target-seconds", 1.0, "target derivation duration, in seconds")
	calibrateCmd.Flags().DurationVar(&calibrateCap, "max-calibration-time", 10*time.Second, "maximum time to spend probing")
}
