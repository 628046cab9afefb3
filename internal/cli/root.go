// Package cli implements a thin command-line demonstration surface
// over internal/secret: create, recover, derive, calibrate, backup,
// and config subcommands. It is a convenience front-end, not part of
// the cryptographic core — every operation it exposes is a direct call
// into internal/secret, internal/kdf, internal/backup, or
// internal/sbkconfig.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sbk-go/sbk/internal/sbkconfig"
	"github.com/sbk-go/sbk/internal/sbklog"
	"github.com/sbk-go/sbk/pkg/sbkerrors"
)

//nolint:gochecknoglobals // cobra CLI pattern requires package-level state
var (
	homeDir      string
	outputFormat string
	verbose      bool

	cfg    *sbkconfig.Config
	logger *sbklog.Logger
)

// Version information, set at build time via ldflags.
//
//nolint:gochecknoglobals // version info set at build time
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

//nolint:gochecknoglobals // cobra CLI pattern requires package-level command variables
var rootCmd = &cobra.Command{
	Use:   "sbk",
	Short: "Split Bitcoin Keys: human-memorable, threshold-shared wallet seeds",
	Long: `sbk derives a Bitcoin wallet seed from a small amount of memorized
secret material (a brainkey) and a written salt, and backs both up by
splitting them into threshold shares spread across physical carriers.

Example:
  sbk create --threshold 2 --shares 3
  sbk recover --share <hex> --share <hex>
  sbk derive --salt "<salt words>" --brainkey "<brainkey words>" --wallet-name savings`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		return initGlobals(cmd)
	},
}

// Execute runs the root command.
func Execute() error {
	rootCmd.Version = Version
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

// ExitCode returns the process exit code for an error returned by a
// command's RunE, per pkg/sbkerrors's taxonomy.
func ExitCode(err error) int {
	return sbkerrors.ExitCodeFor(err)
}

func initGlobals(_ *cobra.Command) error {
	home := homeDir
	if home == "" {
		home = sbkconfig.DefaultHome()
	}

	configPath := sbkconfig.Path(home)
	var err error
	cfg, err = sbkconfig.Load(configPath)
	if err != nil {
		cfg = sbkconfig.Defaults()
		cfg.Home = home
	}

	sbkconfig.ApplyEnvironment(cfg, func(key string) (string, bool) { return os.LookupEnv(key) })

	if homeDir != "" {
		cfg.Home = homeDir
	}
	if verbose {
		cfg.Output.Verbose = true
		cfg.Logging.Level = "debug"
	}
	if outputFormat != "" && outputFormat != "auto" {
		cfg.Output.DefaultFormat = strings.ToLower(outputFormat)
	}

	logger = sbklog.New(sbklog.ParseLevel(cfg.Logging.Level), os.Stderr)
	return nil
}

//nolint:gochecknoinits // cobra CLI pattern requires init for flag registration
func init() {
	rootCmd.PersistentFlags().StringVar(&homeDir, "home", "", "sbk data directory (default: ~/.sbk)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "auto", "output format: text, json, hex, auto")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(recoverCmd)
	rootCmd.AddCommand(deriveCmd)
	rootCmd.AddCommand(calibrateCmd)
	rootCmd.AddCommand(backupCmd)
	rootCmd.AddCommand(configCmd)
}
