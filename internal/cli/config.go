package cli

import (
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/sbk-go/sbk/internal/sbkconfig"
)

//nolint:gochecknoglobals // cobra command definition
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the effective on-disk configuration",
}

//nolint:gochecknoglobals // cobra command definition
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration, after file and environment overlays",
	RunE: func(cmd *cobra.Command, _ []string) error {
		out, err := yaml.Marshal(cfg)
		if err != nil {
			return err
		}
		cmd.Print(string(out))
		for _, w := range cfg.Warnings {
			cmd.PrintErrf("warning: %s\n", w)
		}
		return nil
	},
}

//nolint:gochecknoglobals // cobra command definition
var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the path to the active config file",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cmd.Println(sbkconfig.Path(cfg.Home))
		return nil
	},
}

//nolint:gochecknoglobals // cobra command definition
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration to disk, if it does not already exist",
	RunE: func(cmd *cobra.Command, _ []string) error {
		path := sbkconfig.Path(cfg.Home)
		if _, err := os.Stat(path); err == nil {
			cmd.Printf("configuration already exists at %s\n", path)
			return nil
		}
		if err := sbkconfig.Save(sbkconfig.Defaults(), path); err != nil {
			return err
		}
		cmd.Printf("wrote default configuration to %s\n", path)
		return nil
	},
}

//nolint:gochecknoinits // cobra flag registration
func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configInitCmd)
}
