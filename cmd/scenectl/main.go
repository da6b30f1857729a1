// Command scenectl inspects, converts and round-trips scene documents and
// serves an asset store.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/zeusync/scenedoc/internal/config"
)

type app struct {
	configPath string
	logLevel   string
	cfg        config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "scenectl",
		Short: "Work with scene documents",
		Long: `scenectl reads and writes the scene documents produced by the editor.

Documents are JSON or YAML; the format is taken from the file extension.
Remote references (textures, fonts, audio, models) are fetched from the
asset store configured under "assets".`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			if a.logLevel != "" {
				cfg.Log.Level = a.logLevel
			}
			a.cfg = cfg
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Path to a YAML configuration file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Override the configured log level (debug, info, warn, error, silent)")

	root.AddCommand(
		newInspectCmd(a),
		newRoundTripCmd(a),
		newConvertCmd(a),
		newServeCmd(a),
	)
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
