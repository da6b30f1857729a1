package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/zeusync/scenedoc/internal/injector"
	"github.com/zeusync/scenedoc/internal/observability/log"
)

const defaultLoadTimeout = 2 * time.Minute

func newConvertCmd(a *app) *cobra.Command {
	var (
		reloadDoc bool
		timeout   = defaultLoadTimeout
	)

	cmd := &cobra.Command{
		Use:   "convert <in> <out>",
		Short: "Rewrite a document in the format of the output file",
		Long: `Rewrite a document as JSON or YAML, chosen by the output extension.

With --reload the document is rebuilt into a live scene and saved again,
which drops entities that no longer load and normalizes every fragment.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := log.Log(log.NewNop())
			doc, err := a.readDocument(args[0], logger)
			if err != nil {
				return err
			}

			if reloadDoc {
				tool, cleanup, err := injector.InitializeTool(a.cfg)
				if err != nil {
					return err
				}
				defer cleanup()

				ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
				defer cancel()
				if doc, err = reload(ctx, tool, doc); err != nil {
					return err
				}
				logger = tool.Logger
			}

			if err := a.writeDocument(args[1], doc, logger); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%s, %d nodes)\n", args[1], formatOf(args[1], a.cfg.Document.Format), len(doc.Scene))
			return nil
		},
	}

	cmd.Flags().BoolVar(&reloadDoc, "reload", false, "Load and re-save the document instead of copying fragments")
	cmd.Flags().DurationVar(&timeout, "timeout", timeout, "Upper bound for loading with --reload")
	return cmd
}
