package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/zeusync/scenedoc/internal/injector"
	"github.com/zeusync/scenedoc/internal/observability/log"
	"github.com/zeusync/scenedoc/internal/serializer"
	"github.com/zeusync/scenedoc/pkg/encoding"
)

var errNotIdentical = errors.New("document changed after a round trip")

func newRoundTripCmd(a *app) *cobra.Command {
	var (
		out     string
		timeout = defaultLoadTimeout
	)

	cmd := &cobra.Command{
		Use:   "roundtrip <document>",
		Short: "Load a document into a live scene and save it again",
		Long: `Load a document, fetching every remote asset it references, then save the
rebuilt scene and compare fingerprints. Entities that fail to load are
reported as warnings and left out, so a changed fingerprint points at them.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tool, cleanup, err := injector.InitializeTool(a.cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			doc, err := a.readDocument(args[0], tool.Logger)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()
			again, err := reload(ctx, tool, doc)
			if err != nil {
				return err
			}

			before, err := encoding.Fingerprint(doc)
			if err != nil {
				return err
			}
			after, err := encoding.Fingerprint(again)
			if err != nil {
				return err
			}

			if out != "" {
				if err := a.writeDocument(out, again, tool.Logger); err != nil {
					return err
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "nodes: %d -> %d\n", len(doc.Scene), len(again.Scene))
			fmt.Fprintf(cmd.OutOrStdout(), "fingerprint: %016x -> %016x\n", before, after)
			if before != after {
				return errNotIdentical
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Write the re-saved document to this path")
	cmd.Flags().DurationVar(&timeout, "timeout", timeout, "Upper bound for loading, including asset fetches")
	return cmd
}

// reload rebuilds the live state recorded in doc and saves it again.
func reload(ctx context.Context, tool *injector.Tool, doc *serializer.Document) (*serializer.Document, error) {
	state, err := tool.Serializer.Load(ctx, doc, tool.Context).Await(ctx)
	if err != nil {
		return nil, err
	}
	tool.Logger.Debug("Document reloaded", log.Int("roots", len(state.Roots)))
	return tool.Serializer.Save(state)
}
