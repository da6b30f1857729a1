package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/zeusync/scenedoc/internal/injector"
)

func newServeCmd(a *app) *cobra.Command {
	var addr, root string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve an asset store over HTTP and WebSocket",
		Long: `Serve the files under the store root at /assets/<path> and answer
asset requests on the /ws websocket endpoint.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := a.cfg
			if addr != "" {
				cfg.Server.Address = addr
			}
			if root != "" {
				cfg.Server.Root = root
			}

			srv, err := injector.InitializeAssetServer(cfg)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := srv.Start(ctx); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "serving %s on http://%s\n", cfg.Server.Root, srv.Addr())

			<-ctx.Done()

			shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return srv.Stop(shutdown)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address, overriding server.address")
	cmd.Flags().StringVar(&root, "root", "", "Store root directory, overriding server.root")
	return cmd
}
