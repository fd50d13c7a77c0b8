package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/eringen/blogseed"
)

func newServeCmd(c *cli) *cobra.Command {
	var dbPath, addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Preview the loaded posts over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := c.cfg
			if dbPath != "" {
				cfg.DatabasePath = dbPath
			}
			if addr != "" {
				cfg.Addr = addr
			}
			store, err := blogseed.NewStore(cfg.DatabasePath)
			if err != nil {
				return fmt.Errorf("open database: %w", err)
			}
			defer store.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return blogseed.NewApp(cfg, store, c.logger).Start(ctx)
		},
	}
	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite database path")
	cmd.Flags().StringVar(&addr, "addr", "", "listen address")
	return cmd
}
