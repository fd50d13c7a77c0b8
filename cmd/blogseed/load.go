package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/eringen/blogseed"
)

func newLoadCmd(c *cli) *cobra.Command {
	var (
		dbPath  string
		sqlPath string
		reset   bool
	)
	cmd := &cobra.Command{
		Use:   "load",
		Short: "Apply the SQL seed script to the local SQLite database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if dbPath == "" {
				dbPath = c.cfg.DatabasePath
			}
			if sqlPath == "" {
				sqlPath = c.cfg.SQLPath
			}
			script, err := os.ReadFile(sqlPath)
			if err != nil {
				return fmt.Errorf("read seed script: %w", err)
			}

			store, err := blogseed.NewStore(dbPath)
			if err != nil {
				return fmt.Errorf("open database: %w", err)
			}
			defer store.Close()

			ctx := cmd.Context()
			if reset {
				if err := store.DeletePosts(ctx); err != nil {
					return fmt.Errorf("reset posts: %w", err)
				}
				c.logger.Info("existing posts deleted", "db", dbPath)
			}
			if err := store.ApplyScript(ctx, string(script)); err != nil {
				return fmt.Errorf("apply %s: %w", sqlPath, err)
			}
			n, err := store.CountPosts(ctx)
			if err != nil {
				return err
			}
			c.logger.Info("seed script applied", "script", sqlPath, "db", dbPath, "posts", n)
			fmt.Fprintf(cmd.OutOrStdout(), "%d posts in %s\n", n, dbPath)
			return nil
		},
	}
	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite database path")
	cmd.Flags().StringVar(&sqlPath, "sql", "", "seed script to apply")
	cmd.Flags().BoolVar(&reset, "reset", false, "delete existing posts first")
	return cmd
}
