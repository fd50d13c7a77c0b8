package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/eringen/blogseed"
	"github.com/eringen/blogseed/logging"
)

// version is set at build time via ldflags.
var version = "dev"

// errVerifyFailed makes the process exit non-zero without extra noise; the
// verifier has already printed why.
var errVerifyFailed = errors.New("blog post did not render")

// cli carries the state shared by every subcommand.
type cli struct {
	configFile string
	verbose    bool
	logFile    string

	cfg      blogseed.Config
	logger   *slog.Logger
	closeLog func() error
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		if !errors.Is(err, errVerifyFailed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	c := &cli{}
	root := &cobra.Command{
		Use:   "blogseed",
		Short: "Turn a blog CSV export into seed SQL and JSON",
		Long: `blogseed converts a spreadsheet export of blog posts into a SQL seed
script and a JSON mirror, loads the script into a local SQLite database,
previews the posts over HTTP, and checks that a running blog renders them.

Examples:
  blogseed generate
  blogseed generate --input posts.csv --excerpt-length 120
  blogseed load --reset
  blogseed serve --addr :3000
  blogseed verify --attempts 10`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if c.verbose {
				level = slog.LevelDebug
			}
			c.logger, c.closeLog = logging.Setup(level, c.logFile)
			slog.SetDefault(c.logger)

			cfg, err := blogseed.LoadConfig(c.configFile)
			if err != nil {
				return err
			}
			c.cfg = cfg
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if c.closeLog != nil {
				return c.closeLog()
			}
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&c.configFile, "config", "c", "blogseed.json5", "config file (JSON5)")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "debug logging")
	root.PersistentFlags().StringVar(&c.logFile, "log-file", "", "also write JSON logs to this file")

	root.AddCommand(newGenerateCmd(c))
	root.AddCommand(newLoadCmd(c))
	root.AddCommand(newServeCmd(c))
	root.AddCommand(newVerifyCmd(c))
	root.AddCommand(newInitCmd(c))
	return root
}
