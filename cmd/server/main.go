// Package main is the entry point of the rpg-sheet CLI and gRPC server
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-sheet/cmd/server/client"
	"github.com/KirkDiggler/rpg-sheet/internal/config"
	"github.com/KirkDiggler/rpg-sheet/internal/logging"
)

var (
	configPath string

	// Loaded by the root command before any subcommand runs
	cfg       *config.Config
	logCloser io.Closer
)

var rootCmd = &cobra.Command{
	Use:   "rpg-sheet",
	Short: "Interactive character sheet for Shoji Yoshiro",
	Long: `rpg-sheet renders the character sheet, resolves weapon attacks, blood techniques
and skill checks, and keeps a per-session history of results. Run it locally or
serve the sheet over gRPC.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		v := config.New()
		if err := config.BindFlags(v, cmd.Flags()); err != nil {
			return err
		}

		loaded, err := config.Load(v, configPath)
		if err != nil {
			return err
		}
		cfg = loaded

		logger, closer := logging.New(cfg.Logging, os.Stderr)
		slog.SetDefault(logger)
		logCloser = closer
		return nil
	},
	PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
		if logCloser != nil {
			return logCloser.Close()
		}
		return nil
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "config file (yaml, json or toml)")
	flags.String("sheet", "", "character sheet yaml file (default: embedded sheet)")
	flags.String("skills", "", "skills table csv file (default: embedded table)")
	flags.String("session", "local", "session ID used for history and resources")
	flags.Int("history-limit", 50, "history entries kept per session")
	flags.Uint64("seed", 0, "seed for reproducible dice (0 = random)")
	flags.String("redis", "", "redis endpoint for sessions (empty = in-memory)")
	flags.String("server", "localhost:50051", "gRPC server address for client commands")
	flags.String("log-level", "info", "log level: debug, info, warn, error")
	flags.String("log-format", "text", "console log format: text or json")
	flags.String("log-file", "", "also write json logs to this file, rotated")

	rootCmd.AddCommand(serverCmd)
	addLocalCommands(rootCmd)
	rootCmd.AddCommand(client.NewCommand(&client.Options{
		Address: func() string { return cfg.Server.Address },
		Session: func() string { return cfg.Session.ID },
	}))
}
