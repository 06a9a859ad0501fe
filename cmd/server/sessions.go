package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/redis"
	"github.com/KirkDiggler/rpg-sheet/internal/repositories/session"
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "Maintain the redis session store",
}

var (
	fixSessions bool
)

var sessionsCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Scan sessions for history entries and resources that cannot be read",
	Long: `Scan every sheet session in redis for values that fail to decode. With --fix the
bad history entries and resource values are removed.`,
	Args: cobra.NoArgs,
	RunE: runSessionsCheck,
}

func init() {
	sessionsCheckCmd.Flags().BoolVar(&fixSessions, "fix", false, "remove corrupt values")
	sessionsCmd.AddCommand(sessionsCheckCmd)
	rootCmd.AddCommand(sessionsCmd)
}

func runSessionsCheck(cmd *cobra.Command, _ []string) error {
	if cfg.Redis.Endpoint == "" {
		return errors.InvalidArgument("sessions check needs a redis endpoint (--redis)")
	}

	client, err := redis.Connect(cmd.Context(), cfg.Redis.Endpoint, &redis.Options{
		PoolSize: cfg.Redis.PoolSize,
		UseTLS:   cfg.Redis.UseTLS,
	})
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, "failed to connect to redis")
	}
	defer func() {
		_ = client.Close() // nolint:errcheck // safe to ignore in cleanup
	}()

	report, err := session.CheckRedis(cmd.Context(), client, session.CheckInput{Fix: fixSessions})
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Checked %d keys, found %d corrupt values\n", report.KeysChecked, len(report.Corrupt))
	for _, bad := range report.Corrupt {
		fmt.Fprintf(w, "  - %s: %s\n", bad.Key, bad.Reason)
	}
	if fixSessions {
		fmt.Fprintf(w, "Removed %d values\n", report.Removed)
	}
	return nil
}
