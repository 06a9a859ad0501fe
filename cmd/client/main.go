// Package main provides a standalone command-line client for a sheet server
package main

import (
	"fmt"
	"os"

	"github.com/KirkDiggler/rpg-sheet/cmd/server/client"
)

var (
	serverAddr string
	sessionID  string
)

func main() {
	cmd := client.NewCommand(&client.Options{
		Address: func() string { return serverAddr },
		Session: func() string { return sessionID },
	})
	cmd.Use = "rpg-sheet-client"
	cmd.SilenceUsage = true
	cmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	cmd.PersistentFlags().StringVar(&sessionID, "session", "", "session ID (empty = server default)")

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
