// Package client provides commands that call a running sheet gRPC server
package client

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/handlers/sheet/v1alpha1"
)

// Options tells the commands where to connect. Both are read when a command runs.
type Options struct {
	Address func() string
	Session func() string
	Out     io.Writer
}

type commands struct {
	opts    Options
	timeout time.Duration
}

// NewCommand returns the "client" command and its subcommands
func NewCommand(opts *Options) *cobra.Command {
	c := &commands{}
	if opts != nil {
		c.opts = *opts
	}
	if c.opts.Address == nil {
		c.opts.Address = func() string { return "localhost:50051" }
	}
	if c.opts.Session == nil {
		c.opts.Session = func() string { return "" }
	}
	if c.opts.Out == nil {
		c.opts.Out = os.Stdout
	}

	cmd := &cobra.Command{
		Use:   "client",
		Short: "Call a running sheet server",
		Long:  `Client commands make real gRPC requests against a sheet server and print the JSON responses.`,
	}
	cmd.PersistentFlags().DurationVar(&c.timeout, "timeout", 30*time.Second, "Request timeout")

	cmd.AddCommand(
		c.sheetCmd(),
		c.skillsCmd(),
		c.rollSkillCmd(),
		c.resolveCmd(),
		c.historyCmd(),
		c.clearHistoryCmd(),
		c.updateResourcesCmd(),
	)
	return cmd
}

type unaryCall func(v1alpha1.SheetServiceClient, context.Context, *structpb.Struct, ...grpc.CallOption) (*structpb.Struct, error)

// invoke connects, sends req through the selected method and prints the response
func (c *commands) invoke(cmd *cobra.Command, method unaryCall, req any) error {
	in, err := v1alpha1.EncodeStruct(req)
	if err != nil {
		return err
	}

	conn, err := grpc.NewClient(c.opts.Address(),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return fmt.Errorf("failed to connect to server: %w", err)
	}
	defer func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}()

	ctx, cancel := context.WithTimeout(cmd.Context(), c.timeout)
	defer cancel()

	resp, err := method(v1alpha1.NewSheetServiceClient(conn), ctx, in)
	if err != nil {
		return errors.FromGRPCError(err)
	}

	out, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(resp)
	if err != nil {
		return fmt.Errorf("failed to format response: %w", err)
	}
	_, err = fmt.Fprintln(c.opts.Out, string(out))
	return err
}
