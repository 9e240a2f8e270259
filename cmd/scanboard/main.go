package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/five82/scanboard/internal/app"
	"github.com/five82/scanboard/internal/config"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "scanboard: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	var opts app.Options

	watch := func(cmd *cobra.Command, args []string) error {
		return app.Run(cmd.Context(), opts)
	}

	root := &cobra.Command{
		Use:           "scanboard",
		Short:         "Live results table for the document scanning server",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          watch,
	}
	root.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "config file path (default "+config.DefaultPath()+")")
	root.PersistentFlags().StringVar(&opts.Server, "server", "", "scanning server address, overrides the config")
	root.PersistentFlags().StringVar(&opts.EnvFile, "env-file", ".env", "optional .env file loaded before the config")

	root.AddCommand(&cobra.Command{
		Use:   "watch",
		Short: "Open the live results table (default)",
		Args:  cobra.NoArgs,
		RunE:  watch,
	})

	var query string
	tail := &cobra.Command{
		Use:   "tail",
		Short: "Follow the results feed and print the table after every change",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Tail(cmd.Context(), app.TailOptions{Options: opts, Query: query}, cmd.OutOrStdout())
		},
	}
	tail.Flags().StringVarP(&query, "query", "q", "", "only print records whose file name or score contains this text")
	root.AddCommand(tail)

	root.AddCommand(&cobra.Command{
		Use:   "reset",
		Short: "Ask the server to reset and replay the results table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Reset(cmd.Context(), opts, cmd.OutOrStdout())
		},
	})

	var lines int
	logs := &cobra.Command{
		Use:   "logs",
		Short: "Print the most recent client log entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Logs(opts, lines, cmd.OutOrStdout())
		},
	}
	logs.Flags().IntVarP(&lines, "lines", "n", 50, "number of entries to print")
	root.AddCommand(logs)

	return root
}
