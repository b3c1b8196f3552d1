// Package cli implements the reportctl command-line interface.
package cli

import (
	"context"
	"fmt"
	"os"

	"donation-report-srv/internal/report"

	"github.com/spf13/cobra"
)

// Opener builds the report usecase for one command run. The returned func
// releases the connections it opened.
type Opener func(ctx context.Context, verbose bool) (report.UseCase, func(), error)

type app struct {
	open    Opener
	verbose bool
	jsonOut bool
}

// NewRootCmd returns the reportctl command tree backed by open.
func NewRootCmd(open Opener) *cobra.Command {
	a := &app{open: open}

	rootCmd := &cobra.Command{
		Use:           "reportctl",
		Short:         "Build and manage cached donation reports",
		Long:          `A command-line utility for generating donation reports and maintaining the report cache.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Verbose debug output to stderr")
	rootCmd.PersistentFlags().BoolVar(&a.jsonOut, "json", false, "Emit JSON instead of text")

	rootCmd.AddCommand(
		a.generateCmd(),
		a.listCmd(),
		a.recentCmd(),
		a.cleanupCmd(),
		a.invalidateCmd(),
	)
	return rootCmd
}

// Execute runs reportctl against the configured service dependencies.
func Execute() {
	if err := NewRootCmd(openFromConfig).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// withUseCase opens the usecase, runs fn and releases the connections.
func (a *app) withUseCase(cmd *cobra.Command, fn func(ctx context.Context, uc report.UseCase) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	uc, closeFn, err := a.open(ctx, a.verbose)
	if err != nil {
		return err
	}
	defer closeFn()
	return fn(ctx, uc)
}
