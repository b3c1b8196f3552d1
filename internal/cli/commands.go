package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"donation-report-srv/internal/model"
	"donation-report-srv/internal/report"

	"github.com/spf13/cobra"
)

func (a *app) generateCmd() *cobra.Command {
	var (
		year  int
		force bool
	)
	cmd := &cobra.Command{
		Use:       "generate [weekly|monthly|yearly]",
		Short:     "Return a valid cached report or build a new one",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"weekly", "monthly", "yearly"},
		RunE: func(cmd *cobra.Command, args []string) error {
			period, err := model.ParsePeriodType(args[0])
			if err != nil {
				return err
			}
			input := report.GetOrBuildInput{PeriodType: period, ForceRegenerate: force}
			if cmd.Flags().Changed("year") {
				input.Year = &year
			}

			return a.withUseCase(cmd, func(ctx context.Context, uc report.UseCase) error {
				o, err := uc.GetOrBuild(ctx, input)
				if err != nil {
					return err
				}
				return a.print(cmd.OutOrStdout(), o, func(w io.Writer) {
					status := "built"
					if o.CacheHit {
						status = "cache hit"
					}
					fmt.Fprintf(w, "%s (%s)\n", o.Location, status)
					fmt.Fprintf(w, "key:         %s\n", o.CacheKey)
					fmt.Fprintf(w, "fingerprint: %s\n", o.Fingerprint)
				})
			})
		},
	}
	cmd.Flags().IntVar(&year, "year", 0, "Calendar year for yearly reports (default: current year)")
	cmd.Flags().BoolVar(&force, "force", false, "Rebuild even if a valid cached report exists")
	return cmd
}

func (a *app) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List generated report files, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withUseCase(cmd, func(ctx context.Context, uc report.UseCase) error {
				files, err := uc.ListReports(ctx)
				if err != nil {
					return err
				}
				return a.print(cmd.OutOrStdout(), files, func(w io.Writer) {
					tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
					fmt.Fprintln(tw, "FILENAME\tSIZE (MB)\tCREATED")
					for _, f := range files {
						fmt.Fprintf(tw, "%s\t%.2f\t%s\n", f.Filename, f.SizeMB, f.CreatedAt.Format("2006-01-02 15:04:05"))
					}
					tw.Flush()
				})
			})
		},
	}
}

func (a *app) recentCmd() *cobra.Command {
	var limit int64
	cmd := &cobra.Command{
		Use:   "recent",
		Short: "List recently built report ids",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withUseCase(cmd, func(ctx context.Context, uc report.UseCase) error {
				ids, err := uc.ListRecent(ctx, limit)
				if err != nil {
					return err
				}
				return a.print(cmd.OutOrStdout(), ids, func(w io.Writer) {
					for _, id := range ids {
						fmt.Fprintln(w, id)
					}
				})
			})
		},
	}
	cmd.Flags().Int64Var(&limit, "limit", report.DefaultRecentLimit, "Maximum number of ids")
	return cmd
}

func (a *app) cleanupCmd() *cobra.Command {
	var days int
	cmd := &cobra.Command{
		Use:   "cleanup",
		Short: "Delete report files older than --days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withUseCase(cmd, func(ctx context.Context, uc report.UseCase) error {
				n, err := uc.CleanupOldReports(ctx, days)
				if err != nil {
					return err
				}
				return a.print(cmd.OutOrStdout(), map[string]int{"deleted": n, "days": days}, func(w io.Writer) {
					fmt.Fprintf(w, "Deleted %d reports older than %d days\n", n, days)
				})
			})
		},
	}
	cmd.Flags().IntVar(&days, "days", report.DefaultRetentionDays, "Retention in days")
	return cmd
}

func (a *app) invalidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "invalidate",
		Short: "Drop every cached report entry (files on disk are kept)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withUseCase(cmd, func(ctx context.Context, uc report.UseCase) error {
				n, err := uc.InvalidateAll(ctx)
				if err != nil {
					return err
				}
				return a.print(cmd.OutOrStdout(), map[string]int{"cleared": n}, func(w io.Writer) {
					fmt.Fprintf(w, "Cleared %d cache entries\n", n)
				})
			})
		},
	}
}

func (a *app) print(w io.Writer, v any, text func(io.Writer)) error {
	if !a.jsonOut {
		text(w)
		return nil
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
