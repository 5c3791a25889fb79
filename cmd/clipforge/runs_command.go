package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"clipforge/internal/ledger"
)

func newRunsCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List recent pipeline runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			store, err := ledger.Open(cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			runs, err := store.Recent(cmd.Context(), limit)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(runs) == 0 {
				fmt.Fprintln(out, "No runs recorded yet.")
				return nil
			}

			if stdoutIsTerminal() {
				fmt.Fprintln(out, renderRunsTable(runs))
				return nil
			}
			for _, run := range runs {
				fmt.Fprintln(out, strings.Join(runRow(run), "\t"))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of runs to display")
	return cmd
}

func renderRunsTable(runs []ledger.Run) string {
	rows := make([][]string, 0, len(runs))
	for _, run := range runs {
		rows = append(rows, runRow(run))
	}
	return renderTable(
		[]string{"When", "Run", "Source", "Strategy", "Outcome", "Duration"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignLeft, alignRight},
	)
}

func runRow(run ledger.Run) []string {
	when := ""
	if !run.CreatedAt.IsZero() {
		when = run.CreatedAt.Local().Format("2006-01-02 15:04")
	}
	return []string{
		when,
		shortRunID(run.RunID),
		run.SourcePath,
		run.Strategy,
		run.Outcome,
		(time.Duration(run.DurationSeconds * float64(time.Second))).Round(time.Second).String(),
	}
}

func shortRunID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
