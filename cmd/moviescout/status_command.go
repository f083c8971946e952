package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"moviescout/internal/preflight"
)

var errChecksFailed = errors.New("one or more readiness checks failed")

func newStatusCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Check that the catalog and language model are reachable",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			p, err := ctx.ensurePipeline(cmd.Context())
			if err != nil {
				return err
			}

			results := preflight.RunAll(cmd.Context(), cfg, p.catalog, p.completer)
			failed := false
			for _, r := range results {
				if r.Failed() {
					failed = true
				}
			}

			if jsonOutput {
				if err := writeJSON(cmd, results); err != nil {
					return err
				}
			} else {
				labels := make([]string, len(results))
				for i, r := range results {
					labels[i] = r.Name
				}
				status := newStatusPrinter(cmd.OutOrStdout(), labels...)
				fmt.Fprintln(cmd.OutOrStdout(), "Readiness")
				for _, r := range results {
					status.line(r.Name, resultKind(r), r.Detail)
				}
			}

			if failed {
				return errChecksFailed
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output results as JSON")
	return cmd
}

func resultKind(r preflight.Result) statusKind {
	switch {
	case r.Skipped:
		return statusInfo
	case r.Passed:
		return statusOK
	default:
		return statusError
	}
}
