package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"moviescout/internal/movie"
	"moviescout/internal/services"
)

type interpretReport struct {
	Query   string          `json:"query"`
	Filters movie.FilterSet `json:"filters"`
	Notice  string          `json:"notice,omitempty"`
}

func newInterpretCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "interpret <request...>",
		Short: "Show the filters extracted from a plain-language request",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := ctx.ensurePipeline(cmd.Context())
			if err != nil {
				return err
			}
			query := strings.Join(args, " ")
			filters, err := p.interpreter.Interpret(cmd.Context(), query)
			report := interpretReport{Query: query, Filters: filters}
			if err != nil {
				if !services.Recoverable(err) {
					return err
				}
				report.Notice = services.UserNotice(err)
			}

			if jsonOutput {
				return writeJSON(cmd, report)
			}
			if report.Notice != "" {
				newStatusPrinter(cmd.ErrOrStderr()).line("Interpreter", statusWarn, report.Notice)
			}
			fmt.Fprintln(cmd.OutOrStdout(), filters.Summary())
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}
