package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"moviescout/internal/tmdb"
)

func newGenresCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "genres",
		Short: "List the genres the catalog understands",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := ctx.ensurePipeline(cmd.Context())
			if err != nil {
				return err
			}
			catalog, err := p.genres.Catalog(cmd.Context())
			if err != nil {
				return fmt.Errorf("load genres: %w", err)
			}
			list := catalog.Genres()
			if jsonOutput {
				if list == nil {
					list = []tmdb.Genre{}
				}
				return writeJSON(cmd, list)
			}
			rows := make([][]string, 0, len(list))
			for _, g := range list {
				rows = append(rows, []string{strconv.Itoa(g.ID), g.Name})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"ID", "Name"}, rows, []columnAlignment{alignRight, alignLeft}))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}
