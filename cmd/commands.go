package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/Vovarama1992/voxboard/internal/config"
	"github.com/spf13/cobra"
)

func newCommandsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "commands",
		Short: "Print the active command table in match order",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}

			table, err := loadTable(cfg)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "PHRASE\tACTION")
			for _, c := range table.Entries() {
				fmt.Fprintf(tw, "%s\t%s\n", c.Phrase, c.Action)
			}
			return tw.Flush()
		},
	}
}
