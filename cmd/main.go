package main

import (
	"os"

	"github.com/spf13/cobra"
)

var cfgPath string

func main() {
	root := &cobra.Command{
		Use:          "voxboard",
		Short:        "Voice commands for the whiteboard",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}

	root.PersistentFlags().StringVar(&cfgPath, "config", "", "config file (default ./configs/config.yaml)")

	root.AddCommand(
		newServeCmd(),
		newInterpretCmd(),
		newCommandsCmd(),
	)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
