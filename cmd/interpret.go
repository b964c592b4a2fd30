package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Vovarama1992/voxboard/internal/delivery"
	"github.com/spf13/cobra"
)

func newInterpretCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "interpret <file>",
		Short: "Run one local recording through the pipeline and print the JSON reply",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if format == "" {
				format = strings.TrimPrefix(filepath.Ext(path), ".")
			}

			f, err := os.Open(path)
			if err != nil {
				return err
			}
			defer f.Close()

			a, err := buildApp(format)
			if err != nil {
				return err
			}
			defer a.close()

			out := a.service.Process(cmd.Context(), f)

			status, body := delivery.OutcomeResponse(out)
			body["status"] = status

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if err := enc.Encode(body); err != nil {
				return err
			}

			if out.Failed() {
				return fmt.Errorf("interpret %s: %s", path, out.Kind)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "", "container format passed to ffmpeg (default: file extension)")
	return cmd
}
