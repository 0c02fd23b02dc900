package main

import (
	"github.com/spf13/cobra"

	"skincare-backend/internal/plans/recommendations"
)

func newOptionsCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "options",
		Short: "Print the recognized survey answers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeOutput(cmd.OutOrStdout(), output, recommendations.RecognizedValues())
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", formatYAML, "output format: json or yaml")
	return cmd
}
