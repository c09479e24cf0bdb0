package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tiktally/tiktally/tiktally/encoding"
)

func newModelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List recognized model names and their encodings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			mappings := encoding.ModelMappings()
			for _, model := range encoding.ValidModels() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", model, mappings[model])
			}
			return nil
		},
	}
}
