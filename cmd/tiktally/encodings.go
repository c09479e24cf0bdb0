package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tiktally/tiktally/tiktally/encoding"
)

func newEncodingsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encodings",
		Short: "List supported encodings and the models that use them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, name := range encoding.ValidEncodings() {
				match, err := encoding.ModelsForEncoding(name)
				if err != nil {
					return err
				}
				if model, ok := match.Single(); ok {
					fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", name, model)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", name, strings.Join(match.Models(), ", "))
			}
			return nil
		},
	}
}
