package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tiktally/tiktally/tiktally/counter"
)

func newCountCmd() *cobra.Command {
	var fromString bool

	cmd := &cobra.Command{
		Use:   "count [paths...]",
		Short: "Count tokens in strings, files, or directories",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params := currentParams()

			if fromString {
				total := 0
				for _, s := range args {
					n, err := counter.GetNumTokenStr(s, params)
					if err != nil {
						return err
					}
					total += n
				}
				fmt.Fprintln(cmd.OutOrStdout(), total)
				return nil
			}

			var in counter.Input
			if len(args) == 1 {
				in = counter.PathInput(args[0])
			} else {
				in = counter.ListInput(args...)
			}

			n, err := counter.GetNumTokenFiles(in, params)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), n)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&fromString, "string", "s", false, "Treat arguments as literal strings instead of paths")

	return cmd
}
