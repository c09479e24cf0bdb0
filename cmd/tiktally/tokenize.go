package main

import (
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/tiktally/tiktally/tiktally/counter"
)

func newTokenizeCmd() *cobra.Command {
	var fromString bool

	cmd := &cobra.Command{
		Use:   "tokenize [paths...]",
		Short: "Tokenize strings, files, or directories and print the token IDs as JSON",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params := currentParams()

			if fromString {
				out := make([][]int, 0, len(args))
				for _, s := range args {
					toks, err := counter.TokenizeStr(s, params)
					if err != nil {
						return err
					}
					out = append(out, toks)
				}
				if len(out) == 1 {
					return printJSON(cmd, out[0])
				}
				return printJSON(cmd, out)
			}

			var in counter.Input
			if len(args) == 1 {
				in = counter.PathInput(args[0])
			} else {
				in = counter.ListInput(args...)
			}

			res, err := counter.TokenizeFiles(in, params)
			if err != nil {
				return err
			}
			if res.IsTree() {
				return printJSON(cmd, res.Tree)
			}
			return printJSON(cmd, res.Tokens)
		},
	}

	cmd.Flags().BoolVarP(&fromString, "string", "s", false, "Treat arguments as literal strings instead of paths")

	return cmd
}

func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
