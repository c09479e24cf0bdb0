package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tiktally/tiktally/tiktally/config"
	"github.com/tiktally/tiktally/tiktally/counter"
	"github.com/tiktally/tiktally/tiktally/encoding"
)

var (
	cfgFile string

	flagModel     string
	flagEncoding  string
	flagRecursive bool
	flagQuiet     bool
	flagExitOnErr bool
	flagIgnore    []string
	flagOffline   bool
	flagLogLevel  string
)

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "tiktally",
		Short:         "Count and produce LLM tokens for strings, files, and directory trees",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			loaded, err := config.LoadConfig(cfgFile)
			if err != nil {
				return err
			}
			setupLogger(flagLogLevel)

			flags := cmd.Flags()
			if !flags.Changed("model") {
				flagModel = loaded.Tiktally.Model
			}
			if !flags.Changed("encoding") {
				flagEncoding = loaded.Tiktally.EncodingName
			}
			if !flags.Changed("recursive") {
				flagRecursive = loaded.Tiktally.Recursive
			}
			if !flags.Changed("quiet") {
				flagQuiet = loaded.Tiktally.Quiet
			}
			if !flags.Changed("exit-on-error") {
				flagExitOnErr = loaded.Tiktally.ExitOnListError
			}
			if !flags.Changed("ignore") {
				flagIgnore = loaded.Tiktally.IgnorePatterns
			}

			if flagOffline || loaded.Tiktally.OfflineBPE {
				encoding.UseOfflineLoader()
			}
			return nil
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "Optional config file (yaml)")
	pf.StringVarP(&flagModel, "model", "m", "", "Model whose encoding to tokenize with")
	pf.StringVarP(&flagEncoding, "encoding", "e", "", "Encoding name to tokenize with")
	pf.BoolVarP(&flagRecursive, "recursive", "r", true, "Descend into subdirectories")
	pf.BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
	pf.BoolVar(&flagExitOnErr, "exit-on-error", true, "Abort list processing on the first failing entry")
	pf.StringSliceVar(&flagIgnore, "ignore", nil, "Gitignore-style patterns to skip during traversal")
	pf.BoolVar(&flagOffline, "offline", false, "Use embedded BPE dictionaries, never download")
	pf.StringVar(&flagLogLevel, "log-level", "warn", "Log level (debug|info|warn|error)")

	cmd.AddCommand(newCountCmd())
	cmd.AddCommand(newTokenizeCmd())
	cmd.AddCommand(newModelsCmd())
	cmd.AddCommand(newEncodingsCmd())

	return cmd
}

// setupLogger configures the process-wide slog default logger.
func setupLogger(levelStr string) {
	var lvl slog.Level
	switch strings.ToLower(levelStr) {
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelWarn
	}
	h := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(h))
}

// currentParams builds counter Params from the resolved flag and config state.
func currentParams() *counter.Params {
	p := counter.NewParams()
	p.Model = flagModel
	p.EncodingName = flagEncoding
	p.Recursive = flagRecursive
	p.Quiet = flagQuiet
	p.ExitOnListError = flagExitOnErr
	p.IgnorePatterns = flagIgnore
	return p
}
