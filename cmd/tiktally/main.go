package main

import (
	"os"

	internal "github.com/tiktally/tiktally/tiktally"
)

func main() {
	if err := NewRootCmd().Execute(); err != nil {
		logger := internal.GetLogger()
		logger.Error().Err(err).Msg("tiktally failed")
		os.Exit(1)
	}
}
