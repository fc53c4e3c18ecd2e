package main

import (
	"os"

	"github.com/msto63/botparse/cmd/botparse/cmd"
	bperror "github.com/msto63/botparse/foundation/core/error"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(bperror.GetCode(err).ExitCode())
	}
}
