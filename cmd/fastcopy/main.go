package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/AlhosienIbrahim/Fast-Copy/internal/cli"
	"github.com/AlhosienIbrahim/Fast-Copy/internal/config"
	"github.com/AlhosienIbrahim/Fast-Copy/internal/logging"
)

func main() {
	logger, err := logging.New(config.DefaultDir("fastcopy"))
	if err != nil {
		// No log file is not fatal; the tool still works.
		logger = zap.NewNop()
	}
	defer logger.Sync()

	if err := cli.Execute(logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
