package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/dropDatabas3/mailcheck/internal/observability/logger"
)

func main() {
	err := newRootCmd().Execute()
	_ = logger.Sync()
	if err != nil {
		if !errors.Is(err, errProbeFailed) {
			fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		}
		os.Exit(1)
	}
}
