package main

import (
	"context"
	"fmt"
	"os"

	"github.com/Behyna/payments-engine/internal/service"
	"go.uber.org/zap"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: engine <transactions.csv>")
		os.Exit(2)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to create logger:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(os.Args[1], logger); err != nil {
		logger.Error("run failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(path string, logger *zap.Logger) error {
	in, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer in.Close()

	ledger := service.NewLedgerService(logger)
	processor := service.NewProcessorService(ledger, logger)

	// The report goes to stdout; all logging stays on stderr.
	_, err = processor.Run(context.Background(), in, os.Stdout)
	return err
}
