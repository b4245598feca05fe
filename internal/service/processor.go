package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/Behyna/payments-engine/pkg/csvio"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Summary counts the fate of every input record in one run.
type Summary struct {
	Applied  int
	Rejected int
	Skipped  int
}

// ProcessorService streams transaction records from a CSV source into
// the ledger and writes the final account report. Malformed records
// and ledger rejections are counted and logged; only failures of the
// input source itself abort the run.
type ProcessorService interface {
	Run(ctx context.Context, in io.Reader, out io.Writer) (Summary, error)
}

type processorService struct {
	ledger LedgerService
	log    *zap.Logger
}

func NewProcessorService(ledger LedgerService, log *zap.Logger) ProcessorService {
	return &processorService{ledger: ledger, log: log}
}

func (p *processorService) Run(ctx context.Context, in io.Reader, out io.Writer) (Summary, error) {
	start := time.Now()
	log := p.log.With(zap.String("run_id", uuid.NewString()))

	var summary Summary

	reader := csvio.NewReader(in)
	for {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		tx, err := reader.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}

			var parseErr *csvio.ParseError
			if errors.As(err, &parseErr) {
				log.Warn("skipped malformed record",
					zap.Int("line", parseErr.Line),
					zap.String("field", parseErr.Field),
					zap.Error(parseErr.Cause))
				summary.Skipped++
				continue
			}

			return summary, fmt.Errorf("read transactions: %w", err)
		}

		if err := p.ledger.Process(tx); err != nil {
			summary.Rejected++
			continue
		}
		summary.Applied++
	}

	if err := csvio.NewWriter(out).WriteReport(p.ledger.Accounts()); err != nil {
		return summary, fmt.Errorf("write report: %w", err)
	}

	log.Info("run finished",
		zap.Int("applied", summary.Applied),
		zap.Int("rejected", summary.Rejected),
		zap.Int("skipped", summary.Skipped),
		zap.Duration("duration", time.Since(start)))

	return summary, nil
}
