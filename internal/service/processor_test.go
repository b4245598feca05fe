package service_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/Behyna/payments-engine/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newProcessor() service.ProcessorService {
	logger := zap.NewNop()
	return service.NewProcessorService(service.NewLedgerService(logger), logger)
}

func TestProcessor_Run(t *testing.T) {
	t.Run("applies records and writes the report", func(t *testing.T) {
		input := strings.Join([]string{
			"type,client,tx,amount",
			"deposit,1,1,1.0",
			"deposit,2,2,2.0",
			"deposit,1,3,2.0",
			"withdrawal,1,4,1.5",
			"dispute,2,2,",
			"chargeback,2,2,",
		}, "\n")

		var out bytes.Buffer

		summary, err := newProcessor().Run(context.Background(), strings.NewReader(input), &out)
		require.NoError(t, err)

		assert.Equal(t, 6, summary.Applied)
		assert.Equal(t, 0, summary.Rejected)
		assert.Equal(t, 0, summary.Skipped)

		lines := strings.Split(strings.TrimSpace(out.String()), "\n")
		require.Len(t, lines, 3)
		assert.Equal(t, "client,available,held,total,locked", lines[0])
		assert.Equal(t, "1,1.5000,0.0000,1.5000,false", lines[1])
		assert.Equal(t, "2,0.0000,0.0000,0.0000,true", lines[2])
	})

	t.Run("skips malformed records and keeps going", func(t *testing.T) {
		input := strings.Join([]string{
			"type,client,tx,amount",
			"deposit,1,1,1.0",
			"transfer,1,2,1.0",
			"deposit,abc,3,1.0",
			"deposit,1,4,not-a-number",
			"deposit,1,5,-2.0",
			"deposit,1,6,0.5",
		}, "\n")

		var out bytes.Buffer

		summary, err := newProcessor().Run(context.Background(), strings.NewReader(input), &out)
		require.NoError(t, err)

		assert.Equal(t, 2, summary.Applied)
		assert.Equal(t, 4, summary.Skipped)

		lines := strings.Split(strings.TrimSpace(out.String()), "\n")
		require.Len(t, lines, 2)
		assert.Equal(t, "1,1.5000,0.0000,1.5000,false", lines[1])
	})

	t.Run("counts ledger rejections without failing the run", func(t *testing.T) {
		input := strings.Join([]string{
			"type,client,tx,amount",
			"deposit,1,1,1.0",
			"withdrawal,1,2,5.0",
			"dispute,1,9,",
			"deposit,1,1,1.0",
		}, "\n")

		var out bytes.Buffer

		summary, err := newProcessor().Run(context.Background(), strings.NewReader(input), &out)
		require.NoError(t, err)

		assert.Equal(t, 1, summary.Applied)
		assert.Equal(t, 3, summary.Rejected)
		assert.Equal(t, 0, summary.Skipped)
	})

	t.Run("empty input produces only the header", func(t *testing.T) {
		var out bytes.Buffer

		summary, err := newProcessor().Run(context.Background(), strings.NewReader(""), &out)
		require.NoError(t, err)

		assert.Equal(t, service.Summary{}, summary)
		assert.Equal(t, "client,available,held,total,locked\n", out.String())
	})

	t.Run("cancelled context aborts the run", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		var out bytes.Buffer

		_, err := newProcessor().Run(ctx, strings.NewReader("type,client,tx,amount\n"), &out)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
