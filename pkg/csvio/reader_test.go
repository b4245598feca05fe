package csvio_test

import (
	"io"
	"strings"
	"testing"

	"github.com/Behyna/payments-engine/internal/model"
	"github.com/Behyna/payments-engine/pkg/csvio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReader_Read(t *testing.T) {
	t.Run("reads records after the header", func(t *testing.T) {
		input := "type, client, tx, amount\n" +
			"deposit, 1, 1, 1.0\n" +
			"dispute, 1, 1,\n" +
			"resolve, 1, 1,\n"

		reader := csvio.NewReader(strings.NewReader(input))

		tx, err := reader.Read()
		require.NoError(t, err)
		assert.Equal(t, model.Transaction{Type: model.TxTypeDeposit, ClientID: 1, TxID: 1, Amount: 10000}, tx)

		tx, err = reader.Read()
		require.NoError(t, err)
		assert.Equal(t, model.TxTypeDispute, tx.Type)
		assert.Equal(t, model.Amount(0), tx.Amount)

		tx, err = reader.Read()
		require.NoError(t, err)
		assert.Equal(t, model.TxTypeResolve, tx.Type)

		_, err = reader.Read()
		assert.ErrorIs(t, err, io.EOF)
	})

	t.Run("reads input without a header", func(t *testing.T) {
		reader := csvio.NewReader(strings.NewReader("withdrawal,2,7,0.5\n"))

		tx, err := reader.Read()
		require.NoError(t, err)
		assert.Equal(t, model.Transaction{Type: model.TxTypeWithdrawal, ClientID: 2, TxID: 7, Amount: 5000}, tx)
	})

	t.Run("returns a ParseError per malformed record", func(t *testing.T) {
		cases := map[string]string{
			"unknown type":       "transfer,1,1,1.0\n",
			"bad client id":      "deposit,abc,1,1.0\n",
			"client id overflow": "deposit,70000,1,1.0\n",
			"bad tx id":          "deposit,1,xyz,1.0\n",
			"missing amount":     "deposit,1,1,\n",
			"no amount column":   "withdrawal,1,1\n",
			"negative amount":    "deposit,1,1,-1.0\n",
			"too precise amount": "deposit,1,1,1.00001\n",
			"too few fields":     "deposit,1\n",
		}

		for name, input := range cases {
			t.Run(name, func(t *testing.T) {
				reader := csvio.NewReader(strings.NewReader(input))

				_, err := reader.Read()

				var parseErr *csvio.ParseError
				require.ErrorAs(t, err, &parseErr, name)
			})
		}
	})

	t.Run("missing amount reports the dedicated error", func(t *testing.T) {
		reader := csvio.NewReader(strings.NewReader("deposit,1,1,\n"))

		_, err := reader.Read()
		assert.ErrorIs(t, err, csvio.ErrMissingAmount)
	})

	t.Run("continues past a malformed record", func(t *testing.T) {
		input := "deposit,1,1,bad\n" +
			"deposit,1,2,2.0\n"

		reader := csvio.NewReader(strings.NewReader(input))

		_, err := reader.Read()
		var parseErr *csvio.ParseError
		require.ErrorAs(t, err, &parseErr)
		assert.Equal(t, 1, parseErr.Line)

		tx, err := reader.Read()
		require.NoError(t, err)
		assert.Equal(t, uint32(2), tx.TxID)
	})
}
