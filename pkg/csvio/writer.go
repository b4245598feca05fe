package csvio

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/Behyna/payments-engine/internal/model"
)

var reportHeader = []string{"client", "available", "held", "total", "locked"}

type Writer struct {
	csv *csv.Writer
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteReport emits the header plus one row per account, with monetary
// fields rendered at fixed four-decimal precision.
func (w *Writer) WriteReport(accounts []model.Account) error {
	if err := w.csv.Write(reportHeader); err != nil {
		return err
	}

	for _, account := range accounts {
		row := []string{
			strconv.FormatUint(uint64(account.ClientID), 10),
			account.Available.String(),
			account.Held.String(),
			account.Total().String(),
			strconv.FormatBool(account.Locked),
		}
		if err := w.csv.Write(row); err != nil {
			return err
		}
	}

	w.csv.Flush()

	return w.csv.Error()
}
