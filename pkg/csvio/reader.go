// Package csvio reads transaction records from and writes account
// reports to the CSV shapes used by the engine.
package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Behyna/payments-engine/internal/model"
)

var ErrMissingAmount = errors.New("amount required for deposit and withdrawal")

// ParseError marks a single malformed record. Callers skip the record
// and keep reading; any other reader error is fatal.
type ParseError struct {
	Line  int
	Field string
	Cause error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: bad %s: %v", e.Line, e.Field, e.Cause)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

type Reader struct {
	csv  *csv.Reader
	line int
}

// NewReader wraps r, which must carry a `type,client,tx,amount` header
// line followed by one record per line.
func NewReader(r io.Reader) *Reader {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	return &Reader{csv: cr}
}

// Read returns the next validated record. It returns io.EOF at end of
// input, *ParseError for a malformed record, and the underlying error
// for anything else.
func (r *Reader) Read() (model.Transaction, error) {
	record, err := r.next()
	if err != nil {
		return model.Transaction{}, err
	}

	if len(record) < 3 {
		return model.Transaction{}, &ParseError{Line: r.line, Field: "record", Cause: errors.New("too few fields")}
	}

	txType, err := model.ParseTxType(strings.TrimSpace(record[0]))
	if err != nil {
		return model.Transaction{}, &ParseError{Line: r.line, Field: "type", Cause: err}
	}

	clientID, err := strconv.ParseUint(strings.TrimSpace(record[1]), 10, 16)
	if err != nil {
		return model.Transaction{}, &ParseError{Line: r.line, Field: "client", Cause: err}
	}

	txID, err := strconv.ParseUint(strings.TrimSpace(record[2]), 10, 32)
	if err != nil {
		return model.Transaction{}, &ParseError{Line: r.line, Field: "tx", Cause: err}
	}

	tx := model.Transaction{
		Type:     txType,
		ClientID: uint16(clientID),
		TxID:     uint32(txID),
	}

	if txType.HasAmount() {
		if len(record) < 4 || strings.TrimSpace(record[3]) == "" {
			return model.Transaction{}, &ParseError{Line: r.line, Field: "amount", Cause: ErrMissingAmount}
		}

		amount, err := model.ParseAmount(strings.TrimSpace(record[3]))
		if err != nil {
			return model.Transaction{}, &ParseError{Line: r.line, Field: "amount", Cause: err}
		}
		tx.Amount = amount
	}

	return tx, nil
}

// next reads the following raw record, consuming the header when it is
// the first line.
func (r *Reader) next() ([]string, error) {
	record, err := r.csv.Read()
	if err != nil {
		return nil, r.wrap(err)
	}
	r.line++

	if r.line == 1 && strings.EqualFold(strings.TrimSpace(record[0]), "type") {
		record, err = r.csv.Read()
		if err != nil {
			return nil, r.wrap(err)
		}
		r.line++
	}

	return record, nil
}

// wrap turns csv-level quoting errors into skippable ParseErrors;
// io.EOF and underlying reader failures pass through untouched.
func (r *Reader) wrap(err error) error {
	var csvErr *csv.ParseError
	if errors.As(err, &csvErr) {
		r.line++
		return &ParseError{Line: r.line, Field: "record", Cause: err}
	}
	return err
}
