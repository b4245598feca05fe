package model

import "fmt"

type TxType string

const (
	TxTypeDeposit    TxType = "deposit"
	TxTypeWithdrawal TxType = "withdrawal"
	TxTypeDispute    TxType = "dispute"
	TxTypeResolve    TxType = "resolve"
	TxTypeChargeback TxType = "chargeback"
)

// ParseTxType maps the raw type column onto a TxType.
func ParseTxType(s string) (TxType, error) {
	switch TxType(s) {
	case TxTypeDeposit, TxTypeWithdrawal, TxTypeDispute, TxTypeResolve, TxTypeChargeback:
		return TxType(s), nil
	}
	return "", fmt.Errorf("unknown transaction type %q", s)
}

// HasAmount reports whether records of this type carry an amount
// column. Dispute, resolve and chargeback reference a prior deposit and
// carry none.
func (t TxType) HasAmount() bool {
	return t == TxTypeDeposit || t == TxTypeWithdrawal
}

// Transaction is one validated input record. Amount is meaningful only
// when Type.HasAmount() is true; the parser guarantees that.
type Transaction struct {
	Type     TxType
	ClientID uint16
	TxID     uint32
	Amount   Amount
}
