package model

type TxStatus string

const (
	TxStatusActive      TxStatus = "active"
	TxStatusDisputed    TxStatus = "disputed"
	TxStatusResolved    TxStatus = "resolved"
	TxStatusChargedBack TxStatus = "charged_back"
)

// Account is the per-client balance state. Total is derived, never
// stored, so available+held==total holds by construction.
type Account struct {
	ClientID  uint16
	Available Amount
	Held      Amount
	Locked    bool
}

func (a Account) Total() Amount {
	return a.Available + a.Held
}

// DepositEntry is the dispute history record for one deposit. Only
// deposits are retained; withdrawals cannot be disputed.
type DepositEntry struct {
	ClientID uint16
	Amount   Amount
	Status   TxStatus
}
