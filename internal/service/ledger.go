package service

import (
	"errors"
	"sort"

	"github.com/Behyna/payments-engine/internal/constants"
	"github.com/Behyna/payments-engine/internal/model"
	"go.uber.org/zap"
)

var (
	ErrAccountLocked        = errors.New("ACCOUNT_LOCKED")
	ErrAccountNotFound      = errors.New("ACCOUNT_NOT_FOUND")
	ErrInsufficientBalance  = errors.New("INSUFFICIENT_BALANCE")
	ErrDuplicateTransaction = errors.New("DUPLICATE_TRANSACTION")
	ErrTransactionNotFound  = errors.New("TRANSACTION_NOT_FOUND")
	ErrClientMismatch       = errors.New("CLIENT_MISMATCH")
	ErrAlreadyDisputed      = errors.New("ALREADY_DISPUTED")
	ErrNotUnderDispute      = errors.New("NOT_UNDER_DISPUTE")
)

// LedgerService applies transaction records to per-client accounts in
// arrival order. A rejected record never mutates state, so every apply
// is all-or-nothing. The service is single-threaded by contract; the
// caller owns the ordering.
type LedgerService interface {
	Process(tx model.Transaction) error
	Account(clientID uint16) (model.Account, error)
	Accounts() []model.Account
}

type ledgerService struct {
	log      *zap.Logger
	accounts map[uint16]*model.Account
	deposits map[uint32]*model.DepositEntry
	seenTx   map[uint32]struct{}
}

func NewLedgerService(log *zap.Logger) LedgerService {
	return &ledgerService{
		log:      log,
		accounts: make(map[uint16]*model.Account),
		deposits: make(map[uint32]*model.DepositEntry),
		seenTx:   make(map[uint32]struct{}),
	}
}

func (s *ledgerService) Process(tx model.Transaction) error {
	account := s.account(tx.ClientID)

	if account.Locked {
		s.log.Warn("rejected transaction on locked account",
			zap.Uint16("client_id", tx.ClientID),
			zap.Uint32("tx_id", tx.TxID),
			zap.String("type", string(tx.Type)))
		return NewServiceError(constants.ErrCodeAccountLocked, ErrAccountLocked)
	}

	switch tx.Type {
	case model.TxTypeDeposit:
		return s.deposit(account, tx)
	case model.TxTypeWithdrawal:
		return s.withdraw(account, tx)
	case model.TxTypeDispute:
		return s.dispute(account, tx)
	case model.TxTypeResolve:
		return s.resolve(account, tx)
	case model.TxTypeChargeback:
		return s.chargeback(account, tx)
	}

	return NewServiceError(constants.ErrCodeInvalidRecord, errors.New("unknown transaction type"))
}

func (s *ledgerService) Account(clientID uint16) (model.Account, error) {
	account, exists := s.accounts[clientID]
	if !exists {
		return model.Account{}, NewServiceError(constants.ErrCodeAccountNotFound, ErrAccountNotFound)
	}
	return *account, nil
}

func (s *ledgerService) Accounts() []model.Account {
	accounts := make([]model.Account, 0, len(s.accounts))
	for _, account := range s.accounts {
		accounts = append(accounts, *account)
	}

	sort.Slice(accounts, func(i, j int) bool { return accounts[i].ClientID < accounts[j].ClientID })

	return accounts
}

// account returns the state for clientID, creating it lazily on first
// reference.
func (s *ledgerService) account(clientID uint16) *model.Account {
	if account, exists := s.accounts[clientID]; exists {
		return account
	}

	account := &model.Account{ClientID: clientID}
	s.accounts[clientID] = account

	return account
}

func (s *ledgerService) deposit(account *model.Account, tx model.Transaction) error {
	if _, used := s.seenTx[tx.TxID]; used {
		s.log.Warn("rejected deposit with duplicate tx id",
			zap.Uint16("client_id", tx.ClientID),
			zap.Uint32("tx_id", tx.TxID))
		return NewServiceError(constants.ErrCodeDuplicateTransaction, ErrDuplicateTransaction)
	}

	account.Available += tx.Amount
	s.seenTx[tx.TxID] = struct{}{}
	s.deposits[tx.TxID] = &model.DepositEntry{
		ClientID: tx.ClientID,
		Amount:   tx.Amount,
		Status:   model.TxStatusActive,
	}

	return nil
}

func (s *ledgerService) withdraw(account *model.Account, tx model.Transaction) error {
	if _, used := s.seenTx[tx.TxID]; used {
		s.log.Warn("rejected withdrawal with duplicate tx id",
			zap.Uint16("client_id", tx.ClientID),
			zap.Uint32("tx_id", tx.TxID))
		return NewServiceError(constants.ErrCodeDuplicateTransaction, ErrDuplicateTransaction)
	}

	if tx.Amount > account.Available {
		s.log.Warn("rejected withdrawal over available balance",
			zap.Uint16("client_id", tx.ClientID),
			zap.Uint32("tx_id", tx.TxID),
			zap.String("amount", tx.Amount.String()),
			zap.String("available", account.Available.String()))
		return NewServiceError(constants.ErrCodeInsufficientBalance, ErrInsufficientBalance)
	}

	account.Available -= tx.Amount
	s.seenTx[tx.TxID] = struct{}{}

	return nil
}

func (s *ledgerService) dispute(account *model.Account, tx model.Transaction) error {
	entry, err := s.lookup(tx)
	if err != nil {
		return err
	}

	if entry.Status != model.TxStatusActive {
		s.log.Warn("rejected dispute on non-active transaction",
			zap.Uint16("client_id", tx.ClientID),
			zap.Uint32("tx_id", tx.TxID),
			zap.String("status", string(entry.Status)))
		return NewServiceError(constants.ErrCodeAlreadyDisputed, ErrAlreadyDisputed)
	}

	// The disputed funds may already have been withdrawn. Reject instead
	// of letting available underflow.
	if entry.Amount > account.Available {
		s.log.Warn("rejected dispute exceeding available balance",
			zap.Uint16("client_id", tx.ClientID),
			zap.Uint32("tx_id", tx.TxID),
			zap.String("amount", entry.Amount.String()),
			zap.String("available", account.Available.String()))
		return NewServiceError(constants.ErrCodeInsufficientBalance, ErrInsufficientBalance)
	}

	account.Available -= entry.Amount
	account.Held += entry.Amount
	entry.Status = model.TxStatusDisputed

	return nil
}

func (s *ledgerService) resolve(account *model.Account, tx model.Transaction) error {
	entry, err := s.lookup(tx)
	if err != nil {
		return err
	}

	if entry.Status != model.TxStatusDisputed {
		s.log.Warn("rejected resolve on transaction not under dispute",
			zap.Uint16("client_id", tx.ClientID),
			zap.Uint32("tx_id", tx.TxID),
			zap.String("status", string(entry.Status)))
		return NewServiceError(constants.ErrCodeNotUnderDispute, ErrNotUnderDispute)
	}

	account.Held -= entry.Amount
	account.Available += entry.Amount
	entry.Status = model.TxStatusResolved

	return nil
}

func (s *ledgerService) chargeback(account *model.Account, tx model.Transaction) error {
	entry, err := s.lookup(tx)
	if err != nil {
		return err
	}

	if entry.Status != model.TxStatusDisputed {
		s.log.Warn("rejected chargeback on transaction not under dispute",
			zap.Uint16("client_id", tx.ClientID),
			zap.Uint32("tx_id", tx.TxID),
			zap.String("status", string(entry.Status)))
		return NewServiceError(constants.ErrCodeNotUnderDispute, ErrNotUnderDispute)
	}

	account.Held -= entry.Amount
	account.Locked = true
	entry.Status = model.TxStatusChargedBack

	s.log.Info("account locked by chargeback",
		zap.Uint16("client_id", tx.ClientID),
		zap.Uint32("tx_id", tx.TxID),
		zap.String("amount", entry.Amount.String()))

	return nil
}

// lookup resolves the deposit referenced by a dispute, resolve or
// chargeback record and checks it belongs to the referencing client.
func (s *ledgerService) lookup(tx model.Transaction) (*model.DepositEntry, error) {
	entry, exists := s.deposits[tx.TxID]
	if !exists {
		s.log.Warn("rejected reference to unknown transaction",
			zap.Uint16("client_id", tx.ClientID),
			zap.Uint32("tx_id", tx.TxID),
			zap.String("type", string(tx.Type)))
		return nil, NewServiceError(constants.ErrCodeTransactionNotFound, ErrTransactionNotFound)
	}

	if entry.ClientID != tx.ClientID {
		s.log.Warn("rejected reference to another client's transaction",
			zap.Uint16("client_id", tx.ClientID),
			zap.Uint16("owner_client_id", entry.ClientID),
			zap.Uint32("tx_id", tx.TxID))
		return nil, NewServiceError(constants.ErrCodeClientMismatch, ErrClientMismatch)
	}

	return entry, nil
}
