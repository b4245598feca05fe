package mocks

import (
	"github.com/Behyna/payments-engine/internal/model"
	"github.com/stretchr/testify/mock"
)

type LedgerService struct {
	mock.Mock
}

func (l *LedgerService) Process(tx model.Transaction) error {
	args := l.Called(tx)
	return args.Error(0)
}

func (l *LedgerService) Account(clientID uint16) (model.Account, error) {
	args := l.Called(clientID)
	return args.Get(0).(model.Account), args.Error(1)
}

func (l *LedgerService) Accounts() []model.Account {
	args := l.Called()
	return args.Get(0).([]model.Account)
}
