package service

import (
	"github.com/carson-networks/bank-console/internal/operator"
	"github.com/carson-networks/bank-console/internal/storage/account"
)

// Service holds all business logic services.
type Service struct {
	Account *AccountService
}

// NewService creates a new Service that mutates store through op.
func NewService(op *operator.OperatorDelegator, store *account.Store) *Service {
	return &Service{
		Account: NewAccountService(op, store),
	}
}
