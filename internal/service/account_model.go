package service

import (
	"github.com/shopspring/decimal"

	"github.com/carson-networks/bank-console/internal/storage/account"
)

// Account represents an account in the service layer. The credential never
// leaves the store.
type Account struct {
	ID            int
	HolderName    string
	Balance       decimal.Decimal
	HasCredential bool
}

// NewAccount is the input for opening an account.
type NewAccount struct {
	HolderName      string
	StartingBalance decimal.Decimal
	Credential      string
}

// AccountCursor identifies a position in a paginated result set.
type AccountCursor struct {
	Position int
	Limit    int
}

func accountFromStorage(a account.Account) Account {
	return Account{
		ID:            a.ID,
		HolderName:    a.HolderName,
		Balance:       a.Balance,
		HasCredential: a.HasCredential(),
	}
}
