package actions

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/bank-console/internal/storage/account"
)

type Deposit struct {
	AccountID int
	Amount    decimal.Decimal

	NewBalance decimal.Decimal

	IAction
}

func (d *Deposit) Perform(ctx context.Context, store *account.Store) error {
	balance, err := store.Deposit(d.AccountID, d.Amount)
	if err != nil {
		return err
	}

	d.NewBalance = balance
	return nil
}

type Withdraw struct {
	AccountID int
	Amount    decimal.Decimal

	NewBalance decimal.Decimal

	IAction
}

func (w *Withdraw) Perform(ctx context.Context, store *account.Store) error {
	balance, err := store.Withdraw(w.AccountID, w.Amount)
	if err != nil {
		return err
	}

	w.NewBalance = balance
	return nil
}
