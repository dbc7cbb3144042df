package actions

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/bank-console/internal/storage/account"
)

type CreateAccount struct {
	HolderName      string
	StartingBalance decimal.Decimal
	Credential      string

	Created account.Account

	IAction
}

func (c *CreateAccount) Perform(ctx context.Context, store *account.Store) error {
	created, err := store.Create(c.HolderName, c.StartingBalance, c.Credential)
	if err != nil {
		return err
	}

	c.Created = created
	return nil
}
