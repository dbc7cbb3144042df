package actions

import (
	"context"

	"github.com/carson-networks/bank-console/internal/storage/account"
)

type DeleteAccount struct {
	AccountID int

	IAction
}

func (d *DeleteAccount) Perform(ctx context.Context, store *account.Store) error {
	return store.Delete(d.AccountID)
}
