package actions

import (
	"context"

	"github.com/carson-networks/bank-console/internal/storage/account"
)

// IAction is a single mutation of the account store. Results are stored on
// the action value by Perform.
type IAction interface {
	Perform(ctx context.Context, store *account.Store) error
}
