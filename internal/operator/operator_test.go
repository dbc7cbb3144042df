package operator

import (
	"context"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/bank-console/internal/operator/actions"
	"github.com/carson-networks/bank-console/internal/storage/account"
)

func newTestDelegator(t *testing.T, workers int) (*OperatorDelegator, *account.Store) {
	t.Helper()
	store := account.NewStore()
	d := NewOperatorDelegator(store, workers)
	d.Start()
	t.Cleanup(d.Stop)
	return d, store
}

func TestProcess_CreateDepositWithdrawDelete(t *testing.T) {
	d, store := newTestDelegator(t, 1)
	ctx := context.Background()

	create := &actions.CreateAccount{HolderName: "Alice", StartingBalance: decimal.NewFromInt(100), Credential: "pw1"}
	require.NoError(t, d.Process(ctx, create))
	assert.Equal(t, account.FirstID, create.Created.ID)

	deposit := &actions.Deposit{AccountID: create.Created.ID, Amount: decimal.NewFromInt(50)}
	require.NoError(t, d.Process(ctx, deposit))
	assert.True(t, deposit.NewBalance.Equal(decimal.NewFromInt(150)))

	withdraw := &actions.Withdraw{AccountID: create.Created.ID, Amount: decimal.NewFromInt(200)}
	assert.ErrorIs(t, d.Process(ctx, withdraw), account.ErrInsufficientFunds)

	require.NoError(t, d.Process(ctx, &actions.DeleteAccount{AccountID: create.Created.ID}))
	assert.Equal(t, 0, store.Len())
}

func TestProcess_ActionErrorsPropagate(t *testing.T) {
	d, _ := newTestDelegator(t, 1)

	err := d.Process(context.Background(), &actions.DeleteAccount{AccountID: 4242})

	assert.ErrorIs(t, err, account.ErrAccountNotFound)
}

func TestProcess_CancelledContext(t *testing.T) {
	d, store := newTestDelegator(t, 1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := d.Process(ctx, &actions.CreateAccount{HolderName: "Alice", StartingBalance: decimal.Zero})

	assert.ErrorIs(t, err, context.Canceled)
	d.Stop()
	assert.Equal(t, 0, store.Len(), "cancelled action not applied")
}

// cancelDuringPerform cancels the caller's context while the store is being
// changed.
type cancelDuringPerform struct {
	deposit *actions.Deposit
	cancel  context.CancelFunc
}

func (a *cancelDuringPerform) Perform(ctx context.Context, store *account.Store) error {
	a.cancel()
	return a.deposit.Perform(ctx, store)
}

func TestProcess_CancelledWhileRunningReportsOutcome(t *testing.T) {
	d, store := newTestDelegator(t, 1)
	acc, err := store.Create("Alice", decimal.NewFromInt(100), "pw1")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	action := &cancelDuringPerform{
		deposit: &actions.Deposit{AccountID: acc.ID, Amount: decimal.NewFromInt(50)},
		cancel:  cancel,
	}

	err = d.Process(ctx, action)

	require.NoError(t, err, "applied change reported as success")
	assert.True(t, action.deposit.NewBalance.Equal(decimal.NewFromInt(150)))
	found, _ := store.Find(acc.ID)
	assert.True(t, found.Balance.Equal(decimal.NewFromInt(150)))
}

func TestProcess_AfterStop(t *testing.T) {
	d, _ := newTestDelegator(t, 1)
	d.Stop()

	err := d.Process(context.Background(), &actions.DeleteAccount{AccountID: 1001})

	assert.ErrorIs(t, err, ErrStopped)
}

func TestProcess_ConcurrentCreatesGetUniqueIDs(t *testing.T) {
	d, store := newTestDelegator(t, 4)
	ctx := context.Background()

	const n = 200
	ids := make(chan int, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			create := &actions.CreateAccount{HolderName: "x", StartingBalance: decimal.Zero}
			if err := d.Process(ctx, create); err == nil {
				ids <- create.Created.ID
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := map[int]bool{}
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	assert.Len(t, seen, n)
	assert.Equal(t, n, store.Len())
}
