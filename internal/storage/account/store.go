package account

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/bank-console/internal/credential"
)

// Store is the in-memory owner of every account and of id allocation.
// One mutex covers accounts, order and ids so create and delete always see
// a consistent view of all three.
type Store struct {
	mu       sync.Mutex
	accounts map[int]*Account
	order    []int
	ids      *IDAllocator
	verifier CredentialVerifier
}

type StoreOption func(*Store)

// WithVerifier replaces the plaintext credential verifier.
func WithVerifier(v CredentialVerifier) StoreOption {
	return func(s *Store) {
		if v != nil {
			s.verifier = v
		}
	}
}

// NewStore creates an empty store whose first account gets FirstID.
func NewStore(opts ...StoreOption) *Store {
	s := &Store{
		accounts: make(map[int]*Account),
		ids:      NewIDAllocator(),
		verifier: credential.Plaintext{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create opens an account and returns a copy of it. The holder name must be
// non-empty and the credential must fit the remainder of a persisted line.
func (s *Store) Create(holderName string, initialBalance decimal.Decimal, plainCredential string) (Account, error) {
	if holderName == "" {
		return Account{}, ErrInvalidHolderName
	}
	if !persistableCredential(plainCredential) {
		return Account{}, ErrInvalidCredential
	}
	if initialBalance.IsNegative() {
		return Account{}, ErrInvalidAmount
	}

	sealed, err := s.verifier.Seal(plainCredential)
	if err != nil {
		return Account{}, fmt.Errorf("seal credential: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	acc := &Account{
		ID:         s.ids.Allocate(),
		HolderName: holderName,
		Balance:    initialBalance,
		Credential: sealed,
	}
	s.accounts[acc.ID] = acc
	s.order = append(s.order, acc.ID)

	return *acc, nil
}

// Find returns a copy of the account with the given id.
func (s *Store) Find(id int) (Account, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acc, ok := s.accounts[id]
	if !ok {
		return Account{}, false
	}
	return *acc, true
}

// Deposit adds amount to the balance and returns the new balance.
func (s *Store) Deposit(id int, amount decimal.Decimal) (decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acc, ok := s.accounts[id]
	if !ok {
		return decimal.Zero, ErrAccountNotFound
	}
	if amount.IsNegative() {
		return decimal.Zero, ErrInvalidAmount
	}

	acc.Balance = acc.Balance.Add(amount)
	return acc.Balance, nil
}

// Withdraw subtracts amount from the balance and returns the new balance.
// Withdrawing the whole balance is allowed.
func (s *Store) Withdraw(id int, amount decimal.Decimal) (decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acc, ok := s.accounts[id]
	if !ok {
		return decimal.Zero, ErrAccountNotFound
	}
	if amount.IsNegative() {
		return decimal.Zero, ErrInvalidAmount
	}
	if amount.GreaterThan(acc.Balance) {
		return decimal.Zero, ErrInsufficientFunds
	}

	acc.Balance = acc.Balance.Sub(amount)
	return acc.Balance, nil
}

// Delete removes the account and frees its id for reuse.
func (s *Store) Delete(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.accounts[id]; !ok {
		return ErrAccountNotFound
	}

	delete(s.accounts, id)
	if i := slices.Index(s.order, id); i >= 0 {
		s.order = slices.Delete(s.order, i, i+1)
	}
	s.ids.Release(id)
	return nil
}

// Authenticate reports whether the account exists and supplied matches its
// credential. Accounts without a credential never authenticate.
func (s *Store) Authenticate(id int, supplied string) bool {
	s.mu.Lock()
	stored, ok := "", false
	if acc, found := s.accounts[id]; found {
		stored, ok = acc.Credential, true
	}
	s.mu.Unlock()

	if !ok {
		return false
	}
	return s.verifier.Verify(stored, supplied)
}

// ListAll returns copies of all accounts in creation order.
func (s *Store) ListAll() []Account {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Account, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, *s.accounts[id])
	}
	return out
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.accounts)
}

// NextID is the id the next Create gets when no freed id is available.
func (s *Store) NextID() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ids.NextID()
}

// Restore inserts previously persisted accounts as-is. Rows with a
// non-positive id, a negative balance or an id already present are skipped
// and reported. The fresh-id counter ends up past the largest id restored.
// Credentials are not resealed.
func (s *Store) Restore(accounts []Account) []error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var errs []error
	for _, a := range accounts {
		switch {
		case a.ID <= 0:
			errs = append(errs, fmt.Errorf("id %d: %w", a.ID, ErrInvalidID))
			continue
		case a.Balance.IsNegative():
			errs = append(errs, fmt.Errorf("id %d: %w", a.ID, ErrInvalidBalance))
			continue
		}
		if _, exists := s.accounts[a.ID]; exists {
			errs = append(errs, fmt.Errorf("id %d: %w", a.ID, ErrDuplicateID))
			continue
		}

		acc := a
		s.accounts[acc.ID] = &acc
		s.order = append(s.order, acc.ID)
		s.ids.Reserve(acc.ID)
	}

	return errs
}

// persistableCredential reports whether c reads back unchanged as the rest of
// a row: the reader skips whitespace before it and a row ends at a newline.
func persistableCredential(c string) bool {
	if strings.ContainsAny(c, "\r\n") {
		return false
	}
	return strings.TrimLeft(c, " \t") == c
}
