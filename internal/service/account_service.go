package service

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/bank-console/internal/operator/actions"
	"github.com/carson-networks/bank-console/internal/storage/account"
)

const defaultAccountLimit = 20

var (
	ErrAccountNotFound   = account.ErrAccountNotFound
	ErrInvalidAmount     = account.ErrInvalidAmount
	ErrInsufficientFunds = account.ErrInsufficientFunds
	ErrInvalidHolderName = account.ErrInvalidHolderName
	ErrInvalidCredential = account.ErrInvalidCredential
)

// actionProcessor runs store mutations one at a time.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// accountReader is the read side of the account store.
type accountReader interface {
	Find(id int) (account.Account, bool)
	ListAll() []account.Account
	Authenticate(id int, credential string) bool
}

// AccountService handles account business logic.
type AccountService struct {
	operator actionProcessor
	store    accountReader
}

// NewAccountService creates a new AccountService.
func NewAccountService(op actionProcessor, store accountReader) *AccountService {
	return &AccountService{operator: op, store: store}
}

// CreateAccount opens an account and returns it with its assigned id.
func (s *AccountService) CreateAccount(ctx context.Context, input NewAccount) (Account, error) {
	name := strings.TrimSpace(input.HolderName)
	if name == "" {
		return Account{}, ErrInvalidHolderName
	}

	action := &actions.CreateAccount{
		HolderName:      name,
		StartingBalance: input.StartingBalance,
		Credential:      input.Credential,
	}
	if err := s.operator.Process(ctx, action); err != nil {
		return Account{}, err
	}

	return accountFromStorage(action.Created), nil
}

// GetAccount retrieves an account by ID.
func (s *AccountService) GetAccount(ctx context.Context, id int) (*Account, error) {
	row, ok := s.store.Find(id)
	if !ok {
		return nil, ErrAccountNotFound
	}
	acc := accountFromStorage(row)
	return &acc, nil
}

// Deposit adds amount to the account and returns the new balance.
func (s *AccountService) Deposit(ctx context.Context, id int, amount decimal.Decimal) (decimal.Decimal, error) {
	action := &actions.Deposit{AccountID: id, Amount: amount}
	if err := s.operator.Process(ctx, action); err != nil {
		return decimal.Zero, err
	}
	return action.NewBalance, nil
}

// Withdraw removes amount from the account and returns the new balance.
func (s *AccountService) Withdraw(ctx context.Context, id int, amount decimal.Decimal) (decimal.Decimal, error) {
	action := &actions.Withdraw{AccountID: id, Amount: amount}
	if err := s.operator.Process(ctx, action); err != nil {
		return decimal.Zero, err
	}
	return action.NewBalance, nil
}

// DeleteAccount removes the account; its id becomes available for reuse.
func (s *AccountService) DeleteAccount(ctx context.Context, id int) error {
	return s.operator.Process(ctx, &actions.DeleteAccount{AccountID: id})
}

// Authenticate checks an account holder's credential.
func (s *AccountService) Authenticate(ctx context.Context, id int, credential string) bool {
	return s.store.Authenticate(id, credential)
}

// ListAccounts returns a page of accounts in creation order using cursor pagination.
func (s *AccountService) ListAccounts(ctx context.Context, cursor *AccountCursor) ([]Account, *AccountCursor, error) {
	limit := defaultAccountLimit
	offset := 0
	if cursor != nil {
		if cursor.Limit > 0 {
			limit = cursor.Limit
		}
		offset = cursor.Position
	}

	rows := s.store.ListAll()
	if offset >= len(rows) {
		return nil, nil, nil
	}
	rows = rows[offset:]

	var nextCursor *AccountCursor
	if len(rows) > limit {
		rows = rows[:limit]
		nextCursor = &AccountCursor{
			Position: offset + limit,
			Limit:    limit,
		}
	}

	convertedAccounts := make([]Account, len(rows))
	for i, row := range rows {
		convertedAccounts[i] = accountFromStorage(row)
	}

	return convertedAccounts, nextCursor, nil
}
