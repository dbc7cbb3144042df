package console

import (
	"context"
	"errors"

	"github.com/carson-networks/bank-console/internal/logging"
	"github.com/carson-networks/bank-console/internal/service"
)

func (c *Console) adminMenu(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		c.println("\nAdmin Menu")
		c.println("1. Create New Account")
		c.println("2. Show All Accounts")
		c.println("3. Search Account")
		c.println("4. Deposit Money")
		c.println("5. Withdraw Money")
		c.println("6. Delete Account")
		c.println("7. Balance Inquiry")
		c.println("8. Logout")
		choice, err := c.readChoice("Enter your choice: ")
		if err != nil {
			return err
		}

		switch choice {
		case 1:
			err = c.run(ctx, "CreateAccount", c.createAccount)
		case 2:
			err = c.run(ctx, "ShowAllAccounts", c.showAllAccounts)
		case 3:
			err = c.run(ctx, "SearchAccount", c.searchAccount)
		case 4:
			err = c.run(ctx, "Deposit", c.adminDeposit)
		case 5:
			err = c.run(ctx, "Withdraw", c.adminWithdraw)
		case 6:
			err = c.run(ctx, "DeleteAccount", c.deleteAccount)
		case 7:
			err = c.run(ctx, "BalanceInquiry", c.adminBalanceInquiry)
		case 8:
			c.println("Logging out...")
			return nil
		default:
			c.println("Invalid choice. Please try again.")
		}
		if err != nil {
			return err
		}
	}
}

func (c *Console) createAccount(ctx context.Context, logData *logging.LogData) error {
	name, err := c.readHolderName("Enter account holder's name: ")
	if err != nil {
		return err
	}
	balance, err := c.readAmount("Enter initial deposit amount: ")
	if err != nil {
		return err
	}
	password, err := c.readLine("Enter password for the account: ")
	if err != nil {
		return err
	}

	acc, err := c.accounts.CreateAccount(ctx, service.NewAccount{
		HolderName:      name,
		StartingBalance: balance,
		Credential:      password,
	})
	if err != nil {
		return err
	}

	logData.AddData("accountID", acc.ID)
	c.printf("Account created successfully with account number: %d\n", acc.ID)
	return nil
}

func (c *Console) showAllAccounts(ctx context.Context, logData *logging.LogData) error {
	cursor := &service.AccountCursor{Limit: c.pageSize}
	shown := 0

	for cursor != nil {
		page, next, err := c.accounts.ListAccounts(ctx, cursor)
		if err != nil {
			return err
		}
		if shown == 0 && len(page) == 0 {
			c.println("No accounts available.")
			break
		}
		if shown == 0 {
			c.writeAccountTableHeader()
		}
		c.writeAccountRows(page)
		shown += len(page)
		cursor = next
	}

	logData.AddData("accounts", shown)
	return nil
}

func (c *Console) searchAccount(ctx context.Context, logData *logging.LogData) error {
	id, err := c.readAccountID("Enter account number to search: ")
	if err != nil {
		return err
	}
	logData.AddData("accountID", id)

	acc, err := c.lookup(ctx, id)
	if acc == nil || err != nil {
		return err
	}

	c.printf("Account Number: %d\n", acc.ID)
	c.printf("Account Holder's Name: %s\n", acc.HolderName)
	c.printf("Balance: %s\n", formatAmount(acc.Balance))
	return nil
}

func (c *Console) adminDeposit(ctx context.Context, logData *logging.LogData) error {
	id, err := c.readAccountID("Enter account number to deposit into: ")
	if err != nil {
		return err
	}
	logData.AddData("accountID", id)

	acc, err := c.lookup(ctx, id)
	if acc == nil || err != nil {
		return err
	}
	return c.deposit(ctx, logData, id)
}

func (c *Console) adminWithdraw(ctx context.Context, logData *logging.LogData) error {
	id, err := c.readAccountID("Enter account number to withdraw from: ")
	if err != nil {
		return err
	}
	logData.AddData("accountID", id)

	acc, err := c.lookup(ctx, id)
	if acc == nil || err != nil {
		return err
	}
	return c.withdraw(ctx, logData, id)
}

func (c *Console) deleteAccount(ctx context.Context, logData *logging.LogData) error {
	id, err := c.readAccountID("Enter account number to delete: ")
	if err != nil {
		return err
	}
	logData.AddData("accountID", id)

	err = c.accounts.DeleteAccount(ctx, id)
	if errors.Is(err, service.ErrAccountNotFound) {
		logData.AddData("outcome", "notFound")
		c.println("Account not found.")
		return nil
	}
	if err != nil {
		return err
	}

	c.println("Account deleted successfully.")
	return nil
}

func (c *Console) adminBalanceInquiry(ctx context.Context, logData *logging.LogData) error {
	id, err := c.readAccountID("Enter account number to check balance: ")
	if err != nil {
		return err
	}
	logData.AddData("accountID", id)
	return c.balanceInquiry(ctx, logData, id)
}

// lookup returns the account, or nil after telling the operator it does not exist.
func (c *Console) lookup(ctx context.Context, id int) (*service.Account, error) {
	acc, err := c.accounts.GetAccount(ctx, id)
	if errors.Is(err, service.ErrAccountNotFound) {
		if logData := logging.GetLogData(ctx); logData != nil {
			logData.AddData("outcome", "notFound")
		}
		c.println("Account not found.")
		return nil, nil
	}
	return acc, err
}
