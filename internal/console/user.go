package console

import (
	"context"
	"errors"

	"github.com/carson-networks/bank-console/internal/logging"
	"github.com/carson-networks/bank-console/internal/service"
)

// userMenu serves an authenticated account holder; every command is bound
// to accountID.
func (c *Console) userMenu(ctx context.Context, accountID int) error {
	bound := func(command func(context.Context, *logging.LogData, int) error) func(context.Context, *logging.LogData) error {
		return func(ctx context.Context, logData *logging.LogData) error {
			logData.AddData("accountID", accountID)
			return command(ctx, logData, accountID)
		}
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		c.println("\nUser Menu")
		c.println("1. Deposit Money")
		c.println("2. Withdraw Money")
		c.println("3. Balance Inquiry")
		c.println("4. Logout")
		choice, err := c.readChoice("Enter your choice: ")
		if err != nil {
			return err
		}

		switch choice {
		case 1:
			err = c.run(ctx, "UserDeposit", bound(c.deposit))
		case 2:
			err = c.run(ctx, "UserWithdraw", bound(c.withdraw))
		case 3:
			err = c.run(ctx, "UserBalanceInquiry", bound(c.balanceInquiry))
		case 4:
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

func (c *Console) deposit(ctx context.Context, logData *logging.LogData, id int) error {
	amount, err := c.readAmount("Enter amount to deposit: ")
	if err != nil {
		return err
	}

	balance, err := c.accounts.Deposit(ctx, id, amount)
	if errors.Is(err, service.ErrAccountNotFound) {
		logData.AddData("outcome", "notFound")
		c.println("Account not found.")
		return nil
	}
	if err != nil {
		return err
	}

	logData.AddData("amount", amount.String())
	c.printf("Deposited successfully. New balance: %s\n", formatAmount(balance))
	return nil
}

func (c *Console) withdraw(ctx context.Context, logData *logging.LogData, id int) error {
	amount, err := c.readAmount("Enter amount to withdraw: ")
	if err != nil {
		return err
	}

	balance, err := c.accounts.Withdraw(ctx, id, amount)
	switch {
	case errors.Is(err, service.ErrInsufficientFunds):
		logData.AddData("outcome", "insufficientFunds")
		c.println("Insufficient balance.")
		return nil
	case errors.Is(err, service.ErrAccountNotFound):
		logData.AddData("outcome", "notFound")
		c.println("Account not found.")
		return nil
	case err != nil:
		return err
	}

	logData.AddData("amount", amount.String())
	c.printf("Withdrawn successfully. New balance: %s\n", formatAmount(balance))
	return nil
}

func (c *Console) balanceInquiry(ctx context.Context, logData *logging.LogData, id int) error {
	acc, err := c.lookup(ctx, id)
	if acc == nil || err != nil {
		return err
	}

	c.printf("Account Number: %d\n", acc.ID)
	c.printf("Balance: %s\n", formatAmount(acc.Balance))
	return nil
}
