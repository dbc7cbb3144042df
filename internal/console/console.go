// Package console is the operator-facing menu loop. It owns all user-facing
// text and talks to the accounts only through the account service.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/bank-console/internal/credential"
	"github.com/carson-networks/bank-console/internal/logging"
	"github.com/carson-networks/bank-console/internal/service"
)

// accountService is the subset of service.AccountService the console uses.
type accountService interface {
	CreateAccount(ctx context.Context, input service.NewAccount) (service.Account, error)
	GetAccount(ctx context.Context, id int) (*service.Account, error)
	Deposit(ctx context.Context, id int, amount decimal.Decimal) (decimal.Decimal, error)
	Withdraw(ctx context.Context, id int, amount decimal.Decimal) (decimal.Decimal, error)
	DeleteAccount(ctx context.Context, id int) error
	Authenticate(ctx context.Context, id int, credential string) bool
	ListAccounts(ctx context.Context, cursor *service.AccountCursor) ([]service.Account, *service.AccountCursor, error)
}

const maxInputLineBytes = 1 << 20

type Options struct {
	AdminPassword string
	PageSize      int
}

type Console struct {
	in            *bufio.Scanner
	out           io.Writer
	accounts      accountService
	adminPassword string
	pageSize      int
	log           *logrus.Entry
}

func New(in io.Reader, out io.Writer, accounts accountService, opts Options, log *logrus.Entry) *Console {
	pageSize := opts.PageSize
	if pageSize < 1 {
		pageSize = 20
	}
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 4096), maxInputLineBytes)
	return &Console{
		in:            scanner,
		out:           out,
		accounts:      accounts,
		adminPassword: opts.AdminPassword,
		pageSize:      pageSize,
		log:           log,
	}
}

// Run shows the main menu until the operator exits, input ends or ctx is
// cancelled. End of input is a normal exit.
func (c *Console) Run(ctx context.Context) error {
	err := c.mainMenu(ctx)
	if errors.Is(err, io.EOF) {
		c.println()
		return nil
	}
	return err
}

func (c *Console) mainMenu(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		c.println("\nBank Management System")
		c.println("1. Login as Admin")
		c.println("2. Login as User")
		c.println("3. Exit")
		choice, err := c.readChoice("Enter your choice: ")
		if err != nil {
			return err
		}

		switch choice {
		case 1:
			err = c.loginAsAdmin(ctx)
		case 2:
			err = c.loginAsUser(ctx)
		case 3:
			c.println("Exiting...")
			return nil
		default:
			c.println("Invalid choice. Please try again.")
		}
		if err != nil {
			return err
		}
	}
}

func (c *Console) loginAsAdmin(ctx context.Context) error {
	password, err := c.readLine("Enter admin password: ")
	if err != nil {
		return err
	}

	if !(credential.Plaintext{}).Verify(c.adminPassword, password) {
		c.log.Warn("Console.loginAsAdmin.rejected")
		c.println("Invalid admin password.")
		return nil
	}

	c.log.Info("Console.loginAsAdmin.accepted")
	return c.adminMenu(ctx)
}

func (c *Console) loginAsUser(ctx context.Context) error {
	id, err := c.readAccountID("Enter account number: ")
	if err != nil {
		return err
	}
	password, err := c.readLine("Enter password: ")
	if err != nil {
		return err
	}

	if !c.accounts.Authenticate(ctx, id, password) {
		c.log.WithField("accountID", id).Warn("Console.loginAsUser.rejected")
		c.println("Invalid account number or password.")
		return nil
	}

	c.log.WithField("accountID", id).Info("Console.loginAsUser.accepted")
	return c.userMenu(ctx, id)
}

// run executes a menu command through the logging wrapper. Failures the
// operator has already been told about are absorbed so the menu continues;
// end of input and cancellation end the session.
func (c *Console) run(ctx context.Context, name string, command func(ctx context.Context, logData *logging.LogData) error) error {
	err := logging.CommandWrapper(name, c.log, command)(ctx)
	if err == nil {
		return nil
	}
	if errors.Is(err, io.EOF) || ctx.Err() != nil {
		return err
	}
	c.printf("Operation failed: %v\n", err)
	return nil
}

func (c *Console) println(a ...interface{}) {
	_, _ = fmt.Fprintln(c.out, a...)
}

func (c *Console) printf(format string, a ...interface{}) {
	_, _ = fmt.Fprintf(c.out, format, a...)
}
