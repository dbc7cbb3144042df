package console

import (
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// readLine prints prompt and returns the next input line without its line
// ending. io.EOF is returned once input is exhausted.
func (c *Console) readLine(prompt string) (string, error) {
	c.printf("%s", prompt)
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimRight(c.in.Text(), "\r"), nil
}

// readChoice reads a menu selection. Unparseable input yields 0, which no
// menu accepts.
func (c *Console) readChoice(prompt string) (int, error) {
	line, err := c.readLine(prompt)
	if err != nil {
		return 0, err
	}
	choice, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, nil
	}
	return choice, nil
}

func (c *Console) readAccountID(prompt string) (int, error) {
	line, err := c.readLine(prompt)
	for err == nil {
		id, convErr := strconv.Atoi(strings.TrimSpace(line))
		if convErr == nil {
			return id, nil
		}
		line, err = c.readLine("Invalid input. Please enter a valid account number: ")
	}
	return 0, err
}

// readAmount re-prompts until a non-negative decimal amount is entered.
func (c *Console) readAmount(prompt string) (decimal.Decimal, error) {
	line, err := c.readLine(prompt)
	for err == nil {
		amount, parseErr := decimal.NewFromString(strings.TrimSpace(line))
		if parseErr == nil && !amount.IsNegative() {
			return amount, nil
		}
		line, err = c.readLine("Invalid input. Please enter a non-negative amount: ")
	}
	return decimal.Zero, err
}

func (c *Console) readHolderName(prompt string) (string, error) {
	line, err := c.readLine(prompt)
	for err == nil {
		if name := strings.TrimSpace(line); name != "" {
			return name, nil
		}
		line, err = c.readLine("Name must not be empty. Enter account holder's name: ")
	}
	return "", err
}
