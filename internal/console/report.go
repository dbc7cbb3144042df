package console

import (
	"github.com/shopspring/decimal"

	"github.com/carson-networks/bank-console/internal/service"
)

func formatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func (c *Console) writeAccountTableHeader() {
	c.println("Account Number | Name            | Balance")
	c.println("-------------------------------------------")
}

func (c *Console) writeAccountRows(accounts []service.Account) {
	for _, acc := range accounts {
		c.printf("%14d | %-15s | %10s\n", acc.ID, acc.HolderName, formatAmount(acc.Balance))
	}
}
