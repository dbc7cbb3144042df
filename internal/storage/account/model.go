package account

import (
	"github.com/shopspring/decimal"
)

// FirstID is the id handed to the first account of an empty store.
const FirstID = 1001

// Account represents an account record.
type Account struct {
	ID         int
	HolderName string
	Balance    decimal.Decimal
	Credential string
}

// CredentialVerifier seals credentials before they are stored and checks
// supplied credentials against stored ones.
type CredentialVerifier interface {
	Seal(plain string) (string, error)
	Verify(stored, supplied string) bool
}

// HasCredential reports whether a credential was ever set on the account.
func (a Account) HasCredential() bool {
	return a.Credential != ""
}
