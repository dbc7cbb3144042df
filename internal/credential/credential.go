// Package credential holds the only place account credentials are compared.
//
// Plaintext keeps credentials as entered, which is what existing account files
// contain. Bcrypt stores a salted hash instead; switching an existing file to it
// locks out every account whose credential was written in clear text.
package credential

import (
	"crypto/subtle"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const (
	SchemePlaintext = "plaintext"
	SchemeBcrypt    = "bcrypt"
)

var ErrUnknownScheme = errors.New("unknown credential scheme")

// Verifier seals credentials for storage and checks supplied ones.
// An empty stored credential means "unset" and never verifies.
type Verifier interface {
	Seal(plain string) (string, error)
	Verify(stored, supplied string) bool
}

// New returns the Verifier for the named scheme.
func New(scheme string) (Verifier, error) {
	switch scheme {
	case "", SchemePlaintext:
		return Plaintext{}, nil
	case SchemeBcrypt:
		return Bcrypt{Cost: bcrypt.DefaultCost}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownScheme, scheme)
	}
}

// Plaintext stores credentials verbatim and requires an exact match.
type Plaintext struct{}

func (Plaintext) Seal(plain string) (string, error) {
	return plain, nil
}

func (Plaintext) Verify(stored, supplied string) bool {
	if stored == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(supplied)) == 1
}

// Bcrypt stores a bcrypt hash of the credential.
type Bcrypt struct {
	Cost int
}

func (b Bcrypt) Seal(plain string) (string, error) {
	if plain == "" {
		return "", nil
	}
	cost := b.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", fmt.Errorf("bcrypt.GenerateFromPassword: %w", err)
	}
	return string(hash), nil
}

func (Bcrypt) Verify(stored, supplied string) bool {
	if stored == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(supplied)) == nil
}
