package account

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

const maxLineBytes = 1 << 20

// Reader decodes accounts from the line format
//
//	<id> <holderName> <balance> <credential>
//
// where the credential is the remainder of the line and may be empty.
type Reader struct {
	scanner *bufio.Scanner
	line    int
}

func NewReader(r io.Reader) *Reader {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineBytes)
	return &Reader{scanner: scanner}
}

// Next returns the next account. Blank lines are skipped. A row that cannot
// be decoded is reported as a *LineError and reading may continue; io.EOF
// marks the end of input.
func (r *Reader) Next() (Account, error) {
	for r.scanner.Scan() {
		r.line++
		text := r.scanner.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}

		acc, err := DecodeLine(text)
		if err != nil {
			return Account{}, &LineError{Line: r.line, Err: err}
		}
		return acc, nil
	}

	if err := r.scanner.Err(); err != nil {
		return Account{}, err
	}
	return Account{}, io.EOF
}

// ReadAll decodes every row. Rows that fail to decode are collected in
// rowErrs; err is set only when the underlying reader fails.
func ReadAll(r io.Reader) (accounts []Account, rowErrs []error, err error) {
	reader := NewReader(r)
	for {
		acc, nextErr := reader.Next()
		if errors.Is(nextErr, io.EOF) {
			return accounts, rowErrs, nil
		}

		var lineErr *LineError
		if errors.As(nextErr, &lineErr) {
			rowErrs = append(rowErrs, lineErr)
			continue
		}
		if nextErr != nil {
			return accounts, rowErrs, nextErr
		}

		accounts = append(accounts, acc)
	}
}

// DecodeLine parses a single persisted row.
func DecodeLine(line string) (Account, error) {
	rest := strings.TrimRight(line, "\r\n")

	idField, rest := nextField(rest)
	nameField, rest := nextField(rest)
	balanceField, rest := nextField(rest)
	if idField == "" || nameField == "" || balanceField == "" {
		return Account{}, ErrMalformedLine
	}

	id, err := strconv.Atoi(idField)
	if err != nil {
		return Account{}, fmt.Errorf("%w: id %q", ErrMalformedLine, idField)
	}

	balance, err := decimal.NewFromString(balanceField)
	if err != nil {
		return Account{}, fmt.Errorf("%w: %q", ErrInvalidBalance, balanceField)
	}

	return Account{
		ID:         id,
		HolderName: unescapeName(nameField),
		Balance:    balance,
		Credential: strings.TrimLeft(rest, " \t"),
	}, nil
}

func isFieldSeparator(r rune) bool {
	return r == ' ' || r == '\t'
}

// nextField skips leading separators and returns the token up to the next
// separator along with everything after that single separator.
func nextField(s string) (field, rest string) {
	s = strings.TrimLeftFunc(s, isFieldSeparator)
	i := strings.IndexFunc(s, isFieldSeparator)
	if i < 0 {
		return s, ""
	}
	return s[:i], s[i+1:]
}

// unescapeName reverses escapeName. Names written before escaping existed
// may hold a bare '%'; those are returned unchanged.
func unescapeName(field string) string {
	if !strings.Contains(field, "%") {
		return field
	}
	name, err := url.PathUnescape(field)
	if err != nil {
		return field
	}
	return name
}
