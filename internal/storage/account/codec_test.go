package account

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -- DecodeLine tests --

func TestDecodeLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Account
	}{
		{
			name: "all fields",
			line: "1001 Alice 150.5 pw1",
			want: Account{ID: 1001, HolderName: "Alice", Balance: dec("150.5"), Credential: "pw1"},
		},
		{
			name: "empty credential with trailing separator",
			line: "1002 Bob 0 ",
			want: Account{ID: 1002, HolderName: "Bob", Balance: dec("0")},
		},
		{
			name: "empty credential without trailing separator",
			line: "1002 Bob 0",
			want: Account{ID: 1002, HolderName: "Bob", Balance: dec("0")},
		},
		{
			name: "credential keeps inner spaces",
			line: "1003 Carol 12 open sesame",
			want: Account{ID: 1003, HolderName: "Carol", Balance: dec("12"), Credential: "open sesame"},
		},
		{
			name: "exponent balance",
			line: "1004 Dave 1.23457e+06 pw",
			want: Account{ID: 1004, HolderName: "Dave", Balance: dec("1234570"), Credential: "pw"},
		},
		{
			name: "carriage return stripped",
			line: "1005 Erin 3 pw\r",
			want: Account{ID: 1005, HolderName: "Erin", Balance: dec("3"), Credential: "pw"},
		},
		{
			name: "escaped name",
			line: "1006 Mary%20Ann 3 pw",
			want: Account{ID: 1006, HolderName: "Mary Ann", Balance: dec("3"), Credential: "pw"},
		},
		{
			name: "bare percent in legacy name",
			line: "1007 50%off 3 pw",
			want: Account{ID: 1007, HolderName: "50%off", Balance: dec("3"), Credential: "pw"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeLine(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.want.ID, got.ID)
			assert.Equal(t, tt.want.HolderName, got.HolderName)
			assert.True(t, tt.want.Balance.Equal(got.Balance), "balance %s", got.Balance)
			assert.Equal(t, tt.want.Credential, got.Credential)
		})
	}
}

func TestDecodeLine_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		wantErr error
	}{
		{"missing balance", "1001 Alice", ErrMalformedLine},
		{"non numeric id", "abc Alice 10 pw", ErrMalformedLine},
		{"non numeric balance", "1001 Alice ten pw", ErrInvalidBalance},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeLine(tt.line)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// -- EncodeLine tests --

func TestEncodeLine(t *testing.T) {
	assert.Equal(t, "1001 Alice 150.5 pw1\n",
		EncodeLine(Account{ID: 1001, HolderName: "Alice", Balance: dec("150.50"), Credential: "pw1"}))
	assert.Equal(t, "1002 Bob 0 \n",
		EncodeLine(Account{ID: 1002, HolderName: "Bob", Balance: dec("0")}))
	assert.Equal(t, "1003 Mary%20Ann%2510 1 x\n",
		EncodeLine(Account{ID: 1003, HolderName: "Mary Ann%10", Balance: dec("1"), Credential: "x"}))
}

// -- ReadAll / WriteAll tests --

func TestReadAll_SkipsBlankAndReportsBadLines(t *testing.T) {
	input := strings.Join([]string{
		"1001 Alice 100 pw1",
		"",
		"   ",
		"garbage",
		"1002 Bob 5 ",
	}, "\n")

	accounts, rowErrs, err := ReadAll(strings.NewReader(input))

	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.Equal(t, 1001, accounts[0].ID)
	assert.Equal(t, 1002, accounts[1].ID)

	require.Len(t, rowErrs, 1)
	var lineErr *LineError
	require.True(t, errors.As(rowErrs[0], &lineErr))
	assert.Equal(t, 4, lineErr.Line)
	assert.ErrorIs(t, rowErrs[0], ErrMalformedLine)
}

func TestWriteAllReadAll_RoundTrip(t *testing.T) {
	in := []Account{
		{ID: 1001, HolderName: "Alice", Balance: dec("100.25"), Credential: "pw1"},
		{ID: 1003, HolderName: "Bob", Balance: dec("0"), Credential: ""},
		{ID: 1002, HolderName: "Mary Ann", Balance: dec("0.01"), Credential: "two words"},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteAll(&buf, in))

	out, rowErrs, err := ReadAll(&buf)
	require.NoError(t, err)
	require.Empty(t, rowErrs)
	require.Len(t, out, len(in))
	for i := range in {
		assert.Equal(t, in[i].ID, out[i].ID)
		assert.Equal(t, in[i].HolderName, out[i].HolderName)
		assert.True(t, in[i].Balance.Equal(out[i].Balance))
		assert.Equal(t, in[i].Credential, out[i].Credential)
	}
}
