package account

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

var nameEscaper = strings.NewReplacer(
	"%", "%25",
	" ", "%20",
	"\t", "%09",
	"\n", "%0A",
	"\r", "%0D",
)

// Writer encodes accounts one per line in the order they are given.
type Writer struct {
	w *bufio.Writer
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

func (w *Writer) Write(acc Account) error {
	_, err := w.w.WriteString(EncodeLine(acc))
	return err
}

// Flush must be called once all accounts are written.
func (w *Writer) Flush() error {
	return w.w.Flush()
}

// WriteAll writes every account and flushes.
func WriteAll(out io.Writer, accounts []Account) error {
	w := NewWriter(out)
	for _, acc := range accounts {
		if err := w.Write(acc); err != nil {
			return err
		}
	}
	return w.Flush()
}

// EncodeLine renders acc as a newline-terminated row. An empty credential
// leaves a trailing separator after the balance.
func EncodeLine(acc Account) string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(acc.ID))
	b.WriteByte(' ')
	b.WriteString(escapeName(acc.HolderName))
	b.WriteByte(' ')
	b.WriteString(acc.Balance.String())
	b.WriteByte(' ')
	b.WriteString(acc.Credential)
	b.WriteByte('\n')
	return b.String()
}

func escapeName(name string) string {
	return nameEscaper.Replace(name)
}
