package storage

import (
	"bytes"
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/viant/afs"

	"github.com/carson-networks/bank-console/internal/storage/account"
)

type Writer struct {
	fs  afs.Service
	url string
	log *logrus.Entry
}

// Save truncates the accounts file and writes every account in creation
// order. A failure is logged and returned; the in-memory store is untouched.
func (w *Writer) Save(ctx context.Context, store *account.Store) error {
	accounts := store.ListAll()

	var buf bytes.Buffer
	if err := account.WriteAll(&buf, accounts); err != nil {
		w.log.WithError(err).Error("Storage.Save.encode error")
		return fmt.Errorf("encode accounts: %w", err)
	}

	if err := w.fs.Upload(ctx, w.url, fileMode, &buf); err != nil {
		w.log.WithError(err).Error("Storage.Save.write error, changes not persisted")
		return fmt.Errorf("write %s: %w", w.url, err)
	}

	w.log.WithField("savedAccounts", len(accounts)).Info("Storage.Save.complete")
	return nil
}
