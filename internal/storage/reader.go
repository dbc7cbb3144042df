package storage

import (
	"bytes"
	"context"

	"github.com/sirupsen/logrus"
	"github.com/viant/afs"

	"github.com/carson-networks/bank-console/internal/storage/account"
)

type Reader struct {
	fs  afs.Service
	url string
	log *logrus.Entry
}

// Load builds the store from the accounts file. A missing or unreadable file
// yields an empty store; rows that cannot be loaded are skipped. Neither is
// fatal, both are logged.
func (r *Reader) Load(ctx context.Context, opts ...account.StoreOption) *account.Store {
	store := account.NewStore(opts...)

	data, err := r.fs.DownloadWithURL(ctx, r.url)
	if err != nil {
		r.log.WithError(err).Warn("Storage.Load.unreadable, starting with no accounts")
		return store
	}

	accounts, rowErrs, err := account.ReadAll(bytes.NewReader(data))
	if err != nil {
		r.log.WithError(err).Warn("Storage.Load.read error, starting with no accounts")
		return account.NewStore(opts...)
	}

	rowErrs = append(rowErrs, store.Restore(accounts)...)
	for _, rowErr := range rowErrs {
		r.log.WithError(rowErr).Warn("Storage.Load.skipped row")
	}

	r.log.WithFields(logrus.Fields{
		"loadedAccounts": store.Len(),
		"skippedRows":    len(rowErrs),
		"nextID":         store.NextID(),
	}).Info("Storage.Load.complete")

	return store
}
