package storage

import (
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/viant/afs"

	"github.com/carson-networks/bank-console/internal/config"
)

const fileMode = 0o600

// Storage persists the account store as a flat file: Reader loads it once
// at start, Writer rewrites it in full at exit.
type Storage struct {
	Reader *Reader
	Writer *Writer
}

func NewStorage(env *config.Config, logger *logrus.Logger) *Storage {
	return newStorage(afs.New(), resolveURL(env.AccountsFile), logger)
}

func newStorage(fs afs.Service, url string, logger *logrus.Logger) *Storage {
	entry := logger.WithField("accountsFile", url)
	return &Storage{
		Reader: &Reader{fs: fs, url: url, log: entry},
		Writer: &Writer{fs: fs, url: url, log: entry},
	}
}

// resolveURL turns a relative path into an absolute one so afs does not
// resolve it against anything but the working directory.
func resolveURL(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}
