package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, "accounts.txt", cfg.AccountsFile)
	assert.Equal(t, "admin123", cfg.AdminPassword)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "plaintext", cfg.CredentialScheme)
	assert.Equal(t, 20, cfg.PageSize)
	assert.Equal(t, 1, cfg.Workers)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_FileThenEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bank.yaml")
	content := "accounts_file: /var/lib/bank/accounts.txt\nlog_level: debug\npage_size: 5\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv("BANK_LOG_LEVEL", "info")
	t.Setenv("BANK_ADMIN_PASSWORD", "s3cret")

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "/var/lib/bank/accounts.txt", cfg.AccountsFile)
	assert.Equal(t, "info", cfg.LogLevel, "environment overrides file")
	assert.Equal(t, "s3cret", cfg.AdminPassword)
	assert.Equal(t, 5, cfg.PageSize)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))

	assert.Error(t, err)
}

func TestValidate_Errors(t *testing.T) {
	cfg := &Config{
		AccountsFile:     "",
		LogLevel:         "loud",
		CredentialScheme: "rot13",
		PageSize:         0,
		Workers:          0,
	}

	err := cfg.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "accounts_file")
	assert.Contains(t, err.Error(), "log_level")
	assert.Contains(t, err.Error(), "credential_scheme")
	assert.Contains(t, err.Error(), "page_size")
	assert.Contains(t, err.Error(), "workers")
}
