package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/bank-console/internal/credential"
)

const envPrefix = "BANK_"

type Config struct {
	AccountsFile     string `koanf:"accounts_file"`
	AdminPassword    string `koanf:"admin_password"`
	LogLevel         string `koanf:"log_level"`
	LogFile          string `koanf:"log_file"`
	CredentialScheme string `koanf:"credential_scheme"`
	PageSize         int    `koanf:"page_size"`
	Workers          int    `koanf:"workers"`
}

func defaults() map[string]interface{} {
	// The defaults reproduce the behaviour of the original console tool
	return map[string]interface{}{
		"accounts_file":     "accounts.txt",
		"admin_password":    "admin123",
		"log_level":         "warn",
		"log_file":          "",
		"credential_scheme": credential.SchemePlaintext,
		"page_size":         20,
		"workers":           1,
	}
}

// Load builds the Config from defaults, then the YAML file at path (skipped
// when path is empty), then BANK_* environment variables.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	envProvider := env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	var errs []error

	if c.AccountsFile == "" {
		errs = append(errs, errors.New("accounts_file must be set"))
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("log_level: %w", err))
	}
	if _, err := credential.New(c.CredentialScheme); err != nil {
		errs = append(errs, fmt.Errorf("credential_scheme: %w", err))
	}
	if c.PageSize < 1 {
		errs = append(errs, fmt.Errorf("page_size must be positive, got %d", c.PageSize))
	}
	if c.Workers < 1 {
		errs = append(errs, fmt.Errorf("workers must be positive, got %d", c.Workers))
	}

	return errors.Join(errs...)
}
