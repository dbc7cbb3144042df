package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/carson-networks/bank-console/internal/config"
	"github.com/carson-networks/bank-console/internal/console"
	"github.com/carson-networks/bank-console/internal/credential"
	"github.com/carson-networks/bank-console/internal/logging"
	"github.com/carson-networks/bank-console/internal/operator"
	"github.com/carson-networks/bank-console/internal/service"
	"github.com/carson-networks/bank-console/internal/storage"
	"github.com/carson-networks/bank-console/internal/storage/account"
)

func main() {
	app := &cli.App{
		Name:  "bank-console",
		Usage: "manage bank accounts kept in a flat file",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "YAML config file", EnvVars: []string{"BANK_CONFIG"}},
			&cli.StringFlag{Name: "file", Aliases: []string{"f"}, Usage: "accounts file (default accounts.txt)"},
			&cli.StringFlag{Name: "log-level", Usage: "panic, fatal, error, warn, info, debug or trace"},
			&cli.StringFlag{Name: "log-file", Usage: "append logs to this file instead of stderr"},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		logrus.WithError(err).Fatal("bank-console")
	}
}

func loadConfig(cliCtx *cli.Context) (*config.Config, error) {
	envConfig, err := config.Load(cliCtx.String("config"))
	if err != nil {
		return nil, err
	}

	if cliCtx.IsSet("file") {
		envConfig.AccountsFile = cliCtx.String("file")
	}
	if cliCtx.IsSet("log-level") {
		envConfig.LogLevel = cliCtx.String("log-level")
	}
	if cliCtx.IsSet("log-file") {
		envConfig.LogFile = cliCtx.String("log-file")
	}

	if err := envConfig.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return envConfig, nil
}

func run(cliCtx *cli.Context) error {
	envConfig, err := loadConfig(cliCtx)
	if err != nil {
		return err
	}

	var logOut io.Writer = os.Stderr
	if envConfig.LogFile != "" {
		logFile, err := os.OpenFile(envConfig.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer logFile.Close()
		logOut = logFile
	}

	level, _ := logrus.ParseLevel(envConfig.LogLevel)
	logger := logging.SetupLogging(level, logOut)
	logger.Info("bank-console starting")

	verifier, err := credential.New(envConfig.CredentialScheme)
	if err != nil {
		return err
	}

	fileStorage := storage.NewStorage(envConfig, logger)
	// Loading is not cancellable: a half-read file would be saved back empty.
	store := fileStorage.Reader.Load(context.Background(), account.WithVerifier(verifier))

	delegator := operator.NewOperatorDelegator(store, envConfig.Workers)
	delegator.Start()
	svc := service.NewService(delegator, store)

	ctx, stop := signal.NotifyContext(cliCtx.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	session := logger.WithField("session", uuid.Must(uuid.NewV4()).String())
	c := console.New(os.Stdin, os.Stdout, svc.Account, console.Options{
		AdminPassword: envConfig.AdminPassword,
		PageSize:      envConfig.PageSize,
	}, session)

	done := make(chan error, 1)
	go func() {
		done <- c.Run(ctx)
	}()

	select {
	case err = <-done:
		delegator.Stop()
		if err != nil && !errors.Is(err, context.Canceled) {
			session.WithError(err).Error("Console.Run.error")
		}
	case <-ctx.Done():
		// The console goroutine may be blocked on stdin; the store is saved
		// regardless and the process exits with it still parked.
		session.Warn("bank-console interrupted, saving accounts")
	}

	// Save failures are logged by the writer and do not change the exit status.
	_ = fileStorage.Writer.Save(context.Background(), store)

	logger.Info("bank-console stopped")
	return nil
}
