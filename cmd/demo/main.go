// Package main registers a deposit and a series of withdrawals on a checking
// account and logs every notification the account emits.
package main

import (
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/go-petr/pet-ledger/internal/middleware"
	"github.com/go-petr/pet-ledger/internal/notifier"
	"github.com/go-petr/pet-ledger/pkg/configpkg"
)

func main() {
	config, err := configpkg.Load("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	logger := middleware.GetLogger(config)

	customer := domain.NewIndividual("12345678900", "João", time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC), "Rua XPTO")
	account := domain.NewCheckingAccount(1, customer.Customer, domain.DefaultCheckingLimits(),
		domain.WithNotifier(notifier.New(logger)))
	customer.AddAccount(account)

	transactions := []domain.Transaction{
		domain.NewDeposit(decimal.NewFromInt(1000)),
		domain.NewWithdrawal(decimal.NewFromInt(100)),
		domain.NewWithdrawal(decimal.NewFromInt(200)),
		domain.NewWithdrawal(decimal.NewFromInt(50)),
		domain.NewWithdrawal(decimal.NewFromInt(10)),
	}

	for _, tx := range transactions {
		// Rejections are already reported through the notifier.
		_ = customer.PerformTransaction(account, tx)
	}

	logger.Info().
		Str("customer", customer.Name()).
		Int64("account", account.Number()).
		Str("balance", account.Balance().StringFixed(2)).
		Int("transactions", account.History().Len()).
		Msg("final balance")
}
