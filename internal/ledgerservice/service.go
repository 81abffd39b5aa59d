// Package ledgerservice manages business logic layer of customers and their accounts.
package ledgerservice

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/go-petr/pet-ledger/pkg/amountpkg"
	"github.com/go-petr/pet-ledger/pkg/configpkg"
	"github.com/go-petr/pet-ledger/pkg/metricspkg"
)

type accountEntry struct {
	account *domain.CheckingAccount
	ownerID uuid.UUID
}

// Service keeps customers and accounts in memory.
//
// A single mutex guards every account, so the balance and the history of an
// account always change together.
type Service struct {
	mu         sync.Mutex
	branch     int
	limits     domain.CheckingLimits
	notifier   domain.Notifier
	metrics    metricspkg.Recorder
	customers  map[uuid.UUID]*domain.Individual
	accounts   map[int64]*accountEntry
	lastNumber int64
	total      decimal.Decimal
}

// New returns ledger service struct to manage ledger business logic.
func New(config configpkg.Config, notifier domain.Notifier, metrics metricspkg.Recorder) (*Service, error) {
	limits := domain.DefaultCheckingLimits()

	if config.OverdraftLimit != "" {
		overdraft, err := decimal.NewFromString(config.OverdraftLimit)
		if err != nil {
			return nil, fmt.Errorf("parse overdraft limit: %w", err)
		}

		limits.Overdraft = overdraft
	}

	if config.WithdrawalLimit > 0 {
		limits.Withdrawals = config.WithdrawalLimit
	}

	branch := domain.DefaultBranchCode
	if config.BranchCode > 0 {
		branch = config.BranchCode
	}

	if notifier == nil {
		notifier = domain.NopNotifier{}
	}

	if metrics == nil {
		metrics = metricspkg.NopRecorder{}
	}

	return &Service{
		branch:    branch,
		limits:    limits,
		notifier:  notifier,
		metrics:   metrics,
		customers: make(map[uuid.UUID]*domain.Individual),
		accounts:  make(map[int64]*accountEntry),
	}, nil
}

// CreateCustomer registers an individual customer and returns it.
func (s *Service) CreateCustomer(ctx context.Context, arg domain.CreateCustomerParams) (domain.CustomerSummary, error) {
	l := zerolog.Ctx(ctx)

	customer := domain.NewIndividual(arg.TaxID, arg.Name, arg.BirthDate, arg.Address)
	id := uuid.New()

	s.mu.Lock()
	s.customers[id] = customer
	s.mu.Unlock()

	l.Info().Str("customer_id", id.String()).Msg("customer created")

	return domain.NewCustomerSummary(id, customer), nil
}

// GetCustomer returns the customer registered under id.
func (s *Service) GetCustomer(ctx context.Context, id uuid.UUID) (domain.CustomerSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	customer, ok := s.customers[id]
	if !ok {
		return domain.CustomerSummary{}, domain.ErrCustomerNotFound
	}

	return domain.NewCustomerSummary(id, customer), nil
}

// OpenCheckingAccount opens a new checking account for the customer.
func (s *Service) OpenCheckingAccount(ctx context.Context, customerID uuid.UUID) (domain.AccountSummary, error) {
	l := zerolog.Ctx(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	customer, ok := s.customers[customerID]
	if !ok {
		return domain.AccountSummary{}, domain.ErrCustomerNotFound
	}

	s.lastNumber++

	account := domain.NewCheckingAccount(
		s.lastNumber,
		customer.Customer,
		s.limits,
		domain.WithBranch(s.branch),
		domain.WithNotifier(s.notifier),
	)
	customer.AddAccount(account)

	s.accounts[account.Number()] = &accountEntry{account: account, ownerID: customerID}

	l.Info().
		Str("customer_id", customerID.String()).
		Int64("account", account.Number()).
		Msg("checking account opened")

	return domain.NewAccountSummary(customerID, account), nil
}

// GetAccount returns the account with the given number.
func (s *Service) GetAccount(ctx context.Context, number int64) (domain.AccountSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.accounts[number]
	if !ok {
		return domain.AccountSummary{}, domain.ErrAccountNotFound
	}

	return domain.NewAccountSummary(entry.ownerID, entry.account), nil
}

// ListAccounts returns the accounts of the customer ordered by number.
func (s *Service) ListAccounts(ctx context.Context, customerID uuid.UUID) ([]domain.AccountSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.customers[customerID]; !ok {
		return nil, domain.ErrCustomerNotFound
	}

	accounts := make([]domain.AccountSummary, 0)

	for _, entry := range s.accounts {
		if entry.ownerID == customerID {
			accounts = append(accounts, domain.NewAccountSummary(entry.ownerID, entry.account))
		}
	}

	sort.Slice(accounts, func(i, j int) bool {
		return accounts[i].Number < accounts[j].Number
	})

	return accounts, nil
}

// History returns the recorded transactions of the account, oldest first.
func (s *Service) History(ctx context.Context, number int64) ([]domain.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.accounts[number]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}

	return entry.account.History().Records(), nil
}

// Deposit performs a deposit of amount on the account on behalf of the customer.
func (s *Service) Deposit(ctx context.Context, customerID uuid.UUID, number int64, amount string) (domain.AccountSummary, error) {
	return s.perform(ctx, customerID, number, domain.KindDeposit, amount)
}

// Withdraw performs a withdrawal of amount from the account on behalf of the customer.
func (s *Service) Withdraw(ctx context.Context, customerID uuid.UUID, number int64, amount string) (domain.AccountSummary, error) {
	return s.perform(ctx, customerID, number, domain.KindWithdrawal, amount)
}

// perform registers the transaction through the customer. The account does
// not have to belong to the customer.
func (s *Service) perform(ctx context.Context, customerID uuid.UUID, number int64, kind domain.Kind, amount string) (domain.AccountSummary, error) {
	l := zerolog.Ctx(ctx)

	var result domain.AccountSummary

	amountDecimal, err := amountpkg.Parse(amount)
	if err != nil {
		l.Info().Err(err).Send()
		s.metrics.RecordTransaction(kind.String(), domain.ClassifyError(domain.ErrInvalidAmount))

		return result, domain.ErrInvalidAmount
	}

	tx, err := domain.NewTransaction(kind, amountDecimal)
	if err != nil {
		l.Error().Err(err).Send()
		return result, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	customer, ok := s.customers[customerID]
	if !ok {
		s.metrics.RecordTransaction(kind.String(), domain.ClassifyError(domain.ErrCustomerNotFound))
		return result, domain.ErrCustomerNotFound
	}

	entry, ok := s.accounts[number]
	if !ok {
		s.metrics.RecordTransaction(kind.String(), domain.ClassifyError(domain.ErrAccountNotFound))
		return result, domain.ErrAccountNotFound
	}

	before := entry.account.Balance()

	err = customer.PerformTransaction(entry.account, tx)
	s.metrics.RecordTransaction(kind.String(), domain.ClassifyError(err))

	if err != nil {
		l.Info().Err(err).
			Str("kind", kind.String()).
			Int64("account", number).
			Send()

		return result, err
	}

	s.total = s.total.Add(entry.account.Balance().Sub(before))
	s.metrics.RecordBranchBalance(strconv.Itoa(s.branch), s.total)

	return domain.NewAccountSummary(entry.ownerID, entry.account), nil
}
