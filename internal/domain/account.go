// Package domain provides definitions of all ledger entities and their business rules.
package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

// DefaultBranchCode is stamped on every account unless another code is given.
const DefaultBranchCode = 1004

var (
	// ErrAccountNotFound indicates that the account is not found.
	ErrAccountNotFound = errors.New("account not found")
)

// Ledger is an account that transactions can be registered against.
type Ledger interface {
	Number() int64
	Branch() int
	Balance() decimal.Decimal
	Customer() *Customer
	History() *History
	Deposit(amount decimal.Decimal) error
	Withdraw(amount decimal.Decimal) error
}

// WithdrawalRule rejects a withdrawal from a by returning a non-nil error.
type WithdrawalRule func(a *Account, amount decimal.Decimal) error

// Account holds a customer balance and the history of its movements.
type Account struct {
	number   int64
	branch   int
	balance  decimal.Decimal
	customer *Customer
	history  *History
	notifier Notifier
	rules    []WithdrawalRule
}

// AccountOption customizes an account at creation.
type AccountOption func(a *Account)

// WithBranch sets the branch code of the account.
func WithBranch(code int) AccountOption {
	return func(a *Account) {
		a.branch = code
	}
}

// WithNotifier sets the sink that receives the outcome of every account operation.
func WithNotifier(n Notifier) AccountOption {
	return func(a *Account) {
		if n != nil {
			a.notifier = n
		}
	}
}

// WithWithdrawalRules adds rules checked, in order, before the balance rule.
func WithWithdrawalRules(rules ...WithdrawalRule) AccountOption {
	return func(a *Account) {
		a.rules = append(a.rules, rules...)
	}
}

// NewAccount returns an empty account owned by customer.
func NewAccount(number int64, customer *Customer, opts ...AccountOption) *Account {
	a := &Account{
		number:   number,
		branch:   DefaultBranchCode,
		balance:  decimal.Zero,
		customer: customer,
		history:  NewHistory(),
		notifier: NopNotifier{},
	}

	for _, opt := range opts {
		opt(a)
	}

	a.rules = append(a.rules, sufficientFunds)

	return a
}

// sufficientFunds is the rule every withdrawal ends with.
func sufficientFunds(a *Account, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}

	if amount.GreaterThan(a.balance) {
		return ErrInsufficientFunds
	}

	return nil
}

// Number returns the account number.
func (a *Account) Number() int64 { return a.number }

// Branch returns the branch code.
func (a *Account) Branch() int { return a.branch }

// Balance returns the current balance.
func (a *Account) Balance() decimal.Decimal { return a.balance }

// Customer returns the customer the account belongs to.
func (a *Account) Customer() *Customer { return a.customer }

// History returns the account history.
func (a *Account) History() *History { return a.history }

// Withdraw takes amount out of the balance if every withdrawal rule accepts it.
// The history is left untouched; recording is up to the caller.
func (a *Account) Withdraw(amount decimal.Decimal) error {
	for _, rule := range a.rules {
		if err := rule(a, amount); err != nil {
			a.notify(KindWithdrawal, amount, err)
			return err
		}
	}

	a.balance = a.balance.Sub(amount)
	a.notify(KindWithdrawal, amount, nil)

	return nil
}

// Deposit adds amount to the balance. The amount must be positive.
func (a *Account) Deposit(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		a.notify(KindDeposit, amount, ErrInvalidAmount)
		return ErrInvalidAmount
	}

	a.balance = a.balance.Add(amount)
	a.notify(KindDeposit, amount, nil)

	return nil
}

func (a *Account) notify(kind Kind, amount decimal.Decimal, err error) {
	a.notifier.Notify(Notification{
		Kind:    kind,
		Account: a.number,
		Amount:  amount,
		Err:     err,
	})
}
