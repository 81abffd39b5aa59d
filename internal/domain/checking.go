package domain

import "github.com/shopspring/decimal"

// Default checking account limits.
const (
	DefaultOverdraftLimit  = 500
	DefaultWithdrawalLimit = 3
)

// CheckingLimits holds the policy of a checking account.
type CheckingLimits struct {
	// Overdraft is kept on the account but no rule consults it yet.
	Overdraft decimal.Decimal
	// Withdrawals is the maximum number of withdrawals the account accepts.
	Withdrawals int
}

// DefaultCheckingLimits returns the limits a checking account gets when none are configured.
func DefaultCheckingLimits() CheckingLimits {
	return CheckingLimits{
		Overdraft:   decimal.NewFromInt(DefaultOverdraftLimit),
		Withdrawals: DefaultWithdrawalLimit,
	}
}

// CheckingAccount is an account that caps how many withdrawals it accepts.
type CheckingAccount struct {
	*Account
	limits CheckingLimits
}

// NewCheckingAccount returns an empty checking account owned by customer.
// The withdrawal limit is checked before any other withdrawal rule.
func NewCheckingAccount(number int64, customer *Customer, limits CheckingLimits, opts ...AccountOption) *CheckingAccount {
	opts = append([]AccountOption{WithWithdrawalRules(WithdrawalLimit(limits.Withdrawals))}, opts...)

	return &CheckingAccount{
		Account: NewAccount(number, customer, opts...),
		limits:  limits,
	}
}

// OverdraftLimit returns the stored overdraft limit.
func (c *CheckingAccount) OverdraftLimit() decimal.Decimal { return c.limits.Overdraft }

// WithdrawalLimit returns the maximum number of withdrawals.
func (c *CheckingAccount) WithdrawalLimit() int { return c.limits.Withdrawals }

// WithdrawalLimit rejects withdrawals once the history already holds max of them.
func WithdrawalLimit(max int) WithdrawalRule {
	return func(a *Account, _ decimal.Decimal) error {
		if a.History().Count(KindWithdrawal) >= max {
			return ErrWithdrawalLimitReached
		}

		return nil
	}
}
