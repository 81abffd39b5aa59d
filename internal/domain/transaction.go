package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Kind tells deposits and withdrawals apart.
type Kind int

// Supported transaction kinds.
const (
	KindDeposit Kind = iota + 1
	KindWithdrawal
)

func (k Kind) String() string {
	switch k {
	case KindDeposit:
		return "deposit"
	case KindWithdrawal:
		return "withdrawal"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	switch k {
	case KindDeposit, KindWithdrawal:
		return []byte(k.String()), nil
	default:
		return nil, fmt.Errorf("unknown transaction kind %d", int(k))
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "deposit":
		*k = KindDeposit
	case "withdrawal":
		*k = KindWithdrawal
	default:
		return fmt.Errorf("unknown transaction kind %q", text)
	}

	return nil
}

// Record is the immutable entry a successful transaction leaves in an account history.
type Record struct {
	Kind   Kind            `json:"kind"`
	Amount decimal.Decimal `json:"amount"`
}

// Transaction moves money in or out of a ledger and records itself on success.
type Transaction interface {
	Kind() Kind
	Amount() decimal.Decimal
	Record() Record
	// Register applies the transaction to l and appends its record to the
	// history of l only when the account accepted it.
	Register(l Ledger) error
}

// Deposit adds money to an account.
type Deposit struct {
	amount decimal.Decimal
}

// NewDeposit returns a deposit of the given amount.
func NewDeposit(amount decimal.Decimal) Deposit {
	return Deposit{amount: amount}
}

// Kind returns KindDeposit.
func (d Deposit) Kind() Kind { return KindDeposit }

// Amount returns the deposited amount.
func (d Deposit) Amount() decimal.Decimal { return d.amount }

// Record returns the history entry of the deposit.
func (d Deposit) Record() Record {
	return Record{Kind: KindDeposit, Amount: d.amount}
}

// Register deposits the amount into l and records it.
func (d Deposit) Register(l Ledger) error {
	if err := l.Deposit(d.amount); err != nil {
		return err
	}

	l.History().Append(d.Record())

	return nil
}

// Withdrawal takes money out of an account.
type Withdrawal struct {
	amount decimal.Decimal
}

// NewWithdrawal returns a withdrawal of the given amount.
func NewWithdrawal(amount decimal.Decimal) Withdrawal {
	return Withdrawal{amount: amount}
}

// Kind returns KindWithdrawal.
func (w Withdrawal) Kind() Kind { return KindWithdrawal }

// Amount returns the withdrawn amount.
func (w Withdrawal) Amount() decimal.Decimal { return w.amount }

// Record returns the history entry of the withdrawal.
func (w Withdrawal) Record() Record {
	return Record{Kind: KindWithdrawal, Amount: w.amount}
}

// Register withdraws the amount from l and records it.
func (w Withdrawal) Register(l Ledger) error {
	if err := l.Withdraw(w.amount); err != nil {
		return err
	}

	l.History().Append(w.Record())

	return nil
}

// NewTransaction builds the transaction of the given kind.
func NewTransaction(kind Kind, amount decimal.Decimal) (Transaction, error) {
	switch kind {
	case KindDeposit:
		return NewDeposit(amount), nil
	case KindWithdrawal:
		return NewWithdrawal(amount), nil
	default:
		return nil, fmt.Errorf("unknown transaction kind %d", int(kind))
	}
}
