package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Notification is the outcome of a single deposit or withdrawal attempt.
type Notification struct {
	Kind    Kind
	Account int64
	Amount  decimal.Decimal
	// Err is nil when the account accepted the operation.
	Err error
}

// Message returns the human readable text of the outcome.
func (n Notification) Message() string {
	switch {
	case n.Err == nil:
		return n.Kind.String() + " completed"
	case n.Kind == KindDeposit && errors.Is(n.Err, ErrInvalidAmount):
		return "deposit must be greater than zero"
	default:
		return n.Err.Error()
	}
}

// Notifier receives the outcome of every account operation, synchronously,
// before the operation returns.
//
//go:generate mockgen -source notification.go -destination notification_mock.go -package domain
type Notifier interface {
	Notify(n Notification)
}

// NopNotifier discards notifications.
type NopNotifier struct{}

// Notify does nothing.
func (NopNotifier) Notify(Notification) {}
