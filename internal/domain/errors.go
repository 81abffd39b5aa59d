package domain

import "errors"

var (
	// ErrInvalidAmount indicates that the amount is not greater than zero.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrInsufficientFunds indicates that the withdrawal amount exceeds the account balance.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrWithdrawalLimitReached indicates that the account has already used all of its withdrawals.
	ErrWithdrawalLimitReached = errors.New("withdrawal limit reached")
)

// IsRuleViolation reports whether err is one of the business rule rejections
// an account can produce.
func IsRuleViolation(err error) bool {
	return errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrInsufficientFunds) ||
		errors.Is(err, ErrWithdrawalLimitReached)
}

// ClassifyError returns a short label for err, suitable for metrics.
func ClassifyError(err error) string {
	switch {
	case err == nil:
		return "accepted"
	case errors.Is(err, ErrInvalidAmount):
		return "invalid_amount"
	case errors.Is(err, ErrInsufficientFunds):
		return "insufficient_funds"
	case errors.Is(err, ErrWithdrawalLimitReached):
		return "withdrawal_limit_reached"
	case errors.Is(err, ErrAccountNotFound):
		return "account_not_found"
	case errors.Is(err, ErrCustomerNotFound):
		return "customer_not_found"
	default:
		return "other"
	}
}
