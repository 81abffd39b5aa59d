package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestNotificationMessage(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		n    Notification
		want string
	}{
		{"DepositOK", Notification{Kind: KindDeposit}, "deposit completed"},
		{"WithdrawalOK", Notification{Kind: KindWithdrawal}, "withdrawal completed"},
		{"DepositInvalid", Notification{Kind: KindDeposit, Err: ErrInvalidAmount}, "deposit must be greater than zero"},
		{"WithdrawalInvalid", Notification{Kind: KindWithdrawal, Err: ErrInvalidAmount}, "invalid amount"},
		{"InsufficientFunds", Notification{Kind: KindWithdrawal, Err: ErrInsufficientFunds}, "insufficient funds"},
		{"LimitReached", Notification{Kind: KindWithdrawal, Err: ErrWithdrawalLimitReached}, "withdrawal limit reached"},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := tc.n.Message(); got != tc.want {
				t.Errorf("Message() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestClassifyError(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		err           error
		want          string
		wantViolation bool
	}{
		{nil, "accepted", false},
		{ErrInvalidAmount, "invalid_amount", true},
		{fmt.Errorf("deposit: %w", ErrInvalidAmount), "invalid_amount", true},
		{ErrInsufficientFunds, "insufficient_funds", true},
		{ErrWithdrawalLimitReached, "withdrawal_limit_reached", true},
		{ErrAccountNotFound, "account_not_found", false},
		{ErrCustomerNotFound, "customer_not_found", false},
		{errors.New("boom"), "other", false},
	}

	for _, tc := range testCases {
		if got := ClassifyError(tc.err); got != tc.want {
			t.Errorf("ClassifyError(%v) = %q, want %q", tc.err, got, tc.want)
		}

		if got := IsRuleViolation(tc.err); got != tc.wantViolation {
			t.Errorf("IsRuleViolation(%v) = %v, want %v", tc.err, got, tc.wantViolation)
		}
	}
}
