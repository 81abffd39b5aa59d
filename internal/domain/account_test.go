package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type eqNotificationMatcher struct {
	kind    Kind
	account int64
	amount  decimal.Decimal
	err     error
}

func (e eqNotificationMatcher) Matches(x interface{}) bool {
	n, ok := x.(Notification)
	if !ok {
		return false
	}

	if n.Kind != e.kind || n.Account != e.account || !n.Amount.Equal(e.amount) {
		return false
	}

	if e.err == nil {
		return n.Err == nil
	}

	return errors.Is(n.Err, e.err)
}

func (e eqNotificationMatcher) String() string {
	return fmt.Sprintf("matches %v of %v on account %d with err %v", e.kind, e.amount, e.account, e.err)
}

func EqNotification(kind Kind, account int64, amount decimal.Decimal, err error) gomock.Matcher {
	return eqNotificationMatcher{kind, account, amount, err}
}

// recordingNotifier keeps every message it receives.
type recordingNotifier struct {
	messages []string
}

func (r *recordingNotifier) Notify(n Notification) {
	r.messages = append(r.messages, n.Message())
}

func d(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func requireBalance(t *testing.T, l Ledger, want decimal.Decimal) {
	t.Helper()

	if got := l.Balance(); !got.Equal(want) {
		t.Fatalf("Balance() = %v, want %v", got, want)
	}
}

func fundedAccount(t *testing.T, balance int64, opts ...AccountOption) *Account {
	t.Helper()

	a := NewAccount(1, NewCustomer("Rua XPTO"), opts...)
	if balance > 0 {
		require.NoError(t, a.Deposit(d(balance)))
	}

	return a
}

func TestNewAccount(t *testing.T) {
	t.Parallel()

	c := NewCustomer("Rua XPTO")
	a := NewAccount(7, c)

	require.Equal(t, int64(7), a.Number())
	require.Equal(t, DefaultBranchCode, a.Branch())
	require.Same(t, c, a.Customer())
	require.Zero(t, a.History().Len())
	requireBalance(t, a, decimal.Zero)

	b := NewAccount(8, c, WithBranch(2002))
	require.Equal(t, 2002, b.Branch())
}

func TestDeposit(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		amount      decimal.Decimal
		wantErr     error
		wantBalance decimal.Decimal
		wantMessage string
	}{
		{
			name:        "OK",
			amount:      d(1000),
			wantBalance: d(1100),
			wantMessage: "deposit completed",
		},
		{
			name:        "Fraction",
			amount:      decimal.RequireFromString("0.25"),
			wantBalance: decimal.RequireFromString("100.25"),
			wantMessage: "deposit completed",
		},
		{
			name:        "Zero",
			amount:      decimal.Zero,
			wantErr:     ErrInvalidAmount,
			wantBalance: d(100),
			wantMessage: "deposit must be greater than zero",
		},
		{
			name:        "Negative",
			amount:      d(-10),
			wantErr:     ErrInvalidAmount,
			wantBalance: d(100),
			wantMessage: "deposit must be greater than zero",
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			rec := &recordingNotifier{}
			a := fundedAccount(t, 100, WithNotifier(rec))
			rec.messages = nil

			err := a.Deposit(tc.amount)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
			} else {
				require.NoError(t, err)
			}

			requireBalance(t, a, tc.wantBalance)
			require.Equal(t, []string{tc.wantMessage}, rec.messages)
			require.Zero(t, a.History().Len(), "Deposit must not record history")
		})
	}
}

func TestWithdraw(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		amount      decimal.Decimal
		wantErr     error
		wantBalance decimal.Decimal
		wantMessage string
	}{
		{
			name:        "OK",
			amount:      d(40),
			wantBalance: d(60),
			wantMessage: "withdrawal completed",
		},
		{
			name:        "WholeBalance",
			amount:      d(100),
			wantBalance: decimal.Zero,
			wantMessage: "withdrawal completed",
		},
		{
			name:        "InsufficientFunds",
			amount:      d(5000),
			wantErr:     ErrInsufficientFunds,
			wantBalance: d(100),
			wantMessage: "insufficient funds",
		},
		{
			name:        "Zero",
			amount:      decimal.Zero,
			wantErr:     ErrInvalidAmount,
			wantBalance: d(100),
			wantMessage: "invalid amount",
		},
		{
			name:        "Negative",
			amount:      d(-1),
			wantErr:     ErrInvalidAmount,
			wantBalance: d(100),
			wantMessage: "invalid amount",
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			rec := &recordingNotifier{}
			a := fundedAccount(t, 100, WithNotifier(rec))
			rec.messages = nil

			err := a.Withdraw(tc.amount)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
			} else {
				require.NoError(t, err)
			}

			requireBalance(t, a, tc.wantBalance)
			require.Equal(t, []string{tc.wantMessage}, rec.messages)
			require.Zero(t, a.History().Len(), "Withdraw must not record history")
		})
	}
}

func TestWithdrawRuleOrder(t *testing.T) {
	t.Parallel()

	errFrozen := errors.New("account frozen")
	calls := 0
	frozen := func(a *Account, amount decimal.Decimal) error {
		calls++
		return errFrozen
	}

	a := fundedAccount(t, 100, WithWithdrawalRules(frozen))

	// The custom rule runs first, so the invalid amount is never looked at.
	err := a.Withdraw(d(-5))
	require.ErrorIs(t, err, errFrozen)
	require.Equal(t, 1, calls)
	requireBalance(t, a, d(100))
}

func TestAccountNotifications(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	notifier := NewMockNotifier(ctrl)
	a := NewAccount(42, NewCustomer("Rua XPTO"), WithNotifier(notifier))

	gomock.InOrder(
		notifier.EXPECT().Notify(EqNotification(KindDeposit, 42, d(-10), ErrInvalidAmount)).Times(1),
		notifier.EXPECT().Notify(EqNotification(KindDeposit, 42, d(100), nil)).Times(1),
		notifier.EXPECT().Notify(EqNotification(KindWithdrawal, 42, d(5000), ErrInsufficientFunds)).Times(1),
		notifier.EXPECT().Notify(EqNotification(KindWithdrawal, 42, d(0), ErrInvalidAmount)).Times(1),
		notifier.EXPECT().Notify(EqNotification(KindWithdrawal, 42, d(30), nil)).Times(1),
	)

	require.ErrorIs(t, a.Deposit(d(-10)), ErrInvalidAmount)
	require.NoError(t, a.Deposit(d(100)))
	require.ErrorIs(t, a.Withdraw(d(5000)), ErrInsufficientFunds)
	require.ErrorIs(t, a.Withdraw(d(0)), ErrInvalidAmount)
	require.NoError(t, a.Withdraw(d(30)))
	requireBalance(t, a, d(70))
}

func TestWithNilNotifier(t *testing.T) {
	t.Parallel()

	a := NewAccount(1, nil, WithNotifier(nil))
	require.NotPanics(t, func() {
		_ = a.Deposit(d(1))
	})
}
