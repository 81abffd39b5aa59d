package domain

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var equateDecimal = cmp.Comparer(func(x, y decimal.Decimal) bool {
	return x.Equal(y)
})

func TestCheckingAccountScenario(t *testing.T) {
	t.Parallel()

	rec := &recordingNotifier{}
	customer := NewCustomer("Rua XPTO")
	account := NewCheckingAccount(1, customer, DefaultCheckingLimits(), WithNotifier(rec))
	customer.AddAccount(account)

	require.NoError(t, customer.PerformTransaction(account, NewDeposit(d(1000))))
	requireBalance(t, account, d(1000))

	want := []Record{{Kind: KindDeposit, Amount: d(1000)}}
	if diff := cmp.Diff(want, account.History().Records(), equateDecimal); diff != "" {
		t.Fatalf("History().Records() mismatch (-want +got):\n%s", diff)
	}

	require.NoError(t, customer.PerformTransaction(account, NewWithdrawal(d(100))))
	requireBalance(t, account, d(900))

	require.NoError(t, customer.PerformTransaction(account, NewWithdrawal(d(200))))
	requireBalance(t, account, d(700))

	require.NoError(t, customer.PerformTransaction(account, NewWithdrawal(d(50))))
	requireBalance(t, account, d(650))
	require.Equal(t, 3, account.History().Count(KindWithdrawal))

	err := customer.PerformTransaction(account, NewWithdrawal(d(10)))
	require.ErrorIs(t, err, ErrWithdrawalLimitReached)
	requireBalance(t, account, d(650))

	want = []Record{
		{Kind: KindDeposit, Amount: d(1000)},
		{Kind: KindWithdrawal, Amount: d(100)},
		{Kind: KindWithdrawal, Amount: d(200)},
		{Kind: KindWithdrawal, Amount: d(50)},
	}
	if diff := cmp.Diff(want, account.History().Records(), equateDecimal); diff != "" {
		t.Fatalf("History().Records() mismatch (-want +got):\n%s", diff)
	}

	wantMessages := []string{
		"deposit completed",
		"withdrawal completed",
		"withdrawal completed",
		"withdrawal completed",
		"withdrawal limit reached",
	}
	require.Equal(t, wantMessages, rec.messages)
}

func TestCheckingAccountLimitBeforeBalance(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	notifier := NewMockNotifier(ctrl)

	// Over the limit and over the balance: only the limit is reported.
	gomock.InOrder(
		notifier.EXPECT().Notify(EqNotification(KindDeposit, 3, d(100), nil)).Times(1),
		notifier.EXPECT().Notify(EqNotification(KindWithdrawal, 3, d(100), nil)).Times(1),
		notifier.EXPECT().Notify(EqNotification(KindWithdrawal, 3, d(500), ErrWithdrawalLimitReached)).Times(1),
	)

	limits := CheckingLimits{Overdraft: decimal.Zero, Withdrawals: 1}
	account := NewCheckingAccount(3, nil, limits, WithNotifier(notifier))

	require.NoError(t, NewDeposit(d(100)).Register(account))
	require.NoError(t, NewWithdrawal(d(100)).Register(account))
	requireBalance(t, account, decimal.Zero)

	err := NewWithdrawal(d(500)).Register(account)
	require.ErrorIs(t, err, ErrWithdrawalLimitReached)
	require.Equal(t, 2, account.History().Len())
}

func TestCheckingAccountOverdraftNotApplied(t *testing.T) {
	t.Parallel()

	account := NewCheckingAccount(1, nil, DefaultCheckingLimits())
	require.True(t, account.OverdraftLimit().Equal(d(DefaultOverdraftLimit)))
	require.Equal(t, DefaultWithdrawalLimit, account.WithdrawalLimit())

	require.NoError(t, NewDeposit(d(100)).Register(account))

	// Within balance plus overdraft, yet still rejected.
	err := NewWithdrawal(d(150)).Register(account)
	require.ErrorIs(t, err, ErrInsufficientFunds)
	requireBalance(t, account, d(100))
	require.Zero(t, account.History().Count(KindWithdrawal))
}

func TestCheckingAccountFailedWithdrawalsDoNotCount(t *testing.T) {
	t.Parallel()

	limits := CheckingLimits{Overdraft: decimal.Zero, Withdrawals: 2}
	account := NewCheckingAccount(1, nil, limits)
	require.NoError(t, NewDeposit(d(10)).Register(account))

	for i := 0; i < 5; i++ {
		require.ErrorIs(t, NewWithdrawal(d(1000)).Register(account), ErrInsufficientFunds)
	}

	require.NoError(t, NewWithdrawal(d(1)).Register(account))
	require.NoError(t, NewWithdrawal(d(1)).Register(account))
	require.ErrorIs(t, NewWithdrawal(d(1)).Register(account), ErrWithdrawalLimitReached)
	requireBalance(t, account, d(8))
}

func TestCheckingAccountZeroLimit(t *testing.T) {
	t.Parallel()

	limits := CheckingLimits{Overdraft: decimal.Zero, Withdrawals: 0}
	account := NewCheckingAccount(1, nil, limits)
	require.NoError(t, NewDeposit(d(10)).Register(account))

	require.ErrorIs(t, NewWithdrawal(d(1)).Register(account), ErrWithdrawalLimitReached)
	require.ErrorIs(t, NewWithdrawal(d(-1)).Register(account), ErrWithdrawalLimitReached)
}
