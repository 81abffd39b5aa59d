package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateCustomerParams is the input data to create an individual customer.
type CreateCustomerParams struct {
	TaxID     string    `json:"tax_id"`
	Name      string    `json:"name"`
	BirthDate time.Time `json:"birth_date"`
	Address   string    `json:"address"`
}

// CustomerSummary is a read-only snapshot of an individual customer.
type CustomerSummary struct {
	ID        uuid.UUID `json:"id"`
	TaxID     string    `json:"tax_id"`
	Name      string    `json:"name"`
	BirthDate time.Time `json:"birth_date"`
	Address   string    `json:"address"`
	Accounts  []int64   `json:"accounts"`
}

// NewCustomerSummary returns the snapshot of i registered under id.
func NewCustomerSummary(id uuid.UUID, i *Individual) CustomerSummary {
	accounts := i.Accounts()

	numbers := make([]int64, 0, len(accounts))
	for _, a := range accounts {
		numbers = append(numbers, a.Number())
	}

	return CustomerSummary{
		ID:        id,
		TaxID:     i.TaxID(),
		Name:      i.Name(),
		BirthDate: i.BirthDate(),
		Address:   i.Address(),
		Accounts:  numbers,
	}
}

// AccountSummary is a read-only snapshot of a checking account.
type AccountSummary struct {
	Number          int64           `json:"number"`
	Branch          int             `json:"branch"`
	Balance         decimal.Decimal `json:"balance"`
	OwnerID         uuid.UUID       `json:"owner_id"`
	OverdraftLimit  decimal.Decimal `json:"overdraft_limit"`
	WithdrawalLimit int             `json:"withdrawal_limit"`
	Withdrawals     int             `json:"withdrawals"`
}

// NewAccountSummary returns the snapshot of c owned by the customer registered under ownerID.
func NewAccountSummary(ownerID uuid.UUID, c *CheckingAccount) AccountSummary {
	return AccountSummary{
		Number:          c.Number(),
		Branch:          c.Branch(),
		Balance:         c.Balance(),
		OwnerID:         ownerID,
		OverdraftLimit:  c.OverdraftLimit(),
		WithdrawalLimit: c.WithdrawalLimit(),
		Withdrawals:     c.History().Count(KindWithdrawal),
	}
}
