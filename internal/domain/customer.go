package domain

import (
	"errors"
	"time"
)

var (
	// ErrCustomerNotFound indicates that the customer is not found.
	ErrCustomerNotFound = errors.New("customer not found")
)

// Customer owns accounts and drives transactions on them.
type Customer struct {
	address  string
	accounts []Ledger
}

// NewCustomer returns a customer without accounts.
func NewCustomer(address string) *Customer {
	return &Customer{address: address}
}

// Address returns the customer address.
func (c *Customer) Address() string { return c.address }

// Accounts returns a copy of the customer accounts in the order they were added.
func (c *Customer) Accounts() []Ledger {
	out := make([]Ledger, len(c.accounts))
	copy(out, c.accounts)

	return out
}

// AddAccount adds l to the customer accounts.
func (c *Customer) AddAccount(l Ledger) {
	c.accounts = append(c.accounts, l)
}

// PerformTransaction registers tx on l. The account does not have to be one of
// the customer's own.
func (c *Customer) PerformTransaction(l Ledger, tx Transaction) error {
	return tx.Register(l)
}

// Individual is a customer who is a natural person.
type Individual struct {
	*Customer
	taxID     string
	name      string
	birthDate time.Time
}

// NewIndividual returns an individual customer without accounts.
func NewIndividual(taxID, name string, birthDate time.Time, address string) *Individual {
	return &Individual{
		Customer:  NewCustomer(address),
		taxID:     taxID,
		name:      name,
		birthDate: birthDate,
	}
}

// TaxID returns the individual taxpayer number.
func (i *Individual) TaxID() string { return i.taxID }

// Name returns the individual full name.
func (i *Individual) Name() string { return i.name }

// BirthDate returns the individual date of birth.
func (i *Individual) BirthDate() time.Time { return i.birthDate }
