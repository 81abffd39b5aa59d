// Package randompkg provides functionality for generating random ledger fixtures.
package randompkg

import (
	"crypto/rand"
	"fmt"
	"math"
	"math/big"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	alphabet = "abcdefghijklmnopqrstuvwxyz"
	digits   = "0123456789"
)

// Intn is a shortcut for generating a random integer between 0 and max using crypto/rand.
func Intn(max int) int64 {
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(max)))
	if err != nil {
		panic(err)
	}

	return nBig.Int64()
}

// Float64 is a shortcut for generating a random float between 0 and 1 using crypto/rand.
func Float64() float64 {
	return float64(Intn(1<<32)) / (1 << 32)
}

// IntBetween generates a random integer between min and max inclusive.
func IntBetween(min, max int) int64 {
	return int64(min) + Intn(max-min+1)
}

// FloatBetween generates a random decimal number between min and max rounded to 2 decimals.
func FloatBetween(min, max float64) float64 {
	numInRange := min + Float64()*(max-min)
	return math.Floor(numInRange*100) / 100
}

func fromAlphabet(set string, n int) string {
	var sb strings.Builder

	k := len(set)

	for i := 0; i < n; i++ {
		c := set[Intn(k)]

		_ = sb.WriteByte(c) // The returned err is always nil.
	}

	return sb.String()
}

// String generates a random string of length n.
func String(n int) string {
	return fromAlphabet(alphabet, n)
}

// Name generates a random customer name.
func Name() string {
	return strings.ToUpper(String(1)) + String(7)
}

// TaxID generates a random 11 digit taxpayer number.
func TaxID() string {
	return fromAlphabet(digits, 11)
}

// Address generates a random street address.
func Address() string {
	return fmt.Sprintf("Rua %s, %d", Name(), IntBetween(1, 2000))
}

// BirthDate generates a random date of birth of an adult.
func BirthDate() time.Time {
	years := int(IntBetween(18, 90))
	days := int(Intn(365))

	return time.Now().UTC().Truncate(24*time.Hour).AddDate(-years, 0, -days)
}

// Amount generates a random amount of money between min and max rounded to 2 decimals.
func Amount(min, max float64) decimal.Decimal {
	return decimal.NewFromFloat(FloatBetween(min, max))
}
