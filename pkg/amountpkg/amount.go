// Package amountpkg provides common money amount related functionality for apps.
package amountpkg

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// MaxDecimalPlaces is the finest amount precision the ledger accepts.
const MaxDecimalPlaces = 2

// MaxDigits is the number of integer digits an amount can carry alongside a sign and cents.
const MaxDigits = 18

const maxLength = 1 + MaxDigits + 1 + MaxDecimalPlaces

// ErrMalformedAmount indicates that the amount is not a decimal number.
var ErrMalformedAmount = errors.New("malformed amount")

// Parse converts s into a decimal amount written in plain notation. The sign
// is not checked: rejecting non-positive amounts is up to the account rules.
func Parse(s string) (decimal.Decimal, error) {
	// Plain notation only: sign, MaxDigits integer digits, point and cents.
	if s == "" || len(s) > maxLength || strings.ContainsAny(s, "eE") {
		return decimal.Zero, ErrMalformedAmount
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, ErrMalformedAmount
	}

	if d.Exponent() < -MaxDecimalPlaces && !d.Equal(d.Round(MaxDecimalPlaces)) {
		return decimal.Zero, ErrMalformedAmount
	}

	return d, nil
}

// ValidAmount validates whether the field holds a parsable amount.
var ValidAmount validator.Func = func(fl validator.FieldLevel) bool {
	if s, ok := fl.Field().Interface().(string); ok {
		_, err := Parse(s)
		return err == nil
	}

	return false
}
