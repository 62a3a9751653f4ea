package valueobject

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Currency represents a currency code (ISO 4217)
type Currency string

// UZS is the only currency the ledger operates in
const UZS Currency = "UZS"

// Money is a value object pairing an amount with its currency. The balance
// API uses it to label ledger sums for presentation.
type Money struct {
	amount   decimal.Decimal
	currency Currency
}

// NewMoneyUZS creates Money in UZS (Uzbek Som)
func NewMoneyUZS(amount decimal.Decimal) Money {
	return Money{amount: amount, currency: UZS}
}

// Amount returns the decimal amount
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Currency returns the currency code
func (m Money) Currency() Currency {
	return m.currency
}

// String returns a human-readable representation
func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.amount.String(), m.currency)
}
