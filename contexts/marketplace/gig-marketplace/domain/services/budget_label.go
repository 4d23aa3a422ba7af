package services

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const DefaultCurrency = "XAF"

var amountPrinter = message.NewPrinter(language.English)

// BudgetLabel renders a gig budget range, e.g. "XAF 50,000 - XAF 80,000".
// The second return value is false when neither bound is set.
func BudgetLabel(currency string, budgetMin *decimal.Decimal, budgetMax *decimal.Decimal) (string, bool) {
	currency = strings.TrimSpace(currency)
	if currency == "" {
		currency = DefaultCurrency
	}

	switch {
	case budgetMin != nil && budgetMax != nil:
		return currency + " " + FormatAmount(*budgetMin) + " - " + currency + " " + FormatAmount(*budgetMax), true
	case budgetMin != nil:
		return "From " + currency + " " + FormatAmount(*budgetMin), true
	case budgetMax != nil:
		return "Up to " + currency + " " + FormatAmount(*budgetMax), true
	default:
		return "", false
	}
}

// FormatAmount prints a whole-unit amount with thousands separators.
// Fractions are rounded half to even.
func FormatAmount(amount decimal.Decimal) string {
	return amountPrinter.Sprintf("%d", amount.RoundBank(0).IntPart())
}
