package services

import (
	"testing"

	"github.com/shopspring/decimal"
)

func amount(value int64) *decimal.Decimal {
	d := decimal.NewFromInt(value)
	return &d
}

func TestBudgetLabel(t *testing.T) {
	cases := []struct {
		name     string
		min      *decimal.Decimal
		max      *decimal.Decimal
		expected string
		present  bool
	}{
		{name: "range", min: amount(50000), max: amount(80000), expected: "XAF 50,000 - XAF 80,000", present: true},
		{name: "min only", min: amount(50000), expected: "From XAF 50,000", present: true},
		{name: "max only", max: amount(80000), expected: "Up to XAF 80,000", present: true},
		{name: "none", present: false},
		{name: "millions", min: amount(1250000), max: amount(2000000), expected: "XAF 1,250,000 - XAF 2,000,000", present: true},
	}

	for _, tc := range cases {
		label, ok := BudgetLabel("", tc.min, tc.max)
		if ok != tc.present {
			t.Fatalf("%s: expected present=%v, got %v", tc.name, tc.present, ok)
		}
		if label != tc.expected {
			t.Fatalf("%s: expected %q, got %q", tc.name, tc.expected, label)
		}
	}
}

func TestBudgetLabelUsesConfiguredCurrency(t *testing.T) {
	label, _ := BudgetLabel("NGN", amount(1500), nil)
	if label != "From NGN 1,500" {
		t.Fatalf("unexpected label %q", label)
	}
}

func TestFormatAmountDropsDecimals(t *testing.T) {
	cases := map[string]string{
		"50000.4":  "50,000",
		"50000.5":  "50,000",
		"50001.5":  "50,002",
		"999.99":   "1,000",
		"12345678": "12,345,678",
	}
	for raw, expected := range cases {
		value := decimal.RequireFromString(raw)
		if got := FormatAmount(value); got != expected {
			t.Fatalf("FormatAmount(%s): expected %q, got %q", raw, expected, got)
		}
	}
}
