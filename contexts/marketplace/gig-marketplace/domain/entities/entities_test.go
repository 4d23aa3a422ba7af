package entities

import (
	"errors"
	"testing"
	"time"

	domainerrors "talentia/contexts/marketplace/gig-marketplace/domain/errors"

	"github.com/shopspring/decimal"
)

func TestValidateRatingAcceptsTenthSteps(t *testing.T) {
	for _, rating := range []float64{1, 2.5, 4.3, 5} {
		if err := ValidateRating(rating); err != nil {
			t.Fatalf("expected %v to be accepted, got %v", rating, err)
		}
	}
}

func TestValidateRatingRejectsOutOfRangeAndExcessPrecision(t *testing.T) {
	for _, rating := range []float64{0, 0.9, 5.1, 6, 4.25, 3.333} {
		if err := ValidateRating(rating); !errors.Is(err, domainerrors.ErrInvalidRating) {
			t.Fatalf("expected %v to be rejected, got %v", rating, err)
		}
	}
}

func TestNewContractWithPaymentRejectsSubCentAmounts(t *testing.T) {
	_, _, err := NewContractWithPayment("c-1", "p-1", "g-1", "a-1", decimal.RequireFromString("70000.555"), time.Now())
	if !errors.Is(err, domainerrors.ErrInvalidAmount) {
		t.Fatalf("expected invalid amount, got %v", err)
	}

	_, _, err = NewContractWithPayment("c-1", "p-1", "g-1", "a-1", decimal.New(1, 12), time.Now())
	if !errors.Is(err, domainerrors.ErrInvalidAmount) {
		t.Fatalf("expected amount above column bound to be rejected, got %v", err)
	}
}

func TestNewContractWithPaymentKeepsCentAmounts(t *testing.T) {
	amount := decimal.RequireFromString("70000.550")
	contract, payment, err := NewContractWithPayment("c-1", "p-1", "g-1", "a-1", amount, time.Now())
	if err != nil {
		t.Fatalf("new contract: %v", err)
	}
	if !contract.AgreedAmount.Equal(decimal.RequireFromString("70000.55")) || !payment.Amount.Equal(contract.AgreedAmount) {
		t.Fatalf("unexpected amounts: contract=%s payment=%s", contract.AgreedAmount, payment.Amount)
	}
	if payment.Status != PaymentStatusHeld {
		t.Fatalf("expected HELD payment, got %s", payment.Status)
	}
}

func TestNewGigRejectsSubCentBudget(t *testing.T) {
	budget := decimal.RequireFromString("500.001")
	_, err := NewGig("g-1", "company-1", GigDraft{Title: "Logo", BudgetMin: &budget}, time.Now())
	if !errors.Is(err, domainerrors.ErrInvalidRequest) {
		t.Fatalf("expected invalid request, got %v", err)
	}
}
