package entities

import (
	"strings"
	"time"

	domainerrors "talentia/contexts/marketplace/gig-marketplace/domain/errors"

	"github.com/shopspring/decimal"
)

type ContractStatus string

const (
	ContractStatusActive    ContractStatus = "ACTIVE"
	ContractStatusCompleted ContractStatus = "COMPLETED"
)

type PaymentStatus string

const (
	PaymentStatusHeld PaymentStatus = "HELD"
	PaymentStatusPaid PaymentStatus = "PAID"
)

type PayoutStatus string

const (
	PayoutStatusPending PayoutStatus = "PENDING"
)

const (
	// MoneyScale is the number of fractional digits stored for amounts.
	MoneyScale = 2
	// moneyDigits bounds amounts to NUMERIC(14,2).
	moneyDigits = 12
)

var maxAmount = decimal.New(1, moneyDigits)

// ValidateMoney rejects negative amounts, sub-cent fractions and values the
// ledger columns cannot hold, so storage never rounds silently.
func ValidateMoney(amount decimal.Decimal) bool {
	if amount.IsNegative() || amount.GreaterThanOrEqual(maxAmount) {
		return false
	}
	return amount.Equal(amount.Round(MoneyScale))
}

type Contract struct {
	ContractID    string
	GigID         string
	ApplicationID string
	AgreedAmount  decimal.Decimal
	Status        ContractStatus
	CreatedAt     time.Time
	CompletedAt   *time.Time
}

// Payment is the escrow hold paired with a contract.
type Payment struct {
	PaymentID  string
	ContractID string
	Amount     decimal.Decimal
	Status     PaymentStatus
	CreatedAt  time.Time
	PaidAt     *time.Time
}

type Payout struct {
	PayoutID    string
	ContractID  string
	RecipientID string
	Amount      decimal.Decimal
	Status      PayoutStatus
	CreatedAt   time.Time
}

// ContractView pairs a contract with its escrow payment, when one exists.
type ContractView struct {
	Contract Contract
	Payment  *Payment
}

func NewContractWithPayment(
	contractID string,
	paymentID string,
	gigID string,
	applicationID string,
	amount decimal.Decimal,
	createdAt time.Time,
) (Contract, Payment, error) {
	if strings.TrimSpace(contractID) == "" ||
		strings.TrimSpace(paymentID) == "" ||
		strings.TrimSpace(gigID) == "" ||
		strings.TrimSpace(applicationID) == "" {
		return Contract{}, Payment{}, domainerrors.ErrInvalidRequest
	}
	if !amount.IsPositive() || !ValidateMoney(amount) {
		return Contract{}, Payment{}, domainerrors.ErrInvalidAmount
	}
	contract := Contract{
		ContractID:    contractID,
		GigID:         gigID,
		ApplicationID: applicationID,
		AgreedAmount:  amount,
		Status:        ContractStatusActive,
		CreatedAt:     createdAt.UTC(),
	}
	payment := Payment{
		PaymentID:  paymentID,
		ContractID: contractID,
		Amount:     amount,
		Status:     PaymentStatusHeld,
		CreatedAt:  createdAt.UTC(),
	}
	return contract, payment, nil
}
