package httptransport

import (
	"time"

	"github.com/shopspring/decimal"
)

// PostGigRequest is the company-supplied body of POST /gigs. Budgets accept
// JSON numbers or decimal strings.
type PostGigRequest struct {
	Title       string           `json:"title"`
	Description string           `json:"description,omitempty"`
	Role        string           `json:"role,omitempty"`
	BudgetMin   *decimal.Decimal `json:"budget_min,omitempty"`
	BudgetMax   *decimal.Decimal `json:"budget_max,omitempty"`
	Location    string           `json:"location,omitempty"`
	Type        string           `json:"type,omitempty"`
	Category    string           `json:"category,omitempty"`
	Deadline    *time.Time       `json:"deadline,omitempty"`
}

type GigDTO struct {
	GigID       string           `json:"gig_id"`
	CompanyID   string           `json:"company_id"`
	Company     string           `json:"company"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Role        string           `json:"role,omitempty"`
	BudgetMin   *decimal.Decimal `json:"budget_min,omitempty"`
	BudgetMax   *decimal.Decimal `json:"budget_max,omitempty"`
	Budget      *string          `json:"budget,omitempty"`
	Currency    string           `json:"currency"`
	Location    string           `json:"location,omitempty"`
	Type        string           `json:"type,omitempty"`
	Category    string           `json:"category,omitempty"`
	Deadline    *time.Time       `json:"deadline,omitempty"`
	Status      string           `json:"status"`
	Applicants  int              `json:"applicants"`
	Posted      time.Time        `json:"posted"`
}

type ListGigsResponse struct {
	Items []GigDTO `json:"items"`
}

type ApplyRequest struct {
	Proposal string `json:"proposal,omitempty"`
}

type ApplicationDTO struct {
	ApplicationID string     `json:"application_id"`
	GigID         string     `json:"gig_id"`
	StudentID     string     `json:"student_id"`
	StudentName   string     `json:"student_name"`
	Proposal      string     `json:"proposal,omitempty"`
	Status        string     `json:"status"`
	AppliedAt     time.Time  `json:"applied_at"`
	ApprovedAt    *time.Time `json:"approved_at,omitempty"`
}

type ListApplicationsResponse struct {
	Items []ApplicationDTO `json:"items"`
}

type MessageDTO struct {
	MessageID      string    `json:"message_id"`
	ConversationID string    `json:"conversation_id"`
	SenderID       string    `json:"sender_id"`
	Content        string    `json:"content"`
	CreatedAt      time.Time `json:"created_at"`
}

type ConversationDTO struct {
	ConversationID string       `json:"conversation_id"`
	GigID          string       `json:"gig_id"`
	ApplicationID  string       `json:"application_id"`
	CompanyID      string       `json:"company_id"`
	StudentID      string       `json:"student_id"`
	CreatedAt      time.Time    `json:"created_at"`
	Messages       []MessageDTO `json:"messages"`
}

type ListConversationsResponse struct {
	Items []ConversationDTO `json:"items"`
}

type SendMessageRequest struct {
	Content string `json:"content"`
}

type CreateContractRequest struct {
	AgreedAmount decimal.Decimal `json:"agreed_amount"`
}

// ContractDTO renders amounts as decimal strings in the configured currency.
type ContractDTO struct {
	ContractID    string          `json:"contract_id"`
	GigID         string          `json:"gig_id"`
	ApplicationID string          `json:"application_id"`
	AgreedAmount  decimal.Decimal `json:"agreed_amount"`
	Currency      string          `json:"currency"`
	Status        string          `json:"status"`
	PaymentStatus string          `json:"payment_status,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	CompletedAt   *time.Time      `json:"completed_at,omitempty"`
}

type CreateContractResponse struct {
	Contract ContractDTO `json:"contract"`
	Created  bool        `json:"created"`
}

// GetContractResponse carries a null contract when none exists yet.
type GetContractResponse struct {
	Contract *ContractDTO `json:"contract"`
}

type ReleaseContractRequest struct {
	Rating  *float64 `json:"rating,omitempty"`
	Comment string   `json:"comment,omitempty"`
}

type PayoutDTO struct {
	PayoutID    string          `json:"payout_id"`
	RecipientID string          `json:"recipient_id"`
	Amount      decimal.Decimal `json:"amount"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
}

type ReleaseContractResponse struct {
	Contract ContractDTO `json:"contract"`
	Payout   *PayoutDTO  `json:"payout,omitempty"`
	Replayed bool        `json:"replayed"`
}

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
