package entities

import (
	"strings"
	"time"

	domainerrors "talentia/contexts/marketplace/gig-marketplace/domain/errors"

	"github.com/shopspring/decimal"
)

type GigStatus string

const (
	GigStatusOpen   GigStatus = "OPEN"
	GigStatusFilled GigStatus = "FILLED"
)

type GigType string

const (
	GigTypeContract GigType = "CONTRACT"
	GigTypeGig      GigType = "GIG"
	GigTypeProject  GigType = "PROJECT"
	GigTypeOngoing  GigType = "ONGOING"
)

type Gig struct {
	GigID       string
	CompanyID   string
	Title       string
	Description string
	Role        string
	BudgetMin   *decimal.Decimal
	BudgetMax   *decimal.Decimal
	Location    string
	Type        GigType
	Category    string
	Deadline    *time.Time
	Status      GigStatus
	CreatedAt   time.Time
}

// GigDraft carries the company-supplied fields of a new gig.
type GigDraft struct {
	Title       string
	Description string
	Role        string
	BudgetMin   *decimal.Decimal
	BudgetMax   *decimal.Decimal
	Location    string
	Type        GigType
	Category    string
	Deadline    *time.Time
}

func NewGig(gigID string, companyID string, draft GigDraft, createdAt time.Time) (Gig, error) {
	if strings.TrimSpace(gigID) == "" ||
		strings.TrimSpace(companyID) == "" ||
		strings.TrimSpace(draft.Title) == "" {
		return Gig{}, domainerrors.ErrInvalidRequest
	}
	if draft.BudgetMin != nil && draft.BudgetMin.IsNegative() {
		return Gig{}, domainerrors.ErrInvalidBudgetRange
	}
	if draft.BudgetMax != nil && draft.BudgetMax.IsNegative() {
		return Gig{}, domainerrors.ErrInvalidBudgetRange
	}
	if draft.BudgetMin != nil && !ValidateMoney(*draft.BudgetMin) {
		return Gig{}, domainerrors.ErrInvalidRequest
	}
	if draft.BudgetMax != nil && !ValidateMoney(*draft.BudgetMax) {
		return Gig{}, domainerrors.ErrInvalidRequest
	}
	if draft.BudgetMin != nil && draft.BudgetMax != nil && draft.BudgetMin.GreaterThan(*draft.BudgetMax) {
		return Gig{}, domainerrors.ErrInvalidBudgetRange
	}
	switch draft.Type {
	case "", GigTypeContract, GigTypeGig, GigTypeProject, GigTypeOngoing:
	default:
		return Gig{}, domainerrors.ErrInvalidRequest
	}

	var deadline *time.Time
	if draft.Deadline != nil {
		value := draft.Deadline.UTC()
		deadline = &value
	}

	return Gig{
		GigID:       gigID,
		CompanyID:   companyID,
		Title:       strings.TrimSpace(draft.Title),
		Description: draft.Description,
		Role:        draft.Role,
		BudgetMin:   draft.BudgetMin,
		BudgetMax:   draft.BudgetMax,
		Location:    draft.Location,
		Type:        draft.Type,
		Category:    draft.Category,
		Deadline:    deadline,
		Status:      GigStatusOpen,
		CreatedAt:   createdAt.UTC(),
	}, nil
}

// GigListing is a gig enriched for rendering.
type GigListing struct {
	Gig         Gig
	CompanyName string
	Applicants  int
}
