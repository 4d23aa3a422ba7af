package ports

import (
	"context"
	"time"

	"talentia/contexts/marketplace/gig-marketplace/domain/entities"
)

// GigRepository owns gig rows.
type GigRepository interface {
	CreateGig(ctx context.Context, gig entities.Gig) error
	GetGig(ctx context.Context, gigID string) (entities.Gig, error)
	// ListGigs returns gigs newest first. An empty status matches every gig,
	// an empty company id matches every company.
	ListGigs(ctx context.Context, filter GigFilter) ([]entities.Gig, error)
	CountApplicationsByGig(ctx context.Context, gigIDs []string) (map[string]int, error)
}

type GigFilter struct {
	CompanyID string
	Status    entities.GigStatus
}

// ApplicationRepository owns gig applications and the approval write boundary.
type ApplicationRepository interface {
	// CreateApplication must surface ErrDuplicateApplication when the
	// (gig_id, student_id) uniqueness constraint fires.
	CreateApplication(ctx context.Context, application entities.GigApplication) error
	GetApplication(ctx context.Context, applicationID string) (entities.GigApplication, error)
	ListApplicationsByGig(ctx context.Context, gigID string) ([]entities.GigApplication, error)
	// ApproveApplication atomically marks the application approved and
	// upserts the conversation keyed by application id. The returned
	// conversation is the stored one, which differs from the candidate when
	// an earlier approval already opened it.
	ApproveApplication(ctx context.Context, applicationID string, approvedAt time.Time, candidate entities.Conversation) (entities.Conversation, error)
}

// ConversationRepository owns conversations and their messages.
type ConversationRepository interface {
	GetConversationByApplication(ctx context.Context, applicationID string) (entities.Conversation, error)
	ListConversationsByParticipant(ctx context.Context, userID string) ([]entities.Conversation, error)
	AppendMessage(ctx context.Context, message entities.Message) error
}

// ContractRepository owns contracts, escrow payments, payouts and release reviews.
type ContractRepository interface {
	// CreateContractWithPayment upserts on application id. When a contract
	// already exists it is returned unchanged and no payment is written.
	CreateContractWithPayment(ctx context.Context, contract entities.Contract, payment entities.Payment) (entities.ContractView, bool, error)
	GetContract(ctx context.Context, contractID string) (entities.ContractView, error)
	// GetContractByApplication reports false when the application has no contract yet.
	GetContractByApplication(ctx context.Context, applicationID string) (entities.ContractView, bool, error)
	// ReleaseContract commits every release mutation in one transaction.
	ReleaseContract(ctx context.Context, release Release) (ReleaseResult, error)
}

// Release carries the ids and timestamps prepared by the release use case.
// Review is nil when the caller supplied no rating.
type Release struct {
	ContractID string
	GigID      string
	StudentID  string
	PayoutID   string
	ReleasedAt time.Time
	Review     *entities.RatingReview
}

type ReleaseResult struct {
	Contract       entities.ContractView
	Payout         *entities.Payout
	AlreadyClosed  bool
	PaymentMissing bool
}

// UserDirectory resolves display names owned by the identity service.
type UserDirectory interface {
	// DisplayNames returns a name per known id. Unknown ids are omitted.
	DisplayNames(ctx context.Context, userIDs []string) (map[string]string, error)
}

// Clock allows deterministic testing of timestamps.
type Clock interface {
	Now() time.Time
}

// IDGenerator abstracts entity identifier generation.
type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}
