package errors

import "errors"

var (
	ErrForbidden                = errors.New("forbidden")
	ErrInvalidRequest           = errors.New("invalid request")
	ErrInvalidBudgetRange       = errors.New("budget_min must not exceed budget_max")
	ErrInvalidAmount            = errors.New("agreed amount must be positive")
	ErrInvalidRating            = errors.New("rating must be between 1 and 5")
	ErrEmptyMessage             = errors.New("message content is required")
	ErrGigNotFound              = errors.New("gig not found")
	ErrApplicationNotFound      = errors.New("application not found")
	ErrConversationNotFound     = errors.New("conversation not found")
	ErrContractNotFound         = errors.New("contract not found")
	ErrDuplicateApplication     = errors.New("already applied to this gig")
	ErrRepositoryInvariantBroke = errors.New("repository invariant violated")
)
