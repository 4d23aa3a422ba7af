package ports

import (
	"context"

	"talentia/contexts/marketplace/talent-ranking/domain/entities"
)

// TalentSource reads the ledger, review and profile tables the feed is
// projected from. Nothing is cached between calls.
type TalentSource interface {
	// ListReviewedStudents returns STUDENT users with at least one review,
	// with review average/count and COMPLETED contract count.
	ListReviewedStudents(ctx context.Context) ([]entities.TalentRow, error)
	// TopSkills returns up to limit skill names per user, strongest level first.
	TopSkills(ctx context.Context, userIDs []string, limit int) (map[string][]string, error)
}
