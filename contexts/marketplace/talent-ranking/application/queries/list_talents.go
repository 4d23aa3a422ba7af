package queries

import (
	"context"
	"log/slog"

	application "talentia/contexts/marketplace/talent-ranking/application"
	"talentia/contexts/marketplace/talent-ranking/domain/entities"
	domainerrors "talentia/contexts/marketplace/talent-ranking/domain/errors"
	"talentia/contexts/marketplace/talent-ranking/domain/services"
	"talentia/contexts/marketplace/talent-ranking/ports"
)

const MaxListLimit = 100

type ListTalentsQuery struct {
	// Limit caps the feed length. Zero returns every ranked talent.
	Limit int
}

type ListTalentsResult struct {
	Items []entities.Talent
}

type ListTalentsUseCase struct {
	Source ports.TalentSource
	Logger *slog.Logger
}

func (u ListTalentsUseCase) Execute(ctx context.Context, query ListTalentsQuery) (ListTalentsResult, error) {
	logger := application.ResolveLogger(u.Logger)
	if query.Limit < 0 || query.Limit > MaxListLimit {
		return ListTalentsResult{}, domainerrors.ErrInvalidLimit
	}

	rows, err := u.Source.ListReviewedStudents(ctx)
	if err != nil {
		logger.Error("list reviewed students failed",
			"event", "talent_ranking_rows_failed",
			"module", "marketplace/talent-ranking",
			"layer", "application",
			"error", err.Error(),
		)
		return ListTalentsResult{}, err
	}

	userIDs := make([]string, 0, len(rows))
	for _, row := range rows {
		userIDs = append(userIDs, row.UserID)
	}
	skills := map[string][]string{}
	if len(userIDs) > 0 {
		skills, err = u.Source.TopSkills(ctx, userIDs, services.MaxSkillsPerTalent)
		if err != nil {
			logger.Error("load talent skills failed",
				"event", "talent_ranking_skills_failed",
				"module", "marketplace/talent-ranking",
				"layer", "application",
				"error", err.Error(),
			)
			return ListTalentsResult{}, err
		}
	}

	items := services.RankTalents(rows, skills)
	if query.Limit > 0 && len(items) > query.Limit {
		items = items[:query.Limit]
	}

	logger.Debug("talent feed computed",
		"event", "talent_ranking_listed",
		"module", "marketplace/talent-ranking",
		"layer", "application",
		"candidates", len(rows),
		"returned", len(items),
	)
	return ListTalentsResult{Items: items}, nil
}
