package postgresadapter

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"talentia/contexts/marketplace/talent-ranking/domain/entities"

	"github.com/Masterminds/squirrel"
)

// Repository projects the talent feed straight from the ledger tables with
// hand-built aggregate queries.
type Repository struct {
	db     *sql.DB
	qb     squirrel.StatementBuilderType
	logger *slog.Logger
}

func NewRepository(db *sql.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		db:     db,
		qb:     squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
		logger: logger,
	}
}

func (r *Repository) ListReviewedStudents(ctx context.Context) ([]entities.TalentRow, error) {
	reviewStats := r.qb.
		Select("to_user_id AS user_id", "AVG(rating)::float8 AS avg_rating", "COUNT(*) AS reviews_count").
		From("rating_reviews").
		GroupBy("to_user_id")

	gigStats := r.qb.
		Select("a.student_id AS user_id", "COUNT(c.contract_id) AS completed_gigs").
		From("contracts c").
		Join("gig_applications a ON a.application_id = c.application_id").
		Where(squirrel.Eq{"c.status": "COMPLETED"}).
		GroupBy("a.student_id")

	query := r.qb.
		Select(
			"u.user_id",
			"u.first_name",
			"u.last_name",
			"COALESCE(u.avatar_url, '')",
			"COALESCE(un.name, '')",
			"rs.avg_rating",
			"rs.reviews_count",
			"COALESCE(gs.completed_gigs, 0)",
		).
		From("users u").
		JoinClause(reviewStats.Prefix("JOIN (").Suffix(") rs ON rs.user_id = u.user_id")).
		JoinClause(gigStats.Prefix("LEFT JOIN (").Suffix(") gs ON gs.user_id = u.user_id")).
		LeftJoin("universities un ON un.university_id = u.university_id").
		Where(squirrel.Eq{"u.role": "STUDENT"}).
		OrderBy("rs.avg_rating DESC", "rs.reviews_count DESC", "u.user_id ASC")

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build talent query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		r.logger.Error("talent query failed",
			"event", "talent_ranking_query_failed",
			"module", "marketplace/talent-ranking",
			"layer", "adapter",
			"error", err.Error(),
		)
		return nil, fmt.Errorf("query talents: %w", err)
	}
	defer rows.Close()

	var items []entities.TalentRow
	for rows.Next() {
		var row entities.TalentRow
		if err := rows.Scan(
			&row.UserID,
			&row.FirstName,
			&row.LastName,
			&row.AvatarURL,
			&row.University,
			&row.AverageRating,
			&row.ReviewCount,
			&row.CompletedGigs,
		); err != nil {
			return nil, fmt.Errorf("scan talent: %w", err)
		}
		items = append(items, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate talents: %w", err)
	}
	return items, nil
}

func (r *Repository) TopSkills(ctx context.Context, userIDs []string, limit int) (map[string][]string, error) {
	out := make(map[string][]string, len(userIDs))
	if len(userIDs) == 0 {
		return out, nil
	}

	query := r.qb.
		Select("us.user_id", "st.name").
		From("user_skills us").
		Join("skill_tags st ON st.skill_id = us.skill_id").
		Where(squirrel.Eq{"us.user_id": userIDs}).
		OrderBy("us.user_id", "us.level DESC", "st.name ASC")

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build skills query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("query skills: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var userID, name string
		if err := rows.Scan(&userID, &name); err != nil {
			return nil, fmt.Errorf("scan skill: %w", err)
		}
		if limit > 0 && len(out[userID]) >= limit {
			continue
		}
		out[userID] = append(out[userID], name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate skills: %w", err)
	}
	return out, nil
}
