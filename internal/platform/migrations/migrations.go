// Package migrations holds the idempotent schema for the marketplace ledger
// and the talent projection inputs.
package migrations

import (
	"context"
	"database/sql"
	"fmt"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS universities (
		university_id TEXT PRIMARY KEY,
		name TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		user_id TEXT PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		first_name TEXT NOT NULL DEFAULT '',
		last_name TEXT NOT NULL DEFAULT '',
		role TEXT NOT NULL,
		avatar_url TEXT,
		university_id TEXT REFERENCES universities(university_id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS skill_tags (
		skill_id TEXT PRIMARY KEY,
		name TEXT NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS user_skills (
		user_id TEXT NOT NULL REFERENCES users(user_id),
		skill_id TEXT NOT NULL REFERENCES skill_tags(skill_id),
		level INTEGER NOT NULL DEFAULT 1,
		PRIMARY KEY (user_id, skill_id)
	)`,
	`CREATE TABLE IF NOT EXISTS gigs (
		gig_id TEXT PRIMARY KEY,
		company_id TEXT NOT NULL REFERENCES users(user_id),
		title TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		role TEXT NOT NULL DEFAULT '',
		budget_min NUMERIC(14,2) CHECK (budget_min >= 0),
		budget_max NUMERIC(14,2) CHECK (budget_max >= 0),
		location TEXT NOT NULL DEFAULT '',
		type TEXT NOT NULL DEFAULT 'GIG',
		category TEXT NOT NULL DEFAULT '',
		deadline TIMESTAMPTZ,
		status TEXT NOT NULL DEFAULT 'OPEN' CHECK (status IN ('OPEN', 'FILLED')),
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		CHECK (budget_min IS NULL OR budget_max IS NULL OR budget_min <= budget_max)
	)`,
	`CREATE INDEX IF NOT EXISTS gigs_status_created_idx ON gigs (status, created_at DESC)`,
	`CREATE TABLE IF NOT EXISTS gig_applications (
		application_id TEXT PRIMARY KEY,
		gig_id TEXT NOT NULL REFERENCES gigs(gig_id),
		student_id TEXT NOT NULL,
		proposal TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT 'APPLIED' CHECK (status IN ('APPLIED', 'APPROVED')),
		applied_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		approved_at TIMESTAMPTZ,
		CONSTRAINT gig_applications_gig_student_key UNIQUE (gig_id, student_id)
	)`,
	`CREATE TABLE IF NOT EXISTS conversations (
		conversation_id TEXT PRIMARY KEY,
		gig_id TEXT NOT NULL REFERENCES gigs(gig_id),
		application_id TEXT NOT NULL REFERENCES gig_applications(application_id),
		company_id TEXT NOT NULL,
		student_id TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		CONSTRAINT conversations_application_key UNIQUE (application_id)
	)`,
	`CREATE TABLE IF NOT EXISTS messages (
		message_id TEXT PRIMARY KEY,
		conversation_id TEXT NOT NULL REFERENCES conversations(conversation_id),
		sender_id TEXT NOT NULL,
		content TEXT NOT NULL CHECK (content <> ''),
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS messages_conversation_created_idx ON messages (conversation_id, created_at, message_id)`,
	`CREATE TABLE IF NOT EXISTS contracts (
		contract_id TEXT PRIMARY KEY,
		gig_id TEXT NOT NULL,
		application_id TEXT NOT NULL REFERENCES gig_applications(application_id),
		agreed_amount NUMERIC(14,2) NOT NULL CHECK (agreed_amount > 0),
		status TEXT NOT NULL DEFAULT 'ACTIVE' CHECK (status IN ('ACTIVE', 'COMPLETED')),
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		completed_at TIMESTAMPTZ,
		CONSTRAINT contracts_application_key UNIQUE (application_id)
	)`,
	`CREATE TABLE IF NOT EXISTS payments (
		payment_id TEXT PRIMARY KEY,
		contract_id TEXT NOT NULL REFERENCES contracts(contract_id),
		amount NUMERIC(14,2) NOT NULL,
		status TEXT NOT NULL DEFAULT 'HELD' CHECK (status IN ('HELD', 'PAID')),
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		paid_at TIMESTAMPTZ,
		CONSTRAINT payments_contract_key UNIQUE (contract_id)
	)`,
	`CREATE TABLE IF NOT EXISTS payouts (
		payout_id TEXT PRIMARY KEY,
		contract_id TEXT NOT NULL REFERENCES contracts(contract_id),
		recipient_id TEXT NOT NULL,
		amount NUMERIC(14,2) NOT NULL,
		status TEXT NOT NULL DEFAULT 'PENDING',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		CONSTRAINT payouts_contract_key UNIQUE (contract_id)
	)`,
	`CREATE TABLE IF NOT EXISTS rating_reviews (
		review_id TEXT PRIMARY KEY,
		from_user_id TEXT NOT NULL,
		to_user_id TEXT NOT NULL,
		rating NUMERIC(2,1) NOT NULL CHECK (rating >= 1 AND rating <= 5),
		comment TEXT NOT NULL DEFAULT '',
		context TEXT NOT NULL DEFAULT 'GIG',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS rating_reviews_to_user_idx ON rating_reviews (to_user_id)`,
}

var demoSeed = []string{
	`INSERT INTO skill_tags (skill_id, name) VALUES
		('skill-go', 'Go'),
		('skill-react', 'React'),
		('skill-ui-design', 'UI Design'),
		('skill-data-analysis', 'Data Analysis'),
		('skill-copywriting', 'Copywriting'),
		('skill-marketing', 'Digital Marketing')
	ON CONFLICT DO NOTHING`,
}

// Apply runs every schema statement in order. Statements are idempotent, so
// re-running against a migrated database is a no-op.
func Apply(ctx context.Context, db *sql.DB) error {
	return exec(ctx, db, "migration", schema)
}

// SeedDemo inserts reference data once. It never runs implicitly.
func SeedDemo(ctx context.Context, db *sql.DB) error {
	return exec(ctx, db, "seed", demoSeed)
}

func exec(ctx context.Context, db *sql.DB, kind string, statements []string) error {
	if db == nil {
		return fmt.Errorf("%s: database is required", kind)
	}
	for i, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("%s %d: %w", kind, i+1, err)
		}
	}
	return nil
}
