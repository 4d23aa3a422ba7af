package migrations

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestApplyExecutesAllMigrations(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer db.Close()

	for range schema {
		mock.ExpectExec(".*").WillReturnResult(sqlmock.NewResult(0, 0))
	}

	if err := Apply(context.Background(), db); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestSchemaDeclaresLedgerUniqueConstraints(t *testing.T) {
	all := strings.Join(schema, "\n")
	required := []string{
		"gig_applications_gig_student_key",
		"conversations_application_key",
		"contracts_application_key",
		"payments_contract_key",
		"payouts_contract_key",
	}
	for _, name := range required {
		if !strings.Contains(all, "CONSTRAINT "+name+" UNIQUE") {
			t.Fatalf("expected unique constraint %s in schema", name)
		}
	}
}

func TestApplyStopsOnFirstError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer db.Close()

	mock.ExpectExec(".*").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(".*").WillReturnError(errors.New("permission denied"))

	if err := Apply(context.Background(), db); err == nil {
		t.Fatalf("expected error")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestSeedDemoRunsSeedStatements(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO skill_tags .* ON CONFLICT DO NOTHING").WillReturnResult(sqlmock.NewResult(0, 6))
	if err := SeedDemo(context.Background(), db); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}
