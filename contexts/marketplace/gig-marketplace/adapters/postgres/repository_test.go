package postgresadapter

import (
	"context"
	"errors"
	"testing"
	"time"

	"talentia/contexts/marketplace/gig-marketplace/domain/entities"
	domainerrors "talentia/contexts/marketplace/gig-marketplace/domain/errors"
	"talentia/contexts/marketplace/gig-marketplace/ports"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockRepository(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)
	return NewRepository(db, nil), mock
}

func TestGetGigMapsMissingRowToNotFound(t *testing.T) {
	repo, mock := newMockRepository(t)
	mock.ExpectQuery(`SELECT \* FROM "gigs" WHERE gig_id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"gig_id"}))

	_, err := repo.GetGig(context.Background(), "gig-missing")
	require.True(t, errors.Is(err, domainerrors.ErrGigNotFound), "got %v", err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateApplicationMapsPairConstraintToDuplicate(t *testing.T) {
	repo, mock := newMockRepository(t)
	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "gig_applications"`).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: constraintApplicationPair})
	mock.ExpectRollback()

	err := repo.CreateApplication(context.Background(), entities.GigApplication{
		ApplicationID: "app-2",
		GigID:         "gig-1",
		StudentID:     "student-1",
		Status:        entities.ApplicationStatusApplied,
		AppliedAt:     time.Now().UTC(),
	})
	require.True(t, errors.Is(err, domainerrors.ErrDuplicateApplication), "got %v", err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateApplicationMapsMissingGigForeignKey(t *testing.T) {
	repo, mock := newMockRepository(t)
	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "gig_applications"`).
		WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "gig_applications_gig_id_fkey"})
	mock.ExpectRollback()

	err := repo.CreateApplication(context.Background(), entities.GigApplication{
		ApplicationID: "app-3",
		GigID:         "gig-missing",
		StudentID:     "student-1",
		Status:        entities.ApplicationStatusApplied,
	})
	require.True(t, errors.Is(err, domainerrors.ErrGigNotFound), "got %v", err)
	require.NoError(t, mock.ExpectationsWereMet())
}

var (
	contractColumns = []string{"contract_id", "gig_id", "application_id", "agreed_amount", "status", "created_at", "completed_at"}
	paymentColumns  = []string{"payment_id", "contract_id", "amount", "status", "created_at", "paid_at"}
	payoutColumns   = []string{"payout_id", "contract_id", "recipient_id", "amount", "status", "created_at"}
)

func testRelease(releasedAt time.Time) ports.Release {
	return ports.Release{
		ContractID: "contract-1",
		GigID:      "gig-1",
		StudentID:  "student-1",
		PayoutID:   "payout-2",
		ReleasedAt: releasedAt,
	}
}

func TestReleaseContractReplaysCompletedContractWithoutWrites(t *testing.T) {
	repo, mock := newMockRepository(t)
	createdAt := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	completedAt := createdAt.Add(48 * time.Hour)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "contracts" WHERE contract_id = \$1 .*FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows(contractColumns).
			AddRow("contract-1", "gig-1", "app-1", "70000.00", "COMPLETED", createdAt, completedAt))
	mock.ExpectQuery(`SELECT \* FROM "payments" WHERE contract_id = \$1`).
		WillReturnRows(sqlmock.NewRows(paymentColumns).
			AddRow("payment-1", "contract-1", "70000.00", "PAID", createdAt, completedAt))
	mock.ExpectQuery(`SELECT \* FROM "payouts" WHERE contract_id = \$1`).
		WillReturnRows(sqlmock.NewRows(payoutColumns).
			AddRow("payout-1", "contract-1", "student-1", "70000.00", "PENDING", completedAt))
	mock.ExpectCommit()

	result, err := repo.ReleaseContract(context.Background(), testRelease(completedAt.Add(time.Hour)))
	require.NoError(t, err)
	require.True(t, result.AlreadyClosed)
	require.NotNil(t, result.Payout)
	require.Equal(t, "payout-1", result.Payout.PayoutID, "replay must return the first payout")
	require.Equal(t, entities.ContractStatusCompleted, result.Contract.Contract.Status)
	require.NotNil(t, result.Contract.Payment)
	require.Equal(t, entities.PaymentStatusPaid, result.Contract.Payment.Status)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReleaseContractFlagsMissingPaymentAndCompletes(t *testing.T) {
	repo, mock := newMockRepository(t)
	createdAt := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	releasedAt := createdAt.Add(24 * time.Hour)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "contracts" WHERE contract_id = \$1 .*FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows(contractColumns).
			AddRow("contract-1", "gig-1", "app-1", "70000.00", "ACTIVE", createdAt, nil))
	mock.ExpectExec(`UPDATE "payments" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "payments" WHERE contract_id = \$1`).
		WithArgs("contract-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec(`INSERT INTO "payouts"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "contracts" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "gigs" SET "status"=\$1 WHERE gig_id = \$2 AND status <> \$3`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT \* FROM "contracts" WHERE contract_id = \$1`).
		WillReturnRows(sqlmock.NewRows(contractColumns).
			AddRow("contract-1", "gig-1", "app-1", "70000.00", "COMPLETED", createdAt, releasedAt))
	mock.ExpectQuery(`SELECT \* FROM "payments" WHERE contract_id = \$1`).
		WillReturnRows(sqlmock.NewRows(paymentColumns))
	mock.ExpectCommit()

	result, err := repo.ReleaseContract(context.Background(), testRelease(releasedAt))
	require.NoError(t, err)
	require.False(t, result.AlreadyClosed)
	require.True(t, result.PaymentMissing)
	require.NotNil(t, result.Payout)
	require.Equal(t, "payout-2", result.Payout.PayoutID)
	require.Equal(t, "student-1", result.Payout.RecipientID)
	require.True(t, result.Payout.Amount.Equal(decimal.NewFromInt(70000)), "got %s", result.Payout.Amount)
	require.Equal(t, entities.ContractStatusCompleted, result.Contract.Contract.Status)
	require.Nil(t, result.Contract.Payment)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReleaseContractRollsBackWhenPayoutInsertConflicts(t *testing.T) {
	repo, mock := newMockRepository(t)
	createdAt := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "contracts" WHERE contract_id = \$1 .*FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows(contractColumns).
			AddRow("contract-1", "gig-1", "app-1", "500.00", "ACTIVE", createdAt, nil))
	mock.ExpectExec(`UPDATE "payments" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO "payouts"`).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: constraintPayoutContract})
	mock.ExpectRollback()

	_, err := repo.ReleaseContract(context.Background(), testRelease(createdAt.Add(time.Hour)))
	require.True(t, errors.Is(err, domainerrors.ErrRepositoryInvariantBroke), "got %v", err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReleaseContractRollsBackOnPlainPayoutFailure(t *testing.T) {
	repo, mock := newMockRepository(t)
	createdAt := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	failure := errors.New("connection reset")

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "contracts" WHERE contract_id = \$1 .*FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows(contractColumns).
			AddRow("contract-1", "gig-1", "app-1", "500.00", "ACTIVE", createdAt, nil))
	mock.ExpectExec(`UPDATE "payments" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO "payouts"`).
		WillReturnError(failure)
	mock.ExpectRollback()

	_, err := repo.ReleaseContract(context.Background(), testRelease(createdAt.Add(time.Hour)))
	require.ErrorIs(t, err, failure)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReleaseContractMapsMissingContract(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "contracts" WHERE contract_id = \$1 .*FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows(contractColumns))
	mock.ExpectRollback()

	_, err := repo.ReleaseContract(context.Background(), testRelease(time.Now()))
	require.True(t, errors.Is(err, domainerrors.ErrContractNotFound), "got %v", err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateContractWithPaymentReadsBackExistingOnConflict(t *testing.T) {
	repo, mock := newMockRepository(t)
	createdAt := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	contract, payment, err := entities.NewContractWithPayment(
		"contract-2", "payment-2", "gig-1", "app-1", decimal.NewFromInt(90000), createdAt.Add(time.Minute),
	)
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "contracts" .* ON CONFLICT \("application_id"\) DO NOTHING`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT \* FROM "contracts" WHERE application_id = \$1`).
		WillReturnRows(sqlmock.NewRows(contractColumns).
			AddRow("contract-1", "gig-1", "app-1", "70000.00", "ACTIVE", createdAt, nil))
	mock.ExpectQuery(`SELECT \* FROM "payments" WHERE contract_id = \$1`).
		WillReturnRows(sqlmock.NewRows(paymentColumns).
			AddRow("payment-1", "contract-1", "70000.00", "HELD", createdAt, nil))
	mock.ExpectCommit()

	view, created, err := repo.CreateContractWithPayment(context.Background(), contract, payment)
	require.NoError(t, err)
	require.False(t, created, "losing insert must not write a payment")
	require.Equal(t, "contract-1", view.Contract.ContractID)
	require.True(t, view.Contract.AgreedAmount.Equal(decimal.NewFromInt(70000)), "got %s", view.Contract.AgreedAmount)
	require.NotNil(t, view.Payment)
	require.Equal(t, "payment-1", view.Payment.PaymentID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateContractWithPaymentWritesPaymentForNewContract(t *testing.T) {
	repo, mock := newMockRepository(t)
	createdAt := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	contract, payment, err := entities.NewContractWithPayment(
		"contract-1", "payment-1", "gig-1", "app-1", decimal.NewFromInt(70000), createdAt,
	)
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "contracts"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO "payments"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT \* FROM "contracts" WHERE application_id = \$1`).
		WillReturnRows(sqlmock.NewRows(contractColumns).
			AddRow("contract-1", "gig-1", "app-1", "70000.00", "ACTIVE", createdAt, nil))
	mock.ExpectQuery(`SELECT \* FROM "payments" WHERE contract_id = \$1`).
		WillReturnRows(sqlmock.NewRows(paymentColumns).
			AddRow("payment-1", "contract-1", "70000.00", "HELD", createdAt, nil))
	mock.ExpectCommit()

	view, created, err := repo.CreateContractWithPayment(context.Background(), contract, payment)
	require.NoError(t, err)
	require.True(t, created)
	require.Equal(t, entities.PaymentStatusHeld, view.Payment.Status)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateContractWithPaymentMapsMissingApplication(t *testing.T) {
	repo, mock := newMockRepository(t)
	contract, payment, err := entities.NewContractWithPayment(
		"contract-1", "payment-1", "gig-1", "app-missing", decimal.NewFromInt(500), time.Now(),
	)
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "contracts"`).
		WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "contracts_application_id_fkey"})
	mock.ExpectRollback()

	_, _, err = repo.CreateContractWithPayment(context.Background(), contract, payment)
	require.True(t, errors.Is(err, domainerrors.ErrApplicationNotFound), "got %v", err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestApproveApplicationReadsBackExistingConversation(t *testing.T) {
	repo, mock := newMockRepository(t)
	createdAt := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	candidate := entities.Conversation{
		ConversationID: "conv-2",
		GigID:          "gig-1",
		ApplicationID:  "app-1",
		CompanyID:      "company-1",
		StudentID:      "student-1",
		CreatedAt:      createdAt.Add(time.Hour),
	}

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "gig_applications" SET .* WHERE application_id = \$\d+ AND status <> \$\d+`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "gig_applications" WHERE application_id = \$1`).
		WithArgs("app-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectExec(`INSERT INTO "conversations" .* ON CONFLICT \("application_id"\) DO NOTHING`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT \* FROM "conversations" WHERE application_id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"conversation_id", "gig_id", "application_id", "company_id", "student_id", "created_at"}).
			AddRow("conv-1", "gig-1", "app-1", "company-1", "student-1", createdAt))
	mock.ExpectQuery(`SELECT \* FROM "messages" WHERE conversation_id = \$1 ORDER BY created_at ASC,message_id ASC`).
		WithArgs("conv-1").
		WillReturnRows(sqlmock.NewRows([]string{"message_id", "conversation_id", "sender_id", "content", "created_at"}).
			AddRow("msg-1", "conv-1", "company-1", "Welcome aboard", createdAt.Add(time.Minute)))
	mock.ExpectCommit()

	conversation, err := repo.ApproveApplication(context.Background(), "app-1", createdAt.Add(time.Hour), candidate)
	require.NoError(t, err)
	require.Equal(t, "conv-1", conversation.ConversationID, "approval replay must keep the first conversation")
	require.Len(t, conversation.Messages, 1)
	require.Equal(t, "Welcome aboard", conversation.Messages[0].Content)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestApproveApplicationMapsMissingApplication(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "gig_applications" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "gig_applications"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectRollback()

	_, err := repo.ApproveApplication(context.Background(), "app-missing", time.Now(), entities.Conversation{
		ConversationID: "conv-9",
		ApplicationID:  "app-missing",
	})
	require.True(t, errors.Is(err, domainerrors.ErrApplicationNotFound), "got %v", err)
	require.NoError(t, mock.ExpectationsWereMet())
}
