package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"talentia/contexts/marketplace/gig-marketplace/domain/entities"
	domainerrors "talentia/contexts/marketplace/gig-marketplace/domain/errors"
	"talentia/contexts/marketplace/gig-marketplace/ports"

	"github.com/shopspring/decimal"
)

func seededStore() *Store {
	return NewStore(Seed{
		Users: map[string]string{"company-1": "Acme Ltd", "student-1": "Ada Lovelace"},
		Gigs: []entities.Gig{{
			GigID:     "gig-1",
			CompanyID: "company-1",
			Title:     "Landing page",
			Status:    entities.GigStatusOpen,
			CreatedAt: time.Now().Add(-time.Hour).UTC(),
		}},
	}, nil)
}

func TestCreateApplicationIsUniquePerGigAndStudentUnderConcurrency(t *testing.T) {
	store := seededStore()

	const attempts = 32
	var (
		wg         sync.WaitGroup
		mu         sync.Mutex
		created    int
		duplicates int
	)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			err := store.CreateApplication(context.Background(), entities.GigApplication{
				ApplicationID: fmt.Sprintf("app-%d", i),
				GigID:         "gig-1",
				StudentID:     "student-1",
				Status:        entities.ApplicationStatusApplied,
				AppliedAt:     time.Now().UTC(),
			})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				created++
			case errors.Is(err, domainerrors.ErrDuplicateApplication):
				duplicates++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}(i)
	}
	wg.Wait()

	if created != 1 {
		t.Fatalf("expected exactly one application, got %d", created)
	}
	if duplicates != attempts-1 {
		t.Fatalf("expected %d duplicates, got %d", attempts-1, duplicates)
	}
	items, err := store.ListApplicationsByGig(context.Background(), "gig-1")
	if err != nil {
		t.Fatalf("list applications: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected one stored application, got %d", len(items))
	}
}

func TestApproveApplicationKeepsFirstConversation(t *testing.T) {
	store := seededStore()
	ctx := context.Background()
	if err := store.CreateApplication(ctx, entities.GigApplication{
		ApplicationID: "app-1",
		GigID:         "gig-1",
		StudentID:     "student-1",
		Status:        entities.ApplicationStatusApplied,
	}); err != nil {
		t.Fatalf("create application: %v", err)
	}

	first, err := store.ApproveApplication(ctx, "app-1", time.Now(), entities.Conversation{
		ConversationID: "conv-1",
		ApplicationID:  "app-1",
		CompanyID:      "company-1",
		StudentID:      "student-1",
	})
	if err != nil {
		t.Fatalf("first approve: %v", err)
	}
	second, err := store.ApproveApplication(ctx, "app-1", time.Now(), entities.Conversation{
		ConversationID: "conv-2",
		ApplicationID:  "app-1",
		CompanyID:      "company-1",
		StudentID:      "student-1",
	})
	if err != nil {
		t.Fatalf("second approve: %v", err)
	}
	if first.ConversationID != "conv-1" || second.ConversationID != "conv-1" {
		t.Fatalf("expected conv-1 twice, got %s and %s", first.ConversationID, second.ConversationID)
	}

	item, _ := store.GetApplication(ctx, "app-1")
	if item.Status != entities.ApplicationStatusApproved || item.ApprovedAt == nil {
		t.Fatalf("expected approved application, got %+v", item)
	}
}

func TestReleaseContractToleratesMissingPayment(t *testing.T) {
	store := seededStore()
	ctx := context.Background()
	contract, payment, err := entities.NewContractWithPayment("contract-1", "payment-1", "gig-1", "app-1", decimal.NewFromInt(70000), time.Now())
	if err != nil {
		t.Fatalf("new contract: %v", err)
	}
	if _, _, err := store.CreateContractWithPayment(ctx, contract, payment); err != nil {
		t.Fatalf("create contract: %v", err)
	}
	store.DeletePayment("contract-1")

	result, err := store.ReleaseContract(ctx, ports.Release{
		ContractID: "contract-1",
		GigID:      "gig-1",
		StudentID:  "student-1",
		PayoutID:   "payout-1",
		ReleasedAt: time.Now(),
	})
	if err != nil {
		t.Fatalf("release: %v", err)
	}
	if !result.PaymentMissing {
		t.Fatalf("expected payment to be reported missing")
	}
	if result.Contract.Contract.Status != entities.ContractStatusCompleted {
		t.Fatalf("expected completed contract, got %s", result.Contract.Contract.Status)
	}
	if len(store.Payouts()) != 1 {
		t.Fatalf("expected one payout, got %d", len(store.Payouts()))
	}
}

func TestReleaseContractLeavesStateUntouchedWhenGigMissing(t *testing.T) {
	store := seededStore()
	ctx := context.Background()
	contract, payment, _ := entities.NewContractWithPayment("contract-1", "payment-1", "gig-missing", "app-1", decimal.NewFromInt(500), time.Now())
	if _, _, err := store.CreateContractWithPayment(ctx, contract, payment); err != nil {
		t.Fatalf("create contract: %v", err)
	}

	_, err := store.ReleaseContract(ctx, ports.Release{
		ContractID: "contract-1",
		GigID:      "gig-missing",
		StudentID:  "student-1",
		PayoutID:   "payout-1",
		ReleasedAt: time.Now(),
		Review:     &entities.RatingReview{ReviewID: "review-1", ToUserID: "student-1", Rating: 5},
	})
	if !errors.Is(err, domainerrors.ErrGigNotFound) {
		t.Fatalf("expected gig not found, got %v", err)
	}

	view, _ := store.GetContract(ctx, "contract-1")
	if view.Contract.Status != entities.ContractStatusActive {
		t.Fatalf("expected contract to stay active, got %s", view.Contract.Status)
	}
	if view.Payment == nil || view.Payment.Status != entities.PaymentStatusHeld {
		t.Fatalf("expected payment to stay held, got %+v", view.Payment)
	}
	if len(store.Payouts()) != 0 || len(store.Reviews()) != 0 {
		t.Fatalf("expected no payout or review after failed release")
	}
}

func TestNewIDSortsInCreationOrder(t *testing.T) {
	store := seededStore()
	first, _ := store.NewID(context.Background())
	for i := 0; i < 9; i++ {
		_, _ = store.NewID(context.Background())
	}
	last, _ := store.NewID(context.Background())
	if !(first < last) {
		t.Fatalf("expected %s < %s", first, last)
	}
}
