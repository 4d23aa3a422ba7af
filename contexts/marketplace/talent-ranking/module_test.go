package talentranking

import (
	"context"
	"errors"
	"testing"

	"talentia/contexts/marketplace/talent-ranking/adapters/memory"
	domainerrors "talentia/contexts/marketplace/talent-ranking/domain/errors"
	httptransport "talentia/contexts/marketplace/talent-ranking/transport/http"
)

func seededModule() Module {
	module := NewInMemoryModule(nil)
	store := module.Store
	store.PutUser(memory.User{UserID: "s-1", FirstName: "Ada", LastName: "Lovelace", Role: "STUDENT", University: "University of Buea"})
	store.PutUser(memory.User{UserID: "s-2", FirstName: "Bo", Role: "STUDENT"})
	store.PutUser(memory.User{UserID: "s-3", FirstName: "Cy", Role: "STUDENT"})
	store.PutUser(memory.User{UserID: "c-1", FirstName: "Acme", Role: "COMPANY"})

	store.AddReview(memory.Review{ToUserID: "s-1", Rating: 5})
	store.AddReview(memory.Review{ToUserID: "s-1", Rating: 4})
	store.AddReview(memory.Review{ToUserID: "s-2", Rating: 5})
	store.AddReview(memory.Review{ToUserID: "c-1", Rating: 5})

	store.AddContract(memory.Contract{StudentID: "s-1", Status: "COMPLETED"})
	store.AddContract(memory.Contract{StudentID: "s-1", Status: "COMPLETED"})
	store.AddContract(memory.Contract{StudentID: "s-2", Status: "ACTIVE"})

	store.AddSkill(memory.Skill{UserID: "s-1", Name: "Go", Level: 90})
	store.AddSkill(memory.Skill{UserID: "s-1", Name: "SQL", Level: 70})
	return module
}

func TestListTalentsRanksReviewedStudentsOnly(t *testing.T) {
	module := seededModule()

	resp, err := module.Handler.ListTalentsHandler(context.Background(), httptransport.ListTalentsRequest{})
	if err != nil {
		t.Fatalf("list talents: %v", err)
	}
	if len(resp.Items) != 2 {
		t.Fatalf("expected 2 talents, got %d", len(resp.Items))
	}

	first, second := resp.Items[0], resp.Items[1]
	if first.UserID != "s-2" || first.Rating != 5 || first.Reviews != 1 || first.CompletedGigs != 0 {
		t.Fatalf("unexpected first talent: %+v", first)
	}
	if second.UserID != "s-1" || second.Rating != 4.5 || second.Reviews != 2 || second.CompletedGigs != 2 {
		t.Fatalf("unexpected second talent: %+v", second)
	}
	if second.Name != "Ada Lovelace" || second.Skill != "Go" || len(second.Skills) != 2 {
		t.Fatalf("unexpected profile projection: %+v", second)
	}
	if first.HourlyRate != nil || second.HourlyRate != nil {
		t.Fatalf("expected hourly rate to stay null")
	}
}

func TestListTalentsAppliesLimit(t *testing.T) {
	module := seededModule()

	resp, err := module.Handler.ListTalentsHandler(context.Background(), httptransport.ListTalentsRequest{Limit: 1})
	if err != nil {
		t.Fatalf("list talents: %v", err)
	}
	if len(resp.Items) != 1 || resp.Items[0].UserID != "s-2" {
		t.Fatalf("unexpected limited feed: %+v", resp.Items)
	}

	_, err = module.Handler.ListTalentsHandler(context.Background(), httptransport.ListTalentsRequest{Limit: 101})
	if !errors.Is(err, domainerrors.ErrInvalidLimit) {
		t.Fatalf("expected invalid limit, got %v", err)
	}
}

func TestListTalentsReflectsNewReviewsImmediately(t *testing.T) {
	module := seededModule()
	module.Store.AddReview(memory.Review{ToUserID: "s-3", Rating: 5})
	module.Store.AddReview(memory.Review{ToUserID: "s-3", Rating: 5})

	resp, err := module.Handler.ListTalentsHandler(context.Background(), httptransport.ListTalentsRequest{})
	if err != nil {
		t.Fatalf("list talents: %v", err)
	}
	if len(resp.Items) != 3 || resp.Items[0].UserID != "s-3" {
		t.Fatalf("expected s-3 to lead after two perfect reviews, got %+v", resp.Items)
	}
}
