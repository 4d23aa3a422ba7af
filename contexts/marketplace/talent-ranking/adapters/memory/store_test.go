package memory

import (
	"context"
	"testing"
)

func TestListReviewedStudentsExcludesNonStudentsAndUnreviewed(t *testing.T) {
	store := NewStore()
	store.PutUser(User{UserID: "s-1", FirstName: "Ada", Role: "STUDENT"})
	store.PutUser(User{UserID: "s-2", FirstName: "Bo", Role: "STUDENT"})
	store.PutUser(User{UserID: "m-1", FirstName: "Mo", Role: "MENTOR"})
	store.AddReview(Review{ToUserID: "s-1", Rating: 5})
	store.AddReview(Review{ToUserID: "s-1", Rating: 4})
	store.AddReview(Review{ToUserID: "m-1", Rating: 5})
	store.AddContract(Contract{StudentID: "s-1", Status: "COMPLETED"})
	store.AddContract(Contract{StudentID: "s-1", Status: "ACTIVE"})

	rows, err := store.ListReviewedStudents(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected one reviewed student, got %d", len(rows))
	}
	row := rows[0]
	if row.UserID != "s-1" || row.ReviewCount != 2 || row.AverageRating != 4.5 || row.CompletedGigs != 1 {
		t.Fatalf("unexpected row: %+v", row)
	}
}

func TestTopSkillsOrdersByLevel(t *testing.T) {
	store := NewStore()
	store.AddSkill(Skill{UserID: "s-1", Name: "SQL", Level: 60})
	store.AddSkill(Skill{UserID: "s-1", Name: "Go", Level: 90})
	store.AddSkill(Skill{UserID: "s-1", Name: "Docker", Level: 75})
	store.AddSkill(Skill{UserID: "s-2", Name: "Figma", Level: 80})

	skills, err := store.TopSkills(context.Background(), []string{"s-1"}, 2)
	if err != nil {
		t.Fatalf("top skills: %v", err)
	}
	got := skills["s-1"]
	if len(got) != 2 || got[0] != "Go" || got[1] != "Docker" {
		t.Fatalf("unexpected skills: %v", got)
	}
	if _, ok := skills["s-2"]; ok {
		t.Fatalf("expected unrequested user to be skipped")
	}
}
