package services

import (
	"testing"

	"talentia/contexts/marketplace/talent-ranking/domain/entities"
)

func TestRankTalentsOrdersByRatingThenReviewCountThenID(t *testing.T) {
	rows := []entities.TalentRow{
		{UserID: "s-3", FirstName: "Cy", AverageRating: 4.5, ReviewCount: 2},
		{UserID: "s-1", FirstName: "Ada", AverageRating: 4.5, ReviewCount: 4},
		{UserID: "s-4", FirstName: "Dee", AverageRating: 4.96, ReviewCount: 1},
		{UserID: "s-2", FirstName: "Bo", AverageRating: 4.5, ReviewCount: 2},
		{UserID: "s-5", FirstName: "Eve", AverageRating: 0, ReviewCount: 0},
	}

	talents := RankTalents(rows, nil)

	want := []string{"s-4", "s-1", "s-2", "s-3"}
	if len(talents) != len(want) {
		t.Fatalf("expected %d talents, got %d", len(want), len(talents))
	}
	for i, id := range want {
		if talents[i].UserID != id {
			t.Fatalf("position %d: expected %s, got %s", i, id, talents[i].UserID)
		}
	}
	if talents[0].Rating != 5.0 {
		t.Fatalf("expected 4.96 to round to 5.0, got %v", talents[0].Rating)
	}
	for _, talent := range talents {
		if talent.HourlyRate != nil {
			t.Fatalf("expected nil hourly rate for %s", talent.UserID)
		}
	}
}

func TestRankTalentsKeepsTopFiveSkills(t *testing.T) {
	rows := []entities.TalentRow{{UserID: "s-1", AverageRating: 4, ReviewCount: 1}}
	skills := map[string][]string{
		"s-1": {"Go", "SQL", "Docker", "Kafka", "Redis", "Terraform"},
	}

	talents := RankTalents(rows, skills)

	if len(talents[0].Skills) != MaxSkillsPerTalent {
		t.Fatalf("expected %d skills, got %d", MaxSkillsPerTalent, len(talents[0].Skills))
	}
	if talents[0].PrimarySkill != "Go" {
		t.Fatalf("expected primary skill Go, got %q", talents[0].PrimarySkill)
	}
	if talents[0].Name != DefaultDisplayName {
		t.Fatalf("expected fallback name, got %q", talents[0].Name)
	}
}

func TestRoundRating(t *testing.T) {
	cases := map[float64]float64{
		4.44:  4.4,
		4.45:  4.5,
		3.0:   3.0,
		4.666: 4.7,
		4.25:  4.2,
		3.25:  3.2,
		4.75:  4.8,
		4.35:  4.3,
	}
	for input, want := range cases {
		if got := RoundRating(input); got != want {
			t.Fatalf("RoundRating(%v) = %v, want %v", input, got, want)
		}
	}
}

func TestRankTalentsRoundsTiedAverageToEven(t *testing.T) {
	// Reviews 4, 4, 4, 5 average to exactly 4.25.
	rows := []entities.TalentRow{{UserID: "s-1", AverageRating: 17.0 / 4, ReviewCount: 4}}

	talents := RankTalents(rows, nil)

	if talents[0].Rating != 4.2 {
		t.Fatalf("expected 4.25 to round to 4.2, got %v", talents[0].Rating)
	}
}
