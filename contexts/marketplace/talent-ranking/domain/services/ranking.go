package services

import (
	"sort"
	"strconv"
	"strings"

	"talentia/contexts/marketplace/talent-ranking/domain/entities"
)

const (
	MaxSkillsPerTalent = 5
	DefaultDisplayName = "Student"
)

// RankTalents orders reviewed students by average rating, then review count,
// then user id. Rows without reviews are dropped. The published rating is
// rounded to one decimal after sorting on the exact average.
func RankTalents(rows []entities.TalentRow, skills map[string][]string) []entities.Talent {
	ranked := make([]entities.TalentRow, 0, len(rows))
	for _, row := range rows {
		if row.ReviewCount < 1 {
			continue
		}
		ranked = append(ranked, row)
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].AverageRating != ranked[j].AverageRating {
			return ranked[i].AverageRating > ranked[j].AverageRating
		}
		if ranked[i].ReviewCount != ranked[j].ReviewCount {
			return ranked[i].ReviewCount > ranked[j].ReviewCount
		}
		return ranked[i].UserID < ranked[j].UserID
	})

	talents := make([]entities.Talent, 0, len(ranked))
	for _, row := range ranked {
		top := skills[row.UserID]
		if len(top) > MaxSkillsPerTalent {
			top = top[:MaxSkillsPerTalent]
		}
		talent := entities.Talent{
			UserID:        row.UserID,
			Name:          DisplayName(row.FirstName, row.LastName),
			University:    row.University,
			AvatarURL:     row.AvatarURL,
			Rating:        RoundRating(row.AverageRating),
			Reviews:       row.ReviewCount,
			CompletedGigs: row.CompletedGigs,
			Skills:        append([]string{}, top...),
		}
		if len(top) > 0 {
			talent.PrimarySkill = top[0]
		}
		talents = append(talents, talent)
	}
	return talents
}

func DisplayName(firstName string, lastName string) string {
	name := strings.TrimSpace(strings.TrimSpace(firstName) + " " + strings.TrimSpace(lastName))
	if name == "" {
		return DefaultDisplayName
	}
	return name
}

// RoundRating rounds to one decimal, half to even on the exact binary value,
// so 4.25 becomes 4.2 and 4.35 (stored just below) becomes 4.3.
func RoundRating(value float64) float64 {
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(value, 'f', 1, 64), 64)
	if err != nil {
		return value
	}
	return rounded
}
