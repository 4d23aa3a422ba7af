package memory

import (
	"context"
	"sort"
	"sync"

	"talentia/contexts/marketplace/talent-ranking/domain/entities"
)

const roleStudent = "STUDENT"

type User struct {
	UserID     string
	FirstName  string
	LastName   string
	Role       string
	AvatarURL  string
	University string
}

type Review struct {
	ToUserID string
	Rating   float64
}

// Contract is the projection of a ledger contract onto its student.
type Contract struct {
	StudentID string
	Status    string
}

type Skill struct {
	UserID string
	Name   string
	Level  int
}

// Store holds the projected tables in memory and recomputes the join on
// every read.
type Store struct {
	mu        sync.RWMutex
	users     map[string]User
	reviews   []Review
	contracts []Contract
	skills    []Skill
}

func NewStore() *Store {
	return &Store{users: make(map[string]User)}
}

func (s *Store) PutUser(user User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[user.UserID] = user
}

func (s *Store) AddReview(review Review) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reviews = append(s.reviews, review)
}

func (s *Store) AddContract(contract Contract) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.contracts = append(s.contracts, contract)
}

func (s *Store) AddSkill(skill Skill) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.skills = append(s.skills, skill)
}

func (s *Store) ListReviewedStudents(_ context.Context) ([]entities.TalentRow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	type stats struct {
		sum   float64
		count int
	}
	byUser := make(map[string]*stats)
	for _, review := range s.reviews {
		entry, ok := byUser[review.ToUserID]
		if !ok {
			entry = &stats{}
			byUser[review.ToUserID] = entry
		}
		entry.sum += review.Rating
		entry.count++
	}
	completed := make(map[string]int)
	for _, contract := range s.contracts {
		if contract.Status == "COMPLETED" {
			completed[contract.StudentID]++
		}
	}

	rows := make([]entities.TalentRow, 0, len(byUser))
	for userID, entry := range byUser {
		user, ok := s.users[userID]
		if !ok || user.Role != roleStudent {
			continue
		}
		rows = append(rows, entities.TalentRow{
			UserID:        userID,
			FirstName:     user.FirstName,
			LastName:      user.LastName,
			AvatarURL:     user.AvatarURL,
			University:    user.University,
			AverageRating: entry.sum / float64(entry.count),
			ReviewCount:   entry.count,
			CompletedGigs: completed[userID],
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].UserID < rows[j].UserID })
	return rows, nil
}

func (s *Store) TopSkills(_ context.Context, userIDs []string, limit int) (map[string][]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	wanted := make(map[string]struct{}, len(userIDs))
	for _, id := range userIDs {
		wanted[id] = struct{}{}
	}
	byUser := make(map[string][]Skill)
	for _, skill := range s.skills {
		if _, ok := wanted[skill.UserID]; ok {
			byUser[skill.UserID] = append(byUser[skill.UserID], skill)
		}
	}

	out := make(map[string][]string, len(byUser))
	for userID, items := range byUser {
		sort.SliceStable(items, func(i, j int) bool {
			if items[i].Level != items[j].Level {
				return items[i].Level > items[j].Level
			}
			return items[i].Name < items[j].Name
		})
		names := make([]string, 0, limit)
		for _, item := range items {
			if limit > 0 && len(names) == limit {
				break
			}
			names = append(names, item.Name)
		}
		out[userID] = names
	}
	return out, nil
}
