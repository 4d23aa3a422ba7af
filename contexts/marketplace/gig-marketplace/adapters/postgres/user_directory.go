package postgresadapter

import (
	"context"
	"strings"
)

type userModel struct {
	UserID    string `gorm:"column:user_id;primaryKey"`
	Email     string `gorm:"column:email"`
	FirstName string `gorm:"column:first_name"`
	LastName  string `gorm:"column:last_name"`
}

func (userModel) TableName() string {
	return "users"
}

// DisplayNames reads the identity-owned users table. A user without a first
// or last name is labelled by email.
func (r *Repository) DisplayNames(ctx context.Context, userIDs []string) (map[string]string, error) {
	names := make(map[string]string, len(userIDs))
	if len(userIDs) == 0 {
		return names, nil
	}

	var rows []userModel
	if err := r.db.WithContext(ctx).
		Select("user_id", "email", "first_name", "last_name").
		Where("user_id IN ?", userIDs).
		Find(&rows).
		Error; err != nil {
		return nil, err
	}
	for _, row := range rows {
		name := strings.TrimSpace(strings.TrimSpace(row.FirstName) + " " + strings.TrimSpace(row.LastName))
		if name == "" {
			name = strings.TrimSpace(row.Email)
		}
		if name == "" {
			continue
		}
		names[row.UserID] = name
	}
	return names, nil
}
