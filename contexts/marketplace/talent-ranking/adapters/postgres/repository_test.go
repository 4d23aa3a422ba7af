package postgresadapter

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListReviewedStudentsScansAggregates(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{
		"user_id", "first_name", "last_name", "avatar_url", "university", "avg_rating", "reviews_count", "completed_gigs",
	}).
		AddRow("s-1", "Ada", "Lovelace", "", "University of Buea", 4.75, 4, 3).
		AddRow("s-2", "Bo", "", "https://cdn/bo.png", "", 4.0, 1, 0)
	mock.ExpectQuery(`SELECT u.user_id, .* FROM users u JOIN \( ?SELECT to_user_id .* LEFT JOIN universities un .* WHERE u.role = \$2 ORDER BY rs.avg_rating DESC`).
		WithArgs("COMPLETED", "STUDENT").
		WillReturnRows(rows)

	repo := NewRepository(db, nil)
	items, err := repo.ListReviewedStudents(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "s-1", items[0].UserID)
	assert.Equal(t, "University of Buea", items[0].University)
	assert.InDelta(t, 4.75, items[0].AverageRating, 0.0001)
	assert.Equal(t, 4, items[0].ReviewCount)
	assert.Equal(t, 3, items[0].CompletedGigs)
	assert.Equal(t, "https://cdn/bo.png", items[1].AvatarURL)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListReviewedStudentsWrapsQueryErrors(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(".*").WillReturnError(errors.New("connection reset"))

	_, err = NewRepository(db, nil).ListReviewedStudents(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "query talents")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTopSkillsGroupsRowsPerUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT us.user_id, st.name FROM user_skills us JOIN skill_tags st .* WHERE us.user_id IN \(\$1,\$2\) ORDER BY us.user_id, us.level DESC`).
		WithArgs("s-1", "s-2").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "name"}).
			AddRow("s-1", "Go").
			AddRow("s-1", "SQL").
			AddRow("s-1", "Docker").
			AddRow("s-2", "Figma"))

	skills, err := NewRepository(db, nil).TopSkills(context.Background(), []string{"s-1", "s-2"}, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"Go", "SQL"}, skills["s-1"])
	assert.Equal(t, []string{"Figma"}, skills["s-2"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTopSkillsSkipsQueryWithoutUsers(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	skills, err := NewRepository(db, nil).TopSkills(context.Background(), nil, 5)
	require.NoError(t, err)
	assert.Empty(t, skills)
	require.NoError(t, mock.ExpectationsWereMet())
}
