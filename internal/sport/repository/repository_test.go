package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	sportModel "github.com/festhub/sportsfest-api/internal/sport/model"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	type Sport struct {
		SportID              string    `gorm:"primaryKey;column:sport_id"`
		Name                 string    `gorm:"column:name;not null"`
		Description          string    `gorm:"column:description"`
		Category             string    `gorm:"column:category"`
		Fee                  int64     `gorm:"column:fee;not null"`
		IsTeamEvent          bool      `gorm:"column:is_team_event;not null"`
		TeamSizeMin          int       `gorm:"column:team_size_min;not null"`
		TeamSizeMax          int       `gorm:"column:team_size_max;not null"`
		MaxParticipants      *int      `gorm:"column:max_participants"`
		RegistrationStart    time.Time `gorm:"column:registration_start"`
		RegistrationDeadline time.Time `gorm:"column:registration_deadline"`
		IsRegistrationOpen   bool      `gorm:"column:is_registration_open;not null"`
		WaitlistEnabled      bool      `gorm:"column:waitlist_enabled;not null"`
		CreatedAt            time.Time `gorm:"column:created_at"`
		UpdatedAt            time.Time `gorm:"column:updated_at"`
	}
	type Registration struct {
		ID      int64  `gorm:"primaryKey;column:id"`
		UserID  string `gorm:"column:user_id;not null"`
		SportID string `gorm:"column:sport_id;not null"`
		Status  string `gorm:"column:status;not null"`
	}

	require.NoError(t, db.AutoMigrate(&Sport{}, &Registration{}))
	return db
}

func newSport(sportID, name, category string) *sportModel.Sport {
	return &sportModel.Sport{
		SportID:              sportID,
		Name:                 name,
		Category:             category,
		Fee:                  500,
		RegistrationStart:    time.Now().Add(-time.Hour),
		RegistrationDeadline: time.Now().Add(24 * time.Hour),
		IsRegistrationOpen:   true,
	}
}

func TestRepository_Create(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := New(db)

	require.NoError(t, repo.Create(ctx, newSport("badminton", "Badminton Singles", "racquet")))

	stored, err := repo.GetByID(ctx, "badminton")
	require.NoError(t, err)
	assert.Equal(t, "Badminton Singles", stored.Name)
	assert.Equal(t, int64(500), stored.Fee)
	assert.True(t, stored.IsRegistrationOpen)
}

func TestRepository_Create_Duplicate(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := New(db)

	require.NoError(t, repo.Create(ctx, newSport("badminton", "Badminton Singles", "racquet")))

	err := repo.Create(ctx, newSport("badminton", "Badminton Doubles", "racquet"))
	assert.ErrorIs(t, err, sportModel.ErrSportExists)
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := New(setupTestDB(t))

	_, err := repo.GetByID(ctx, "nonexistent")
	assert.ErrorIs(t, err, sportModel.ErrSportNotFound)
}

func TestRepository_List(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := New(db)

	require.NoError(t, repo.Create(ctx, newSport("chess", "Chess", "board")))
	require.NoError(t, repo.Create(ctx, newSport("badminton", "Badminton Singles", "racquet")))
	require.NoError(t, repo.Create(ctx, newSport("tt", "Table Tennis", "racquet")))

	t.Run("all sports sorted by name", func(t *testing.T) {
		sports, err := repo.List(ctx, "")
		require.NoError(t, err)
		require.Len(t, sports, 3)
		assert.Equal(t, "Badminton Singles", sports[0].Name)
		assert.Equal(t, "Chess", sports[1].Name)
		assert.Equal(t, "Table Tennis", sports[2].Name)
	})

	t.Run("filtered by category", func(t *testing.T) {
		sports, err := repo.List(ctx, "racquet")
		require.NoError(t, err)
		require.Len(t, sports, 2)
		for _, s := range sports {
			assert.Equal(t, "racquet", s.Category)
		}
	})

	t.Run("unknown category is empty, not nil", func(t *testing.T) {
		sports, err := repo.List(ctx, "aquatic")
		require.NoError(t, err)
		assert.NotNil(t, sports)
		assert.Empty(t, sports)
	})
}

func TestRepository_Update(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := New(db)

	require.NoError(t, repo.Create(ctx, newSport("badminton", "Badminton Singles", "racquet")))

	err := repo.Update(ctx, "badminton", map[string]interface{}{
		"fee":  int64(750),
		"name": "Badminton Open",
	})
	require.NoError(t, err)

	stored, err := repo.GetByID(ctx, "badminton")
	require.NoError(t, err)
	assert.Equal(t, int64(750), stored.Fee)
	assert.Equal(t, "Badminton Open", stored.Name)
}

func TestRepository_Update_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := New(setupTestDB(t))

	err := repo.Update(ctx, "nonexistent", map[string]interface{}{"fee": int64(1)})
	assert.ErrorIs(t, err, sportModel.ErrSportNotFound)
}

func TestRepository_Close(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := New(db)

	require.NoError(t, repo.Create(ctx, newSport("badminton", "Badminton Singles", "racquet")))
	require.NoError(t, repo.Close(ctx, "badminton"))

	stored, err := repo.GetByID(ctx, "badminton")
	require.NoError(t, err)
	assert.False(t, stored.IsRegistrationOpen)

	// Soft-close: the row survives.
	sports, err := repo.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, sports, 1)
}

func TestRepository_HasRegistrations(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := New(db)

	require.NoError(t, repo.Create(ctx, newSport("badminton", "Badminton Singles", "racquet")))

	has, err := repo.HasRegistrations(ctx, "badminton")
	require.NoError(t, err)
	assert.False(t, has)

	require.NoError(t, db.Exec(
		`INSERT INTO registrations (user_id, sport_id, status) VALUES (?, ?, ?)`,
		"user-1", "badminton", "withdrawn",
	).Error)

	// Any registration counts, terminal ones included: the field freeze
	// protects rows that already referenced the sport.
	has, err = repo.HasRegistrations(ctx, "badminton")
	require.NoError(t, err)
	assert.True(t, has)
}
