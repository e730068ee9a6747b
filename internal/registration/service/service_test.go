package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/festhub/sportsfest-api/internal/notification"
	registrationModel "github.com/festhub/sportsfest-api/internal/registration/model"
	"github.com/festhub/sportsfest-api/internal/registration/repository"
	sportModel "github.com/festhub/sportsfest-api/internal/sport/model"
	sportRepository "github.com/festhub/sportsfest-api/internal/sport/repository"
)

type recordedEvent struct {
	userID  string
	event   notification.Event
	payload map[string]interface{}
}

type recordingNotifier struct {
	events []recordedEvent
}

func (n *recordingNotifier) Notify(
	_ context.Context,
	userID string,
	event notification.Event,
	payload map[string]interface{},
) {
	n.events = append(n.events, recordedEvent{userID: userID, event: event, payload: payload})
}

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
		ID                 int64     `gorm:"primaryKey;column:id"`
		RegistrationNumber string    `gorm:"column:registration_number"`
		UserID             string    `gorm:"column:user_id;not null"`
		SportID            string    `gorm:"column:sport_id;not null"`
		Status             string    `gorm:"column:status;not null"`
		TeamName           string    `gorm:"column:team_name"`
		AmountPaid         int64     `gorm:"column:amount_paid;not null;default:0"`
		CreatedAt          time.Time `gorm:"column:created_at"`
		UpdatedAt          time.Time `gorm:"column:updated_at"`
	}
	type TeamMember struct {
		ID             int64  `gorm:"primaryKey;column:id"`
		RegistrationID int64  `gorm:"column:registration_id;not null"`
		Position       int    `gorm:"column:position;not null"`
		Name           string `gorm:"column:name;not null"`
		Email          string `gorm:"column:email"`
		Phone          string `gorm:"column:phone"`
		IsCaptain      bool   `gorm:"column:is_captain;not null"`
	}

	err = db.AutoMigrate(&Sport{}, &Registration{}, &TeamMember{})
	require.NoError(t, err)
	return db
}

func newTestService(db *gorm.DB) (*service, *recordingNotifier) {
	rec := &recordingNotifier{}
	svc := &service{
		repo:     repository.New(db),
		sports:   sportRepository.New(db),
		db:       db,
		notifier: rec,
		logger:   zap.NewNop().Sugar(),
		now:      time.Now,
	}
	return svc, rec
}

func createSport(t *testing.T, db *gorm.DB, mutate func(*sportModel.Sport)) *sportModel.Sport {
	sport := &sportModel.Sport{
		SportID:              "badminton",
		Name:                 "Badminton Singles",
		Category:             "racquet",
		Fee:                  500,
		RegistrationStart:    time.Now().Add(-time.Hour),
		RegistrationDeadline: time.Now().Add(24 * time.Hour),
		IsRegistrationOpen:   true,
	}
	if mutate != nil {
		mutate(sport)
	}
	// GORM replaces a zero-valued field carrying a default tag with the tag's
	// default on insert (and writes it back into the struct), so a mutated
	// IsRegistrationOpen=false never reaches the row; persist it explicitly.
	open := sport.IsRegistrationOpen
	require.NoError(t, db.Create(sport).Error)
	require.NoError(t, db.Model(sport).
		UpdateColumn("is_registration_open", open).Error)
	sport.IsRegistrationOpen = open
	return sport
}

func teamOf(size int) *registrationModel.TeamPayload {
	members := make([]registrationModel.TeamMemberPayload, 0, size)
	for i := 0; i < size; i++ {
		members = append(members, registrationModel.TeamMemberPayload{
			Name:      fmt.Sprintf("Player %d", i+1),
			IsCaptain: i == 0,
		})
	}
	return &registrationModel.TeamPayload{TeamName: "Smash Bros", Members: members}
}

func intPtr(v int) *int { return &v }

func TestService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("paid sport awaits payment", func(t *testing.T) {
		db := setupTestDB(t)
		svc, rec := newTestService(db)
		createSport(t, db, nil)

		resp, err := svc.Register(ctx, "user-1", &registrationModel.RegisterRequest{SportID: "badminton"})
		require.NoError(t, err)

		assert.Equal(t, registrationModel.StatusPaymentPending, resp.Status)
		assert.Equal(t, "SF-000001", resp.RegistrationNumber)
		assert.Equal(t, "badminton", resp.SportID)

		require.Len(t, rec.events, 1)
		assert.Equal(t, notification.EventRegistrationCreated, rec.events[0].event)
		assert.Equal(t, "user-1", rec.events[0].userID)
	})

	t.Run("free sport is admitted directly", func(t *testing.T) {
		db := setupTestDB(t)
		svc, _ := newTestService(db)
		createSport(t, db, func(s *sportModel.Sport) { s.Fee = 0 })

		resp, err := svc.Register(ctx, "user-1", &registrationModel.RegisterRequest{SportID: "badminton"})
		require.NoError(t, err)
		assert.Equal(t, registrationModel.StatusPending, resp.Status)
	})

	t.Run("registration numbers are sequential", func(t *testing.T) {
		db := setupTestDB(t)
		svc, _ := newTestService(db)
		createSport(t, db, nil)

		first, err := svc.Register(ctx, "user-1", &registrationModel.RegisterRequest{SportID: "badminton"})
		require.NoError(t, err)
		second, err := svc.Register(ctx, "user-2", &registrationModel.RegisterRequest{SportID: "badminton"})
		require.NoError(t, err)

		assert.Equal(t, "SF-000001", first.RegistrationNumber)
		assert.Equal(t, "SF-000002", second.RegistrationNumber)
	})

	t.Run("second active registration is rejected", func(t *testing.T) {
		db := setupTestDB(t)
		svc, _ := newTestService(db)
		createSport(t, db, nil)

		_, err := svc.Register(ctx, "user-1", &registrationModel.RegisterRequest{SportID: "badminton"})
		require.NoError(t, err)

		_, err = svc.Register(ctx, "user-1", &registrationModel.RegisterRequest{SportID: "badminton"})
		assert.ErrorIs(t, err, registrationModel.ErrAlreadyRegistered)
	})

	t.Run("re-registration allowed after withdrawal", func(t *testing.T) {
		db := setupTestDB(t)
		svc, _ := newTestService(db)
		createSport(t, db, nil)

		first, err := svc.Register(ctx, "user-1", &registrationModel.RegisterRequest{SportID: "badminton"})
		require.NoError(t, err)
		_, err = svc.Withdraw(ctx, "user-1", first.RegistrationID)
		require.NoError(t, err)

		second, err := svc.Register(ctx, "user-1", &registrationModel.RegisterRequest{SportID: "badminton"})
		require.NoError(t, err)
		assert.NotEqual(t, first.RegistrationID, second.RegistrationID)
	})

	t.Run("team event requires a team", func(t *testing.T) {
		db := setupTestDB(t)
		svc, _ := newTestService(db)
		createSport(t, db, func(s *sportModel.Sport) {
			s.IsTeamEvent = true
			s.TeamSizeMin = 3
			s.TeamSizeMax = 5
		})

		_, err := svc.Register(ctx, "user-1", &registrationModel.RegisterRequest{SportID: "badminton"})
		assert.ErrorIs(t, err, registrationModel.ErrTeamRequired)
	})

	t.Run("invalid composition leaves no rows behind", func(t *testing.T) {
		db := setupTestDB(t)
		svc, _ := newTestService(db)
		createSport(t, db, func(s *sportModel.Sport) {
			s.IsTeamEvent = true
			s.TeamSizeMin = 3
			s.TeamSizeMax = 5
		})

		_, err := svc.Register(ctx, "user-1", &registrationModel.RegisterRequest{
			SportID: "badminton",
			Team:    teamOf(2),
		})
		assert.ErrorIs(t, err, registrationModel.ErrTooFewMembers)

		var count int64
		require.NoError(t, db.Model(&registrationModel.Registration{}).Count(&count).Error)
		assert.Zero(t, count)
	})

	t.Run("team event stores members in order", func(t *testing.T) {
		db := setupTestDB(t)
		svc, _ := newTestService(db)
		createSport(t, db, func(s *sportModel.Sport) {
			s.IsTeamEvent = true
			s.TeamSizeMin = 2
			s.TeamSizeMax = 4
		})

		resp, err := svc.Register(ctx, "user-1", &registrationModel.RegisterRequest{
			SportID: "badminton",
			Team:    teamOf(3),
		})
		require.NoError(t, err)

		assert.Equal(t, "Smash Bros", resp.TeamName)
		require.Len(t, resp.Members, 3)
		assert.True(t, resp.Members[0].IsCaptain)
		assert.Equal(t, "Player 1", resp.Members[0].Name)
	})

	t.Run("deadline passed", func(t *testing.T) {
		db := setupTestDB(t)
		svc, _ := newTestService(db)
		sport := createSport(t, db, nil)
		svc.now = func() time.Time { return sport.RegistrationDeadline.Add(time.Minute) }

		_, err := svc.Register(ctx, "user-1", &registrationModel.RegisterRequest{SportID: "badminton"})
		assert.ErrorIs(t, err, registrationModel.ErrDeadlinePassed)
	})

	t.Run("soft-closed sport rejects registration", func(t *testing.T) {
		db := setupTestDB(t)
		svc, _ := newTestService(db)
		createSport(t, db, func(s *sportModel.Sport) { s.IsRegistrationOpen = false })

		_, err := svc.Register(ctx, "user-1", &registrationModel.RegisterRequest{SportID: "badminton"})
		assert.ErrorIs(t, err, registrationModel.ErrRegistrationClosed)
	})

	t.Run("window not yet open", func(t *testing.T) {
		db := setupTestDB(t)
		svc, _ := newTestService(db)
		createSport(t, db, func(s *sportModel.Sport) {
			s.RegistrationStart = time.Now().Add(time.Hour)
		})

		_, err := svc.Register(ctx, "user-1", &registrationModel.RegisterRequest{SportID: "badminton"})
		assert.ErrorIs(t, err, registrationModel.ErrRegistrationClosed)
	})

	t.Run("unknown sport", func(t *testing.T) {
		db := setupTestDB(t)
		svc, _ := newTestService(db)

		_, err := svc.Register(ctx, "user-1", &registrationModel.RegisterRequest{SportID: "quidditch"})
		assert.ErrorIs(t, err, sportModel.ErrSportNotFound)
	})
}

func TestService_Register_Capacity(t *testing.T) {
	ctx := context.Background()

	register := func(t *testing.T, svc Service, userID string) (*registrationModel.RegistrationResponse, error) {
		t.Helper()
		return svc.Register(ctx, userID, &registrationModel.RegisterRequest{SportID: "badminton"})
	}

	t.Run("overflow goes to waitlist", func(t *testing.T) {
		db := setupTestDB(t)
		svc, rec := newTestService(db)
		createSport(t, db, func(s *sportModel.Sport) {
			s.MaxParticipants = intPtr(2)
			s.WaitlistEnabled = true
		})

		for _, user := range []string{"user-1", "user-2"} {
			resp, err := register(t, svc, user)
			require.NoError(t, err)
			assert.Equal(t, registrationModel.StatusPaymentPending, resp.Status)
		}

		resp, err := register(t, svc, "user-3")
		require.NoError(t, err)
		assert.Equal(t, registrationModel.StatusWaitlist, resp.Status)

		last := rec.events[len(rec.events)-1]
		assert.Equal(t, notification.EventRegistrationWaitlisted, last.event)
	})

	t.Run("overflow without waitlist is rejected", func(t *testing.T) {
		db := setupTestDB(t)
		svc, _ := newTestService(db)
		createSport(t, db, func(s *sportModel.Sport) {
			s.MaxParticipants = intPtr(1)
		})

		_, err := register(t, svc, "user-1")
		require.NoError(t, err)

		_, err = register(t, svc, "user-2")
		assert.ErrorIs(t, err, registrationModel.ErrRegistrationClosed)
	})

	t.Run("waitlisted entries do not consume slots", func(t *testing.T) {
		db := setupTestDB(t)
		svc, _ := newTestService(db)
		createSport(t, db, func(s *sportModel.Sport) {
			s.MaxParticipants = intPtr(1)
			s.WaitlistEnabled = true
		})

		resp, err := register(t, svc, "user-1")
		require.NoError(t, err)
		assert.Equal(t, registrationModel.StatusPaymentPending, resp.Status)

		for _, user := range []string{"user-2", "user-3"} {
			resp, err := register(t, svc, user)
			require.NoError(t, err)
			assert.Equal(t, registrationModel.StatusWaitlist, resp.Status)
		}
	})

	t.Run("withdrawal frees the slot", func(t *testing.T) {
		db := setupTestDB(t)
		svc, _ := newTestService(db)
		createSport(t, db, func(s *sportModel.Sport) {
			s.MaxParticipants = intPtr(1)
		})

		first, err := register(t, svc, "user-1")
		require.NoError(t, err)
		_, err = svc.Withdraw(ctx, "user-1", first.RegistrationID)
		require.NoError(t, err)

		resp, err := register(t, svc, "user-2")
		require.NoError(t, err)
		assert.Equal(t, registrationModel.StatusPaymentPending, resp.Status)
	})
}

func TestService_UpdateTeam(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*service, *gorm.DB, *registrationModel.RegistrationResponse) {
		db := setupTestDB(t)
		svc, _ := newTestService(db)
		createSport(t, db, func(s *sportModel.Sport) {
			s.IsTeamEvent = true
			s.TeamSizeMin = 2
			s.TeamSizeMax = 4
		})
		reg, err := svc.Register(ctx, "user-1", &registrationModel.RegisterRequest{
			SportID: "badminton",
			Team:    teamOf(3),
		})
		require.NoError(t, err)
		return svc, db, reg
	}

	t.Run("replaces members while editable", func(t *testing.T) {
		svc, _, reg := setup(t)

		team := teamOf(2)
		team.TeamName = "Net Ninjas"
		team.Members[1].Name = "Substitute"

		resp, err := svc.UpdateTeam(ctx, "user-1", reg.RegistrationID, team)
		require.NoError(t, err)

		assert.Equal(t, "Net Ninjas", resp.TeamName)
		require.Len(t, resp.Members, 2)
		assert.Equal(t, "Substitute", resp.Members[1].Name)

		fetched, err := svc.Get(ctx, "user-1", reg.RegistrationID)
		require.NoError(t, err)
		require.Len(t, fetched.Members, 2)
		assert.Equal(t, "Substitute", fetched.Members[1].Name)
	})

	t.Run("rejected once confirmed", func(t *testing.T) {
		svc, db, reg := setup(t)
		require.NoError(t, db.Model(&registrationModel.Registration{}).
			Where("id = ?", reg.RegistrationID).
			Update("status", registrationModel.StatusConfirmed).Error)

		_, err := svc.UpdateTeam(ctx, "user-1", reg.RegistrationID, teamOf(2))
		assert.ErrorIs(t, err, registrationModel.ErrEditNotAllowed)
	})

	t.Run("invalid new composition keeps the old team", func(t *testing.T) {
		svc, _, reg := setup(t)

		_, err := svc.UpdateTeam(ctx, "user-1", reg.RegistrationID, teamOf(5))
		assert.ErrorIs(t, err, registrationModel.ErrTooManyMembers)

		fetched, err := svc.Get(ctx, "user-1", reg.RegistrationID)
		require.NoError(t, err)
		assert.Len(t, fetched.Members, 3)
	})

	t.Run("not the owner", func(t *testing.T) {
		svc, _, reg := setup(t)
		_, err := svc.UpdateTeam(ctx, "user-2", reg.RegistrationID, teamOf(2))
		assert.ErrorIs(t, err, registrationModel.ErrNotOwner)
	})

	t.Run("missing team payload", func(t *testing.T) {
		svc, _, reg := setup(t)
		_, err := svc.UpdateTeam(ctx, "user-1", reg.RegistrationID, nil)
		assert.ErrorIs(t, err, registrationModel.ErrTeamRequired)
	})
}

func TestService_Withdraw(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*service, *gorm.DB, *recordingNotifier, int64) {
		db := setupTestDB(t)
		svc, rec := newTestService(db)
		createSport(t, db, nil)
		reg, err := svc.Register(ctx, "user-1", &registrationModel.RegisterRequest{SportID: "badminton"})
		require.NoError(t, err)
		return svc, db, rec, reg.RegistrationID
	}

	t.Run("withdraws an active registration", func(t *testing.T) {
		svc, _, rec, id := setup(t)

		resp, err := svc.Withdraw(ctx, "user-1", id)
		require.NoError(t, err)
		assert.Equal(t, registrationModel.StatusWithdrawn, resp.Status)

		last := rec.events[len(rec.events)-1]
		assert.Equal(t, notification.EventRegistrationWithdrawn, last.event)
	})

	t.Run("confirmed registration cannot be withdrawn", func(t *testing.T) {
		svc, db, _, id := setup(t)
		require.NoError(t, db.Model(&registrationModel.Registration{}).
			Where("id = ?", id).
			Update("status", registrationModel.StatusConfirmed).Error)

		_, err := svc.Withdraw(ctx, "user-1", id)
		assert.ErrorIs(t, err, registrationModel.ErrAlreadyConfirmed)
	})

	t.Run("second withdrawal is rejected", func(t *testing.T) {
		svc, _, _, id := setup(t)

		_, err := svc.Withdraw(ctx, "user-1", id)
		require.NoError(t, err)

		_, err = svc.Withdraw(ctx, "user-1", id)
		assert.ErrorIs(t, err, registrationModel.ErrWithdrawNotAllowed)
	})

	t.Run("not the owner", func(t *testing.T) {
		svc, _, _, id := setup(t)
		_, err := svc.Withdraw(ctx, "user-2", id)
		assert.ErrorIs(t, err, registrationModel.ErrNotOwner)
	})

	t.Run("unknown registration", func(t *testing.T) {
		svc, _, _, _ := setup(t)
		_, err := svc.Withdraw(ctx, "user-1", 9999)
		assert.ErrorIs(t, err, registrationModel.ErrRegistrationNotFound)
	})
}

func TestService_Promote(t *testing.T) {
	ctx := context.Background()

	// Fill a single-slot sport so the second registration lands on the
	// waitlist, then free the slot.
	setup := func(t *testing.T, fee int64) (*service, *gorm.DB, int64, int64) {
		db := setupTestDB(t)
		svc, _ := newTestService(db)
		createSport(t, db, func(s *sportModel.Sport) {
			s.Fee = fee
			s.MaxParticipants = intPtr(1)
			s.WaitlistEnabled = true
		})

		holder, err := svc.Register(ctx, "user-1", &registrationModel.RegisterRequest{SportID: "badminton"})
		require.NoError(t, err)

		waitlisted, err := svc.Register(ctx, "user-2", &registrationModel.RegisterRequest{SportID: "badminton"})
		require.NoError(t, err)
		require.Equal(t, registrationModel.StatusWaitlist, waitlisted.Status)

		return svc, db, holder.RegistrationID, waitlisted.RegistrationID
	}

	t.Run("promotes into payment_pending once a slot frees", func(t *testing.T) {
		svc, _, holderID, waitlistedID := setup(t, 500)

		_, err := svc.Withdraw(ctx, "user-1", holderID)
		require.NoError(t, err)

		resp, err := svc.Promote(ctx, waitlistedID)
		require.NoError(t, err)
		assert.Equal(t, registrationModel.StatusPaymentPending, resp.Status)
	})

	t.Run("free sport promotes straight to pending", func(t *testing.T) {
		svc, _, holderID, waitlistedID := setup(t, 0)

		_, err := svc.Withdraw(ctx, "user-1", holderID)
		require.NoError(t, err)

		resp, err := svc.Promote(ctx, waitlistedID)
		require.NoError(t, err)
		assert.Equal(t, registrationModel.StatusPending, resp.Status)
	})

	t.Run("no free slot", func(t *testing.T) {
		svc, _, _, waitlistedID := setup(t, 500)

		_, err := svc.Promote(ctx, waitlistedID)
		assert.ErrorIs(t, err, registrationModel.ErrRegistrationClosed)
	})

	t.Run("only waitlisted registrations promote", func(t *testing.T) {
		svc, _, holderID, _ := setup(t, 500)

		_, err := svc.Promote(ctx, holderID)
		assert.ErrorIs(t, err, registrationModel.ErrNotOnWaitlist)
	})
}

func TestService_CancelBySport(t *testing.T) {
	ctx := context.Background()

	t.Run("cancels every active registration and closes the sport", func(t *testing.T) {
		db := setupTestDB(t)
		svc, rec := newTestService(db)
		createSport(t, db, func(s *sportModel.Sport) { s.WaitlistEnabled = true })

		first, err := svc.Register(ctx, "user-1", &registrationModel.RegisterRequest{SportID: "badminton"})
		require.NoError(t, err)
		second, err := svc.Register(ctx, "user-2", &registrationModel.RegisterRequest{SportID: "badminton"})
		require.NoError(t, err)

		// A confirmed (paid) registration is cancelled too; the refund is
		// issued separately.
		require.NoError(t, db.Model(&registrationModel.Registration{}).
			Where("id = ?", first.RegistrationID).
			Update("status", registrationModel.StatusConfirmed).Error)

		// Withdrawn registrations are already settled and stay untouched.
		_, err = svc.Withdraw(ctx, "user-2", second.RegistrationID)
		require.NoError(t, err)

		third, err := svc.Register(ctx, "user-3", &registrationModel.RegisterRequest{SportID: "badminton"})
		require.NoError(t, err)

		count, err := svc.CancelBySport(ctx, "badminton")
		require.NoError(t, err)
		assert.Equal(t, 2, count)

		var statuses []string
		require.NoError(t, db.Model(&registrationModel.Registration{}).
			Where("id IN ?", []int64{first.RegistrationID, third.RegistrationID}).
			Order("id").
			Pluck("status", &statuses).Error)
		assert.Equal(t, []string{"cancelled", "cancelled"}, statuses)

		var withdrawnStatus string
		require.NoError(t, db.Model(&registrationModel.Registration{}).
			Where("id = ?", second.RegistrationID).
			Pluck("status", &withdrawnStatus).Error)
		assert.Equal(t, "withdrawn", withdrawnStatus)

		sport, err := sportRepository.New(db).GetByID(ctx, "badminton")
		require.NoError(t, err)
		assert.False(t, sport.IsRegistrationOpen)

		cancelledEvents := 0
		for _, ev := range rec.events {
			if ev.event == notification.EventRegistrationCancelled {
				cancelledEvents++
			}
		}
		assert.Equal(t, 2, cancelledEvents)
	})

	t.Run("unknown sport", func(t *testing.T) {
		db := setupTestDB(t)
		svc, _ := newTestService(db)

		_, err := svc.CancelBySport(ctx, "quidditch")
		assert.ErrorIs(t, err, sportModel.ErrSportNotFound)
	})
}

func TestService_GetAndList(t *testing.T) {
	ctx := context.Background()

	db := setupTestDB(t)
	svc, _ := newTestService(db)
	createSport(t, db, nil)
	createSport(t, db, func(s *sportModel.Sport) {
		s.SportID = "chess"
		s.Name = "Chess"
		s.Fee = 0
	})

	first, err := svc.Register(ctx, "user-1", &registrationModel.RegisterRequest{SportID: "badminton"})
	require.NoError(t, err)
	_, err = svc.Register(ctx, "user-1", &registrationModel.RegisterRequest{SportID: "chess"})
	require.NoError(t, err)
	_, err = svc.Register(ctx, "user-2", &registrationModel.RegisterRequest{SportID: "chess"})
	require.NoError(t, err)

	t.Run("get requires ownership", func(t *testing.T) {
		resp, err := svc.Get(ctx, "user-1", first.RegistrationID)
		require.NoError(t, err)
		assert.Equal(t, first.RegistrationNumber, resp.RegistrationNumber)

		_, err = svc.Get(ctx, "user-2", first.RegistrationID)
		assert.ErrorIs(t, err, registrationModel.ErrNotOwner)
	})

	t.Run("list returns only the caller's registrations", func(t *testing.T) {
		list, err := svc.ListByUser(ctx, "user-1")
		require.NoError(t, err)
		assert.Len(t, list, 2)

		list, err = svc.ListByUser(ctx, "user-3")
		require.NoError(t, err)
		assert.Empty(t, list)
	})
}
