package repository_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"theater-booking/internal/data/entity"
	"theater-booking/internal/data/repository"
	"theater-booking/internal/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type factory struct {
	t    *testing.T
	repo *repository.Repository
	seq  int
}

func newFactory(t *testing.T) *factory {
	db := testutil.NewPostgres(t)
	return &factory{t: t, repo: repository.NewRepository(db, zaptest.NewLogger(t))}
}

func (f *factory) now() time.Time {
	f.seq++
	return time.Now().UTC().Add(time.Duration(f.seq) * time.Millisecond)
}

func (f *factory) attendee() *entity.Attendee {
	f.t.Helper()
	ctx := context.Background()
	now := f.now()

	user := &entity.User{
		Base:         entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		Username:     fmt.Sprintf("Test User #%d", f.seq),
		Email:        fmt.Sprintf("test.user%d@host.com", f.seq),
		PasswordHash: "argon2$hash",
	}
	require.NoError(f.t, f.repo.User.Create(ctx, user))

	attendee := &entity.Attendee{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: now},
		UserID:     user.ID,
	}
	require.NoError(f.t, f.repo.Attendee.Create(ctx, attendee))
	attendee.User = user
	return attendee
}

func (f *factory) play() *entity.Play {
	f.t.Helper()
	now := f.now()

	play := &entity.Play{
		Base:         entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		Name:         fmt.Sprintf("Play #%d", f.seq),
		Fee:          0.1,
		Price:        11.1,
		TotalAccents: 5,
	}
	require.NoError(f.t, f.repo.Play.Create(context.Background(), play))
	return play
}

func (f *factory) reservation(attendee *entity.Attendee, play *entity.Play) *entity.Reservation {
	f.t.Helper()

	reservation := &entity.Reservation{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: f.now()},
		AttendeeID: attendee.ID,
		PlayID:     play.ID,
	}
	require.NoError(f.t, f.repo.Reservation.Create(context.Background(), reservation))
	return reservation
}

func TestAttendeeRepository(t *testing.T) {
	f := newFactory(t)
	ctx := context.Background()

	first := f.attendee()
	second := f.attendee()

	t.Run("find by id joins the identity", func(t *testing.T) {
		got, err := f.repo.Attendee.FindByID(ctx, first.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, first.UserID, got.UserID)
		assert.Equal(t, first.User.Username, got.User.Username)
		assert.Equal(t, first.User.Email, got.User.Email)
	})

	t.Run("find by unknown id", func(t *testing.T) {
		got, err := f.repo.Attendee.FindByID(ctx, uuid.New())
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("find all in registration order", func(t *testing.T) {
		got, err := f.repo.Attendee.FindAll(ctx)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, first.ID, got[0].ID)
		assert.Equal(t, second.ID, got[1].ID)
	})

	t.Run("one attendee per identity", func(t *testing.T) {
		err := f.repo.Attendee.Create(ctx, &entity.Attendee{
			BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
			UserID:     first.UserID,
		})
		assert.ErrorIs(t, err, repository.ErrDuplicate)
	})

	t.Run("duplicate username", func(t *testing.T) {
		now := time.Now()
		err := f.repo.User.Create(ctx, &entity.User{
			Base:     entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
			Username: first.User.Username,
			Email:    "other@host.com",
		})
		var ce *repository.ConstraintError
		require.ErrorAs(t, err, &ce)
		assert.Equal(t, repository.ConstraintUsername, ce.Constraint)
	})
}

func TestRepository_WithTxRollsBack(t *testing.T) {
	f := newFactory(t)
	ctx := context.Background()
	now := time.Now()

	user := &entity.User{
		Base:         entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		Username:     "JohnDoe",
		Email:        "j@host.com",
		PasswordHash: "argon2$hash",
	}
	failure := errors.New("attendee insert failed")

	err := f.repo.WithTx(ctx, func(tx *repository.Repository) error {
		require.NoError(t, tx.User.Create(ctx, user))
		return failure
	})
	require.ErrorIs(t, err, failure)

	// the rolled back identity left its id and username free
	assert.NoError(t, f.repo.User.Create(ctx, user))
}

func TestPlayRepository(t *testing.T) {
	f := newFactory(t)
	ctx := context.Background()

	play := f.play()
	other := f.play()

	t.Run("persists every field", func(t *testing.T) {
		got, err := f.repo.Play.FindByID(ctx, play.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, play.Name, got.Name)
		assert.InDelta(t, play.Fee, got.Fee, 1e-9)
		assert.InDelta(t, play.Price, got.Price, 1e-9)
		assert.Equal(t, play.TotalAccents, got.TotalAccents)
	})

	t.Run("find all", func(t *testing.T) {
		got, err := f.repo.Play.FindAll(ctx)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, play.ID, got[0].ID)
		assert.Equal(t, other.ID, got[1].ID)
	})

	t.Run("update", func(t *testing.T) {
		play.Name += "S"
		play.Price += 1.1
		play.UpdatedAt = time.Now()
		require.NoError(t, f.repo.Play.Update(ctx, play))

		got, err := f.repo.Play.FindByID(ctx, play.ID)
		require.NoError(t, err)
		assert.Equal(t, play.Name, got.Name)
		assert.InDelta(t, play.Price, got.Price, 1e-9)
	})

	t.Run("update unknown play", func(t *testing.T) {
		err := f.repo.Play.Update(ctx, &entity.Play{Base: entity.Base{ID: uuid.New()}, Name: "Ghost"})
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("delete unknown play", func(t *testing.T) {
		assert.ErrorIs(t, f.repo.Play.Delete(ctx, uuid.New()), repository.ErrNotFound)
	})
}

func TestReservationRepository_UniquePair(t *testing.T) {
	f := newFactory(t)
	ctx := context.Background()

	attendee := f.attendee()
	play := f.play()
	f.reservation(attendee, play)

	err := f.repo.Reservation.Create(ctx, &entity.Reservation{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		AttendeeID: attendee.ID,
		PlayID:     play.ID,
	})

	var ce *repository.ConstraintError
	require.ErrorAs(t, err, &ce)
	assert.ErrorIs(t, err, repository.ErrDuplicate)
	assert.Equal(t, repository.ConstraintReservationPair, ce.Constraint)

	count, err := f.repo.Reservation.CountByPlay(ctx, play.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestReservationRepository_MissingReferences(t *testing.T) {
	f := newFactory(t)
	ctx := context.Background()

	attendee := f.attendee()
	play := f.play()

	tests := []struct {
		name       string
		attendeeID uuid.UUID
		playID     uuid.UUID
		constraint string
	}{
		{name: "unknown play", attendeeID: attendee.ID, playID: uuid.New(), constraint: repository.ConstraintReservationPlay},
		{name: "unknown attendee", attendeeID: uuid.New(), playID: play.ID, constraint: repository.ConstraintReservationAttendee},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := f.repo.Reservation.Create(ctx, &entity.Reservation{
				BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
				AttendeeID: tt.attendeeID,
				PlayID:     tt.playID,
			})

			var ce *repository.ConstraintError
			require.ErrorAs(t, err, &ce)
			assert.ErrorIs(t, err, repository.ErrReferenceMissing)
			assert.Equal(t, tt.constraint, ce.Constraint)
		})
	}
}

func TestReservationRepository_DeleteOnlyTouchesOneReservation(t *testing.T) {
	f := newFactory(t)
	ctx := context.Background()

	play := f.play()
	noisyPlay := f.play()
	first := f.reservation(f.attendee(), play)
	second := f.reservation(f.attendee(), play)
	noisy := f.reservation(f.attendee(), noisyPlay)

	require.NoError(t, f.repo.Reservation.Delete(ctx, first.ID))

	count, err := f.repo.Reservation.CountByPlay(ctx, play.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	got, err := f.repo.Reservation.FindByID(ctx, second.ID)
	require.NoError(t, err)
	assert.NotNil(t, got)

	got, err = f.repo.Reservation.FindByID(ctx, noisy.ID)
	require.NoError(t, err)
	assert.NotNil(t, got)

	stillThere, err := f.repo.Play.FindByID(ctx, play.ID)
	require.NoError(t, err)
	assert.NotNil(t, stillThere)

	attendee, err := f.repo.Attendee.FindByID(ctx, first.AttendeeID)
	require.NoError(t, err)
	assert.NotNil(t, attendee)

	assert.ErrorIs(t, f.repo.Reservation.Delete(ctx, first.ID), repository.ErrNotFound)
}

func TestPlayRepository_DeleteCascadesToReservations(t *testing.T) {
	f := newFactory(t)
	ctx := context.Background()

	play := f.play()
	noisyPlay := f.play()
	first := f.reservation(f.attendee(), play)
	second := f.reservation(f.attendee(), play)
	noisy := f.reservation(f.attendee(), noisyPlay)

	require.NoError(t, f.repo.Play.Delete(ctx, play.ID))

	for _, id := range []uuid.UUID{first.ID, second.ID} {
		got, err := f.repo.Reservation.FindByID(ctx, id)
		require.NoError(t, err)
		assert.Nil(t, got)
	}

	got, err := f.repo.Reservation.FindByID(ctx, noisy.ID)
	require.NoError(t, err)
	assert.NotNil(t, got)

	remaining, err := f.repo.Play.FindByID(ctx, noisyPlay.ID)
	require.NoError(t, err)
	assert.NotNil(t, remaining)
}

func TestUserRepository_DeleteCascadesToAttendeeAndReservations(t *testing.T) {
	f := newFactory(t)
	ctx := context.Background()

	attendee := f.attendee()
	noisyAttendee := f.attendee()
	play := f.play()
	reservation := f.reservation(attendee, play)
	noisy := f.reservation(noisyAttendee, play)

	require.NoError(t, f.repo.User.Delete(ctx, attendee.UserID))

	gotAttendee, err := f.repo.Attendee.FindByID(ctx, attendee.ID)
	require.NoError(t, err)
	assert.Nil(t, gotAttendee)

	gotReservation, err := f.repo.Reservation.FindByID(ctx, reservation.ID)
	require.NoError(t, err)
	assert.Nil(t, gotReservation)

	gotNoisy, err := f.repo.Reservation.FindByID(ctx, noisy.ID)
	require.NoError(t, err)
	assert.NotNil(t, gotNoisy)

	assert.ErrorIs(t, f.repo.User.Delete(ctx, attendee.UserID), repository.ErrNotFound)
}
