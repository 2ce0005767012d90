package repository

import (
	"context"
	"errors"

	"theater-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User        UserRepository
	Attendee    AttendeeRepository
	Play        PlayRepository
	Reservation ReservationRepository

	db  database.PgxIface // nil when bound to a transaction
	log *zap.Logger
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	repo := newRepository(db, log)
	repo.db = db
	return repo
}

func newRepository(q database.Querier, log *zap.Logger) *Repository {
	return &Repository{
		User:        NewUserRepository(q, log),
		Attendee:    NewAttendeeRepository(q, log),
		Play:        NewPlayRepository(q, log),
		Reservation: NewReservationRepository(q, log),
		log:         log,
	}
}

// WithTx runs fn with repositories bound to a single transaction.
// The transaction commits when fn returns nil and rolls back otherwise.
func (r *Repository) WithTx(ctx context.Context, fn func(tx *Repository) error) error {
	if r.db == nil {
		return errors.New("nested transactions are not supported")
	}

	return database.WithTx(ctx, r.db, func(q database.Querier) error {
		return fn(newRepository(q, r.log))
	})
}
