package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// Constraint names declared by the schema migrations
const (
	ConstraintUsername            = "users_username_key"
	ConstraintAttendeeUser        = "attendees_user_id_key"
	ConstraintReservationPair     = "reservations_attendee_id_play_id_key"
	ConstraintReservationAttendee = "reservations_attendee_id_fkey"
	ConstraintReservationPlay     = "reservations_play_id_fkey"
)

var (
	// ErrNotFound is returned by update and delete when no row matched.
	// Finders return (nil, nil) instead.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate signals a unique constraint violation
	ErrDuplicate = errors.New("duplicate record")

	// ErrReferenceMissing signals a foreign key pointing at a row that does not exist
	ErrReferenceMissing = errors.New("referenced record does not exist")
)

// ConstraintError carries the violated constraint so callers can tell which field was at fault
type ConstraintError struct {
	Kind       error
	Constraint string
	cause      error
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("%s (constraint %s)", e.Kind, e.Constraint)
}

func (e *ConstraintError) Unwrap() []error {
	return []error{e.Kind, e.cause}
}

// translateError maps postgres constraint violations onto the sentinels above
func translateError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		return &ConstraintError{Kind: ErrDuplicate, Constraint: pgErr.ConstraintName, cause: err}
	case pgerrcode.ForeignKeyViolation:
		return &ConstraintError{Kind: ErrReferenceMissing, Constraint: pgErr.ConstraintName, cause: err}
	default:
		return err
	}
}

// isConstraintError reports whether err is an expected client-caused violation
func isConstraintError(err error) bool {
	var ce *ConstraintError
	return errors.As(err, &ce)
}
