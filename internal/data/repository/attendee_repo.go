package repository

import (
	"context"
	"errors"
	"fmt"

	"theater-booking/internal/data/entity"
	"theater-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type AttendeeRepository interface {
	Create(ctx context.Context, attendee *entity.Attendee) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Attendee, error)
	FindAll(ctx context.Context) ([]*entity.Attendee, error)
}

type attendeeRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewAttendeeRepository(db database.Querier, log *zap.Logger) AttendeeRepository {
	return &attendeeRepository{
		db:  db,
		log: log.With(zap.String("repository", "attendee")),
	}
}

func (r *attendeeRepository) Create(ctx context.Context, attendee *entity.Attendee) error {
	query := `
		INSERT INTO attendees (id, user_id, created_at)
		VALUES ($1, $2, $3)
	`

	_, err := r.db.Exec(ctx, query,
		attendee.ID,
		attendee.UserID,
		attendee.CreatedAt,
	)

	if err != nil {
		err = translateError(err)
		if isConstraintError(err) {
			r.log.Warn("Attendee violates constraint",
				zap.Error(err),
				zap.String("user_id", attendee.UserID.String()),
			)
		} else {
			r.log.Error("Failed to create attendee",
				zap.Error(err),
				zap.String("user_id", attendee.UserID.String()),
			)
		}
		return fmt.Errorf("create attendee for user %s: %w", attendee.UserID.String(), err)
	}

	return nil
}

const attendeeSelect = `
	SELECT a.id, a.user_id, a.created_at,
	       u.id, u.username, u.email, u.password, u.created_at, u.updated_at
	FROM attendees a
	JOIN users u ON u.id = a.user_id
`

func scanAttendee(row pgx.Row) (*entity.Attendee, error) {
	var attendee entity.Attendee
	var user entity.User
	err := row.Scan(
		&attendee.ID,
		&attendee.UserID,
		&attendee.CreatedAt,
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	attendee.User = &user
	return &attendee, nil
}

func (r *attendeeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Attendee, error) {
	query := attendeeSelect + `WHERE a.id = $1`

	attendee, err := scanAttendee(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find attendee by ID",
			zap.Error(err),
			zap.String("attendee_id", id.String()),
		)
		return nil, fmt.Errorf("find attendee by ID %s: %w", id.String(), err)
	}

	return attendee, nil
}

// FindAll returns every attendee in registration order
func (r *attendeeRepository) FindAll(ctx context.Context) ([]*entity.Attendee, error) {
	query := attendeeSelect + `ORDER BY a.created_at, a.id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to get all attendees", zap.Error(err))
		return nil, fmt.Errorf("find all attendees: %w", err)
	}
	defer rows.Close()

	attendees := make([]*entity.Attendee, 0)
	for rows.Next() {
		attendee, err := scanAttendee(rows)
		if err != nil {
			r.log.Error("Failed to scan attendee row", zap.Error(err))
			return nil, fmt.Errorf("scan attendee row: %w", err)
		}
		attendees = append(attendees, attendee)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate attendee rows: %w", err)
	}

	return attendees, nil
}
