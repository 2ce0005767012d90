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

type ReservationRepository interface {
	Create(ctx context.Context, reservation *entity.Reservation) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Reservation, error)
	FindAll(ctx context.Context) ([]*entity.Reservation, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// Business queries
	CountByPlay(ctx context.Context, playID uuid.UUID) (int, error)
}

type reservationRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewReservationRepository(db database.Querier, log *zap.Logger) ReservationRepository {
	return &reservationRepository{
		db:  db,
		log: log.With(zap.String("repository", "reservation")),
	}
}

// Create inserts the reservation. A second reservation for the same
// attendee and play is rejected by the reservations_attendee_id_play_id_key
// constraint and comes back as ErrDuplicate.
func (r *reservationRepository) Create(ctx context.Context, reservation *entity.Reservation) error {
	query := `
		INSERT INTO reservations (id, attendee_id, play_id, created_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.Exec(ctx, query,
		reservation.ID,
		reservation.AttendeeID,
		reservation.PlayID,
		reservation.CreatedAt,
	)

	if err != nil {
		err = translateError(err)
		if isConstraintError(err) {
			r.log.Warn("Reservation violates constraint",
				zap.Error(err),
				zap.String("attendee_id", reservation.AttendeeID.String()),
				zap.String("play_id", reservation.PlayID.String()),
			)
		} else {
			r.log.Error("Failed to create reservation",
				zap.Error(err),
				zap.String("attendee_id", reservation.AttendeeID.String()),
				zap.String("play_id", reservation.PlayID.String()),
			)
		}
		return fmt.Errorf("create reservation for attendee %s play %s: %w",
			reservation.AttendeeID.String(), reservation.PlayID.String(), err)
	}

	return nil
}

func (r *reservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Reservation, error) {
	query := `
		SELECT id, attendee_id, play_id, created_at
		FROM reservations
		WHERE id = $1
	`

	var reservation entity.Reservation
	err := r.db.QueryRow(ctx, query, id).Scan(
		&reservation.ID,
		&reservation.AttendeeID,
		&reservation.PlayID,
		&reservation.CreatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find reservation by ID",
			zap.Error(err),
			zap.String("reservation_id", id.String()),
		)
		return nil, fmt.Errorf("find reservation by ID %s: %w", id.String(), err)
	}

	return &reservation, nil
}

func (r *reservationRepository) FindAll(ctx context.Context) ([]*entity.Reservation, error) {
	query := `
		SELECT id, attendee_id, play_id, created_at
		FROM reservations
		ORDER BY created_at, id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to get all reservations", zap.Error(err))
		return nil, fmt.Errorf("find all reservations: %w", err)
	}
	defer rows.Close()

	reservations := make([]*entity.Reservation, 0)
	for rows.Next() {
		var reservation entity.Reservation
		err := rows.Scan(
			&reservation.ID,
			&reservation.AttendeeID,
			&reservation.PlayID,
			&reservation.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan reservation row", zap.Error(err))
			return nil, fmt.Errorf("scan reservation row: %w", err)
		}
		reservations = append(reservations, &reservation)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate reservation rows: %w", err)
	}

	return reservations, nil
}

func (r *reservationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM reservations WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete reservation",
			zap.Error(err),
			zap.String("reservation_id", id.String()),
		)
		return fmt.Errorf("delete reservation %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("reservation %s: %w", id.String(), ErrNotFound)
	}

	r.log.Info("Reservation deleted", zap.String("reservation_id", id.String()))
	return nil
}

func (r *reservationRepository) CountByPlay(ctx context.Context, playID uuid.UUID) (int, error) {
	query := `SELECT COUNT(*) FROM reservations WHERE play_id = $1`

	var count int
	err := r.db.QueryRow(ctx, query, playID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count reservations by play",
			zap.Error(err),
			zap.String("play_id", playID.String()),
		)
		return 0, fmt.Errorf("count reservations by play %s: %w", playID.String(), err)
	}

	return count, nil
}
