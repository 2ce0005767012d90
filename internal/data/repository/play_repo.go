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

type PlayRepository interface {
	Create(ctx context.Context, play *entity.Play) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Play, error)
	FindAll(ctx context.Context) ([]*entity.Play, error)
	Update(ctx context.Context, play *entity.Play) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type playRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewPlayRepository(db database.Querier, log *zap.Logger) PlayRepository {
	return &playRepository{
		db:  db,
		log: log.With(zap.String("repository", "play")),
	}
}

func (r *playRepository) Create(ctx context.Context, play *entity.Play) error {
	query := `
		INSERT INTO plays (id, name, fee, price, total_accents, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		play.ID,
		play.Name,
		play.Fee,
		play.Price,
		play.TotalAccents,
		play.CreatedAt,
		play.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create play",
			zap.Error(err),
			zap.String("name", play.Name),
		)
		return fmt.Errorf("create play %s: %w", play.Name, err)
	}

	return nil
}

func (r *playRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Play, error) {
	query := `
		SELECT id, name, fee, price, total_accents, created_at, updated_at
		FROM plays
		WHERE id = $1
	`

	var play entity.Play
	err := r.db.QueryRow(ctx, query, id).Scan(
		&play.ID,
		&play.Name,
		&play.Fee,
		&play.Price,
		&play.TotalAccents,
		&play.CreatedAt,
		&play.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find play by ID",
			zap.Error(err),
			zap.String("play_id", id.String()),
		)
		return nil, fmt.Errorf("find play by ID %s: %w", id.String(), err)
	}

	return &play, nil
}

func (r *playRepository) FindAll(ctx context.Context) ([]*entity.Play, error) {
	query := `
		SELECT id, name, fee, price, total_accents, created_at, updated_at
		FROM plays
		ORDER BY created_at, id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to get all plays", zap.Error(err))
		return nil, fmt.Errorf("find all plays: %w", err)
	}
	defer rows.Close()

	plays := make([]*entity.Play, 0)
	for rows.Next() {
		var play entity.Play
		err := rows.Scan(
			&play.ID,
			&play.Name,
			&play.Fee,
			&play.Price,
			&play.TotalAccents,
			&play.CreatedAt,
			&play.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan play row", zap.Error(err))
			return nil, fmt.Errorf("scan play row: %w", err)
		}
		plays = append(plays, &play)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate play rows: %w", err)
	}

	return plays, nil
}

func (r *playRepository) Update(ctx context.Context, play *entity.Play) error {
	query := `
		UPDATE plays
		SET name = $2, fee = $3, price = $4, total_accents = $5, updated_at = $6
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		play.ID,
		play.Name,
		play.Fee,
		play.Price,
		play.TotalAccents,
		play.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update play",
			zap.Error(err),
			zap.String("play_id", play.ID.String()),
		)
		return fmt.Errorf("update play %s: %w", play.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("play %s: %w", play.ID.String(), ErrNotFound)
	}

	return nil
}

// Delete removes the play; its reservations go with it via ON DELETE CASCADE
func (r *playRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM plays WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete play",
			zap.Error(err),
			zap.String("play_id", id.String()),
		)
		return fmt.Errorf("delete play %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("play %s: %w", id.String(), ErrNotFound)
	}

	r.log.Info("Play deleted", zap.String("play_id", id.String()))
	return nil
}
