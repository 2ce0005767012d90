package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"theater-booking/internal/data/entity"
	"theater-booking/internal/data/repository"
	"theater-booking/internal/dto/request"
	"theater-booking/internal/dto/response"
	"theater-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type PlayService interface {
	CreatePlay(ctx context.Context, req *request.PlayRequest) (*response.PlayResponse, error)
	GetPlays(ctx context.Context) ([]response.PlayResponse, error)
	GetPlayByID(ctx context.Context, playID string) (*response.PlayDetailResponse, error)

	// UpdatePlay replaces the play. Omitted numeric fields keep their value.
	UpdatePlay(ctx context.Context, playID string, req *request.PlayRequest) (*response.PlayDetailResponse, error)
	PatchPlay(ctx context.Context, playID string, req *request.PlayUpdateRequest) (*response.PlayDetailResponse, error)
	DeletePlay(ctx context.Context, playID string) error
}

type playService struct {
	repo     *repository.Repository
	defaults utils.PlayConfig
	log      *zap.Logger
}

func NewPlayService(repo *repository.Repository, defaults utils.PlayConfig, log *zap.Logger) PlayService {
	return &playService{
		repo:     repo,
		defaults: defaults,
		log:      log.With(zap.String("service", "play")),
	}
}

func (s *playService) CreatePlay(ctx context.Context, req *request.PlayRequest) (*response.PlayResponse, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := validate(req); err != nil {
		s.log.Warn("Create play validation failed", zap.Error(err))
		return nil, err
	}

	now := time.Now()
	play := &entity.Play{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:         req.Name,
		Fee:          s.defaults.FeePercent,
		Price:        s.defaults.Price,
		TotalAccents: s.defaults.TotalAccents,
	}
	applyPlayFields(play, req.Fee, req.Price, req.TotalAccents)

	if err := s.repo.Play.Create(ctx, play); err != nil {
		return nil, fmt.Errorf("create play: %w", err)
	}

	s.log.Info("Play created",
		zap.String("play_id", play.ID.String()),
		zap.String("name", play.Name),
	)

	resp := response.PlayToResponse(play)
	return &resp, nil
}

func (s *playService) GetPlays(ctx context.Context) ([]response.PlayResponse, error) {
	plays, err := s.repo.Play.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get plays: %w", err)
	}

	result := make([]response.PlayResponse, len(plays))
	for i, play := range plays {
		result[i] = response.PlayToResponse(play)
	}
	return result, nil
}

func (s *playService) GetPlayByID(ctx context.Context, playID string) (*response.PlayDetailResponse, error) {
	play, err := s.findPlay(ctx, playID)
	if err != nil {
		return nil, err
	}

	return s.detail(ctx, play)
}

func (s *playService) UpdatePlay(ctx context.Context, playID string, req *request.PlayRequest) (*response.PlayDetailResponse, error) {
	play, err := s.findPlay(ctx, playID)
	if err != nil {
		return nil, err
	}

	req.Name = strings.TrimSpace(req.Name)
	if err := validate(req); err != nil {
		s.log.Warn("Update play validation failed", zap.Error(err))
		return nil, err
	}

	play.Name = req.Name
	applyPlayFields(play, req.Fee, req.Price, req.TotalAccents)

	return s.save(ctx, play)
}

func (s *playService) PatchPlay(ctx context.Context, playID string, req *request.PlayUpdateRequest) (*response.PlayDetailResponse, error) {
	play, err := s.findPlay(ctx, playID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		req.Name = &name
	}
	if err := validate(req); err != nil {
		s.log.Warn("Patch play validation failed", zap.Error(err))
		return nil, err
	}

	if req.Name != nil {
		play.Name = *req.Name
	}
	applyPlayFields(play, req.Fee, req.Price, req.TotalAccents)

	return s.save(ctx, play)
}

func (s *playService) DeletePlay(ctx context.Context, playID string) error {
	id, err := parseID("play", playID)
	if err != nil {
		return err
	}

	if err := s.repo.Play.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("play %s: %w", playID, ErrNotFound)
		}
		return fmt.Errorf("delete play: %w", err)
	}

	s.log.Info("Play deleted", zap.String("play_id", playID))
	return nil
}

func (s *playService) save(ctx context.Context, play *entity.Play) (*response.PlayDetailResponse, error) {
	play.UpdatedAt = time.Now()

	if err := s.repo.Play.Update(ctx, play); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("play %s: %w", play.ID, ErrNotFound)
		}
		return nil, fmt.Errorf("update play: %w", err)
	}

	s.log.Info("Play updated", zap.String("play_id", play.ID.String()))
	return s.detail(ctx, play)
}

func (s *playService) detail(ctx context.Context, play *entity.Play) (*response.PlayDetailResponse, error) {
	count, err := s.repo.Reservation.CountByPlay(ctx, play.ID)
	if err != nil {
		return nil, fmt.Errorf("count reservations of play %s: %w", play.ID, err)
	}

	resp := response.PlayToDetailResponse(play, count)
	return &resp, nil
}

func (s *playService) findPlay(ctx context.Context, playID string) (*entity.Play, error) {
	id, err := parseID("play", playID)
	if err != nil {
		return nil, err
	}

	play, err := s.repo.Play.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get play: %w", err)
	}
	if play == nil {
		return nil, fmt.Errorf("play %s: %w", playID, ErrNotFound)
	}
	return play, nil
}

func applyPlayFields(play *entity.Play, fee, price *float64, totalAccents *int) {
	if fee != nil {
		play.Fee = *fee
	}
	if price != nil {
		play.Price = *price
	}
	if totalAccents != nil {
		play.TotalAccents = *totalAccents
	}
}
