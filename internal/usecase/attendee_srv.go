package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"theater-booking/internal/data/entity"
	"theater-booking/internal/data/repository"
	"theater-booking/internal/dto/request"
	"theater-booking/internal/dto/response"
	"theater-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AttendeeService interface {
	CreateAttendee(ctx context.Context, req *request.AttendeeRequest) (*response.AttendeeResponse, error)
	GetAttendees(ctx context.Context) ([]response.AttendeeResponse, error)
	GetAttendeeByID(ctx context.Context, attendeeID string) (*response.AttendeeResponse, error)
	DeleteAttendee(ctx context.Context, attendeeID string) error
}

type attendeeService struct {
	repo   *repository.Repository
	hasher *utils.PasswordHasher
	log    *zap.Logger
}

func NewAttendeeService(repo *repository.Repository, hasher *utils.PasswordHasher, log *zap.Logger) AttendeeService {
	return &attendeeService{
		repo:   repo,
		hasher: hasher,
		log:    log.With(zap.String("service", "attendee")),
	}
}

// CreateAttendee stores the identity and its attendee profile in one transaction
func (s *attendeeService) CreateAttendee(ctx context.Context, req *request.AttendeeRequest) (*response.AttendeeResponse, error) {
	if err := validate(req); err != nil {
		s.log.Warn("Create attendee validation failed", zap.Error(err))
		return nil, err
	}

	passwordHash, err := s.hasher.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: passwordHash,
	}
	attendee := &entity.Attendee{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: now,
		},
		UserID: user.ID,
	}

	err = s.repo.WithTx(ctx, func(tx *repository.Repository) error {
		if err := tx.User.Create(ctx, user); err != nil {
			return err
		}
		return tx.Attendee.Create(ctx, attendee)
	})
	if err != nil {
		var ce *repository.ConstraintError
		if errors.As(err, &ce) {
			switch ce.Constraint {
			case repository.ConstraintUsername:
				return nil, fmt.Errorf("username %s is already taken: %w", req.Username, ErrConflict)
			case repository.ConstraintAttendeeUser:
				// cannot happen for a freshly generated user id
				s.log.Error("Fresh identity already has an attendee",
					zap.Error(err),
					zap.String("user_id", user.ID.String()),
				)
			}
		}
		return nil, fmt.Errorf("create attendee: %w", err)
	}
	attendee.User = user

	s.log.Info("Attendee created",
		zap.String("attendee_id", attendee.ID.String()),
		zap.String("username", user.Username),
	)

	resp := response.AttendeeToResponse(attendee)
	return &resp, nil
}

func (s *attendeeService) GetAttendees(ctx context.Context) ([]response.AttendeeResponse, error) {
	attendees, err := s.repo.Attendee.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get attendees: %w", err)
	}

	result := make([]response.AttendeeResponse, len(attendees))
	for i, attendee := range attendees {
		result[i] = response.AttendeeToResponse(attendee)
	}
	return result, nil
}

func (s *attendeeService) GetAttendeeByID(ctx context.Context, attendeeID string) (*response.AttendeeResponse, error) {
	attendee, err := s.findAttendee(ctx, attendeeID)
	if err != nil {
		return nil, err
	}

	resp := response.AttendeeToResponse(attendee)
	return &resp, nil
}

// DeleteAttendee removes the backing identity. The attendee row and its
// reservations go with it through the cascading foreign keys.
func (s *attendeeService) DeleteAttendee(ctx context.Context, attendeeID string) error {
	attendee, err := s.findAttendee(ctx, attendeeID)
	if err != nil {
		return err
	}

	if err := s.repo.User.Delete(ctx, attendee.UserID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("attendee %s: %w", attendeeID, ErrNotFound)
		}
		return fmt.Errorf("delete attendee: %w", err)
	}

	s.log.Info("Attendee deleted", zap.String("attendee_id", attendeeID))
	return nil
}

func (s *attendeeService) findAttendee(ctx context.Context, attendeeID string) (*entity.Attendee, error) {
	id, err := parseID("attendee", attendeeID)
	if err != nil {
		return nil, err
	}

	attendee, err := s.repo.Attendee.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get attendee: %w", err)
	}
	if attendee == nil {
		return nil, fmt.Errorf("attendee %s: %w", attendeeID, ErrNotFound)
	}
	return attendee, nil
}
