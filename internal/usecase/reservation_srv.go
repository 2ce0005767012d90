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

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ReservationService interface {
	CreateReservation(ctx context.Context, req *request.ReservationRequest) (*response.ReservationResponse, error)
	GetReservations(ctx context.Context) ([]response.ReservationResponse, error)
	GetReservationByID(ctx context.Context, reservationID string) (*response.ReservationResponse, error)
	DeleteReservation(ctx context.Context, reservationID string) error
}

type reservationService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewReservationService(repo *repository.Repository, log *zap.Logger) ReservationService {
	return &reservationService{
		repo: repo,
		log:  log.With(zap.String("service", "reservation")),
	}
}

// CreateReservation claims one seat of a play for an attendee.
// The (attendee, play) pair is unique; the storage constraint decides, so
// of two concurrent attempts exactly one succeeds. Capacity is not checked.
func (s *reservationService) CreateReservation(ctx context.Context, req *request.ReservationRequest) (*response.ReservationResponse, error) {
	if err := validate(req); err != nil {
		s.log.Warn("Create reservation validation failed", zap.Error(err))
		reservationsRejected.WithLabelValues("validation").Inc()
		return nil, err
	}

	reservation := &entity.Reservation{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		AttendeeID: uuid.MustParse(req.Attendee),
		PlayID:     uuid.MustParse(req.Play),
	}

	if err := s.repo.Reservation.Create(ctx, reservation); err != nil {
		return nil, s.translateCreateError(err, req)
	}

	reservationsCreated.Inc()
	s.log.Info("Reservation created",
		zap.String("reservation_id", reservation.ID.String()),
		zap.String("attendee_id", req.Attendee),
		zap.String("play_id", req.Play),
	)

	resp := response.ReservationToResponse(reservation)
	return &resp, nil
}

func (s *reservationService) translateCreateError(err error, req *request.ReservationRequest) error {
	var ce *repository.ConstraintError
	if !errors.As(err, &ce) {
		return fmt.Errorf("create reservation: %w", err)
	}

	switch {
	case errors.Is(err, repository.ErrDuplicate):
		reservationsRejected.WithLabelValues("duplicate").Inc()
		return fmt.Errorf("attendee %s already has a reservation for play %s: %w", req.Attendee, req.Play, ErrConflict)

	case ce.Constraint == repository.ConstraintReservationAttendee:
		reservationsRejected.WithLabelValues("unknown_attendee").Inc()
		return newValidationError("attendee", fmt.Sprintf("Attendee %s does not exist", req.Attendee))

	case ce.Constraint == repository.ConstraintReservationPlay:
		reservationsRejected.WithLabelValues("unknown_play").Inc()
		return newValidationError("play", fmt.Sprintf("Play %s does not exist", req.Play))

	default:
		return fmt.Errorf("create reservation: %w", err)
	}
}

func (s *reservationService) GetReservations(ctx context.Context) ([]response.ReservationResponse, error) {
	reservations, err := s.repo.Reservation.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get reservations: %w", err)
	}

	result := make([]response.ReservationResponse, len(reservations))
	for i, reservation := range reservations {
		result[i] = response.ReservationToResponse(reservation)
	}
	return result, nil
}

func (s *reservationService) GetReservationByID(ctx context.Context, reservationID string) (*response.ReservationResponse, error) {
	id, err := parseID("reservation", reservationID)
	if err != nil {
		return nil, err
	}

	reservation, err := s.repo.Reservation.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}
	if reservation == nil {
		return nil, fmt.Errorf("reservation %s: %w", reservationID, ErrNotFound)
	}

	resp := response.ReservationToResponse(reservation)
	return &resp, nil
}

func (s *reservationService) DeleteReservation(ctx context.Context, reservationID string) error {
	id, err := parseID("reservation", reservationID)
	if err != nil {
		return err
	}

	if err := s.repo.Reservation.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("reservation %s: %w", reservationID, ErrNotFound)
		}
		return fmt.Errorf("delete reservation: %w", err)
	}

	reservationsDeleted.Inc()
	s.log.Info("Reservation deleted", zap.String("reservation_id", reservationID))
	return nil
}
