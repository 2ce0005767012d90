package usecase

import (
	"theater-booking/internal/data/repository"
	"theater-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Attendee    AttendeeService
	Play        PlayService
	Reservation ReservationService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Attendee:    NewAttendeeService(repo, utils.NewPasswordHasher(config.Argon2), log),
		Play:        NewPlayService(repo, config.Play, log),
		Reservation: NewReservationService(repo, log),
	}
}
