package adaptor

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"theater-booking/internal/usecase"
	"theater-booking/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Attendee    *AttendeeHandler
	Play        *PlayHandler
	Reservation *ReservationHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Attendee:    NewAttendeeHandler(service.Attendee, log),
		Play:        NewPlayHandler(service.Play, log),
		Reservation: NewReservationHandler(service.Reservation, log),
	}
}

// decodeBody reads a JSON request body into dst, answering 400 on failure.
// An empty body decodes as an empty object so required fields are reported
// by validation.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil || errors.Is(err, io.EOF) {
		return true
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		utils.ResponseBadRequest(w, "Validation failed", map[string]string{typeErr.Field: "Invalid type"})
		return false
	}

	utils.ResponseBadRequest(w, "Invalid request body", nil)
	return false
}

// handleServiceError maps usecase errors onto HTTP responses
func handleServiceError(log *zap.Logger, w http.ResponseWriter, err error, operation string) {
	var validationErr *usecase.ValidationError

	switch {
	case errors.As(err, &validationErr):
		log.Warn(operation+" validation failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, "Validation failed", validationErr.Fields)

	case errors.Is(err, usecase.ErrConflict):
		log.Warn(operation+" failed - conflict",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, usecase.ErrNotFound):
		log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, err.Error())

	default:
		log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
