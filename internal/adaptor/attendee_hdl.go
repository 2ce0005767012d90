package adaptor

import (
	"net/http"

	"theater-booking/internal/dto/request"
	"theater-booking/internal/usecase"
	"theater-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type AttendeeHandler struct {
	service usecase.AttendeeService
	log     *zap.Logger
}

func NewAttendeeHandler(service usecase.AttendeeService, log *zap.Logger) *AttendeeHandler {
	return &AttendeeHandler{
		service: service,
		log:     log.With(zap.String("handler", "attendee")),
	}
}

// CreateAttendee handles POST /api/attendees
func (h *AttendeeHandler) CreateAttendee(w http.ResponseWriter, r *http.Request) {
	var req request.AttendeeRequest
	if !decodeBody(w, r, &req) {
		return
	}

	attendee, err := h.service.CreateAttendee(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create attendee")
		return
	}

	utils.ResponseCreated(w, "success", attendee)
}

// GetAttendees handles GET /api/attendees
func (h *AttendeeHandler) GetAttendees(w http.ResponseWriter, r *http.Request) {
	attendees, err := h.service.GetAttendees(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "get attendees")
		return
	}

	utils.ResponseSuccess(w, "success", attendees)
}

// GetAttendeeByID handles GET /api/attendees/{id}
func (h *AttendeeHandler) GetAttendeeByID(w http.ResponseWriter, r *http.Request) {
	attendee, err := h.service.GetAttendeeByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(h.log, w, err, "get attendee by ID")
		return
	}

	utils.ResponseSuccess(w, "success", attendee)
}

// DeleteAttendee handles DELETE /api/attendees/{id}
func (h *AttendeeHandler) DeleteAttendee(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteAttendee(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(h.log, w, err, "delete attendee")
		return
	}

	utils.ResponseNoContent(w)
}
