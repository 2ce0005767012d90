package adaptor

import (
	"net/http"

	"theater-booking/internal/dto/request"
	"theater-booking/internal/usecase"
	"theater-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type PlayHandler struct {
	service usecase.PlayService
	log     *zap.Logger
}

func NewPlayHandler(service usecase.PlayService, log *zap.Logger) *PlayHandler {
	return &PlayHandler{
		service: service,
		log:     log.With(zap.String("handler", "play")),
	}
}

// CreatePlay handles POST /api/plays
func (h *PlayHandler) CreatePlay(w http.ResponseWriter, r *http.Request) {
	var req request.PlayRequest
	if !decodeBody(w, r, &req) {
		return
	}

	play, err := h.service.CreatePlay(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create play")
		return
	}

	utils.ResponseCreated(w, "success", play)
}

// GetPlays handles GET /api/plays
func (h *PlayHandler) GetPlays(w http.ResponseWriter, r *http.Request) {
	plays, err := h.service.GetPlays(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "get plays")
		return
	}

	utils.ResponseSuccess(w, "success", plays)
}

// GetPlayByID handles GET /api/plays/{id}
func (h *PlayHandler) GetPlayByID(w http.ResponseWriter, r *http.Request) {
	play, err := h.service.GetPlayByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(h.log, w, err, "get play by ID")
		return
	}

	utils.ResponseSuccess(w, "success", play)
}

// UpdatePlay handles PUT /api/plays/{id}
func (h *PlayHandler) UpdatePlay(w http.ResponseWriter, r *http.Request) {
	var req request.PlayRequest
	if !decodeBody(w, r, &req) {
		return
	}

	play, err := h.service.UpdatePlay(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update play")
		return
	}

	utils.ResponseSuccess(w, "success", play)
}

// PatchPlay handles PATCH /api/plays/{id}
func (h *PlayHandler) PatchPlay(w http.ResponseWriter, r *http.Request) {
	var req request.PlayUpdateRequest
	if !decodeBody(w, r, &req) {
		return
	}

	play, err := h.service.PatchPlay(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "patch play")
		return
	}

	utils.ResponseSuccess(w, "success", play)
}

// DeletePlay handles DELETE /api/plays/{id}
func (h *PlayHandler) DeletePlay(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeletePlay(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(h.log, w, err, "delete play")
		return
	}

	utils.ResponseNoContent(w)
}
