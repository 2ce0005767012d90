package wire

import (
	"theater-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wirePlay(r chi.Router, playHandler *adaptor.PlayHandler) {
	r.Route("/api/plays", func(r chi.Router) {
		// GET /api/plays - list without financial figures
		r.Get("/", playHandler.GetPlays)
		r.Post("/", playHandler.CreatePlay)

		// GET /api/plays/{id} - detail with available seats, revenue and fee
		r.Get("/{id}", playHandler.GetPlayByID)
		r.Put("/{id}", playHandler.UpdatePlay)
		r.Patch("/{id}", playHandler.PatchPlay)
		r.Delete("/{id}", playHandler.DeletePlay)
	})
}
