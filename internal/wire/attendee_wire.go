package wire

import (
	"theater-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAttendee(r chi.Router, attendeeHandler *adaptor.AttendeeHandler) {
	r.Route("/api/attendees", func(r chi.Router) {
		r.Get("/", attendeeHandler.GetAttendees)
		r.Post("/", attendeeHandler.CreateAttendee)

		r.Get("/{id}", attendeeHandler.GetAttendeeByID)
		// Removes the identity as well
		r.Delete("/{id}", attendeeHandler.DeleteAttendee)
	})
}
