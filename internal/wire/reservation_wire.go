package wire

import (
	"theater-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// Reservations cannot be edited. PUT and PATCH fall through to the
// router's MethodNotAllowed handler.
func wireReservation(r chi.Router, reservationHandler *adaptor.ReservationHandler) {
	r.Route("/api/reservations", func(r chi.Router) {
		r.Get("/", reservationHandler.GetReservations)
		r.Post("/", reservationHandler.CreateReservation)

		r.Get("/{id}", reservationHandler.GetReservationByID)
		r.Delete("/{id}", reservationHandler.DeleteReservation)
	})
}
