package response

import "theater-booking/internal/data/entity"

type ReservationResponse struct {
	ID       string `json:"id"`
	Attendee string `json:"attendee"`
	Play     string `json:"play"`
}

func ReservationToResponse(reservation *entity.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:       reservation.ID.String(),
		Attendee: reservation.AttendeeID.String(),
		Play:     reservation.PlayID.String(),
	}
}
