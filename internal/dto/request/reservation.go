package request

type ReservationRequest struct {
	Attendee string `json:"attendee" validate:"required,uuid"`
	Play     string `json:"play" validate:"required,uuid"`
}
