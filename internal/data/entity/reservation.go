package entity

import (
	"github.com/google/uuid"
)

type Reservation struct {
	BaseSimple
	AttendeeID uuid.UUID `db:"attendee_id"`
	PlayID     uuid.UUID `db:"play_id"`
}
