package entity

import (
	"github.com/google/uuid"
)

type Attendee struct {
	BaseSimple
	UserID uuid.UUID `db:"user_id"`

	// joined from users on reads
	User *User `db:"-"`
}
