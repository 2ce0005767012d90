package response

import "theater-booking/internal/data/entity"

type AttendeeResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

func AttendeeToResponse(attendee *entity.Attendee) AttendeeResponse {
	resp := AttendeeResponse{ID: attendee.ID.String()}
	if attendee.User != nil {
		resp.Username = attendee.User.Username
		resp.Email = attendee.User.Email
	}
	return resp
}
