package meeting

import "time"

// CreateMeetingRequest represents the request to record a meeting
type CreateMeetingRequest struct {
	Title     string    `json:"title" validate:"required,min=1,max=255"`
	Date      time.Time `json:"date" validate:"required"`
	Attendees []string  `json:"attendees"`
	Notes     string    `json:"notes" validate:"required,min=50"`
}
