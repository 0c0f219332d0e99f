package meeting

import "time"

// MeetingResponse represents a meeting in responses
type MeetingResponse struct {
	ID             string                 `json:"id"`
	OwnerID        string                 `json:"owner_id"`
	Title          string                 `json:"title"`
	Date           time.Time              `json:"date"`
	Attendees      []string               `json:"attendees"`
	Notes          string                 `json:"notes"`
	AnalysisResult map[string]interface{} `json:"analysis_result,omitempty"`
	CreatedAt      time.Time              `json:"created_at"`
	UpdatedAt      time.Time              `json:"updated_at"`
}

// MeetingListResponse represents the owner-scoped meeting list
type MeetingListResponse struct {
	Meetings []*MeetingResponse `json:"meetings"`
	Total    int                `json:"total"`
}
