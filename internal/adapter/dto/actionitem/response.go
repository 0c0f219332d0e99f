package actionitem

import "time"

// ActionItemResponse represents an action item in responses
type ActionItemResponse struct {
	ID          string     `json:"id"`
	MeetingID   string     `json:"meeting_id"`
	Description string     `json:"description"`
	Assignee    *string    `json:"assignee"`
	Deadline    *time.Time `json:"deadline"`
	Priority    string     `json:"priority"`
	Status      string     `json:"status"`
	IsOverdue   bool       `json:"is_overdue"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// ActionItemListResponse represents the action items of one meeting
type ActionItemListResponse struct {
	ActionItems []*ActionItemResponse `json:"action_items"`
	Total       int                   `json:"total"`
}
