package entities

import (
	"time"

	"github.com/google/uuid"
)

// ActionItemPriority constants. Priorities are normalized to title case at
// the boundary and only these three values are ever stored.
const (
	ActionItemPriorityHigh   = "High"
	ActionItemPriorityMedium = "Medium"
	ActionItemPriorityLow    = "Low"
)

// ActionItemStatus constants
const (
	ActionItemStatusTodo       = "To Do"
	ActionItemStatusInProgress = "In Progress"
	ActionItemStatusDone       = "Done"
)

// ActionItem represents a trackable task derived from meeting notes
type ActionItem struct {
	ID          uuid.UUID  `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	MeetingID   uuid.UUID  `json:"meeting_id" gorm:"type:uuid;not null;index"`
	Description string     `json:"description" gorm:"type:varchar(1024);not null"`
	Assignee    *string    `json:"assignee,omitempty" gorm:"type:varchar(255)"`
	Deadline    *time.Time `json:"deadline,omitempty"`
	Priority    string     `json:"priority" gorm:"type:varchar(50);not null"`
	Status      string     `json:"status" gorm:"type:varchar(50);not null;default:'To Do'"`
	IsOverdue   bool       `json:"is_overdue" gorm:"not null;default:false"`
	CreatedAt   time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for ActionItem
func (ActionItem) TableName() string {
	return "action_items"
}

// NewActionItem creates a new ActionItem entity with default status
func NewActionItem(meetingID uuid.UUID, description string) *ActionItem {
	now := time.Now().UTC()
	return &ActionItem{
		ID:          uuid.New(),
		MeetingID:   meetingID,
		Description: description,
		Priority:    ActionItemPriorityMedium,
		Status:      ActionItemStatusTodo,
		IsOverdue:   false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// IsValidPriority reports whether p is one of the three normalized priorities
func IsValidPriority(p string) bool {
	switch p {
	case ActionItemPriorityHigh, ActionItemPriorityMedium, ActionItemPriorityLow:
		return true
	}
	return false
}

// IsValidStatus reports whether s is one of the three literal statuses
func IsValidStatus(s string) bool {
	switch s {
	case ActionItemStatusTodo, ActionItemStatusInProgress, ActionItemStatusDone:
		return true
	}
	return false
}

// RecomputeOverdue derives is_overdue from (deadline, status, now).
// A missing deadline or a Done status can never be overdue.
func (a *ActionItem) RecomputeOverdue(now time.Time) {
	if a.Deadline == nil {
		a.IsOverdue = false
		return
	}
	a.IsOverdue = a.Deadline.Before(now) && a.Status != ActionItemStatusDone
}
