package entities

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// MinNotesLength is the minimum notes length accepted at meeting creation
const MinNotesLength = 50

// Meeting represents a recorded meeting owned by a single user.
// AnalysisResult holds the opaque JSON produced by the analysis endpoint;
// only the extraction pipeline and the analyze operation write it.
type Meeting struct {
	ID             uuid.UUID                   `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OwnerID        uuid.UUID                   `json:"owner_id" gorm:"type:uuid;not null;index"`
	Title          string                      `json:"title" gorm:"type:varchar(255);not null"`
	Date           time.Time                   `json:"date" gorm:"not null"`
	Attendees      datatypes.JSONSlice[string] `json:"attendees" gorm:"type:jsonb;not null"`
	Notes          string                      `json:"notes" gorm:"type:text;not null"`
	AnalysisResult datatypes.JSON              `json:"analysis_result,omitempty" gorm:"type:jsonb"`
	CreatedAt      time.Time                   `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt      time.Time                   `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for Meeting
func (Meeting) TableName() string {
	return "meetings"
}

// NewMeeting creates a new meeting entity
func NewMeeting(ownerID uuid.UUID, title string, date time.Time, attendees []string, notes string) *Meeting {
	now := time.Now().UTC()
	return &Meeting{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Title:     title,
		Date:      date,
		Attendees: datatypes.NewJSONSlice(attendees),
		Notes:     notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// HasNotes reports whether the meeting carries non-whitespace notes
func (m *Meeting) HasNotes() bool {
	return strings.TrimSpace(m.Notes) != ""
}
