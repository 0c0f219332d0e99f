package presenter

import (
	"encoding/json"

	"github.com/johnquangdev/ami-meeting-svc/internal/adapter/dto/meeting"
	"github.com/johnquangdev/ami-meeting-svc/internal/domain/entities"
)

// ToMeetingResponse converts a Meeting entity to MeetingResponse DTO
func ToMeetingResponse(m *entities.Meeting) *meeting.MeetingResponse {
	if m == nil {
		return nil
	}

	// The analysis result is stored as an opaque JSON object
	var analysis map[string]interface{}
	if m.AnalysisResult != nil {
		json.Unmarshal(m.AnalysisResult, &analysis)
	}

	return &meeting.MeetingResponse{
		ID:             m.ID.String(),
		OwnerID:        m.OwnerID.String(),
		Title:          m.Title,
		Date:           m.Date,
		Attendees:      m.Attendees,
		Notes:          m.Notes,
		AnalysisResult: analysis,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// ToMeetingListResponse converts a slice of Meeting entities to MeetingListResponse
func ToMeetingListResponse(meetings []*entities.Meeting) *meeting.MeetingListResponse {
	responses := make([]*meeting.MeetingResponse, len(meetings))
	for i, m := range meetings {
		responses[i] = ToMeetingResponse(m)
	}
	return &meeting.MeetingListResponse{
		Meetings: responses,
		Total:    len(responses),
	}
}
