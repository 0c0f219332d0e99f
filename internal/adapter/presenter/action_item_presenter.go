package presenter

import (
	"github.com/johnquangdev/ami-meeting-svc/internal/adapter/dto/actionitem"
	"github.com/johnquangdev/ami-meeting-svc/internal/domain/entities"
)

// ToActionItemResponse converts an ActionItem entity to ActionItemResponse DTO
func ToActionItemResponse(a *entities.ActionItem) *actionitem.ActionItemResponse {
	if a == nil {
		return nil
	}
	return &actionitem.ActionItemResponse{
		ID:          a.ID.String(),
		MeetingID:   a.MeetingID.String(),
		Description: a.Description,
		Assignee:    a.Assignee,
		Deadline:    a.Deadline,
		Priority:    a.Priority,
		Status:      a.Status,
		IsOverdue:   a.IsOverdue,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

// ToActionItemListResponse converts a slice of ActionItem entities to ActionItemListResponse
func ToActionItemListResponse(items []*entities.ActionItem) *actionitem.ActionItemListResponse {
	responses := make([]*actionitem.ActionItemResponse, len(items))
	for i, item := range items {
		responses[i] = ToActionItemResponse(item)
	}
	return &actionitem.ActionItemListResponse{
		ActionItems: responses,
		Total:       len(responses),
	}
}
