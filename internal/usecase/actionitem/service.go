package actionitem

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "github.com/johnquangdev/ami-meeting-svc/errors"
	"github.com/johnquangdev/ami-meeting-svc/internal/domain/entities"
	"github.com/johnquangdev/ami-meeting-svc/internal/domain/repositories"
)

// MaxDescriptionLength mirrors the column limit on action_items.description
const MaxDescriptionLength = 1024

// OptionalString carries a PATCH field that distinguishes "absent" from
// "explicitly null": Set is false when the field was not supplied at all.
type OptionalString struct {
	Set   bool
	Value *string
}

// OptionalTime is the timestamp counterpart of OptionalString
type OptionalTime struct {
	Set   bool
	Value *time.Time
}

// UpdateInput is a partial update: nil / unset fields leave the stored
// values untouched.
type UpdateInput struct {
	Description *string
	Assignee    OptionalString
	Deadline    OptionalTime
	Priority    *string
	Status      *string
}

// Service defines the action item use case
type Service interface {
	// UpdateActionItem applies a partial update and recomputes is_overdue
	UpdateActionItem(ctx context.Context, id uuid.UUID, input UpdateInput) (*entities.ActionItem, error)

	// ListForMeeting returns the action items of a meeting owned by the
	// acting user
	ListForMeeting(ctx context.Context, meetingID, actingUserID uuid.UUID) ([]*entities.ActionItem, error)
}

// ActionItemService implements Service
type ActionItemService struct {
	actionItemRepo repositories.ActionItemRepository
	meetingRepo    repositories.MeetingRepository
	logger         *zap.Logger
}

// Ensure ActionItemService implements Service interface
var _ Service = (*ActionItemService)(nil)

// NewActionItemService creates a new action item service
func NewActionItemService(
	actionItemRepo repositories.ActionItemRepository,
	meetingRepo repositories.MeetingRepository,
	logger *zap.Logger,
) *ActionItemService {
	return &ActionItemService{
		actionItemRepo: actionItemRepo,
		meetingRepo:    meetingRepo,
		logger:         logger,
	}
}

// UpdateActionItem applies only the supplied fields, then derives
// is_overdue from (deadline, status, now). Clients can clear the deadline
// with an explicit null but can never set is_overdue themselves.
func (s *ActionItemService) UpdateActionItem(ctx context.Context, id uuid.UUID, input UpdateInput) (*entities.ActionItem, error) {
	item, err := s.actionItemRepo.FindByID(ctx, id)
	if err != nil {
		if err == entities.ErrActionItemNotFound {
			return nil, apperrors.ErrNotFound("Action item")
		}
		return nil, apperrors.ErrStorage(err)
	}

	// Validate every supplied field before touching the row
	if input.Description != nil {
		desc := strings.TrimSpace(*input.Description)
		if desc == "" {
			return nil, apperrors.ErrUnprocessable("description must not be blank")
		}
		if len(desc) > MaxDescriptionLength {
			return nil, apperrors.ErrUnprocessable("description exceeds 1024 characters")
		}
		item.Description = desc
	}
	if input.Priority != nil {
		priority := titleCase(strings.TrimSpace(*input.Priority))
		if !entities.IsValidPriority(priority) {
			return nil, apperrors.ErrUnprocessable(entities.ErrInvalidPriority.Error())
		}
		item.Priority = priority
	}
	if input.Status != nil {
		if !entities.IsValidStatus(*input.Status) {
			return nil, apperrors.ErrUnprocessable(entities.ErrInvalidStatus.Error())
		}
		item.Status = *input.Status
	}
	if input.Assignee.Set {
		item.Assignee = input.Assignee.Value
	}
	if input.Deadline.Set {
		item.Deadline = input.Deadline.Value
	}

	now := time.Now().UTC()
	item.RecomputeOverdue(now)
	item.UpdatedAt = now

	if err := s.actionItemRepo.Update(ctx, item); err != nil {
		s.logger.Error("failed to update action item",
			zap.String("action_item_id", id.String()),
			zap.Error(err),
		)
		return nil, apperrors.ErrStorage(err)
	}

	return item, nil
}

// ListForMeeting lists the items of an owned meeting; an unowned meeting
// behaves like a missing one.
func (s *ActionItemService) ListForMeeting(ctx context.Context, meetingID, actingUserID uuid.UUID) ([]*entities.ActionItem, error) {
	if _, err := s.meetingRepo.FindByIDAndOwner(ctx, meetingID, actingUserID); err != nil {
		if err == entities.ErrMeetingNotFound {
			return nil, apperrors.ErrNotFound("Meeting")
		}
		return nil, apperrors.ErrStorage(err)
	}

	items, err := s.actionItemRepo.ListByMeeting(ctx, meetingID)
	if err != nil {
		return nil, apperrors.ErrStorage(err)
	}
	return items, nil
}

// titleCase normalizes priority casing ("high" -> "High")
func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
