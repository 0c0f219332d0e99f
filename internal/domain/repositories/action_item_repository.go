package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/johnquangdev/ami-meeting-svc/internal/domain/entities"
)

// AssigneeStatusCount is one row of the (assignee, status) aggregation.
// Assignee is nil for items that were never assigned.
type AssigneeStatusCount struct {
	Assignee *string
	Status   string
	Count    int64
}

// ActionItemRepository defines the interface for action item data access
type ActionItemRepository interface {
	// CreateBatch inserts all items in a single transaction; either every
	// row exists afterwards or none do.
	CreateBatch(ctx context.Context, items []*entities.ActionItem) error

	// FindByID retrieves an action item by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*entities.ActionItem, error)

	// ListByMeeting retrieves all action items for a meeting
	ListByMeeting(ctx context.Context, meetingID uuid.UUID) ([]*entities.ActionItem, error)

	// Update persists the full state of an existing action item
	Update(ctx context.Context, item *entities.ActionItem) error

	// CountAll counts every action item in the store
	CountAll(ctx context.Context) (int64, error)

	// CountByStatus counts action items with the given status
	CountByStatus(ctx context.Context, status string) (int64, error)

	// CountOverdue counts action items flagged overdue
	CountOverdue(ctx context.Context) (int64, error)

	// GroupByAssigneeStatus returns per-(assignee, status) counts
	GroupByAssigneeStatus(ctx context.Context) ([]AssigneeStatusCount, error)
}
