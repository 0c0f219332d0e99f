package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/johnquangdev/ami-meeting-svc/internal/domain/entities"
	"github.com/johnquangdev/ami-meeting-svc/internal/domain/repositories"
)

// ActionItemRepository implements the action item repository interface using GORM
type ActionItemRepository struct {
	db *gorm.DB
}

// NewActionItemRepository creates a new action item repository
func NewActionItemRepository(db *gorm.DB) *ActionItemRepository {
	return &ActionItemRepository{
		db: db,
	}
}

// CreateBatch inserts all items in one transaction. A failure on any row
// rolls back the whole batch so partial extractions are never visible.
func (r *ActionItemRepository) CreateBatch(ctx context.Context, items []*entities.ActionItem) error {
	if len(items) == 0 {
		return nil
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, item := range items {
			if err := tx.Create(item).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to create action items: %w", err)
	}
	return nil
}

// FindByID finds an action item by ID
func (r *ActionItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.ActionItem, error) {
	var item entities.ActionItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, entities.ErrActionItemNotFound
		}
		return nil, fmt.Errorf("failed to find action item: %w", err)
	}
	return &item, nil
}

// ListByMeeting lists all action items belonging to a meeting
func (r *ActionItemRepository) ListByMeeting(ctx context.Context, meetingID uuid.UUID) ([]*entities.ActionItem, error) {
	var items []*entities.ActionItem
	if err := r.db.WithContext(ctx).
		Where("meeting_id = ?", meetingID).
		Order("created_at ASC").
		Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list action items: %w", err)
	}
	return items, nil
}

// Update persists the full state of an existing action item
func (r *ActionItemRepository) Update(ctx context.Context, item *entities.ActionItem) error {
	if err := r.db.WithContext(ctx).Save(item).Error; err != nil {
		return fmt.Errorf("failed to update action item: %w", err)
	}
	return nil
}

// CountAll counts every action item in the store
func (r *ActionItemRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.ActionItem{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count action items: %w", err)
	}
	return count, nil
}

// CountByStatus counts action items with the given status
func (r *ActionItemRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.ActionItem{}).
		Where("status = ?", status).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count action items by status: %w", err)
	}
	return count, nil
}

// CountOverdue counts action items currently flagged overdue
func (r *ActionItemRepository) CountOverdue(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.ActionItem{}).
		Where("is_overdue = ?", true).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count overdue action items: %w", err)
	}
	return count, nil
}

// GroupByAssigneeStatus returns counts grouped by (assignee, status)
func (r *ActionItemRepository) GroupByAssigneeStatus(ctx context.Context) ([]repositories.AssigneeStatusCount, error) {
	var rows []repositories.AssigneeStatusCount
	if err := r.db.WithContext(ctx).
		Model(&entities.ActionItem{}).
		Select("assignee, status, COUNT(*) AS count").
		Group("assignee, status").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to aggregate action items: %w", err)
	}
	return rows, nil
}
