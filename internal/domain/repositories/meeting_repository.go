package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/johnquangdev/ami-meeting-svc/internal/domain/entities"
)

// MeetingRepository defines the interface for meeting data access.
// Lookups that take an ownerID are scoped to that owner: a meeting owned by
// someone else behaves exactly like a missing meeting.
type MeetingRepository interface {
	// Create creates a new meeting
	Create(ctx context.Context, meeting *entities.Meeting) error

	// FindByIDAndOwner retrieves a meeting by ID, scoped to the owner
	FindByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*entities.Meeting, error)

	// ListByOwner retrieves all meetings owned by a user
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entities.Meeting, error)

	// UpdateAnalysisResult overwrites the stored analysis blob in one write
	UpdateAnalysisResult(ctx context.Context, id uuid.UUID, result datatypes.JSON) error
}
