package meeting

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "github.com/johnquangdev/ami-meeting-svc/errors"
	"github.com/johnquangdev/ami-meeting-svc/internal/domain/entities"
	"github.com/johnquangdev/ami-meeting-svc/internal/domain/repositories"
)

// CreateInput carries the fields needed to record a meeting
type CreateInput struct {
	Title     string
	Date      time.Time
	Attendees []string
	Notes     string
}

// Service defines the meeting CRUD use case
type Service interface {
	// CreateMeeting records a new meeting owned by the acting user
	CreateMeeting(ctx context.Context, ownerID uuid.UUID, input CreateInput) (*entities.Meeting, error)

	// GetMeeting fetches an owned meeting; unowned meetings look absent
	GetMeeting(ctx context.Context, meetingID, actingUserID uuid.UUID) (*entities.Meeting, error)

	// ListMeetings lists the acting user's meetings
	ListMeetings(ctx context.Context, actingUserID uuid.UUID) ([]*entities.Meeting, error)
}

// MeetingService implements Service
type MeetingService struct {
	meetingRepo repositories.MeetingRepository
	logger      *zap.Logger
}

// Ensure MeetingService implements Service interface
var _ Service = (*MeetingService)(nil)

// NewMeetingService creates a new meeting service
func NewMeetingService(meetingRepo repositories.MeetingRepository, logger *zap.Logger) *MeetingService {
	return &MeetingService{
		meetingRepo: meetingRepo,
		logger:      logger,
	}
}

// CreateMeeting records a meeting. Notes shorter than the minimum are
// rejected here as well as at the request boundary.
func (s *MeetingService) CreateMeeting(ctx context.Context, ownerID uuid.UUID, input CreateInput) (*entities.Meeting, error) {
	if len(input.Notes) < entities.MinNotesLength {
		return nil, apperrors.ErrUnprocessable("notes must be at least 50 characters long")
	}

	m := entities.NewMeeting(ownerID, input.Title, input.Date, input.Attendees, input.Notes)
	if err := s.meetingRepo.Create(ctx, m); err != nil {
		s.logger.Error("failed to create meeting", zap.Error(err))
		return nil, apperrors.ErrStorage(err)
	}
	return m, nil
}

// GetMeeting fetches a single owned meeting
func (s *MeetingService) GetMeeting(ctx context.Context, meetingID, actingUserID uuid.UUID) (*entities.Meeting, error) {
	m, err := s.meetingRepo.FindByIDAndOwner(ctx, meetingID, actingUserID)
	if err != nil {
		if err == entities.ErrMeetingNotFound {
			return nil, apperrors.ErrNotFound("Meeting")
		}
		return nil, apperrors.ErrStorage(err)
	}
	return m, nil
}

// ListMeetings lists the acting user's meetings
func (s *MeetingService) ListMeetings(ctx context.Context, actingUserID uuid.UUID) ([]*entities.Meeting, error) {
	meetings, err := s.meetingRepo.ListByOwner(ctx, actingUserID)
	if err != nil {
		return nil, apperrors.ErrStorage(err)
	}
	return meetings, nil
}
