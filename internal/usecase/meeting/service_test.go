package meeting

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	apperrors "github.com/johnquangdev/ami-meeting-svc/errors"
	"github.com/johnquangdev/ami-meeting-svc/internal/domain/entities"
)

type fakeMeetingRepo struct {
	meetings map[uuid.UUID]*entities.Meeting
}

func newFakeMeetingRepo() *fakeMeetingRepo {
	return &fakeMeetingRepo{meetings: make(map[uuid.UUID]*entities.Meeting)}
}

func (r *fakeMeetingRepo) Create(ctx context.Context, meeting *entities.Meeting) error {
	r.meetings[meeting.ID] = meeting
	return nil
}

func (r *fakeMeetingRepo) FindByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*entities.Meeting, error) {
	m, ok := r.meetings[id]
	if !ok || m.OwnerID != ownerID {
		return nil, entities.ErrMeetingNotFound
	}
	return m, nil
}

func (r *fakeMeetingRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entities.Meeting, error) {
	var out []*entities.Meeting
	for _, m := range r.meetings {
		if m.OwnerID == ownerID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeMeetingRepo) UpdateAnalysisResult(ctx context.Context, id uuid.UUID, result datatypes.JSON) error {
	return nil
}

func TestCreateMeeting_NotesTooShort(t *testing.T) {
	svc := NewMeetingService(newFakeMeetingRepo(), zap.NewNop())

	_, err := svc.CreateMeeting(context.Background(), uuid.New(), CreateInput{
		Title: "standup",
		Date:  time.Now().UTC(),
		Notes: "too short",
	})
	var appErr apperrors.AppError
	if !errors.As(err, &appErr) || appErr.Code != apperrors.ErrorCode_UNPROCESSABLE {
		t.Fatalf("expected UNPROCESSABLE, got %v", err)
	}
}

func TestCreateMeeting_Persists(t *testing.T) {
	repo := newFakeMeetingRepo()
	svc := NewMeetingService(repo, zap.NewNop())
	owner := uuid.New()

	created, err := svc.CreateMeeting(context.Background(), owner, CreateInput{
		Title:     "planning",
		Date:      time.Now().UTC(),
		Attendees: []string{"amy", "bob"},
		Notes:     strings.Repeat("n", entities.MinNotesLength),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.OwnerID != owner {
		t.Fatal("meeting must be owned by the creator")
	}
	if _, ok := repo.meetings[created.ID]; !ok {
		t.Fatal("meeting was not persisted")
	}
}

func TestGetMeeting_ForeignOwnerLooksAbsent(t *testing.T) {
	repo := newFakeMeetingRepo()
	owner := uuid.New()
	m := entities.NewMeeting(owner, "retro", time.Now().UTC(), nil, strings.Repeat("n", 60))
	repo.meetings[m.ID] = m
	svc := NewMeetingService(repo, zap.NewNop())

	if _, err := svc.GetMeeting(context.Background(), m.ID, owner); err != nil {
		t.Fatalf("owner lookup failed: %v", err)
	}

	_, err := svc.GetMeeting(context.Background(), m.ID, uuid.New())
	var appErr apperrors.AppError
	if !errors.As(err, &appErr) || appErr.Code != apperrors.ErrorCode_NOT_FOUND {
		t.Fatalf("foreign owner must see NOT_FOUND, got %v", err)
	}
}
