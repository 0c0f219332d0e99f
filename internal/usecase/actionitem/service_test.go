package actionitem

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	apperrors "github.com/johnquangdev/ami-meeting-svc/errors"
	"github.com/johnquangdev/ami-meeting-svc/internal/domain/entities"
	"github.com/johnquangdev/ami-meeting-svc/internal/domain/repositories"
)

type fakeActionItemRepo struct {
	items     map[uuid.UUID]*entities.ActionItem
	updateErr error
	updated   *entities.ActionItem
}

func newFakeActionItemRepo(items ...*entities.ActionItem) *fakeActionItemRepo {
	r := &fakeActionItemRepo{items: make(map[uuid.UUID]*entities.ActionItem)}
	for _, item := range items {
		r.items[item.ID] = item
	}
	return r
}

func (r *fakeActionItemRepo) CreateBatch(ctx context.Context, items []*entities.ActionItem) error {
	for _, item := range items {
		r.items[item.ID] = item
	}
	return nil
}

func (r *fakeActionItemRepo) FindByID(ctx context.Context, id uuid.UUID) (*entities.ActionItem, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, entities.ErrActionItemNotFound
	}
	copied := *item
	return &copied, nil
}

func (r *fakeActionItemRepo) ListByMeeting(ctx context.Context, meetingID uuid.UUID) ([]*entities.ActionItem, error) {
	var out []*entities.ActionItem
	for _, item := range r.items {
		if item.MeetingID == meetingID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *fakeActionItemRepo) Update(ctx context.Context, item *entities.ActionItem) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	r.items[item.ID] = item
	r.updated = item
	return nil
}

func (r *fakeActionItemRepo) CountAll(ctx context.Context) (int64, error) { return 0, nil }
func (r *fakeActionItemRepo) CountByStatus(ctx context.Context, status string) (int64, error) {
	return 0, nil
}
func (r *fakeActionItemRepo) CountOverdue(ctx context.Context) (int64, error) { return 0, nil }
func (r *fakeActionItemRepo) GroupByAssigneeStatus(ctx context.Context) ([]repositories.AssigneeStatusCount, error) {
	return nil, nil
}

type fakeMeetingRepo struct {
	meetings map[uuid.UUID]*entities.Meeting
}

func newFakeMeetingRepo(meetings ...*entities.Meeting) *fakeMeetingRepo {
	r := &fakeMeetingRepo{meetings: make(map[uuid.UUID]*entities.Meeting)}
	for _, m := range meetings {
		r.meetings[m.ID] = m
	}
	return r
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
	return nil, nil
}

func (r *fakeMeetingRepo) UpdateAnalysisResult(ctx context.Context, id uuid.UUID, result datatypes.JSON) error {
	return nil
}

func strptr(s string) *string { return &s }

func seedItem(status string, deadline *time.Time) *entities.ActionItem {
	item := entities.NewActionItem(uuid.New(), "ship the report")
	item.Status = status
	item.Deadline = deadline
	return item
}

func newTestService(itemRepo *fakeActionItemRepo, meetingRepo *fakeMeetingRepo) *ActionItemService {
	return NewActionItemService(itemRepo, meetingRepo, zap.NewNop())
}

func TestUpdateActionItem_NotFound(t *testing.T) {
	svc := newTestService(newFakeActionItemRepo(), newFakeMeetingRepo())

	_, err := svc.UpdateActionItem(context.Background(), uuid.New(), UpdateInput{})
	var appErr apperrors.AppError
	if !errors.As(err, &appErr) || appErr.Code != apperrors.ErrorCode_NOT_FOUND {
		t.Fatalf("expected NOT_FOUND, got %v", err)
	}
}

func TestUpdateActionItem_PastDeadlineBecomesOverdue(t *testing.T) {
	past := time.Now().UTC().Add(-48 * time.Hour)
	item := seedItem(entities.ActionItemStatusTodo, &past)
	repo := newFakeActionItemRepo(item)
	svc := newTestService(repo, newFakeMeetingRepo())

	got, err := svc.UpdateActionItem(context.Background(), item.ID, UpdateInput{
		Status: strptr(entities.ActionItemStatusInProgress),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.IsOverdue {
		t.Fatal("expected item with past deadline to be overdue")
	}
	if got.Status != entities.ActionItemStatusInProgress {
		t.Fatalf("unexpected status %q", got.Status)
	}
}

func TestUpdateActionItem_DoneForcesNotOverdue(t *testing.T) {
	past := time.Now().UTC().Add(-48 * time.Hour)
	item := seedItem(entities.ActionItemStatusTodo, &past)
	item.IsOverdue = true
	repo := newFakeActionItemRepo(item)
	svc := newTestService(repo, newFakeMeetingRepo())

	got, err := svc.UpdateActionItem(context.Background(), item.ID, UpdateInput{
		Status: strptr(entities.ActionItemStatusDone),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.IsOverdue {
		t.Fatal("Done items must never be overdue, regardless of deadline")
	}
}

func TestUpdateActionItem_NullDeadlineClearsAndResetsOverdue(t *testing.T) {
	past := time.Now().UTC().Add(-48 * time.Hour)
	item := seedItem(entities.ActionItemStatusTodo, &past)
	item.IsOverdue = true
	repo := newFakeActionItemRepo(item)
	svc := newTestService(repo, newFakeMeetingRepo())

	got, err := svc.UpdateActionItem(context.Background(), item.ID, UpdateInput{
		Deadline: OptionalTime{Set: true, Value: nil},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Deadline != nil {
		t.Fatal("expected deadline cleared")
	}
	if got.IsOverdue {
		t.Fatal("items without deadline must not be overdue")
	}
}

func TestUpdateActionItem_AbsentFieldsUntouched(t *testing.T) {
	future := time.Now().UTC().Add(72 * time.Hour)
	item := seedItem(entities.ActionItemStatusInProgress, &future)
	item.Assignee = strptr("alice")
	repo := newFakeActionItemRepo(item)
	svc := newTestService(repo, newFakeMeetingRepo())

	got, err := svc.UpdateActionItem(context.Background(), item.ID, UpdateInput{
		Priority: strptr("high"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Priority != entities.ActionItemPriorityHigh {
		t.Fatalf("expected normalized priority High, got %q", got.Priority)
	}
	if got.Status != entities.ActionItemStatusInProgress {
		t.Fatal("status must be untouched when absent")
	}
	if got.Assignee == nil || *got.Assignee != "alice" {
		t.Fatal("assignee must be untouched when absent")
	}
	if got.Deadline == nil || !got.Deadline.Equal(future) {
		t.Fatal("deadline must be untouched when absent")
	}
}

func TestUpdateActionItem_InvalidStatusRejectedBeforePersistence(t *testing.T) {
	item := seedItem(entities.ActionItemStatusTodo, nil)
	repo := newFakeActionItemRepo(item)
	svc := newTestService(repo, newFakeMeetingRepo())

	_, err := svc.UpdateActionItem(context.Background(), item.ID, UpdateInput{
		Status: strptr("Completed"),
	})
	var appErr apperrors.AppError
	if !errors.As(err, &appErr) || appErr.Code != apperrors.ErrorCode_UNPROCESSABLE {
		t.Fatalf("expected UNPROCESSABLE, got %v", err)
	}
	if repo.updated != nil {
		t.Fatal("nothing may be persisted for an invalid status")
	}
}

func TestUpdateActionItem_InvalidPriorityRejected(t *testing.T) {
	item := seedItem(entities.ActionItemStatusTodo, nil)
	repo := newFakeActionItemRepo(item)
	svc := newTestService(repo, newFakeMeetingRepo())

	_, err := svc.UpdateActionItem(context.Background(), item.ID, UpdateInput{
		Priority: strptr("urgent"),
	})
	var appErr apperrors.AppError
	if !errors.As(err, &appErr) || appErr.Code != apperrors.ErrorCode_UNPROCESSABLE {
		t.Fatalf("expected UNPROCESSABLE, got %v", err)
	}
}

func TestUpdateActionItem_BumpsUpdatedAt(t *testing.T) {
	item := seedItem(entities.ActionItemStatusTodo, nil)
	item.UpdatedAt = time.Now().UTC().Add(-time.Hour)
	before := item.UpdatedAt
	repo := newFakeActionItemRepo(item)
	svc := newTestService(repo, newFakeMeetingRepo())

	got, err := svc.UpdateActionItem(context.Background(), item.ID, UpdateInput{
		Assignee: OptionalString{Set: true, Value: strptr("bob")},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.UpdatedAt.After(before) {
		t.Fatal("updated_at must be bumped on write")
	}
}

func TestListForMeeting_OwnershipScoped(t *testing.T) {
	owner := uuid.New()
	m := entities.NewMeeting(owner, "retro", time.Now().UTC(), []string{"a"}, "notes")
	item := entities.NewActionItem(m.ID, "follow up")
	svc := newTestService(newFakeActionItemRepo(item), newFakeMeetingRepo(m))

	items, err := svc.ListForMeeting(context.Background(), m.ID, owner)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}

	_, err = svc.ListForMeeting(context.Background(), m.ID, uuid.New())
	var appErr apperrors.AppError
	if !errors.As(err, &appErr) || appErr.Code != apperrors.ErrorCode_NOT_FOUND {
		t.Fatalf("expected NOT_FOUND for foreign owner, got %v", err)
	}
}
