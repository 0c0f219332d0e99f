package extraction

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
	"github.com/johnquangdev/ami-meeting-svc/internal/domain/repositories"
)

type fakeMeetingRepo struct {
	meetings map[uuid.UUID]*entities.Meeting
	analyses map[uuid.UUID]datatypes.JSON
}

func newFakeMeetingRepo(meetings ...*entities.Meeting) *fakeMeetingRepo {
	r := &fakeMeetingRepo{
		meetings: make(map[uuid.UUID]*entities.Meeting),
		analyses: make(map[uuid.UUID]datatypes.JSON),
	}
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
	var out []*entities.Meeting
	for _, m := range r.meetings {
		if m.OwnerID == ownerID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeMeetingRepo) UpdateAnalysisResult(ctx context.Context, id uuid.UUID, result datatypes.JSON) error {
	if _, ok := r.meetings[id]; !ok {
		return entities.ErrMeetingNotFound
	}
	r.analyses[id] = result
	return nil
}

type fakeActionItemRepo struct {
	items     []*entities.ActionItem
	createErr error
}

func (r *fakeActionItemRepo) CreateBatch(ctx context.Context, items []*entities.ActionItem) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.items = append(r.items, items...)
	return nil
}

func (r *fakeActionItemRepo) FindByID(ctx context.Context, id uuid.UUID) (*entities.ActionItem, error) {
	for _, item := range r.items {
		if item.ID == id {
			return item, nil
		}
	}
	return nil, entities.ErrActionItemNotFound
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
	return nil
}

func (r *fakeActionItemRepo) CountAll(ctx context.Context) (int64, error) {
	return int64(len(r.items)), nil
}

func (r *fakeActionItemRepo) CountByStatus(ctx context.Context, status string) (int64, error) {
	var n int64
	for _, item := range r.items {
		if item.Status == status {
			n++
		}
	}
	return n, nil
}

func (r *fakeActionItemRepo) CountOverdue(ctx context.Context) (int64, error) {
	var n int64
	for _, item := range r.items {
		if item.IsOverdue {
			n++
		}
	}
	return n, nil
}

func (r *fakeActionItemRepo) GroupByAssigneeStatus(ctx context.Context) ([]repositories.AssigneeStatusCount, error) {
	return nil, nil
}

type fakeCompletionClient struct {
	response  string
	err       error
	gotPrompt string
	jsonMode  bool
	calls     int
}

func (c *fakeCompletionClient) Complete(ctx context.Context, prompt string, jsonMode bool) (string, error) {
	c.calls++
	c.gotPrompt = prompt
	c.jsonMode = jsonMode
	if c.err != nil {
		return "", c.err
	}
	return c.response, nil
}

func testMeeting(owner uuid.UUID, notes string) *entities.Meeting {
	return entities.NewMeeting(owner, "Sprint planning", time.Now().UTC(), []string{"alice", "bob"}, notes)
}

func newTestService(meetingRepo *fakeMeetingRepo, itemRepo *fakeActionItemRepo, client *fakeCompletionClient) *ExtractionService {
	return NewExtractionService(meetingRepo, itemRepo, client, zap.NewNop())
}

func TestExtractActions_PersistsWellFormedBatch(t *testing.T) {
	owner := uuid.New()
	meeting := testMeeting(owner, strings.Repeat("x", 60))
	client := &fakeCompletionClient{response: `{"action_items": [
		{"description": "write report", "assignee": "alice", "priority": "high", "deadline": null},
		{"description": "review deck", "assignee": null, "priority": "Low", "deadline": "2031-01-15T09:00:00Z"}
	]}`}
	itemRepo := &fakeActionItemRepo{}
	svc := newTestService(newFakeMeetingRepo(meeting), itemRepo, client)

	items, err := svc.ExtractActions(context.Background(), meeting.ID, owner)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if len(itemRepo.items) != 2 {
		t.Fatalf("expected 2 persisted rows, got %d", len(itemRepo.items))
	}
	for _, item := range itemRepo.items {
		if item.MeetingID != meeting.ID {
			t.Fatal("persisted row not keyed by meeting id")
		}
	}
	if !client.jsonMode {
		t.Fatal("completion must be invoked in JSON mode")
	}
	if !strings.Contains(client.gotPrompt, meeting.Notes) {
		t.Fatal("prompt must contain the meeting notes")
	}
	if !strings.Contains(client.gotPrompt, "Current date:") {
		t.Fatal("prompt must contain the current timestamp")
	}
}

func TestExtractActions_OtherOwnerLooksAbsent(t *testing.T) {
	owner := uuid.New()
	meeting := testMeeting(owner, strings.Repeat("x", 60))
	client := &fakeCompletionClient{}
	svc := newTestService(newFakeMeetingRepo(meeting), &fakeActionItemRepo{}, client)

	_, err := svc.ExtractActions(context.Background(), meeting.ID, uuid.New())
	var appErr apperrors.AppError
	if !errors.As(err, &appErr) || appErr.Code != apperrors.ErrorCode_NOT_FOUND {
		t.Fatalf("expected NOT_FOUND, got %v", err)
	}
	if client.calls != 0 {
		t.Fatal("completion must not be invoked for an unowned meeting")
	}
}

func TestExtractActions_MissingMeeting(t *testing.T) {
	svc := newTestService(newFakeMeetingRepo(), &fakeActionItemRepo{}, &fakeCompletionClient{})

	_, err := svc.ExtractActions(context.Background(), uuid.New(), uuid.New())
	var appErr apperrors.AppError
	if !errors.As(err, &appErr) || appErr.Code != apperrors.ErrorCode_NOT_FOUND {
		t.Fatalf("expected NOT_FOUND, got %v", err)
	}
}

func TestExtractActions_BlankNotesRejected(t *testing.T) {
	owner := uuid.New()
	meeting := testMeeting(owner, "   \n\t ")
	client := &fakeCompletionClient{}
	svc := newTestService(newFakeMeetingRepo(meeting), &fakeActionItemRepo{}, client)

	_, err := svc.ExtractActions(context.Background(), meeting.ID, owner)
	var appErr apperrors.AppError
	if !errors.As(err, &appErr) || appErr.Code != apperrors.ErrorCode_INVALID_ARGUMENT {
		t.Fatalf("expected INVALID_ARGUMENT, got %v", err)
	}
	if client.calls != 0 {
		t.Fatal("completion must not be invoked for empty notes")
	}
}

func TestExtractActions_BadItemPersistsNothing(t *testing.T) {
	owner := uuid.New()
	meeting := testMeeting(owner, strings.Repeat("x", 60))
	client := &fakeCompletionClient{response: `{"action_items": [
		{"description": "fine", "priority": "High", "deadline": null},
		{"description": "broken", "priority": "High", "deadline": "someday soon"}
	]}`}
	itemRepo := &fakeActionItemRepo{}
	svc := newTestService(newFakeMeetingRepo(meeting), itemRepo, client)

	_, err := svc.ExtractActions(context.Background(), meeting.ID, owner)
	var appErr apperrors.AppError
	if !errors.As(err, &appErr) || appErr.Code != apperrors.ErrorCode_UPSTREAM_INVALID_FORMAT {
		t.Fatalf("expected UPSTREAM_INVALID_FORMAT, got %v", err)
	}
	if len(itemRepo.items) != 0 {
		t.Fatalf("expected zero persisted rows, got %d", len(itemRepo.items))
	}
}

func TestExtractActions_UpstreamFailure(t *testing.T) {
	owner := uuid.New()
	meeting := testMeeting(owner, strings.Repeat("x", 60))
	client := &fakeCompletionClient{err: errors.New("rate limited")}
	svc := newTestService(newFakeMeetingRepo(meeting), &fakeActionItemRepo{}, client)

	_, err := svc.ExtractActions(context.Background(), meeting.ID, owner)
	var appErr apperrors.AppError
	if !errors.As(err, &appErr) || appErr.Code != apperrors.ErrorCode_UPSTREAM_FAILED {
		t.Fatalf("expected UPSTREAM_FAILED, got %v", err)
	}
}

func TestExtractActions_StorageFailure(t *testing.T) {
	owner := uuid.New()
	meeting := testMeeting(owner, strings.Repeat("x", 60))
	client := &fakeCompletionClient{response: `{"action_items": [{"description": "d", "priority": "High", "deadline": null}]}`}
	itemRepo := &fakeActionItemRepo{createErr: errors.New("connection reset")}
	svc := newTestService(newFakeMeetingRepo(meeting), itemRepo, client)

	_, err := svc.ExtractActions(context.Background(), meeting.ID, owner)
	var appErr apperrors.AppError
	if !errors.As(err, &appErr) || appErr.Code != apperrors.ErrorCode_STORAGE_FAILED {
		t.Fatalf("expected STORAGE_FAILED, got %v", err)
	}
}

func TestExtractActions_PromptIncludesExistingAnalysis(t *testing.T) {
	owner := uuid.New()
	meeting := testMeeting(owner, strings.Repeat("x", 60))
	meeting.AnalysisResult = datatypes.JSON(`{"summary": "quarterly sync"}`)
	client := &fakeCompletionClient{response: `{"action_items": []}`}
	svc := newTestService(newFakeMeetingRepo(meeting), &fakeActionItemRepo{}, client)

	if _, err := svc.ExtractActions(context.Background(), meeting.ID, owner); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(client.gotPrompt, `"quarterly sync"`) {
		t.Fatal("prompt must append the existing analysis result")
	}
}

func TestAnalyzeMeeting_StoresOpaqueObject(t *testing.T) {
	owner := uuid.New()
	meeting := testMeeting(owner, strings.Repeat("x", 60))
	meetingRepo := newFakeMeetingRepo(meeting)
	client := &fakeCompletionClient{response: `{"summary": "ok", "anything": [1, 2]}`}
	svc := newTestService(meetingRepo, &fakeActionItemRepo{}, client)

	got, err := svc.AnalyzeMeeting(context.Background(), meeting.ID, owner)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(got.AnalysisResult) != client.response {
		t.Fatalf("analysis result not stored verbatim: %s", got.AnalysisResult)
	}
	if string(meetingRepo.analyses[meeting.ID]) != client.response {
		t.Fatal("analysis result not written through the repository")
	}
}

func TestAnalyzeMeeting_NonObjectRejected(t *testing.T) {
	owner := uuid.New()
	meeting := testMeeting(owner, strings.Repeat("x", 60))
	client := &fakeCompletionClient{response: `[1, 2, 3]`}
	svc := newTestService(newFakeMeetingRepo(meeting), &fakeActionItemRepo{}, client)

	_, err := svc.AnalyzeMeeting(context.Background(), meeting.ID, owner)
	var appErr apperrors.AppError
	if !errors.As(err, &appErr) || appErr.Code != apperrors.ErrorCode_UPSTREAM_INVALID_FORMAT {
		t.Fatalf("expected UPSTREAM_INVALID_FORMAT, got %v", err)
	}
}
