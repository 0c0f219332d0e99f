package extraction

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	apperrors "github.com/johnquangdev/ami-meeting-svc/errors"
	"github.com/johnquangdev/ami-meeting-svc/internal/domain/entities"
	"github.com/johnquangdev/ami-meeting-svc/internal/domain/repositories"
)

// CompletionClient is the narrow seam to the external AI completion
// endpoint, so tests can substitute a deterministic stand-in.
type CompletionClient interface {
	Complete(ctx context.Context, prompt string, jsonMode bool) (string, error)
}

// Service defines the meeting analysis and action extraction use cases
type Service interface {
	// ExtractActions derives action items from the meeting notes and
	// persists them in one atomic write
	ExtractActions(ctx context.Context, meetingID, actingUserID uuid.UUID) ([]*entities.ActionItem, error)

	// AnalyzeMeeting summarizes the meeting notes and stores the result
	// on the meeting
	AnalyzeMeeting(ctx context.Context, meetingID, actingUserID uuid.UUID) (*entities.Meeting, error)
}

// ExtractionService implements Service
type ExtractionService struct {
	meetingRepo    repositories.MeetingRepository
	actionItemRepo repositories.ActionItemRepository
	completions    CompletionClient
	parser         *Parser
	logger         *zap.Logger
}

// Ensure ExtractionService implements Service interface
var _ Service = (*ExtractionService)(nil)

// NewExtractionService creates a new extraction service
func NewExtractionService(
	meetingRepo repositories.MeetingRepository,
	actionItemRepo repositories.ActionItemRepository,
	completions CompletionClient,
	logger *zap.Logger,
) *ExtractionService {
	return &ExtractionService{
		meetingRepo:    meetingRepo,
		actionItemRepo: actionItemRepo,
		completions:    completions,
		parser:         NewParser(),
		logger:         logger,
	}
}

// ExtractActions runs the full extraction pipeline for an owned meeting.
// The batch is all-or-nothing: one bad item aborts the call and no rows
// are written.
func (s *ExtractionService) ExtractActions(ctx context.Context, meetingID, actingUserID uuid.UUID) ([]*entities.ActionItem, error) {
	meeting, err := s.findOwnedMeetingWithNotes(ctx, meetingID, actingUserID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	prompt := buildExtractionPrompt(meeting, now)

	raw, err := s.completions.Complete(ctx, prompt, true)
	if err != nil {
		s.logger.Error("completion call failed",
			zap.String("meeting_id", meeting.ID.String()),
			zap.Error(err),
		)
		return nil, apperrors.ErrUpstream(err)
	}

	items, err := s.parser.ParseExtractionResponse(raw, meeting.ID, now)
	if err != nil {
		s.logger.Error("extraction response rejected",
			zap.String("meeting_id", meeting.ID.String()),
			zap.Error(err),
		)
		return nil, apperrors.ErrInvalidUpstreamFormat(err)
	}

	if err := s.actionItemRepo.CreateBatch(ctx, items); err != nil {
		s.logger.Error("failed to persist extracted action items",
			zap.String("meeting_id", meeting.ID.String()),
			zap.Int("item_count", len(items)),
			zap.Error(err),
		)
		return nil, apperrors.ErrStorage(err)
	}

	s.logger.Info("action items extracted",
		zap.String("meeting_id", meeting.ID.String()),
		zap.Int("item_count", len(items)),
	)
	return items, nil
}

// AnalyzeMeeting asks the completion endpoint for a structured summary and
// overwrites the meeting's analysis result in one write. The returned
// object is type-checked only; downstream consumers treat it as opaque.
func (s *ExtractionService) AnalyzeMeeting(ctx context.Context, meetingID, actingUserID uuid.UUID) (*entities.Meeting, error) {
	meeting, err := s.findOwnedMeetingWithNotes(ctx, meetingID, actingUserID)
	if err != nil {
		return nil, err
	}

	prompt := buildAnalysisPrompt(meeting)

	raw, err := s.completions.Complete(ctx, prompt, true)
	if err != nil {
		s.logger.Error("completion call failed",
			zap.String("meeting_id", meeting.ID.String()),
			zap.Error(err),
		)
		return nil, apperrors.ErrUpstream(err)
	}

	var payload map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &payload); err != nil || payload == nil {
		return nil, apperrors.ErrInvalidUpstreamFormat(fmt.Errorf("analysis response is not a JSON object"))
	}

	result := datatypes.JSON(raw)
	if err := s.meetingRepo.UpdateAnalysisResult(ctx, meeting.ID, result); err != nil {
		return nil, apperrors.ErrStorage(err)
	}
	meeting.AnalysisResult = result

	s.logger.Info("meeting analyzed", zap.String("meeting_id", meeting.ID.String()))
	return meeting, nil
}

// findOwnedMeetingWithNotes applies the shared ownership and notes checks.
// Absence and ownership mismatch both surface as NotFound.
func (s *ExtractionService) findOwnedMeetingWithNotes(ctx context.Context, meetingID, actingUserID uuid.UUID) (*entities.Meeting, error) {
	meeting, err := s.meetingRepo.FindByIDAndOwner(ctx, meetingID, actingUserID)
	if err != nil {
		if err == entities.ErrMeetingNotFound {
			return nil, apperrors.ErrNotFound("Meeting")
		}
		return nil, apperrors.ErrStorage(err)
	}
	if !meeting.HasNotes() {
		return nil, apperrors.ErrInvalidArgument("Meeting notes are empty")
	}
	return meeting, nil
}

// buildExtractionPrompt constructs the deterministic extraction prompt:
// instruction, current UTC timestamp, notes, and the existing analysis
// result (if any) appended as JSON context.
func buildExtractionPrompt(meeting *entities.Meeting, now time.Time) string {
	var b strings.Builder
	b.WriteString("Extract action items from the meeting notes. Return a single JSON object with a key \"action_items\" ")
	b.WriteString("whose value is a list of action item objects. Each action item must have: description (string), ")
	b.WriteString("assignee (string|null), priority (High/Medium/Low), deadline (ISO8601 string or null). ")
	b.WriteString("If deadline is not inferable, deadline can be null and the service will default to 7 days from now. ")
	b.WriteString("Return only the JSON object, no explanatory text, no markdown.\n\n")
	fmt.Fprintf(&b, "Current date: %s\n", now.Format(time.RFC3339))
	fmt.Fprintf(&b, "Meeting notes:\n%s\n", meeting.Notes)
	if len(meeting.AnalysisResult) > 0 {
		fmt.Fprintf(&b, "Existing analysis result:\n%s\n", string(meeting.AnalysisResult))
	}
	return b.String()
}

// buildAnalysisPrompt constructs the summarization prompt
func buildAnalysisPrompt(meeting *entities.Meeting) string {
	var b strings.Builder
	b.WriteString("Analyze the following meeting notes and return a single JSON object with keys: ")
	b.WriteString("summary (short text), key_discussion_points (array of key bullet points), ")
	b.WriteString("decisions (array of decisions). Return only the JSON object, no explanatory text, no markdown.\n\n")
	fmt.Fprintf(&b, "Meeting notes:\n%s", meeting.Notes)
	return b.String()
}
