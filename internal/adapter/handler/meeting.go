package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "github.com/johnquangdev/ami-meeting-svc/errors"
	meetingdto "github.com/johnquangdev/ami-meeting-svc/internal/adapter/dto/meeting"
	"github.com/johnquangdev/ami-meeting-svc/internal/adapter/presenter"
	"github.com/johnquangdev/ami-meeting-svc/internal/infrastructure/http/middleware"
	"github.com/johnquangdev/ami-meeting-svc/internal/usecase/extraction"
	"github.com/johnquangdev/ami-meeting-svc/internal/usecase/meeting"
)

// Meeting handles meeting-related HTTP requests
type Meeting struct {
	meetingService    meeting.Service
	extractionService extraction.Service
	logger            *zap.Logger
}

// NewMeetingHandler creates a new meeting handler
func NewMeetingHandler(meetingService meeting.Service, extractionService extraction.Service, logger *zap.Logger) *Meeting {
	return &Meeting{
		meetingService:    meetingService,
		extractionService: extractionService,
		logger:            logger,
	}
}

// CreateMeeting handles POST /meetings
// @Summary      Record a meeting
// @Description  Stores a meeting with its raw notes for the authenticated user
// @Tags         Meetings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      meeting.CreateMeetingRequest  true  "Meeting creation request"
// @Success      201      {object}  meeting.MeetingResponse  "Meeting created"
// @Failure      400      {object}  map[string]interface{}   "Invalid request"
// @Failure      422      {object}  map[string]interface{}   "Notes too short"
// @Router       /meetings [post]
func (h *Meeting) CreateMeeting(c echo.Context) error {
	var req meetingdto.CreateMeetingRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidPayload(err))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, apperrors.ErrUnprocessable(err.Error()))
	}

	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return HandleError(h.logger, c, apperrors.ErrUnauthenticated())
	}

	created, err := h.meetingService.CreateMeeting(c.Request().Context(), userID, meeting.CreateInput{
		Title:     req.Title,
		Date:      req.Date,
		Attendees: req.Attendees,
		Notes:     req.Notes,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusCreated, presenter.ToMeetingResponse(created))
}

// ListMeetings handles GET /meetings
// @Summary      List meetings
// @Description  Lists the authenticated user's meetings, newest first
// @Tags         Meetings
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  meeting.MeetingListResponse
// @Router       /meetings [get]
func (h *Meeting) ListMeetings(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return HandleError(h.logger, c, apperrors.ErrUnauthenticated())
	}

	meetings, err := h.meetingService.ListMeetings(c.Request().Context(), userID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToMeetingListResponse(meetings))
}

// GetMeeting handles GET /meetings/:id
// @Summary      Get a meeting
// @Tags         Meetings
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Meeting ID"
// @Success      200  {object}  meeting.MeetingResponse
// @Failure      404  {object}  map[string]interface{}  "Meeting not found"
// @Router       /meetings/{id} [get]
func (h *Meeting) GetMeeting(c echo.Context) error {
	meetingID, userID, err := h.pathMeetingAndUser(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	found, err := h.meetingService.GetMeeting(c.Request().Context(), meetingID, userID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToMeetingResponse(found))
}

// AnalyzeMeeting handles POST /meetings/:id/analyze
// @Summary      Analyze meeting notes
// @Description  Produces a structured summary of the meeting notes and stores it on the meeting
// @Tags         Meetings
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Meeting ID"
// @Success      200  {object}  meeting.MeetingResponse  "Meeting with analysis result"
// @Failure      400  {object}  map[string]interface{}   "Meeting notes are empty"
// @Failure      404  {object}  map[string]interface{}   "Meeting not found"
// @Failure      500  {object}  map[string]interface{}   "Analysis failed"
// @Router       /meetings/{id}/analyze [post]
func (h *Meeting) AnalyzeMeeting(c echo.Context) error {
	meetingID, userID, err := h.pathMeetingAndUser(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	analyzed, err := h.extractionService.AnalyzeMeeting(c.Request().Context(), meetingID, userID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToMeetingResponse(analyzed))
}

// ExtractActions handles POST /meetings/:id/extract-actions
// @Summary      Extract action items
// @Description  Extracts action items from the meeting notes and persists them as a batch
// @Tags         Meetings
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Meeting ID"
// @Success      200  {object}  actionitem.ActionItemListResponse  "Persisted action items"
// @Failure      400  {object}  map[string]interface{}  "Meeting notes are empty"
// @Failure      404  {object}  map[string]interface{}  "Meeting not found"
// @Failure      500  {object}  map[string]interface{}  "Extraction failed"
// @Router       /meetings/{id}/extract-actions [post]
func (h *Meeting) ExtractActions(c echo.Context) error {
	meetingID, userID, err := h.pathMeetingAndUser(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	items, err := h.extractionService.ExtractActions(c.Request().Context(), meetingID, userID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToActionItemListResponse(items))
}

func (h *Meeting) pathMeetingAndUser(c echo.Context) (uuid.UUID, uuid.UUID, error) {
	meetingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, uuid.Nil, apperrors.ErrInvalidArgument("Invalid meeting ID")
	}
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return uuid.Nil, uuid.Nil, apperrors.ErrUnauthenticated()
	}
	return meetingID, userID, nil
}
