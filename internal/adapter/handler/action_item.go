package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "github.com/johnquangdev/ami-meeting-svc/errors"
	actionitemdto "github.com/johnquangdev/ami-meeting-svc/internal/adapter/dto/actionitem"
	"github.com/johnquangdev/ami-meeting-svc/internal/adapter/presenter"
	"github.com/johnquangdev/ami-meeting-svc/internal/infrastructure/http/middleware"
	"github.com/johnquangdev/ami-meeting-svc/internal/usecase/actionitem"
)

// ActionItem handles action item HTTP requests
type ActionItem struct {
	actionItemService actionitem.Service
	logger            *zap.Logger
}

// NewActionItemHandler creates a new action item handler
func NewActionItemHandler(actionItemService actionitem.Service, logger *zap.Logger) *ActionItem {
	return &ActionItem{
		actionItemService: actionItemService,
		logger:            logger,
	}
}

// UpdateActionItem handles PATCH /action-items/:id
// @Summary      Partially update an action item
// @Description  Applies only the supplied fields. An explicit null clears assignee or deadline; is_overdue is derived and read-only.
// @Tags         ActionItems
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string  true  "Action item ID"
// @Param        request  body      actionitem.UpdateActionItemRequest  true  "Fields to update"
// @Success      200      {object}  actionitem.ActionItemResponse
// @Failure      404      {object}  map[string]interface{}  "Action item not found"
// @Failure      422      {object}  map[string]interface{}  "Invalid field value"
// @Router       /action-items/{id} [patch]
func (h *ActionItem) UpdateActionItem(c echo.Context) error {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidArgument("Invalid action item ID"))
	}

	var req actionitemdto.UpdateActionItemRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidPayload(err))
	}

	updated, err := h.actionItemService.UpdateActionItem(c.Request().Context(), itemID, actionitem.UpdateInput{
		Description: req.Description,
		Assignee:    actionitem.OptionalString{Set: req.Assignee.Set, Value: req.Assignee.Value},
		Deadline:    actionitem.OptionalTime{Set: req.Deadline.Set, Value: req.Deadline.Value},
		Priority:    req.Priority,
		Status:      req.Status,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToActionItemResponse(updated))
}

// ListByMeeting handles GET /meetings/:id/action-items
// @Summary      List a meeting's action items
// @Tags         ActionItems
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Meeting ID"
// @Success      200  {object}  actionitem.ActionItemListResponse
// @Failure      404  {object}  map[string]interface{}  "Meeting not found"
// @Router       /meetings/{id}/action-items [get]
func (h *ActionItem) ListByMeeting(c echo.Context) error {
	meetingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidArgument("Invalid meeting ID"))
	}
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return HandleError(h.logger, c, apperrors.ErrUnauthenticated())
	}

	items, err := h.actionItemService.ListForMeeting(c.Request().Context(), meetingID, userID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToActionItemListResponse(items))
}
