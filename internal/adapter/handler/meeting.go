package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	meetingDTO "github.com/meettrack-team/meettrack/internal/adapter/dto/meeting"
	"github.com/meettrack-team/meettrack/internal/adapter/presenter"
	"github.com/meettrack-team/meettrack/internal/domain/entities"
	"github.com/meettrack-team/meettrack/internal/domain/repositories"
	meetingUsecase "github.com/meettrack-team/meettrack/internal/usecase/meeting"
)

const listDateLayout = "2006-01-02"

// Meeting handles meeting-related HTTP requests
type Meeting struct {
	meetingService meetingUsecase.Service
	logger         *zap.Logger
}

// NewMeetingHandler creates a new meeting handler
func NewMeetingHandler(meetingService meetingUsecase.Service, logger *zap.Logger) *Meeting {
	return &Meeting{
		meetingService: meetingService,
		logger:         logger,
	}
}

// CreateMeeting handles POST /meetings
// @Summary      Create a new meeting
// @Description  Creates an instant or scheduled client meeting
// @Tags         Meetings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      meeting.CreateMeetingRequest  true  "Meeting creation request"
// @Success      201      {object}  meeting.MeetingResponse  "Meeting created successfully"
// @Failure      400      {object}  map[string]interface{}  "Invalid request or validation failed"
// @Failure      401      {object}  map[string]interface{}  "User not authenticated"
// @Router       /meetings [post]
func (h *Meeting) CreateMeeting(c echo.Context) error {
	var req meetingDTO.CreateMeetingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error":   "invalid_request",
			"message": err.Error(),
		})
	}

	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error":   "validation_failed",
			"message": err.Error(),
		})
	}

	input := meetingUsecase.CreateMeetingInput{
		Title:            req.Title,
		ClientName:       req.ClientName,
		OrganizationName: req.OrganizationName,
		MobileNumber:     req.MobileNumber,
		Description:      req.Description,
		IsInstant:        req.IsInstant,
		MeetingDate:      req.MeetingDate,
		Date:             req.Date,
		Time:             req.Time,
		Location:         req.Location,
		Latitude:         req.Latitude,
		Longitude:        req.Longitude,
		ReminderMinutes:  req.ReminderMinutes,
		SelfieURL:        req.SelfieURL,
	}

	created, err := h.meetingService.CreateMeeting(c.Request().Context(), input)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleCreated(h.logger, c, presenter.ToMeetingResponse(created))
}

// GetMeeting handles GET /meetings/:id
// @Summary      Get meeting details
// @Tags         Meetings
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Meeting ID (UUID)"
// @Success      200  {object}  meeting.MeetingResponse  "Meeting details"
// @Failure      400  {object}  map[string]interface{}  "Invalid meeting ID"
// @Failure      404  {object}  map[string]interface{}  "Meeting not found"
// @Router       /meetings/{id} [get]
func (h *Meeting) GetMeeting(c echo.Context) error {
	meetingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error":   "invalid_meeting_id",
			"message": "meeting ID must be a valid UUID",
		})
	}

	m, err := h.meetingService.GetMeeting(c.Request().Context(), meetingID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, presenter.ToMeetingResponse(m))
}

// ListMeetings handles GET /meetings
// @Summary      List meetings
// @Description  Lists meetings filtered by type, date and client name
// @Tags         Meetings
// @Produce      json
// @Security     BearerAuth
// @Param        type        query     string  false  "Filter type"  Enums(all, today, upcoming, completed, instant)
// @Param        date        query     string  false  "Calendar day (YYYY-MM-DD)"
// @Param        clientName  query     string  false  "Client name substring"
// @Param        status      query     string  false  "Meeting status"  Enums(scheduled, completed, cancelled)
// @Success      200  {object}  meeting.MeetingListResponse  "Meeting list"
// @Failure      400  {object}  map[string]interface{}  "Invalid filters"
// @Router       /meetings [get]
func (h *Meeting) ListMeetings(c echo.Context) error {
	var req meetingDTO.ListMeetingsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error":   "invalid_request",
			"message": err.Error(),
		})
	}

	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error":   "validation_failed",
			"message": err.Error(),
		})
	}

	filters := repositories.MeetingFilters{
		Type:       repositories.MeetingListType(req.Type),
		ClientName: req.ClientName,
		Now:        time.Now().UTC(),
	}

	if req.Status != "" {
		status := entities.MeetingStatus(req.Status)
		filters.Status = &status
	}

	if req.Date != "" {
		day, err := time.ParseInLocation(listDateLayout, req.Date, time.UTC)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]interface{}{
				"error":   "invalid_date",
				"message": "date must be formatted as YYYY-MM-DD",
			})
		}
		filters.Date = &day
	}

	meetings, err := h.meetingService.ListMeetings(c.Request().Context(), filters)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, presenter.ToMeetingListResponse(meetings))
}

// UpdateMeeting handles PUT /meetings/:id
// @Summary      Update a meeting
// @Description  Applies a partial update to a meeting
// @Tags         Meetings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string  true  "Meeting ID (UUID)"
// @Param        request  body      meeting.UpdateMeetingRequest  true  "Fields to update"
// @Success      200  {object}  meeting.MeetingResponse  "Updated meeting"
// @Failure      400  {object}  map[string]interface{}  "Invalid request"
// @Failure      404  {object}  map[string]interface{}  "Meeting not found"
// @Router       /meetings/{id} [put]
func (h *Meeting) UpdateMeeting(c echo.Context) error {
	meetingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error":   "invalid_meeting_id",
			"message": "meeting ID must be a valid UUID",
		})
	}

	var req meetingDTO.UpdateMeetingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error":   "invalid_request",
			"message": err.Error(),
		})
	}

	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error":   "validation_failed",
			"message": err.Error(),
		})
	}

	input := meetingUsecase.UpdateMeetingInput{
		Title:            req.Title,
		ClientName:       req.ClientName,
		OrganizationName: req.OrganizationName,
		MobileNumber:     req.MobileNumber,
		Description:      req.Description,
		MeetingDate:      req.MeetingDate,
		Location:         req.Location,
		Latitude:         req.Latitude,
		Longitude:        req.Longitude,
		ReminderMinutes:  req.ReminderMinutes,
		SelfieURL:        req.SelfieURL,
	}
	if req.Status != nil {
		status := entities.MeetingStatus(*req.Status)
		input.Status = &status
	}

	updated, err := h.meetingService.UpdateMeeting(c.Request().Context(), meetingID, input)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, presenter.ToMeetingResponse(updated))
}

// UpdateStatus handles PATCH /meetings/:id/status
// @Summary      Update meeting status
// @Description  Transitions a meeting to a new status
// @Tags         Meetings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string  true  "Meeting ID (UUID)"
// @Param        request  body      meeting.UpdateStatusRequest  true  "Target status"
// @Success      200  {object}  meeting.MeetingResponse  "Updated meeting"
// @Failure      400  {object}  map[string]interface{}  "Invalid status"
// @Failure      404  {object}  map[string]interface{}  "Meeting not found"
// @Failure      409  {object}  map[string]interface{}  "Transition not allowed"
// @Router       /meetings/{id}/status [patch]
func (h *Meeting) UpdateStatus(c echo.Context) error {
	meetingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error":   "invalid_meeting_id",
			"message": "meeting ID must be a valid UUID",
		})
	}

	var req meetingDTO.UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error":   "invalid_request",
			"message": err.Error(),
		})
	}

	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error":   "validation_failed",
			"message": err.Error(),
		})
	}

	updated, err := h.meetingService.UpdateStatus(c.Request().Context(), meetingID, entities.MeetingStatus(req.Status))
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, presenter.ToMeetingResponse(updated))
}

// DeleteMeeting handles DELETE /meetings/:id
// @Summary      Delete a meeting
// @Tags         Meetings
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Meeting ID (UUID)"
// @Success      200  {object}  map[string]interface{}  "Meeting deleted"
// @Failure      400  {object}  map[string]interface{}  "Invalid meeting ID"
// @Failure      404  {object}  map[string]interface{}  "Meeting not found"
// @Router       /meetings/{id} [delete]
func (h *Meeting) DeleteMeeting(c echo.Context) error {
	meetingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error":   "invalid_meeting_id",
			"message": "meeting ID must be a valid UUID",
		})
	}

	if err := h.meetingService.DeleteMeeting(c.Request().Context(), meetingID); err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, map[string]interface{}{
		"deleted": true,
	})
}
