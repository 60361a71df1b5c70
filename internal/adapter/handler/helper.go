package handler

import (
	stdErrors "errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/meettrack-team/meettrack/errors"
	"github.com/meettrack-team/meettrack/internal/domain/entities"
	usecaseErrors "github.com/meettrack-team/meettrack/internal/usecase/errors"
)

// Response shapes
type success struct {
	Code    interface{} `json:"code,omitempty"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

type errs struct {
	Code    interface{} `json:"code,omitempty"`
	Message string      `json:"message,omitempty"`
	Info    string      `json:"info,omitempty"`
}

// getRequestID tries to read X-Request-ID from the request
func getRequestID(c echo.Context) string {
	if c == nil || c.Request() == nil {
		return ""
	}
	return c.Request().Header.Get("X-Request-ID")
}

// HandleSuccess writes a standardized success response
func HandleSuccess(logger *zap.Logger, c echo.Context, data interface{}) error {
	resp := success{
		Code:    errors.ErrorCode_HTTP_OK.String(),
		Message: "success",
		Data:    data,
	}

	if logger != nil {
		logger.Info("http.response.success",
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
		)
	}

	return c.JSON(http.StatusOK, resp)
}

// HandleCreated writes a standardized creation response
func HandleCreated(logger *zap.Logger, c echo.Context, data interface{}) error {
	resp := success{
		Code:    errors.ErrorCode_HTTP_OK.String(),
		Message: "created",
		Data:    data,
	}

	if logger != nil {
		logger.Info("http.response.success",
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
		)
	}

	return c.JSON(http.StatusCreated, resp)
}

// HandleError centralizes error handling and logging
func HandleError(logger *zap.Logger, c echo.Context, err error) error {
	reqID := getRequestID(c)

	err = mapUsecaseError(err)

	var appErr errors.AppError
	if stdErrors.As(err, &appErr) {
		if logger != nil {
			logger.Error("http.response.error",
				zap.String("request_id", reqID),
				zap.String("path", c.Path()),
				zap.String("app_code", appErr.Code.String()),
				zap.Error(err),
			)
		}

		info := ""
		if appErr.Raw != nil {
			info = appErr.Raw.Error()
		}

		body := errs{
			Code:    appErr.Code.String(),
			Message: appErr.Message,
			Info:    info,
		}

		return c.JSON(appErr.HTTPCode, body)
	}

	// Non-AppError => internal server error
	if logger != nil {
		logger.Error("http.response.error",
			zap.String("request_id", reqID),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
	}

	body := errs{
		Code:    errors.ErrorCode_INTERNAL.String(),
		Message: "Internal server error",
		Info:    err.Error(),
	}

	return c.JSON(http.StatusInternalServerError, body)
}

// mapUsecaseError translates use case sentinels into AppError so handlers
// never hand-map status codes
func mapUsecaseError(err error) error {
	switch {
	case stdErrors.Is(err, usecaseErrors.ErrMeetingNotFound):
		return errors.ErrNotFound("Meeting")
	case stdErrors.Is(err, usecaseErrors.ErrMissingRequiredFields):
		return errors.ErrMeetingMissingFields()
	case stdErrors.Is(err, usecaseErrors.ErrDateTimeRequired):
		return errors.ErrMeetingDateTimeRequired()
	case stdErrors.Is(err, usecaseErrors.ErrInvalidMeetingStatus):
		return errors.ErrMeetingInvalidStatus("")
	case stdErrors.Is(err, usecaseErrors.ErrInvalidStatusTransition):
		return errors.AppError{
			HTTPCode: http.StatusConflict,
			Code:     errors.ErrorCode_MEETING_INVALID_TRANSITION,
			Message:  "Meeting status transition not allowed",
		}
	case stdErrors.Is(err, usecaseErrors.ErrInvalidListType):
		return errors.ErrMeetingInvalidFilterType("")
	case stdErrors.Is(err, entities.ErrInvalidTitle),
		stdErrors.Is(err, entities.ErrInvalidClientName),
		stdErrors.Is(err, entities.ErrInvalidOrganizationName),
		stdErrors.Is(err, entities.ErrInvalidMobileNumber),
		stdErrors.Is(err, entities.ErrInvalidMeetingDate),
		stdErrors.Is(err, entities.ErrInvalidStatus):
		return errors.ErrInvalidArgument(err.Error())
	default:
		return err
	}
}
