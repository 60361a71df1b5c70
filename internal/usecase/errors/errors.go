package errors

import "errors"

// Common errors
var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden access")
	ErrNotFound      = errors.New("resource not found")
	ErrAlreadyExists = errors.New("resource already exists")
	ErrInternalError = errors.New("internal server error")
)

// Auth errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("token invalid")
	ErrSessionNotFound    = errors.New("session not found")
	ErrSessionExpired     = errors.New("session expired")
)

// Meeting errors
var (
	ErrMeetingNotFound         = errors.New("meeting not found")
	ErrMissingRequiredFields   = errors.New("missing required fields")
	ErrDateTimeRequired        = errors.New("date and time are required for scheduled meetings")
	ErrInvalidMeetingStatus    = errors.New("invalid meeting status")
	ErrInvalidStatusTransition = errors.New("meeting status cannot move backwards")
	ErrInvalidListType         = errors.New("invalid list type")
)

// User errors
var (
	ErrUserNotFound     = errors.New("user not found")
	ErrUserNotActive    = errors.New("user is not active")
	ErrEmailAlreadyUsed = errors.New("email already in use")
)
