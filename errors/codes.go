package errors

// ErrorCode identifies an error category in API responses
type ErrorCode string

const (
	ErrorCode_HTTP_OK           ErrorCode = "OK"
	ErrorCode_INTERNAL          ErrorCode = "INTERNAL"
	ErrorCode_INVALID_ARGUMENT  ErrorCode = "INVALID_ARGUMENT"
	ErrorCode_INVALID_PAYLOAD   ErrorCode = "INVALID_PAYLOAD"
	ErrorCode_NOT_FOUND         ErrorCode = "NOT_FOUND"
	ErrorCode_ALREADY_EXISTS    ErrorCode = "ALREADY_EXISTS"
	ErrorCode_PERMISSION_DENIED ErrorCode = "PERMISSION_DENIED"
	ErrorCode_FORBIDDEN         ErrorCode = "FORBIDDEN"
	ErrorCode_UNAUTHENTICATED   ErrorCode = "UNAUTHENTICATED"

	ErrorCode_AUTH_INVALID_TOKEN         ErrorCode = "AUTH_INVALID_TOKEN"
	ErrorCode_AUTH_TOKEN_EXPIRED         ErrorCode = "AUTH_TOKEN_EXPIRED"
	ErrorCode_AUTH_INVALID_CREDENTIALS   ErrorCode = "AUTH_INVALID_CREDENTIALS"
	ErrorCode_AUTH_USER_NOT_FOUND        ErrorCode = "AUTH_USER_NOT_FOUND"
	ErrorCode_AUTH_USER_ALREADY_EXISTS   ErrorCode = "AUTH_USER_ALREADY_EXISTS"
	ErrorCode_AUTH_INVALID_REFRESH_TOKEN ErrorCode = "AUTH_INVALID_REFRESH_TOKEN"
	ErrorCode_AUTH_OAUTH_FAILED          ErrorCode = "AUTH_OAUTH_FAILED"

	ErrorCode_MEETING_NOT_FOUND           ErrorCode = "MEETING_NOT_FOUND"
	ErrorCode_MEETING_INVALID_STATUS      ErrorCode = "MEETING_INVALID_STATUS"
	ErrorCode_MEETING_INVALID_TRANSITION  ErrorCode = "MEETING_INVALID_TRANSITION"
	ErrorCode_MEETING_MISSING_FIELDS      ErrorCode = "MEETING_MISSING_FIELDS"
	ErrorCode_MEETING_DATE_TIME_REQUIRED  ErrorCode = "MEETING_DATE_TIME_REQUIRED"
	ErrorCode_MEETING_INVALID_FILTER_TYPE ErrorCode = "MEETING_INVALID_FILTER_TYPE"

	ErrorCode_ANALYTICS_FAILED ErrorCode = "ANALYTICS_FAILED"

	ErrorCode_INTEGRATION_STORAGE_FAILED ErrorCode = "INTEGRATION_STORAGE_FAILED"
	ErrorCode_INTEGRATION_CACHE_FAILED   ErrorCode = "INTEGRATION_CACHE_FAILED"

	ErrorCode_DB_CONNECTION_FAILED    ErrorCode = "DB_CONNECTION_FAILED"
	ErrorCode_DB_QUERY_FAILED         ErrorCode = "DB_QUERY_FAILED"
	ErrorCode_DB_CONSTRAINT_VIOLATION ErrorCode = "DB_CONSTRAINT_VIOLATION"
)

// String returns the string form of the code
func (c ErrorCode) String() string {
	return string(c)
}
