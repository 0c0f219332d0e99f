package errors

// ErrorCode identifies a failure class in API responses and logs
type ErrorCode int

const (
	ErrorCode_HTTP_OK ErrorCode = 0

	// General
	ErrorCode_INTERNAL         ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT ErrorCode = 1001
	ErrorCode_NOT_FOUND        ErrorCode = 1002
	ErrorCode_UNPROCESSABLE    ErrorCode = 1003
	ErrorCode_INVALID_PAYLOAD  ErrorCode = 1004

	// Authentication
	ErrorCode_UNAUTHENTICATED          ErrorCode = 2000
	ErrorCode_AUTH_INVALID_TOKEN       ErrorCode = 2001
	ErrorCode_AUTH_INVALID_CREDENTIALS ErrorCode = 2002

	// AI completion pipeline
	ErrorCode_UPSTREAM_FAILED         ErrorCode = 3000
	ErrorCode_UPSTREAM_INVALID_FORMAT ErrorCode = 3001

	// Persistence
	ErrorCode_STORAGE_FAILED ErrorCode = 4000
)

// String returns a stable name for the error code
func (c ErrorCode) String() string {
	switch c {
	case ErrorCode_HTTP_OK:
		return "OK"
	case ErrorCode_INTERNAL:
		return "INTERNAL"
	case ErrorCode_INVALID_ARGUMENT:
		return "INVALID_ARGUMENT"
	case ErrorCode_NOT_FOUND:
		return "NOT_FOUND"
	case ErrorCode_UNPROCESSABLE:
		return "UNPROCESSABLE"
	case ErrorCode_INVALID_PAYLOAD:
		return "INVALID_PAYLOAD"
	case ErrorCode_UNAUTHENTICATED:
		return "UNAUTHENTICATED"
	case ErrorCode_AUTH_INVALID_TOKEN:
		return "AUTH_INVALID_TOKEN"
	case ErrorCode_AUTH_INVALID_CREDENTIALS:
		return "AUTH_INVALID_CREDENTIALS"
	case ErrorCode_UPSTREAM_FAILED:
		return "UPSTREAM_FAILED"
	case ErrorCode_UPSTREAM_INVALID_FORMAT:
		return "UPSTREAM_INVALID_FORMAT"
	case ErrorCode_STORAGE_FAILED:
		return "STORAGE_FAILED"
	}
	return "UNKNOWN"
}
