package constants

// Flight API error codes

// Credential-related errors
const (
	ErrCodeInvalidAPIKey        = "INVALID_API_KEY"
	ErrCodeMissingCredentials   = "MISSING_CREDENTIALS"
	ErrCodeRateLimited          = "RATE_LIMITED"
	ErrCodeNetworkError         = "NETWORK_ERROR"
	ErrCodeAuthenticationFailed = "AUTHENTICATION_FAILED"
)

// Request / response errors
const (
	ErrCodeResourceNotFound  = "RESOURCE_NOT_FOUND"
	ErrCodeInvalidDataFormat = "INVALID_DATA_FORMAT"
	ErrCodeDecodeFailed      = "DECODE_FAILED"
)

// Record errors, used as metric labels when a flight is skipped
const (
	ErrCodeInvalidTimeFormat = "INVALID_TIME_FORMAT"
	ErrCodeInvalidDateFormat = "INVALID_DATE_FORMAT"
	ErrCodeUnknownStatusCode = "UNKNOWN_STATUS_CODE"
	ErrCodeUnknownDirection  = "UNKNOWN_DIRECTION"
	ErrCodeMissingStatus     = "MISSING_STATUS"
)

// Error Messages
// Human-readable messages corresponding to error codes

var DataProviderErrorMessages = map[string]string{
	ErrCodeInvalidAPIKey:        "The Schiphol app_id / app_key pair was rejected",
	ErrCodeMissingCredentials:   "SCHIPHOL_APP_ID and SCHIPHOL_APP_KEY must be set",
	ErrCodeRateLimited:          "Rate limit exceeded. Please try again later",
	ErrCodeNetworkError:         "Unable to reach the flight API",
	ErrCodeAuthenticationFailed: "Authentication with the flight API failed",

	ErrCodeResourceNotFound:  "The requested resource does not exist",
	ErrCodeInvalidDataFormat: "The request was rejected as malformed",
	ErrCodeDecodeFailed:      "The flight API returned a body that could not be decoded",

	ErrCodeInvalidTimeFormat: "Scheduled time is not HH:MM[:SS]",
	ErrCodeInvalidDateFormat: "Scheduled date is not YYYY-MM-DD",
	ErrCodeUnknownStatusCode: "Status code is not known for the flight direction",
	ErrCodeUnknownDirection:  "Flight direction is neither D nor A",
	ErrCodeMissingStatus:     "Flight carries no status codes",
}

// GetErrorMessage returns the human-readable message for an error code
func GetErrorMessage(code string) string {
	if msg, exists := DataProviderErrorMessages[code]; exists {
		return msg
	}
	return "An unknown error occurred"
}
