// Package error defines domain-specific errors for the reporting application.
package error

import "errors"

// Report domain errors.
var (
	// ErrReportNotFound is returned when no report document exists for a month.
	// Callers treat this as "use defaults", not as a failure.
	ErrReportNotFound = errors.New("report not found")

	// ErrItemNotFound is returned when a rename or delete targets an item
	// that is not present in the category map.
	ErrItemNotFound = errors.New("item not found in category")

	// ErrInvalidCategory is returned when a category identifier does not map
	// to a physical storage field.
	ErrInvalidCategory = errors.New("invalid category")

	// ErrInvalidMonthKey is returned when the month key is not "YYYY-MM".
	ErrInvalidMonthKey = errors.New("invalid month key")

	// ErrEmptyItemName is returned when an item operation is given a blank name.
	ErrEmptyItemName = errors.New("item name must not be empty")

	// ErrRemoteStoreUnavailable is returned when a write could not reach the
	// remote store. Reads fall back to the local store instead.
	ErrRemoteStoreUnavailable = errors.New("remote store unavailable")
)

// ReportErrorCode defines error codes for report errors.
// Format: RPT-XXYYYY where XX is category and YYYY is specific error.
type ReportErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidMonthKey ReportErrorCode = "RPT-010001"
	ErrCodeInvalidCategory ReportErrorCode = "RPT-010002"
	ErrCodeEmptyItemName   ReportErrorCode = "RPT-010003"

	// Item operation errors (02XXXX)
	ErrCodeItemNotFound ReportErrorCode = "RPT-020001"

	// Storage errors (03XXXX)
	ErrCodeReportNotFound   ReportErrorCode = "RPT-030001"
	ErrCodeRemoteStoreWrite ReportErrorCode = "RPT-030002"
)

// ReportError represents a report error with code and message.
type ReportError struct {
	Code    ReportErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ReportError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ReportError) Unwrap() error {
	return e.Err
}

// NewReportError creates a new ReportError with the given code and message.
func NewReportError(code ReportErrorCode, message string, err error) *ReportError {
	return &ReportError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
