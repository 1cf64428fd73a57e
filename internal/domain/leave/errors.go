package leave

import "errors"

var (
	ErrLeaveNotFound       = errors.New("Leave request not found")
	ErrDocumentNotFound    = errors.New("Leave document not found")
	ErrBalanceNotFound     = errors.New("Leave balance not found")
	ErrInvalidDateRange    = errors.New("End date must not be before start date")
	ErrInsufficientBalance = errors.New("Insufficient leave balance")
	ErrAlreadyProcessed    = errors.New("Leave request already processed")
	ErrLeaveNotPending     = errors.New("Leave request is no longer pending")
	ErrNotOwner            = errors.New("Caller does not own this resource")
	ErrOutsideScope        = errors.New("Leave request is outside the caller's scope")
	ErrFileTypeNotAllowed  = errors.New("Only PDF files are allowed")
	ErrFileSizeExceeds     = errors.New("File size exceeds 5 MiB")
)
