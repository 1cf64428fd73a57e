package leave

import (
	"context"
	"time"
)

// LeaveRepository - interface for the leaves table
type LeaveRepository interface {
	Create(ctx context.Context, l Leave) (Leave, error)
	GetByID(ctx context.Context, id string) (Leave, error)
	// GetByIDForUpdate locks the row for the duration of the surrounding
	// transaction so concurrent approve/reject calls serialize on it.
	GetByIDForUpdate(ctx context.Context, id string) (Leave, error)
	UpdateStatus(ctx context.Context, id string, status LeaveStatus, approvedBy string) error
	List(ctx context.Context, filter LeaveFilter) ([]Leave, error)
	CountByStatus(ctx context.Context, filter LeaveFilter, status LeaveStatus, updatedSince *time.Time) (int64, error)
}

// LeaveBalanceRepository - interface for the leave_balances table
type LeaveBalanceRepository interface {
	// GetOrCreate resolves the (user, type, year) row, inserting it with the
	// given total when absent. Callers run it inside a transaction; the
	// returned row is locked for update.
	GetOrCreate(ctx context.Context, userID, leaveType string, year, totalDays int) (LeaveBalance, error)
	Get(ctx context.Context, userID, leaveType string, year int) (LeaveBalance, error)
	// GetForUpdate locks the row; returns ErrBalanceNotFound when absent.
	GetForUpdate(ctx context.Context, userID, leaveType string, year int) (LeaveBalance, error)
	// AddUsage applies used_days += days and recomputes remaining_days.
	AddUsage(ctx context.Context, id string, days int) error
	ListByUserYear(ctx context.Context, userID string, year int) ([]LeaveBalance, error)
	ListByYear(ctx context.Context, year int) ([]LeaveBalance, error)
}

// LeaveDocumentRepository - interface for the leave_documents table
type LeaveDocumentRepository interface {
	Create(ctx context.Context, doc LeaveDocument) (LeaveDocument, error)
	GetByID(ctx context.Context, id string) (LeaveDocument, error)
	ListByLeaveID(ctx context.Context, leaveID string) ([]LeaveDocument, error)
	Delete(ctx context.Context, id string) error
}
