package leave

import (
	"io"
	"time"

	"github.com/workzen/workzen-backend-go/internal/pkg/validator"
)

// DocumentUpload carries one file supplied with apply or attach. Size is the
// declared size from the multipart header; the file service enforces it.
type DocumentUpload struct {
	File         io.Reader
	Filename     string
	Size         int64
	DocumentType string
}

type ApplyLeaveRequest struct {
	LeaveType string `json:"leave_type"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Reason    string `json:"reason"`

	Documents []DocumentUpload `json:"-"`
}

func (r *ApplyLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.LeaveType) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "leave_type is required",
		})
	}

	if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be a valid date (YYYY-MM-DD)",
		})
	}

	if _, ok := validator.IsValidDate(r.EndDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be a valid date (YYYY-MM-DD)",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// LeaveFilter restricts List results. Scope fields are set by the engine from
// the caller's role, never by handlers.
type LeaveFilter struct {
	OwnerID     *string // only leaves owned by this user
	CounselorID *string // only leaves whose owner is assigned to this counselor

	Status    *string
	LeaveType *string
	StartDate *time.Time
	EndDate   *time.Time
}

type LeaveResponse struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	OwnerEmail string    `json:"owner_email,omitempty"`
	LeaveType  string    `json:"leave_type"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
	NumberDays int       `json:"number_of_days"`
	Reason     string    `json:"reason"`
	Status     string    `json:"status"`
	ApprovedBy *string   `json:"approved_by,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type BalanceResponse struct {
	ID            string `json:"id"`
	UserID        string `json:"user_id"`
	LeaveType     string `json:"leave_type"`
	Year          int    `json:"year"`
	TotalDays     int    `json:"total_days"`
	UsedDays      int    `json:"used_days"`
	RemainingDays int    `json:"remaining_days"`
}

type DocumentResponse struct {
	ID               string    `json:"id"`
	LeaveID          string    `json:"leave_id"`
	FileURL          string    `json:"file_url"`
	FileSize         int64     `json:"file_size"`
	OriginalFilename string    `json:"original_filename"`
	DocumentType     string    `json:"document_type"`
	CreatedAt        time.Time `json:"created_at"`
}

// LeaveStats are the dashboard counters, scoped like List.
type LeaveStats struct {
	PendingCount  int64 `json:"pending_count"`
	ApprovedToday int64 `json:"approved_today"`
	RejectedToday int64 `json:"rejected_today"`
}

func ToLeaveResponse(l Leave) LeaveResponse {
	resp := LeaveResponse{
		ID:         l.ID,
		UserID:     l.UserID,
		LeaveType:  l.LeaveType,
		StartDate:  l.StartDate,
		EndDate:    l.EndDate,
		NumberDays: l.NumberDays,
		Reason:     l.Reason,
		Status:     string(l.Status),
		ApprovedBy: l.ApprovedBy,
		CreatedAt:  l.CreatedAt,
		UpdatedAt:  l.UpdatedAt,
	}
	if l.OwnerEmail != nil {
		resp.OwnerEmail = *l.OwnerEmail
	}
	return resp
}

func ToBalanceResponse(b LeaveBalance) BalanceResponse {
	return BalanceResponse{
		ID:            b.ID,
		UserID:        b.UserID,
		LeaveType:     b.LeaveType,
		Year:          b.Year,
		TotalDays:     b.TotalDays,
		UsedDays:      b.UsedDays,
		RemainingDays: b.RemainingDays,
	}
}
