package leave

import "time"

type LeaveStatus string

const (
	LeaveStatusPending  LeaveStatus = "Pending"
	LeaveStatusApproved LeaveStatus = "Approved"
	LeaveStatusRejected LeaveStatus = "Rejected"
)

// IsTerminal reports whether the status permits no further transitions.
func (s LeaveStatus) IsTerminal() bool {
	return s == LeaveStatusApproved || s == LeaveStatusRejected
}

const (
	LeaveTypeAnnual = "Annual"
	LeaveTypeSick   = "Sick"
	LeaveTypeCasual = "Casual"
)

// DefaultAllotment returns the yearly allotment a balance row is seeded with
// the first time a user applies for the given type. Unrecognized types get a
// small default rather than being rejected.
func DefaultAllotment(leaveType string) int {
	switch leaveType {
	case LeaveTypeAnnual:
		return 20
	case LeaveTypeSick:
		return 10
	case LeaveTypeCasual:
		return 5
	default:
		return 5
	}
}

// UnlimitedAllotment is the seed total in unlimited balance policy. The row
// is informational only; the sufficiency check is skipped.
const UnlimitedAllotment = 9999

type BalancePolicy string

const (
	PolicyBounded   BalancePolicy = "bounded"
	PolicyUnlimited BalancePolicy = "unlimited"
)

// Leave entity. The owner and date range are immutable after creation;
// approve/reject only touch status, approver and the updated timestamp.
type Leave struct {
	ID         string
	UserID     string
	LeaveType  string
	StartDate  time.Time
	EndDate    time.Time
	NumberDays int
	Reason     string

	Status     LeaveStatus
	ApprovedBy *string

	CreatedAt time.Time
	UpdatedAt time.Time

	// Join fields for responses
	OwnerEmail  *string
	CounselorID *string
}

// DayCount computes the inclusive day span of a date range.
// Leave.NumberDays is always derived from this, never supplied by callers.
func DayCount(start, end time.Time) int {
	return int(end.Sub(start).Hours()/24) + 1
}

// LeaveBalance is the per (user, leave type, year) allotment ledger.
// Invariant: RemainingDays == TotalDays - UsedDays after every mutation.
type LeaveBalance struct {
	ID            string
	UserID        string
	LeaveType     string
	Year          int
	TotalDays     int
	UsedDays      int
	RemainingDays int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// LeaveDocument is a file attached to a leave request. Documents may only be
// added or removed while the parent leave is Pending.
type LeaveDocument struct {
	ID               string
	LeaveID          string
	UserID           string
	FilePath         string
	FileSize         int64
	OriginalFilename string
	DocumentType     string
	CreatedAt        time.Time
}
