package leave

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDayCount(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2026, time.June, d, 0, 0, 0, 0, time.UTC)
	}

	assert.Equal(t, 1, DayCount(day(10), day(10)))
	assert.Equal(t, 2, DayCount(day(10), day(11)))
	assert.Equal(t, 5, DayCount(day(1), day(5)))
	assert.Equal(t, 30, DayCount(day(1), day(30)))
}

func TestDayCount_AcrossMonthBoundary(t *testing.T) {
	start := time.Date(2026, time.June, 29, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, time.July, 2, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 4, DayCount(start, end))
}

func TestLeaveStatusIsTerminal(t *testing.T) {
	assert.False(t, LeaveStatusPending.IsTerminal())
	assert.True(t, LeaveStatusApproved.IsTerminal())
	assert.True(t, LeaveStatusRejected.IsTerminal())
}

func TestDefaultAllotment(t *testing.T) {
	assert.Equal(t, 20, DefaultAllotment(LeaveTypeAnnual))
	assert.Equal(t, 10, DefaultAllotment(LeaveTypeSick))
	assert.Equal(t, 5, DefaultAllotment(LeaveTypeCasual))
	assert.Equal(t, 5, DefaultAllotment("Sabbatical"))
}

func TestApplyLeaveRequestValidate(t *testing.T) {
	req := ApplyLeaveRequest{
		LeaveType: LeaveTypeAnnual,
		StartDate: "2026-06-01",
		EndDate:   "2026-06-05",
	}
	assert.NoError(t, req.Validate())

	req = ApplyLeaveRequest{StartDate: "June 1st", EndDate: ""}
	err := req.Validate()
	assert.Error(t, err)
}
