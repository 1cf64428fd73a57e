package leave

import (
	"context"

	"github.com/workzen/workzen-backend-go/internal/domain/user"
)

// LeaveService is the leave lifecycle and balance-accounting engine.
// Every call takes the acting user explicitly; there is no ambient session.
type LeaveService interface {
	// Apply creates a Pending leave, resolving or seeding the caller's
	// balance for the current year, and stores any supplied documents.
	// The whole operation commits or rolls back as one transaction.
	Apply(ctx context.Context, actor user.Actor, req ApplyLeaveRequest) (LeaveResponse, error)

	// Approve transitions a Pending leave to Approved and debits the
	// matching balance exactly once. Counselors may only approve leaves of
	// their assigned users; HODs may approve any.
	Approve(ctx context.Context, actor user.Actor, leaveID string) error

	// Reject transitions a Pending leave to Rejected. Balances are untouched.
	Reject(ctx context.Context, actor user.Actor, leaveID string) error

	Get(ctx context.Context, actor user.Actor, leaveID string) (LeaveResponse, error)

	// List returns leaves visible to the actor, narrowed by filter. The
	// scoping rule is role-derived and cannot be widened by the filter.
	List(ctx context.Context, actor user.Actor, filter LeaveFilter) ([]LeaveResponse, error)

	// ListMine returns the actor's own leaves regardless of role.
	ListMine(ctx context.Context, actor user.Actor) ([]LeaveResponse, error)

	// Stats returns the pending/approved-today/rejected-today counters under
	// the actor's scope.
	Stats(ctx context.Context, actor user.Actor) (LeaveStats, error)

	// Balances returns balance rows for the given user and year. Callers
	// without approval rights can only read their own.
	Balances(ctx context.Context, actor user.Actor, userID string, year int) ([]BalanceResponse, error)

	AttachDocument(ctx context.Context, actor user.Actor, leaveID string, upload DocumentUpload) (DocumentResponse, error)
	DetachDocument(ctx context.Context, actor user.Actor, documentID string) error
	ListDocuments(ctx context.Context, actor user.Actor, leaveID string) ([]DocumentResponse, error)
}
