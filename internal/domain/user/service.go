package user

import "context"

// UserService covers directory reads and counselor assignment. Listing and
// assignment are HOD operations; profile reads are open to the owner.
type UserService interface {
	Get(ctx context.Context, actor Actor, userID string) (UserResponse, error)
	List(ctx context.Context, actor Actor) ([]UserResponse, error)
	AssignCounselor(ctx context.Context, actor Actor, req AssignCounselorRequest) error
}
