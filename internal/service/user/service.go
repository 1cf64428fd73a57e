package user

import (
	"context"

	"github.com/workzen/workzen-backend-go/internal/domain/user"
)

type userServiceImpl struct {
	repo user.UserRepository
}

func NewUserService(repo user.UserRepository) user.UserService {
	return &userServiceImpl{repo: repo}
}

func (s *userServiceImpl) Get(ctx context.Context, actor user.Actor, userID string) (user.UserResponse, error) {
	if userID != actor.ID && !actor.IsHOD() {
		return user.UserResponse{}, user.ErrHODAccessRequired
	}

	u, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return user.UserResponse{}, err
	}
	return user.ToResponse(u), nil
}

func (s *userServiceImpl) List(ctx context.Context, actor user.Actor) ([]user.UserResponse, error) {
	if !actor.IsHOD() {
		return nil, user.ErrHODAccessRequired
	}

	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]user.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, user.ToResponse(u))
	}
	return responses, nil
}

// AssignCounselor points a user at a counselor, or clears the reference when
// counselor_id is null. The reference scopes visibility only.
func (s *userServiceImpl) AssignCounselor(ctx context.Context, actor user.Actor, req user.AssignCounselorRequest) error {
	if !actor.IsHOD() {
		return user.ErrHODAccessRequired
	}
	if err := req.Validate(); err != nil {
		return err
	}

	if _, err := s.repo.GetByID(ctx, req.UserID); err != nil {
		return err
	}

	if req.CounselorID != nil {
		counselor, err := s.repo.GetByID(ctx, *req.CounselorID)
		if err != nil {
			return err
		}
		if counselor.Role != user.RoleCounselor {
			return user.ErrNotACounselor
		}
	}

	return s.repo.AssignCounselor(ctx, req.UserID, req.CounselorID)
}
