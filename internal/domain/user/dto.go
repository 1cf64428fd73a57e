package user

import (
	"time"

	"github.com/workzen/workzen-backend-go/internal/pkg/validator"
)

type RegisterRequest struct {
	Email       string  `json:"email"`
	Password    string  `json:"password"`
	Role        string  `json:"role"`
	CounselorID *string `json:"counselor_id,omitempty"`
}

func (r *RegisterRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is not a valid address",
		})
	}

	if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 8 characters",
		})
	}

	if r.Role != "" && !IsValidRole(Role(r.Role)) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be one of student, counselor, hod, payroll_officer",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AssignCounselorRequest struct {
	UserID      string  `json:"user_id"`
	CounselorID *string `json:"counselor_id"`
}

func (r *AssignCounselorRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UserResponse struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	Role        string    `json:"role"`
	CounselorID *string   `json:"counselor_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func ToResponse(u User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		Email:       u.Email,
		Role:        string(u.Role),
		CounselorID: u.CounselorID,
		CreatedAt:   u.CreatedAt,
	}
}
