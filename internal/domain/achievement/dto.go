package achievement

import (
	"io"
	"time"

	"github.com/workzen/workzen-backend-go/internal/pkg/validator"
)

type UploadAchievementRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`

	File     io.Reader `json:"-"`
	Filename string    `json:"-"`
	Size     int64     `json:"-"`
}

func (r *UploadAchievementRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title is required",
		})
	}
	if validator.IsEmpty(r.Description) {
		errs = append(errs, validator.ValidationError{
			Field:   "description",
			Message: "description is required",
		})
	}
	if r.File == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "file",
			Message: "file is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AchievementResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	FileURL     string    `json:"file_url"`
	FileSize    int64     `json:"file_size"`
	CreatedAt   time.Time `json:"created_at"`
}
