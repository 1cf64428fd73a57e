package achievement

import "time"

// Achievement is a user-owned certificate record backed by an uploaded PDF.
type Achievement struct {
	ID          string
	UserID      string
	Title       string
	Description string
	FilePath    string
	FileSize    int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
