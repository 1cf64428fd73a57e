package achievement

import "context"

// AchievementRepository - interface for the achievements table
type AchievementRepository interface {
	Create(ctx context.Context, a Achievement) (Achievement, error)
	GetByID(ctx context.Context, id string) (Achievement, error)
	ListByUserID(ctx context.Context, userID string) ([]Achievement, error)
	Delete(ctx context.Context, id string) error
}
