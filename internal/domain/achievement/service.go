package achievement

import (
	"context"

	"github.com/workzen/workzen-backend-go/internal/domain/user"
)

// AchievementService manages a user's certificate uploads. Records are
// strictly user-owned; only the HOD may read across users.
type AchievementService interface {
	Upload(ctx context.Context, actor user.Actor, req UploadAchievementRequest) (AchievementResponse, error)
	List(ctx context.Context, actor user.Actor, userID string) ([]AchievementResponse, error)
	Delete(ctx context.Context, actor user.Actor, achievementID string) error
}
