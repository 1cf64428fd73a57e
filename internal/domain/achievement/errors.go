package achievement

import "errors"

var (
	ErrAchievementNotFound = errors.New("Achievement not found")
)
