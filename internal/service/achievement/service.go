package achievement

import (
	"context"
	"log/slog"

	"github.com/workzen/workzen-backend-go/internal/domain/achievement"
	"github.com/workzen/workzen-backend-go/internal/domain/user"
	"github.com/workzen/workzen-backend-go/internal/service/file"
)

type achievementServiceImpl struct {
	repo  achievement.AchievementRepository
	files *file.FileService
}

func NewAchievementService(repo achievement.AchievementRepository, files *file.FileService) achievement.AchievementService {
	return &achievementServiceImpl{repo: repo, files: files}
}

func (s *achievementServiceImpl) Upload(ctx context.Context, actor user.Actor, req achievement.UploadAchievementRequest) (achievement.AchievementResponse, error) {
	if err := req.Validate(); err != nil {
		return achievement.AchievementResponse{}, err
	}

	path, err := s.files.StoreDocument(ctx, "achievement", actor.ID, req.File, req.Filename, req.Size)
	if err != nil {
		return achievement.AchievementResponse{}, err
	}

	created, err := s.repo.Create(ctx, achievement.Achievement{
		UserID:      actor.ID,
		Title:       req.Title,
		Description: req.Description,
		FilePath:    path,
		FileSize:    req.Size,
	})
	if err != nil {
		return achievement.AchievementResponse{}, err
	}

	return s.toResponse(ctx, created), nil
}

func (s *achievementServiceImpl) List(ctx context.Context, actor user.Actor, userID string) ([]achievement.AchievementResponse, error) {
	if userID == "" {
		userID = actor.ID
	}
	if userID != actor.ID && !actor.IsHOD() {
		return nil, user.ErrHODAccessRequired
	}

	records, err := s.repo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	responses := make([]achievement.AchievementResponse, 0, len(records))
	for _, a := range records {
		responses = append(responses, s.toResponse(ctx, a))
	}
	return responses, nil
}

func (s *achievementServiceImpl) Delete(ctx context.Context, actor user.Actor, achievementID string) error {
	a, err := s.repo.GetByID(ctx, achievementID)
	if err != nil {
		return err
	}

	if a.UserID != actor.ID && !actor.IsHOD() {
		return user.ErrHODAccessRequired
	}

	if err := s.repo.Delete(ctx, a.ID); err != nil {
		return err
	}

	if err := s.files.DeleteFile(ctx, a.FilePath); err != nil {
		slog.Warn("failed to delete achievement file", "path", a.FilePath, "error", err)
	}

	return nil
}

func (s *achievementServiceImpl) toResponse(ctx context.Context, a achievement.Achievement) achievement.AchievementResponse {
	url, err := s.files.GetFileURL(ctx, a.FilePath)
	if err != nil {
		slog.Warn("failed to resolve achievement url", "path", a.FilePath, "error", err)
		url = ""
	}
	return achievement.AchievementResponse{
		ID:          a.ID,
		Title:       a.Title,
		Description: a.Description,
		FileURL:     url,
		FileSize:    a.FileSize,
		CreatedAt:   a.CreatedAt,
	}
}
