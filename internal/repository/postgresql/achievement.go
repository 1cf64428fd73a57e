package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/workzen/workzen-backend-go/internal/domain/achievement"
	"github.com/workzen/workzen-backend-go/internal/pkg/database"
)

type achievementRepositoryImpl struct {
	db *database.DB
}

func NewAchievementRepository(db *database.DB) achievement.AchievementRepository {
	return &achievementRepositoryImpl{db: db}
}

const achievementColumns = `id, user_id, title, description, file_path, file_size, created_at, updated_at`

func scanAchievement(row pgx.Row) (achievement.Achievement, error) {
	var a achievement.Achievement
	err := row.Scan(
		&a.ID,
		&a.UserID,
		&a.Title,
		&a.Description,
		&a.FilePath,
		&a.FileSize,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	return a, err
}

func (r *achievementRepositoryImpl) Create(ctx context.Context, a achievement.Achievement) (achievement.Achievement, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO achievements (id, user_id, title, description, file_path, file_size, created_at, updated_at)
		VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, a.UserID, a.Title, a.Description, a.FilePath, a.FileSize).
		Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return achievement.Achievement{}, fmt.Errorf("failed to create achievement: %w", err)
	}

	return a, nil
}

func (r *achievementRepositoryImpl) GetByID(ctx context.Context, id string) (achievement.Achievement, error) {
	q := GetQuerier(ctx, r.db)

	a, err := scanAchievement(q.QueryRow(ctx, `
		SELECT `+achievementColumns+` FROM achievements WHERE id = $1
	`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return achievement.Achievement{}, achievement.ErrAchievementNotFound
		}
		return achievement.Achievement{}, err
	}
	return a, nil
}

func (r *achievementRepositoryImpl) ListByUserID(ctx context.Context, userID string) ([]achievement.Achievement, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT `+achievementColumns+`
		FROM achievements
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var achievements []achievement.Achievement
	for rows.Next() {
		a, err := scanAchievement(rows)
		if err != nil {
			return nil, err
		}
		achievements = append(achievements, a)
	}

	return achievements, rows.Err()
}

func (r *achievementRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM achievements WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete achievement %s: %w", id, err)
	}
	if tag.RowsAffected() != 1 {
		return achievement.ErrAchievementNotFound
	}
	return nil
}
