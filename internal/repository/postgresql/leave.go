package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/workzen/workzen-backend-go/internal/domain/leave"
	"github.com/workzen/workzen-backend-go/internal/pkg/database"
)

type leaveRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepositoryImpl{db: db}
}

func (r *leaveRepositoryImpl) Create(ctx context.Context, l leave.Leave) (leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leaves (
			id, user_id, leave_type,
			start_date, end_date, number_of_days, reason,
			status, approved_by,
			created_at, updated_at
		) VALUES (
			gen_random_uuid(), $1, $2,
			$3, $4, $5, $6,
			$7, $8,
			NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		l.UserID, l.LeaveType,
		l.StartDate, l.EndDate, l.NumberDays, l.Reason,
		l.Status, l.ApprovedBy,
	).Scan(&l.ID, &l.CreatedAt, &l.UpdatedAt)

	if err != nil {
		return leave.Leave{}, fmt.Errorf("failed to create leave: %w", err)
	}

	return l, nil
}

const leaveSelect = `
	SELECT l.id, l.user_id, l.leave_type,
	       l.start_date, l.end_date, l.number_of_days, l.reason,
	       l.status, l.approved_by,
	       l.created_at, l.updated_at,
	       u.email AS owner_email,
	       u.counselor_id AS owner_counselor_id
	FROM leaves l
	INNER JOIN users u ON l.user_id = u.id
`

func scanLeave(row pgx.Row) (leave.Leave, error) {
	var l leave.Leave
	var ownerEmail string
	var counselorID *string

	err := row.Scan(
		&l.ID, &l.UserID, &l.LeaveType,
		&l.StartDate, &l.EndDate, &l.NumberDays, &l.Reason,
		&l.Status, &l.ApprovedBy,
		&l.CreatedAt, &l.UpdatedAt,
		&ownerEmail, &counselorID,
	)
	if err != nil {
		return leave.Leave{}, err
	}

	l.OwnerEmail = &ownerEmail
	l.CounselorID = counselorID
	return l, nil
}

func (r *leaveRepositoryImpl) GetByID(ctx context.Context, id string) (leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	l, err := scanLeave(q.QueryRow(ctx, leaveSelect+` WHERE l.id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.Leave{}, leave.ErrLeaveNotFound
		}
		return leave.Leave{}, err
	}
	return l, nil
}

// GetByIDForUpdate locks the leave row until the surrounding transaction
// ends. Concurrent approvals serialize here; the loser of the race re-reads
// a terminal status and fails the transition guard.
func (r *leaveRepositoryImpl) GetByIDForUpdate(ctx context.Context, id string) (leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	l, err := scanLeave(q.QueryRow(ctx, leaveSelect+` WHERE l.id = $1 FOR UPDATE OF l`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.Leave{}, leave.ErrLeaveNotFound
		}
		return leave.Leave{}, err
	}
	return l, nil
}

func (r *leaveRepositoryImpl) UpdateStatus(ctx context.Context, id string, status leave.LeaveStatus, approvedBy string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leaves
		SET status = $1, approved_by = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, status, approvedBy, id).Scan(&updatedID); err != nil {
		if err == pgx.ErrNoRows {
			return leave.ErrLeaveNotFound
		}
		return fmt.Errorf("failed to update status for leave %s: %w", id, err)
	}
	return nil
}

func buildLeaveWhere(filter leave.LeaveFilter) (string, []interface{}) {
	var clauses []string
	var args []interface{}
	argIdx := 1

	add := func(clause string, arg interface{}) {
		clauses = append(clauses, fmt.Sprintf(clause, argIdx))
		args = append(args, arg)
		argIdx++
	}

	if filter.OwnerID != nil {
		add("l.user_id = $%d", *filter.OwnerID)
	}
	if filter.CounselorID != nil {
		add("u.counselor_id = $%d", *filter.CounselorID)
	}
	if filter.Status != nil {
		add("l.status = $%d", *filter.Status)
	}
	if filter.LeaveType != nil {
		add("l.leave_type = $%d", *filter.LeaveType)
	}
	if filter.StartDate != nil {
		add("l.start_date >= $%d", *filter.StartDate)
	}
	if filter.EndDate != nil {
		add("l.end_date <= $%d", *filter.EndDate)
	}

	if len(clauses) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

func (r *leaveRepositoryImpl) List(ctx context.Context, filter leave.LeaveFilter) ([]leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	where, args := buildLeaveWhere(filter)
	rows, err := q.Query(ctx, leaveSelect+where+` ORDER BY l.created_at DESC`, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query leaves: %w", err)
	}
	defer rows.Close()

	var leaves []leave.Leave
	for rows.Next() {
		l, err := scanLeave(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave row: %w", err)
		}
		leaves = append(leaves, l)
	}

	return leaves, rows.Err()
}

func (r *leaveRepositoryImpl) CountByStatus(ctx context.Context, filter leave.LeaveFilter, status leave.LeaveStatus, updatedSince *time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	statusStr := string(status)
	filter.Status = &statusStr
	where, args := buildLeaveWhere(filter)

	query := `
		SELECT COUNT(*)
		FROM leaves l
		INNER JOIN users u ON l.user_id = u.id
	` + where

	if updatedSince != nil {
		query += fmt.Sprintf(" AND l.updated_at >= $%d", len(args)+1)
		args = append(args, *updatedSince)
	}

	var total int64
	if err := q.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count leaves: %w", err)
	}
	return total, nil
}
