package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/workzen/workzen-backend-go/internal/domain/leave"
	"github.com/workzen/workzen-backend-go/internal/pkg/database"
)

type leaveBalanceRepositoryImpl struct {
	db *database.DB
}

func NewLeaveBalanceRepository(db *database.DB) leave.LeaveBalanceRepository {
	return &leaveBalanceRepositoryImpl{db: db}
}

const balanceColumns = `id, user_id, leave_type, year, total_days, used_days, remaining_days, created_at, updated_at`

func scanBalance(row pgx.Row) (leave.LeaveBalance, error) {
	var b leave.LeaveBalance
	err := row.Scan(
		&b.ID,
		&b.UserID,
		&b.LeaveType,
		&b.Year,
		&b.TotalDays,
		&b.UsedDays,
		&b.RemainingDays,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	return b, err
}

// GetOrCreate resolves the (user, type, year) ledger row, seeding it with the
// given total when absent. The UNIQUE constraint makes the insert race-safe;
// the returned row is locked for the rest of the transaction.
func (r *leaveBalanceRepositoryImpl) GetOrCreate(ctx context.Context, userID, leaveType string, year, totalDays int) (leave.LeaveBalance, error) {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `
		INSERT INTO leave_balances (id, user_id, leave_type, year, total_days, used_days, remaining_days, created_at, updated_at)
		VALUES (gen_random_uuid(), $1, $2, $3, $4, 0, $4, NOW(), NOW())
		ON CONFLICT (user_id, leave_type, year) DO NOTHING
	`, userID, leaveType, year, totalDays)
	if err != nil {
		return leave.LeaveBalance{}, fmt.Errorf("failed to seed leave balance: %w", err)
	}

	return r.GetForUpdate(ctx, userID, leaveType, year)
}

func (r *leaveBalanceRepositoryImpl) Get(ctx context.Context, userID, leaveType string, year int) (leave.LeaveBalance, error) {
	q := GetQuerier(ctx, r.db)

	b, err := scanBalance(q.QueryRow(ctx, `
		SELECT `+balanceColumns+`
		FROM leave_balances
		WHERE user_id = $1 AND leave_type = $2 AND year = $3
	`, userID, leaveType, year))
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.LeaveBalance{}, leave.ErrBalanceNotFound
		}
		return leave.LeaveBalance{}, err
	}
	return b, nil
}

func (r *leaveBalanceRepositoryImpl) GetForUpdate(ctx context.Context, userID, leaveType string, year int) (leave.LeaveBalance, error) {
	q := GetQuerier(ctx, r.db)

	b, err := scanBalance(q.QueryRow(ctx, `
		SELECT `+balanceColumns+`
		FROM leave_balances
		WHERE user_id = $1 AND leave_type = $2 AND year = $3
		FOR UPDATE
	`, userID, leaveType, year))
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.LeaveBalance{}, leave.ErrBalanceNotFound
		}
		return leave.LeaveBalance{}, err
	}
	return b, nil
}

// AddUsage debits the ledger: used_days += days, remaining recomputed from
// total so the remaining = total - used invariant holds after every mutation.
func (r *leaveBalanceRepositoryImpl) AddUsage(ctx context.Context, id string, days int) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE leave_balances
		SET used_days = used_days + $1,
		    remaining_days = total_days - (used_days + $1),
		    updated_at = NOW()
		WHERE id = $2
	`, days, id)
	if err != nil {
		return fmt.Errorf("failed to add usage to leave balance %s: %w", id, err)
	}
	if tag.RowsAffected() != 1 {
		return leave.ErrBalanceNotFound
	}
	return nil
}

func (r *leaveBalanceRepositoryImpl) ListByUserYear(ctx context.Context, userID string, year int) ([]leave.LeaveBalance, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT `+balanceColumns+`
		FROM leave_balances
		WHERE user_id = $1 AND year = $2
		ORDER BY leave_type ASC
	`, userID, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var balances []leave.LeaveBalance
	for rows.Next() {
		b, err := scanBalance(rows)
		if err != nil {
			return nil, err
		}
		balances = append(balances, b)
	}

	return balances, rows.Err()
}

func (r *leaveBalanceRepositoryImpl) ListByYear(ctx context.Context, year int) ([]leave.LeaveBalance, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT `+balanceColumns+`
		FROM leave_balances
		WHERE year = $1
		ORDER BY user_id ASC, leave_type ASC
	`, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var balances []leave.LeaveBalance
	for rows.Next() {
		b, err := scanBalance(rows)
		if err != nil {
			return nil, err
		}
		balances = append(balances, b)
	}

	return balances, rows.Err()
}
