package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/workzen/workzen-backend-go/internal/domain/leave"
	"github.com/workzen/workzen-backend-go/internal/pkg/database"
)

type leaveDocumentRepositoryImpl struct {
	db *database.DB
}

func NewLeaveDocumentRepository(db *database.DB) leave.LeaveDocumentRepository {
	return &leaveDocumentRepositoryImpl{db: db}
}

const documentColumns = `id, leave_id, user_id, file_path, file_size, original_filename, document_type, created_at`

func scanDocument(row pgx.Row) (leave.LeaveDocument, error) {
	var d leave.LeaveDocument
	err := row.Scan(
		&d.ID,
		&d.LeaveID,
		&d.UserID,
		&d.FilePath,
		&d.FileSize,
		&d.OriginalFilename,
		&d.DocumentType,
		&d.CreatedAt,
	)
	return d, err
}

func (r *leaveDocumentRepositoryImpl) Create(ctx context.Context, doc leave.LeaveDocument) (leave.LeaveDocument, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_documents (
			id, leave_id, user_id, file_path, file_size, original_filename, document_type, created_at
		) VALUES (
			gen_random_uuid(), $1, $2, $3, $4, $5, $6, NOW()
		) RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		doc.LeaveID, doc.UserID, doc.FilePath, doc.FileSize, doc.OriginalFilename, doc.DocumentType,
	).Scan(&doc.ID, &doc.CreatedAt)
	if err != nil {
		return leave.LeaveDocument{}, fmt.Errorf("failed to create leave document: %w", err)
	}

	return doc, nil
}

func (r *leaveDocumentRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveDocument, error) {
	q := GetQuerier(ctx, r.db)

	d, err := scanDocument(q.QueryRow(ctx, `
		SELECT `+documentColumns+` FROM leave_documents WHERE id = $1
	`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.LeaveDocument{}, leave.ErrDocumentNotFound
		}
		return leave.LeaveDocument{}, err
	}
	return d, nil
}

func (r *leaveDocumentRepositoryImpl) ListByLeaveID(ctx context.Context, leaveID string) ([]leave.LeaveDocument, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT `+documentColumns+`
		FROM leave_documents
		WHERE leave_id = $1
		ORDER BY created_at DESC
	`, leaveID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []leave.LeaveDocument
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, d)
	}

	return docs, rows.Err()
}

func (r *leaveDocumentRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM leave_documents WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete leave document %s: %w", id, err)
	}
	if tag.RowsAffected() != 1 {
		return leave.ErrDocumentNotFound
	}
	return nil
}
