package leave

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/workzen/workzen-backend-go/internal/domain/leave"
	"github.com/workzen/workzen-backend-go/internal/domain/user"
	"github.com/workzen/workzen-backend-go/internal/pkg/database"
	"github.com/workzen/workzen-backend-go/internal/pkg/validator"
	"github.com/workzen/workzen-backend-go/internal/repository/postgresql"
	"github.com/workzen/workzen-backend-go/internal/service/file"
)

type leaveServiceImpl struct {
	db          *database.DB
	leaveRepo   leave.LeaveRepository
	balanceRepo leave.LeaveBalanceRepository
	docRepo     leave.LeaveDocumentRepository
	userRepo    user.UserRepository
	files       *file.FileService
	policy      leave.BalancePolicy
}

func NewLeaveService(
	db *database.DB,
	leaveRepo leave.LeaveRepository,
	balanceRepo leave.LeaveBalanceRepository,
	docRepo leave.LeaveDocumentRepository,
	userRepo user.UserRepository,
	files *file.FileService,
	policy leave.BalancePolicy,
) leave.LeaveService {
	return &leaveServiceImpl{
		db:          db,
		leaveRepo:   leaveRepo,
		balanceRepo: balanceRepo,
		docRepo:     docRepo,
		userRepo:    userRepo,
		files:       files,
		policy:      policy,
	}
}

func (s *leaveServiceImpl) Apply(ctx context.Context, actor user.Actor, req leave.ApplyLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	startDate, _ := validator.IsValidDate(req.StartDate)
	endDate, _ := validator.IsValidDate(req.EndDate)
	if endDate.Before(startDate) {
		return leave.LeaveResponse{}, leave.ErrInvalidDateRange
	}

	days := leave.DayCount(startDate, endDate)
	year := time.Now().Year()

	// Reject oversized or non-PDF files before opening the transaction so a
	// bad attachment never leaves a half-created request behind.
	for _, doc := range req.Documents {
		if err := s.files.ValidateDocument(doc.Filename, doc.Size); err != nil {
			return leave.LeaveResponse{}, err
		}
	}

	var created leave.Leave
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		total := leave.DefaultAllotment(req.LeaveType)
		if s.policy == leave.PolicyUnlimited {
			total = leave.UnlimitedAllotment
		}

		balance, err := s.balanceRepo.GetOrCreate(txCtx, actor.ID, req.LeaveType, year, total)
		if err != nil {
			return err
		}

		if s.policy == leave.PolicyBounded && balance.RemainingDays < days {
			return leave.ErrInsufficientBalance
		}

		// Pre-assign a counselor as the nominal approver for display. Any
		// in-scope approver can still act on the request.
		var approvedBy *string
		if counselor, err := s.userRepo.GetFirstByRole(txCtx, user.RoleCounselor); err == nil {
			approvedBy = &counselor.ID
		} else if !errors.Is(err, user.ErrUserNotFound) {
			return err
		}

		created, err = s.leaveRepo.Create(txCtx, leave.Leave{
			UserID:     actor.ID,
			LeaveType:  req.LeaveType,
			StartDate:  startDate,
			EndDate:    endDate,
			NumberDays: days,
			Reason:     req.Reason,
			Status:     leave.LeaveStatusPending,
			ApprovedBy: approvedBy,
		})
		if err != nil {
			return err
		}

		for _, doc := range req.Documents {
			path, err := s.files.StoreDocument(txCtx, "leave", actor.ID, doc.File, doc.Filename, doc.Size)
			if err != nil {
				return err
			}
			if _, err := s.docRepo.Create(txCtx, leave.LeaveDocument{
				LeaveID:          created.ID,
				UserID:           actor.ID,
				FilePath:         path,
				FileSize:         doc.Size,
				OriginalFilename: doc.Filename,
				DocumentType:     doc.DocumentType,
			}); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	return leave.ToLeaveResponse(created), nil
}

func (s *leaveServiceImpl) Approve(ctx context.Context, actor user.Actor, leaveID string) error {
	return s.resolve(ctx, actor, leaveID, leave.LeaveStatusApproved)
}

func (s *leaveServiceImpl) Reject(ctx context.Context, actor user.Actor, leaveID string) error {
	return s.resolve(ctx, actor, leaveID, leave.LeaveStatusRejected)
}

// resolve moves a Pending leave to a terminal status. The row lock taken by
// GetByIDForUpdate serializes concurrent calls: the loser re-reads a terminal
// status and fails the guard, so the balance is debited at most once.
func (s *leaveServiceImpl) resolve(ctx context.Context, actor user.Actor, leaveID string, target leave.LeaveStatus) error {
	if !actor.CanApprove() {
		return user.ErrApproverRoleOnly
	}

	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		l, err := s.leaveRepo.GetByIDForUpdate(txCtx, leaveID)
		if err != nil {
			return err
		}

		if l.Status.IsTerminal() {
			return leave.ErrAlreadyProcessed
		}

		if !actor.IsHOD() {
			if l.CounselorID == nil || *l.CounselorID != actor.ID {
				return leave.ErrOutsideScope
			}
		}

		if err := s.leaveRepo.UpdateStatus(txCtx, l.ID, target, actor.ID); err != nil {
			return err
		}

		if target != leave.LeaveStatusApproved {
			return nil
		}

		// The ledger row was seeded in the year the request was created.
		balance, err := s.balanceRepo.GetForUpdate(txCtx, l.UserID, l.LeaveType, l.CreatedAt.Year())
		if err != nil {
			// A missing ledger row must not block the approval itself.
			if errors.Is(err, leave.ErrBalanceNotFound) {
				slog.Warn("approved leave without a balance row",
					"leave_id", l.ID, "user_id", l.UserID, "leave_type", l.LeaveType)
				return nil
			}
			return err
		}

		return s.balanceRepo.AddUsage(txCtx, balance.ID, l.NumberDays)
	})
}

func (s *leaveServiceImpl) Get(ctx context.Context, actor user.Actor, leaveID string) (leave.LeaveResponse, error) {
	l, err := s.leaveRepo.GetByID(ctx, leaveID)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	if err := s.checkReadScope(actor, l); err != nil {
		return leave.LeaveResponse{}, err
	}

	return leave.ToLeaveResponse(l), nil
}

func (s *leaveServiceImpl) List(ctx context.Context, actor user.Actor, filter leave.LeaveFilter) ([]leave.LeaveResponse, error) {
	filter = s.scopeFilter(actor, filter)

	leaves, err := s.leaveRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	return toResponses(leaves), nil
}

func (s *leaveServiceImpl) ListMine(ctx context.Context, actor user.Actor) ([]leave.LeaveResponse, error) {
	leaves, err := s.leaveRepo.List(ctx, leave.LeaveFilter{OwnerID: &actor.ID})
	if err != nil {
		return nil, err
	}

	return toResponses(leaves), nil
}

func (s *leaveServiceImpl) Stats(ctx context.Context, actor user.Actor) (leave.LeaveStats, error) {
	filter := s.scopeFilter(actor, leave.LeaveFilter{})
	today := startOfDay(time.Now())

	pending, err := s.leaveRepo.CountByStatus(ctx, filter, leave.LeaveStatusPending, nil)
	if err != nil {
		return leave.LeaveStats{}, err
	}

	approved, err := s.leaveRepo.CountByStatus(ctx, filter, leave.LeaveStatusApproved, &today)
	if err != nil {
		return leave.LeaveStats{}, err
	}

	rejected, err := s.leaveRepo.CountByStatus(ctx, filter, leave.LeaveStatusRejected, &today)
	if err != nil {
		return leave.LeaveStats{}, err
	}

	return leave.LeaveStats{
		PendingCount:  pending,
		ApprovedToday: approved,
		RejectedToday: rejected,
	}, nil
}

func (s *leaveServiceImpl) Balances(ctx context.Context, actor user.Actor, userID string, year int) ([]leave.BalanceResponse, error) {
	if actor.ID != userID && !actor.CanApprove() && actor.Role != user.RolePayrollOfficer {
		return nil, leave.ErrOutsideScope
	}

	balances, err := s.balanceRepo.ListByUserYear(ctx, userID, year)
	if err != nil {
		return nil, err
	}

	responses := make([]leave.BalanceResponse, 0, len(balances))
	for _, b := range balances {
		responses = append(responses, leave.ToBalanceResponse(b))
	}
	return responses, nil
}

func (s *leaveServiceImpl) AttachDocument(ctx context.Context, actor user.Actor, leaveID string, upload leave.DocumentUpload) (leave.DocumentResponse, error) {
	l, err := s.leaveRepo.GetByID(ctx, leaveID)
	if err != nil {
		return leave.DocumentResponse{}, err
	}

	if l.UserID != actor.ID {
		return leave.DocumentResponse{}, leave.ErrNotOwner
	}
	if l.Status != leave.LeaveStatusPending {
		return leave.DocumentResponse{}, leave.ErrLeaveNotPending
	}

	path, err := s.files.StoreDocument(ctx, "leave", actor.ID, upload.File, upload.Filename, upload.Size)
	if err != nil {
		return leave.DocumentResponse{}, err
	}

	doc, err := s.docRepo.Create(ctx, leave.LeaveDocument{
		LeaveID:          l.ID,
		UserID:           actor.ID,
		FilePath:         path,
		FileSize:         upload.Size,
		OriginalFilename: upload.Filename,
		DocumentType:     upload.DocumentType,
	})
	if err != nil {
		return leave.DocumentResponse{}, err
	}

	return s.toDocumentResponse(ctx, doc), nil
}

func (s *leaveServiceImpl) DetachDocument(ctx context.Context, actor user.Actor, documentID string) error {
	doc, err := s.docRepo.GetByID(ctx, documentID)
	if err != nil {
		return err
	}

	l, err := s.leaveRepo.GetByID(ctx, doc.LeaveID)
	if err != nil {
		return err
	}

	if l.UserID != actor.ID {
		return leave.ErrNotOwner
	}
	if l.Status != leave.LeaveStatusPending {
		return leave.ErrLeaveNotPending
	}

	if err := s.docRepo.Delete(ctx, doc.ID); err != nil {
		return err
	}

	// The record is the source of truth; an orphaned file is only noise.
	if err := s.files.DeleteFile(ctx, doc.FilePath); err != nil {
		slog.Warn("failed to delete document file", "path", doc.FilePath, "error", err)
	}

	return nil
}

func (s *leaveServiceImpl) ListDocuments(ctx context.Context, actor user.Actor, leaveID string) ([]leave.DocumentResponse, error) {
	l, err := s.leaveRepo.GetByID(ctx, leaveID)
	if err != nil {
		return nil, err
	}

	if err := s.checkReadScope(actor, l); err != nil {
		return nil, err
	}

	docs, err := s.docRepo.ListByLeaveID(ctx, leaveID)
	if err != nil {
		return nil, err
	}

	responses := make([]leave.DocumentResponse, 0, len(docs))
	for _, doc := range docs {
		responses = append(responses, s.toDocumentResponse(ctx, doc))
	}
	return responses, nil
}

// scopeFilter derives the visibility restriction from the actor's role.
// Handlers never set the scope fields; whatever they pass is overwritten.
func (s *leaveServiceImpl) scopeFilter(actor user.Actor, filter leave.LeaveFilter) leave.LeaveFilter {
	filter.OwnerID = nil
	filter.CounselorID = nil

	switch actor.Role {
	case user.RoleHOD, user.RolePayrollOfficer:
		// department wide
	case user.RoleCounselor:
		filter.CounselorID = &actor.ID
	default:
		filter.OwnerID = &actor.ID
	}
	return filter
}

func (s *leaveServiceImpl) checkReadScope(actor user.Actor, l leave.Leave) error {
	if l.UserID == actor.ID {
		return nil
	}
	switch actor.Role {
	case user.RoleHOD, user.RolePayrollOfficer:
		return nil
	case user.RoleCounselor:
		if l.CounselorID != nil && *l.CounselorID == actor.ID {
			return nil
		}
	}
	return leave.ErrOutsideScope
}

func (s *leaveServiceImpl) toDocumentResponse(ctx context.Context, doc leave.LeaveDocument) leave.DocumentResponse {
	url, err := s.files.GetFileURL(ctx, doc.FilePath)
	if err != nil {
		slog.Warn("failed to resolve document url", "path", doc.FilePath, "error", err)
		url = ""
	}
	return leave.DocumentResponse{
		ID:               doc.ID,
		LeaveID:          doc.LeaveID,
		FileURL:          url,
		FileSize:         doc.FileSize,
		OriginalFilename: doc.OriginalFilename,
		DocumentType:     doc.DocumentType,
		CreatedAt:        doc.CreatedAt,
	}
}

func toResponses(leaves []leave.Leave) []leave.LeaveResponse {
	responses := make([]leave.LeaveResponse, 0, len(leaves))
	for _, l := range leaves {
		responses = append(responses, leave.ToLeaveResponse(l))
	}
	return responses
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
