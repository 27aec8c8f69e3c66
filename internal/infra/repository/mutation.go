package repository

import (
	"context"

	"parcel-registry/internal/domain/mutation"
	"parcel-registry/internal/infra"
	"parcel-registry/internal/pkg/pgconv"
	"parcel-registry/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	MutationColumns = `id, parcel_id, mutation_type, from_owner_id, to_owner_id, initiated_by, price, notes, status,
		created_at, updated_at, approved_at, approved_by, completed_at, rejection_reason, cancelled_by, cancellation_reason`

	insertMutation = `
		INSERT INTO parcel_mutations (` + MutationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	selectMutationForUpdate = `SELECT ` + MutationColumns + ` FROM parcel_mutations WHERE id = $1 FOR UPDATE`
	updateMutation          = `
		UPDATE parcel_mutations
		SET status = $2, updated_at = $3, approved_at = $4, approved_by = $5, completed_at = $6,
			rejection_reason = $7, cancelled_by = $8, cancellation_reason = $9
		WHERE id = $1`
	countOpenMutations = `
		SELECT COUNT(*) FROM parcel_mutations
		WHERE parcel_id = $1 AND status IN ('pending', 'approved')`
)

type MutationRepository struct {
	db DBTX
}

func NewMutationRepository(db DBTX) *MutationRepository {
	return &MutationRepository{db: db}
}

func (r *MutationRepository) Create(ctx context.Context, m *mutation.Mutation) error {
	s := m.Snapshot()
	price, err := pgconv.Float64PtrToNumeric(s.Price)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to encode mutation price", err)
	}

	_, err = r.db.Exec(ctx, insertMutation,
		s.ID, s.ParcelID, string(s.Type),
		pgconv.UUIDPtrToPgtype(s.FromOwnerID), pgconv.UUIDPtrToPgtype(s.ToOwnerID),
		s.InitiatedBy, price, s.Notes, string(s.Status),
		s.CreatedAt, s.UpdatedAt,
		pgconv.TimePtrToPgtype(s.ApprovedAt), pgconv.UUIDPtrToPgtype(s.ApprovedBy),
		pgconv.TimePtrToPgtype(s.CompletedAt), pgconv.StringPtrToPgtype(s.RejectionReason),
		pgconv.UUIDPtrToPgtype(s.CancelledBy), pgconv.StringPtrToPgtype(s.CancellationReason))
	if err != nil {
		return infra.ClassifyPgErr("failed to create mutation", err)
	}
	return nil
}

func (r *MutationRepository) GetForUpdate(ctx context.Context, id uuid.UUID) (*mutation.Mutation, error) {
	s, err := ScanMutation(r.db.QueryRow(ctx, selectMutationForUpdate, id))
	if err != nil {
		if pgconv.Code(err) == pgconv.CodeLockNotAvailable {
			return nil, shared.ErrLockTimeout
		}
		return nil, infra.ClassifyPgErr("failed to lock mutation", err)
	}
	return mutation.Reconstruct(*s), nil
}

func (r *MutationRepository) Update(ctx context.Context, m *mutation.Mutation) error {
	s := m.Snapshot()
	tag, err := r.db.Exec(ctx, updateMutation,
		s.ID, string(s.Status), s.UpdatedAt,
		pgconv.TimePtrToPgtype(s.ApprovedAt), pgconv.UUIDPtrToPgtype(s.ApprovedBy),
		pgconv.TimePtrToPgtype(s.CompletedAt), pgconv.StringPtrToPgtype(s.RejectionReason),
		pgconv.UUIDPtrToPgtype(s.CancelledBy), pgconv.StringPtrToPgtype(s.CancellationReason))
	if err != nil {
		return infra.ClassifyPgErr("failed to update mutation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "mutation not found", nil)
	}
	return nil
}

func (r *MutationRepository) CountOpenByParcel(ctx context.Context, parcelID uuid.UUID) (int, error) {
	var n int
	if err := r.db.QueryRow(ctx, countOpenMutations, parcelID).Scan(&n); err != nil {
		return 0, infra.ClassifyPgErr("failed to count open mutations", err)
	}
	return n, nil
}

// ScanMutation reads one row selected with MutationColumns.
func ScanMutation(row pgx.Row) (*mutation.Snapshot, error) {
	var (
		s                       mutation.Snapshot
		mutationType, status    string
		fromOwner, toOwner      pgtype.UUID
		price                   pgtype.Numeric
		approvedAt, completedAt pgtype.Timestamptz
		approvedBy, cancelledBy pgtype.UUID
		rejection, cancellation pgtype.Text
	)
	err := row.Scan(
		&s.ID, &s.ParcelID, &mutationType, &fromOwner, &toOwner, &s.InitiatedBy, &price, &s.Notes, &status,
		&s.CreatedAt, &s.UpdatedAt, &approvedAt, &approvedBy, &completedAt, &rejection, &cancelledBy, &cancellation,
	)
	if err != nil {
		return nil, err
	}

	if s.Price, err = pgconv.Float64PtrFromNumeric(price); err != nil {
		return nil, err
	}
	s.Type = mutation.Type(mutationType)
	s.Status = mutation.Status(status)
	s.FromOwnerID = pgconv.UUIDPtrFromPgtype(fromOwner)
	s.ToOwnerID = pgconv.UUIDPtrFromPgtype(toOwner)
	s.CreatedAt = s.CreatedAt.UTC()
	s.UpdatedAt = s.UpdatedAt.UTC()
	s.ApprovedAt = pgconv.TimePtrFromPgtype(approvedAt)
	s.ApprovedBy = pgconv.UUIDPtrFromPgtype(approvedBy)
	s.CompletedAt = pgconv.TimePtrFromPgtype(completedAt)
	s.RejectionReason = pgconv.StringPtrFromPgtype(rejection)
	s.CancelledBy = pgconv.UUIDPtrFromPgtype(cancelledBy)
	s.CancellationReason = pgconv.StringPtrFromPgtype(cancellation)
	return &s, nil
}
