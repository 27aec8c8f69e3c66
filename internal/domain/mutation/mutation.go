package mutation

import (
	"fmt"
	"strings"
	"time"

	"parcel-registry/internal/domain/user"
	"parcel-registry/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidType             = errs.WithKind(errs.ErrInvalidInput, "Type de mutation invalide")
	ErrNegativePrice           = errs.WithKind(errs.ErrInvalidInput, "Le prix doit être positif ou nul")
	ErrRejectionReasonRequired = errs.WithKind(errs.ErrInvalidInput, "Le motif du rejet est requis")
	ErrNotFound                = errs.WithKind(errs.ErrNotFound, "Mutation non trouvée")
	ErrCancelNotAllowed        = errs.WithKind(errs.ErrPermissionDenied, "Seul l'initiateur ou un responsable peut annuler la mutation")
	ErrOpenMutationExists      = errs.WithKind(errs.ErrConflict, "Une mutation est déjà en cours pour cette parcelle")
)

type Mutation struct {
	id                 uuid.UUID
	parcelID           uuid.UUID
	mutationType       Type
	fromOwnerID        *uuid.UUID
	toOwnerID          *uuid.UUID
	initiatedBy        uuid.UUID
	price              *float64
	notes              string
	status             Status
	createdAt          time.Time
	updatedAt          time.Time
	approvedAt         *time.Time
	approvedBy         *uuid.UUID
	completedAt        *time.Time
	rejectionReason    *string
	cancelledBy        *uuid.UUID
	cancellationReason *string
}

type NewParams struct {
	ParcelID    uuid.UUID
	Type        Type
	InitiatedBy uuid.UUID
	FromOwnerID *uuid.UUID
	ToOwnerID   *uuid.UUID
	Price       *float64
	Notes       string
}

func New(p NewParams, now time.Time) (*Mutation, error) {
	if !p.Type.IsValid() {
		return nil, ErrInvalidType
	}
	if p.Price != nil && *p.Price < 0 {
		return nil, ErrNegativePrice
	}
	return &Mutation{
		id:           uuid.New(),
		parcelID:     p.ParcelID,
		mutationType: p.Type,
		fromOwnerID:  p.FromOwnerID,
		toOwnerID:    p.ToOwnerID,
		initiatedBy:  p.InitiatedBy,
		price:        p.Price,
		notes:        strings.TrimSpace(p.Notes),
		status:       StatusPending,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// Snapshot carries every persisted column; repositories rebuild a Mutation
// from it.
type Snapshot struct {
	ID                 uuid.UUID
	ParcelID           uuid.UUID
	Type               Type
	FromOwnerID        *uuid.UUID
	ToOwnerID          *uuid.UUID
	InitiatedBy        uuid.UUID
	Price              *float64
	Notes              string
	Status             Status
	CreatedAt          time.Time
	UpdatedAt          time.Time
	ApprovedAt         *time.Time
	ApprovedBy         *uuid.UUID
	CompletedAt        *time.Time
	RejectionReason    *string
	CancelledBy        *uuid.UUID
	CancellationReason *string
}

func Reconstruct(s Snapshot) *Mutation {
	return &Mutation{
		id:                 s.ID,
		parcelID:           s.ParcelID,
		mutationType:       s.Type,
		fromOwnerID:        s.FromOwnerID,
		toOwnerID:          s.ToOwnerID,
		initiatedBy:        s.InitiatedBy,
		price:              s.Price,
		notes:              s.Notes,
		status:             s.Status,
		createdAt:          s.CreatedAt,
		updatedAt:          s.UpdatedAt,
		approvedAt:         s.ApprovedAt,
		approvedBy:         s.ApprovedBy,
		completedAt:        s.CompletedAt,
		rejectionReason:    s.RejectionReason,
		cancelledBy:        s.CancelledBy,
		cancellationReason: s.CancellationReason,
	}
}

func (m *Mutation) Snapshot() Snapshot {
	return Snapshot{
		ID:                 m.id,
		ParcelID:           m.parcelID,
		Type:               m.mutationType,
		FromOwnerID:        m.fromOwnerID,
		ToOwnerID:          m.toOwnerID,
		InitiatedBy:        m.initiatedBy,
		Price:              m.price,
		Notes:              m.notes,
		Status:             m.status,
		CreatedAt:          m.createdAt,
		UpdatedAt:          m.updatedAt,
		ApprovedAt:         m.approvedAt,
		ApprovedBy:         m.approvedBy,
		CompletedAt:        m.completedAt,
		RejectionReason:    m.rejectionReason,
		CancelledBy:        m.cancelledBy,
		CancellationReason: m.cancellationReason,
	}
}

func (m *Mutation) ID() uuid.UUID               { return m.id }
func (m *Mutation) ParcelID() uuid.UUID         { return m.parcelID }
func (m *Mutation) Type() Type                  { return m.mutationType }
func (m *Mutation) FromOwnerID() *uuid.UUID     { return m.fromOwnerID }
func (m *Mutation) ToOwnerID() *uuid.UUID       { return m.toOwnerID }
func (m *Mutation) InitiatedBy() uuid.UUID      { return m.initiatedBy }
func (m *Mutation) Price() *float64             { return m.price }
func (m *Mutation) Notes() string               { return m.notes }
func (m *Mutation) Status() Status              { return m.status }
func (m *Mutation) CreatedAt() time.Time        { return m.createdAt }
func (m *Mutation) UpdatedAt() time.Time        { return m.updatedAt }
func (m *Mutation) ApprovedAt() *time.Time      { return m.approvedAt }
func (m *Mutation) ApprovedBy() *uuid.UUID      { return m.approvedBy }
func (m *Mutation) CompletedAt() *time.Time     { return m.completedAt }
func (m *Mutation) RejectionReason() *string    { return m.rejectionReason }
func (m *Mutation) CancelledBy() *uuid.UUID     { return m.cancelledBy }
func (m *Mutation) CancellationReason() *string { return m.cancellationReason }

func (m *Mutation) Approve(approver uuid.UUID, now time.Time) error {
	if err := m.transition(StatusApproved, now); err != nil {
		return err
	}
	m.approvedBy = &approver
	m.approvedAt = &now
	return nil
}

func (m *Mutation) Reject(approver uuid.UUID, reason string, now time.Time) error {
	if !m.status.CanTransitionTo(StatusRejected) {
		return invalidTransition(m.status, StatusRejected)
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return ErrRejectionReasonRequired
	}
	if err := m.transition(StatusRejected, now); err != nil {
		return err
	}
	m.approvedBy = &approver
	m.approvedAt = &now
	m.rejectionReason = &reason
	return nil
}

func (m *Mutation) Complete(now time.Time) error {
	if err := m.transition(StatusCompleted, now); err != nil {
		return err
	}
	m.completedAt = &now
	return nil
}

// CheckCompletable is Complete's precondition, usable before any owner write.
func (m *Mutation) CheckCompletable() error {
	if !m.status.CanTransitionTo(StatusCompleted) {
		return invalidTransition(m.status, StatusCompleted)
	}
	return nil
}

func (m *Mutation) Cancel(actor user.Actor, reason *string, now time.Time) error {
	if !m.status.CanTransitionTo(StatusCancelled) {
		return invalidTransition(m.status, StatusCancelled)
	}
	if actor.ID() != m.initiatedBy && !actor.IsElevated() {
		return ErrCancelNotAllowed
	}
	if err := m.transition(StatusCancelled, now); err != nil {
		return err
	}
	id := actor.ID()
	m.cancelledBy = &id
	if reason != nil {
		if r := strings.TrimSpace(*reason); r != "" {
			m.cancellationReason = &r
		}
	}
	return nil
}

// IsParty is true for the initiator and, once approved, the approver.
func (m *Mutation) IsParty(actorID uuid.UUID) bool {
	if actorID == m.initiatedBy {
		return true
	}
	return m.approvedBy != nil && *m.approvedBy == actorID
}

func (m *Mutation) transition(next Status, now time.Time) error {
	if !m.status.CanTransitionTo(next) {
		return invalidTransition(m.status, next)
	}
	m.status = next
	m.updatedAt = now
	return nil
}

func invalidTransition(from, to Status) error {
	return errs.WithKind(errs.ErrInvalidTransition, fmt.Sprintf("Transition invalide: %s -> %s", from, to))
}
