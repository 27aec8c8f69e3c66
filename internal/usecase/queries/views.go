package queries

import (
	"parcel-registry/internal/domain/alert"
	"parcel-registry/internal/domain/availability"
	"parcel-registry/internal/domain/history"
	"parcel-registry/internal/domain/mutation"
)

// Domain to view mapping shared by the stores.

func NewReservationView(r *availability.Reservation) *ReservationView {
	return &ReservationView{
		ID:         r.ID(),
		ParcelID:   r.ParcelID(),
		ReservedBy: r.ReservedBy(),
		ReservedAt: r.ReservedAt(),
		ExpiresAt:  r.ExpiresAt(),
		Status:     string(r.Status()),
		Purpose:    r.Purpose(),
	}
}

func NewVerificationLogView(e *availability.VerificationLogEntry) *VerificationLogView {
	return &VerificationLogView{
		ID:              e.ID(),
		ParcelID:        e.ParcelID(),
		CheckedBy:       e.CheckedBy(),
		CheckTimestamp:  e.CheckedAt(),
		Result:          string(e.Result()),
		Reason:          string(e.Reason()),
		ConflictDetails: e.ConflictDetails(),
	}
}

func NewMutationView(s mutation.Snapshot) *MutationView {
	return &MutationView{
		ID:                 s.ID,
		ParcelID:           s.ParcelID,
		MutationType:       string(s.Type),
		FromOwnerID:        s.FromOwnerID,
		ToOwnerID:          s.ToOwnerID,
		InitiatedBy:        s.InitiatedBy,
		Price:              s.Price,
		Notes:              s.Notes,
		Status:             string(s.Status),
		CreatedAt:          s.CreatedAt,
		UpdatedAt:          s.UpdatedAt,
		ApprovedAt:         s.ApprovedAt,
		ApprovedBy:         s.ApprovedBy,
		CompletedAt:        s.CompletedAt,
		RejectionReason:    s.RejectionReason,
		CancelledBy:        s.CancelledBy,
		CancellationReason: s.CancellationReason,
	}
}

func NewOwnershipHistoryView(e *history.Entry) *OwnershipHistoryView {
	return &OwnershipHistoryView{
		ID:         e.ID(),
		ParcelID:   e.ParcelID(),
		Action:     e.Action(),
		Field:      e.Field(),
		OldValue:   e.OldValue(),
		NewValue:   e.NewValue(),
		Details:    e.Details(),
		ChangedBy:  e.ChangedBy(),
		ChangedAt:  e.ChangedAt(),
		MutationID: e.MutationID(),
	}
}

func NewAlertView(a *alert.Alert) *AlertView {
	return &AlertView{
		ID:             a.ID(),
		AlertType:      string(a.Type()),
		Severity:       string(a.Severity()),
		ParcelID:       a.ParcelID(),
		TriggeredBy:    a.TriggeredBy(),
		Message:        a.Message(),
		CreatedAt:      a.CreatedAt(),
		Acknowledged:   a.Acknowledged(),
		AcknowledgedBy: a.AcknowledgedBy(),
		AcknowledgedAt: a.AcknowledgedAt(),
	}
}
