package alert

import (
	"html"
	"time"

	"parcel-registry/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrAlreadyAcknowledged = errs.WithKind(errs.ErrInvalidTransition, "Alerte déjà acquittée")
	ErrInvalidAlert        = errs.WithKind(errs.ErrInvalidInput, "Alerte invalide")
)

type Alert struct {
	id             uuid.UUID
	alertType      Type
	severity       Severity
	parcelID       *uuid.UUID
	triggeredBy    *uuid.UUID
	message        string
	createdAt      time.Time
	acknowledged   bool
	acknowledgedBy *uuid.UUID
	acknowledgedAt *time.Time
}

// NewAlert escapes the message so dashboards can render it verbatim.
func NewAlert(alertType Type, severity Severity, parcelID, triggeredBy *uuid.UUID, message string, now time.Time) (*Alert, error) {
	if !alertType.IsValid() || !severity.IsValid() || message == "" {
		return nil, ErrInvalidAlert
	}
	return &Alert{
		id:          uuid.New(),
		alertType:   alertType,
		severity:    severity,
		parcelID:    parcelID,
		triggeredBy: triggeredBy,
		message:     html.EscapeString(message),
		createdAt:   now,
	}, nil
}

func Reconstruct(id uuid.UUID, alertType Type, severity Severity, parcelID, triggeredBy *uuid.UUID, message string, createdAt time.Time, acknowledged bool, acknowledgedBy *uuid.UUID, acknowledgedAt *time.Time) *Alert {
	return &Alert{
		id:             id,
		alertType:      alertType,
		severity:       severity,
		parcelID:       parcelID,
		triggeredBy:    triggeredBy,
		message:        message,
		createdAt:      createdAt,
		acknowledged:   acknowledged,
		acknowledgedBy: acknowledgedBy,
		acknowledgedAt: acknowledgedAt,
	}
}

func (a *Alert) ID() uuid.UUID              { return a.id }
func (a *Alert) Type() Type                 { return a.alertType }
func (a *Alert) Severity() Severity         { return a.severity }
func (a *Alert) ParcelID() *uuid.UUID       { return a.parcelID }
func (a *Alert) TriggeredBy() *uuid.UUID    { return a.triggeredBy }
func (a *Alert) Message() string            { return a.message }
func (a *Alert) CreatedAt() time.Time       { return a.createdAt }
func (a *Alert) Acknowledged() bool         { return a.acknowledged }
func (a *Alert) AcknowledgedBy() *uuid.UUID { return a.acknowledgedBy }
func (a *Alert) AcknowledgedAt() *time.Time { return a.acknowledgedAt }

// Acknowledge is the only mutation an alert ever sees.
func (a *Alert) Acknowledge(actorID uuid.UUID, now time.Time) error {
	if a.acknowledged {
		return ErrAlreadyAcknowledged
	}
	a.acknowledged = true
	a.acknowledgedBy = &actorID
	a.acknowledgedAt = &now
	return nil
}
