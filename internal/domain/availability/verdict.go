package availability

import (
	"parcel-registry/internal/pkg/errs"

	"github.com/google/uuid"
)

type Reason string

const (
	ReasonAvailable Reason = "available"
	ReasonNotFound  Reason = "not_found"
	ReasonAssigned  Reason = "assigned"
	ReasonReserved  Reason = "reserved"
)

func (r Reason) Message() string {
	switch r {
	case ReasonAvailable:
		return "Parcelle disponible"
	case ReasonNotFound:
		return "Parcelle non trouvée"
	case ReasonAssigned:
		return "Parcelle déjà attribuée"
	case ReasonReserved:
		return "Parcelle réservée"
	default:
		return string(r)
	}
}

type Result string

const (
	ResultAvailable   Result = "available"
	ResultUnavailable Result = "unavailable"
)

// Verdict is either Available or Unavailable(reason, details). The zero value
// is not a valid verdict; build one with the constructors below.
type Verdict struct {
	reason  Reason
	details string
}

func Available() Verdict {
	return Verdict{reason: ReasonAvailable}
}

func NotFound() Verdict {
	return Verdict{reason: ReasonNotFound}
}

func Assigned(ownerID uuid.UUID) Verdict {
	return Verdict{reason: ReasonAssigned, details: "Owner: " + ownerID.String()}
}

func Reserved(holderID uuid.UUID) Verdict {
	return Verdict{reason: ReasonReserved, details: "Reserved by: " + Redact(holderID)}
}

func (v Verdict) IsAvailable() bool { return v.reason == ReasonAvailable }
func (v Verdict) Reason() Reason    { return v.reason }
func (v Verdict) Message() string   { return v.reason.Message() }

func (v Verdict) Result() Result {
	if v.IsAvailable() {
		return ResultAvailable
	}
	return ResultUnavailable
}

// ConflictDetails is set only for assigned and reserved verdicts.
func (v Verdict) ConflictDetails() *string {
	if v.details == "" {
		return nil
	}
	d := v.details
	return &d
}

// Err turns an unavailable verdict into the error callers receive. Not found
// stays NotFound; assigned and reserved become Conflict.
func (v Verdict) Err() error {
	switch v.reason {
	case ReasonAvailable:
		return nil
	case ReasonNotFound:
		return errs.WithKind(errs.ErrNotFound, v.Message())
	default:
		return errs.WithKind(errs.ErrConflict, v.Message())
	}
}

// ErrReserved is the reserved conflict when the holder is not known, as
// after losing the insert race to a concurrent hold.
var ErrReserved = Verdict{reason: ReasonReserved}.Err()

// Redact keeps the first 8 characters of an id.
func Redact(id uuid.UUID) string {
	return id.String()[:8] + "..."
}
