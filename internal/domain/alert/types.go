package alert

type Type string

const (
	TypeDoubleAttributionAttempt Type = "double_attribution_attempt"
	TypeConflictDetected         Type = "conflict_detected"
	TypeUnauthorizedAccess       Type = "unauthorized_access"
	TypeSuspiciousActivity       Type = "suspicious_activity"
	TypeReservationExpired       Type = "reservation_expired"
)

func (t Type) IsValid() bool {
	switch t {
	case TypeDoubleAttributionAttempt, TypeConflictDetected, TypeUnauthorizedAccess,
		TypeSuspiciousActivity, TypeReservationExpired:
		return true
	default:
		return false
	}
}

type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

func (s Severity) IsValid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return true
	default:
		return false
	}
}
