package mutation

type Type string

const (
	TypeSale          Type = "sale"
	TypeDonation      Type = "donation"
	TypeInheritance   Type = "inheritance"
	TypeExchange      Type = "exchange"
	TypeExpropriation Type = "expropriation"
	TypeSubdivision   Type = "subdivision"
	TypeMerge         Type = "merge"
	TypeOther         Type = "other"
)

func (t Type) IsValid() bool {
	switch t {
	case TypeSale, TypeDonation, TypeInheritance, TypeExchange,
		TypeExpropriation, TypeSubdivision, TypeMerge, TypeOther:
		return true
	default:
		return false
	}
}

type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// transitions is the whole lifecycle graph; anything absent is refused.
var transitions = map[Status][]Status{
	StatusPending:  {StatusApproved, StatusRejected, StatusCancelled},
	StatusApproved: {StatusCompleted, StatusCancelled},
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return s == StatusRejected || s == StatusCompleted || s == StatusCancelled
}

// IsOpen is true for the statuses that block a new mutation on the parcel.
func (s Status) IsOpen() bool {
	return s == StatusPending || s == StatusApproved
}

func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}
