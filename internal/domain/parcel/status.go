package parcel

type Status string

const (
	StatusAvailable Status = "available"
	StatusAssigned  Status = "assigned"
	StatusReserved  Status = "reserved"
)
