package booking

// Status is the lifecycle state a booking carries on the scheduling platform.
type Status string

const (
	StatusPending             Status = "PENDING"
	StatusAccepted            Status = "ACCEPTED"
	StatusDeclined            Status = "DECLINED"
	StatusCancelledByCustomer Status = "CANCELLED_BY_CUSTOMER"
	StatusCancelledBySeller   Status = "CANCELLED_BY_SELLER"
	StatusNoShow              Status = "NO_SHOW"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusDeclined,
		StatusCancelledByCustomer, StatusCancelledBySeller, StatusNoShow:
		return true
	}
	return false
}
