package payment

type Status string

const (
	StatusPaid            Status = "PAID"
	StatusPartialRefunded Status = "PARTIAL_REFUNDED"
	StatusCanceled        Status = "CANCELED"
	StatusFailed          Status = "FAILED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPaid, StatusPartialRefunded, StatusCanceled, StatusFailed:
		return true
	default:
		return false
	}
}
