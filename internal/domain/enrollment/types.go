package enrollment

type Status string

const (
	StatusApplied         Status = "APPLIED"
	StatusCanceled        Status = "CANCELED"
	StatusCanceledReq     Status = "CANCELED_REQ"
	StatusCanceledByAdmin Status = "CANCELED_BY_ADMIN"
	StatusExpired         Status = "EXPIRED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusApplied, StatusCanceled, StatusCanceledReq, StatusCanceledByAdmin, StatusExpired:
		return true
	default:
		return false
	}
}

type PayStatus string

const (
	PayUnpaid                  PayStatus = "UNPAID"
	PayPaid                    PayStatus = "PAID"
	PayPartiallyRefunded       PayStatus = "PARTIALLY_REFUNDED"
	PayRefunded                PayStatus = "REFUNDED"
	PayRefundRequested         PayStatus = "REFUND_REQUESTED"
	PayRefundPendingAdminCheck PayStatus = "REFUND_PENDING_ADMIN_CANCEL"
	PayExpired                 PayStatus = "EXPIRED"
)

func (p PayStatus) String() string {
	return string(p)
}

func (p PayStatus) IsValid() bool {
	switch p {
	case PayUnpaid, PayPaid, PayPartiallyRefunded, PayRefunded,
		PayRefundRequested, PayRefundPendingAdminCheck, PayExpired:
		return true
	default:
		return false
	}
}

type CancelStatus string

const (
	CancelNone     CancelStatus = "NONE"
	CancelReq      CancelStatus = "REQ"
	CancelPending  CancelStatus = "PENDING"
	CancelApproved CancelStatus = "APPROVED"
	CancelDenied   CancelStatus = "DENIED"
)

func (c CancelStatus) String() string {
	return string(c)
}

func (c CancelStatus) IsValid() bool {
	switch c {
	case CancelNone, CancelReq, CancelPending, CancelApproved, CancelDenied:
		return true
	default:
		return false
	}
}

// Terminal reports whether no further cancel-status transition is allowed.
func (c CancelStatus) Terminal() bool {
	return c == CancelApproved || c == CancelDenied
}

// CanDecide reports whether the status may move to APPROVED or DENIED.
func (c CancelStatus) CanDecide() bool {
	return c == CancelReq || c == CancelPending
}
