package response

import (
	"swim-academy-api/internal/usecase/commands"
	"swim-academy-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type RefundPreviewResponse struct {
	EnrollmentID      uuid.UUID `json:"enrollment_id"`
	PaidLessonAmount  int64     `json:"paid_lesson_amount"`
	LockerAmount      int64     `json:"locker_amount"`
	SystemDaysUsed    int       `json:"system_days_used"`
	EffectiveDaysUsed int       `json:"effective_days_used"`
	DailyRate         int64     `json:"daily_rate"`
	UsageDeduction    int64     `json:"usage_deduction"`
	Refundable        int64     `json:"refundable"`
}

func FromRefundPreview(v *queries.RefundPreviewView) (*RefundPreviewResponse, error) {
	var resp RefundPreviewResponse
	if err := copier.Copy(&resp, v); err != nil {
		return nil, err
	}
	return &resp, nil
}

type CancelDecisionResponse struct {
	EnrollmentID uuid.UUID `json:"enrollment_id"`
	Status       string    `json:"status"`
	PayStatus    string    `json:"pay_status"`
	CancelStatus string    `json:"cancel_status"`
	Refundable   int64     `json:"refundable"`
	DaysUsed     int       `json:"days_used"`
}

func FromCancelDecision(d *commands.CancelDecision) CancelDecisionResponse {
	return CancelDecisionResponse{
		EnrollmentID: d.Enrollment.ID,
		Status:       d.Enrollment.Status,
		PayStatus:    d.Enrollment.PayStatus,
		CancelStatus: d.Enrollment.CancelStatus,
		Refundable:   d.Breakdown.Refundable,
		DaysUsed:     d.Breakdown.EffectiveDaysUsed,
	}
}

type CancellationRequestResponse struct {
	EnrollmentID      uuid.UUID `json:"enrollment_id"`
	UserEmail         string    `json:"user_email"`
	LessonTitle       string    `json:"lesson_title"`
	PayStatus         string    `json:"pay_status"`
	CancelStatus      string    `json:"cancel_status"`
	DaysUsedForRefund *int      `json:"days_used_for_refund,omitempty"`
}

func FromCancellationRequests(items []*queries.CancellationRequestItem) ([]*CancellationRequestResponse, error) {
	out := make([]*CancellationRequestResponse, 0, len(items))
	if err := copier.Copy(&out, &items); err != nil {
		return nil, err
	}
	return out, nil
}
