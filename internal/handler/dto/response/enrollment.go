package response

import (
	"time"

	"swim-academy-api/internal/usecase/commands"
	"swim-academy-api/internal/usecase/queries"
	"swim-academy-api/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type EnrollmentCreatedResponse struct {
	ID        uuid.UUID `json:"id"`
	LessonID  uuid.UUID `json:"lesson_id"`
	Status    string    `json:"status"`
	PayStatus string    `json:"pay_status"`
	ExpiresAt time.Time `json:"expires_at"`
	// OrderRef is passed to the payment gateway at checkout.
	OrderRef string `json:"order_ref"`
}

func FromEnrollmentSnapshot(s *shared.EnrollmentSnapshot) EnrollmentCreatedResponse {
	return EnrollmentCreatedResponse{
		ID:        s.ID,
		LessonID:  s.LessonID,
		Status:    s.Status,
		PayStatus: s.PayStatus,
		ExpiresAt: s.ExpiresAt,
		OrderRef:  commands.OrderRef(s.ID),
	}
}

type EnrollmentResponse struct {
	ID              uuid.UUID  `json:"id"`
	UserEmail       string     `json:"user_email"`
	LessonID        uuid.UUID  `json:"lesson_id"`
	LessonTitle     string     `json:"lesson_title"`
	Status          string     `json:"status"`
	PayStatus       string     `json:"pay_status"`
	CancelStatus    string     `json:"cancel_status"`
	ExpiresAt       time.Time  `json:"expires_at"`
	UsesLocker      bool       `json:"uses_locker"`
	LockerAllocated bool       `json:"locker_allocated"`
	Renewal         bool       `json:"renewal"`
	RefundAmount    *int64     `json:"refund_amount,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	PaidAt          *time.Time `json:"paid_at,omitempty"`
}

func FromEnrollmentView(v *queries.EnrollmentView) (*EnrollmentResponse, error) {
	var resp EnrollmentResponse
	if err := copier.Copy(&resp, v); err != nil {
		return nil, err
	}
	return &resp, nil
}

type EnrollmentListResponse struct {
	ID           uuid.UUID `json:"id"`
	UserEmail    string    `json:"user_email"`
	LessonTitle  string    `json:"lesson_title"`
	Status       string    `json:"status"`
	PayStatus    string    `json:"pay_status"`
	CancelStatus string    `json:"cancel_status"`
	CreatedAt    time.Time `json:"created_at"`
}

func FromEnrollmentList(items []*queries.EnrollmentListItem) ([]*EnrollmentListResponse, error) {
	out := make([]*EnrollmentListResponse, 0, len(items))
	if err := copier.Copy(&out, &items); err != nil {
		return nil, err
	}
	return out, nil
}

type LessonAvailabilityResponse struct {
	LessonID  uuid.UUID `json:"lesson_id"`
	Title     string    `json:"title"`
	Capacity  int       `json:"capacity"`
	Occupied  int       `json:"occupied"`
	Remaining int       `json:"remaining"`
	Status    string    `json:"status"`
}

type LockerAvailabilityResponse struct {
	Category  string `json:"category"`
	Available int    `json:"available"`
	Total     int    `json:"total"`
}
