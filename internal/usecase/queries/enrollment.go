package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type EnrollmentView struct {
	ID              uuid.UUID  `json:"id"`
	UserID          uuid.UUID  `json:"user_id"`
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
	UpdatedAt       time.Time  `json:"updated_at"`
	PaidAt          *time.Time `json:"paid_at,omitempty"`
}

type EnrollmentListItem struct {
	ID           uuid.UUID `json:"id"`
	UserEmail    string    `json:"user_email"`
	LessonTitle  string    `json:"lesson_title"`
	Status       string    `json:"status"`
	PayStatus    string    `json:"pay_status"`
	CancelStatus string    `json:"cancel_status"`
	CreatedAt    time.Time `json:"created_at"`
}

type CancellationRequestItem struct {
	EnrollmentID      uuid.UUID `json:"enrollment_id"`
	UserEmail         string    `json:"user_email"`
	LessonTitle       string    `json:"lesson_title"`
	PayStatus         string    `json:"pay_status"`
	CancelStatus      string    `json:"cancel_status"`
	DaysUsedForRefund *int      `json:"days_used_for_refund,omitempty"`
	RequestedAt       time.Time `json:"requested_at"`
}

type LessonAvailabilityView struct {
	LessonID  uuid.UUID `json:"lesson_id"`
	Title     string    `json:"title"`
	Capacity  int       `json:"capacity"`
	Occupied  int       `json:"occupied"`
	Remaining int       `json:"remaining"`
	Status    string    `json:"status"`
}

// EnrollmentFilter narrows admin listings; zero values mean "no filter".
type EnrollmentFilter struct {
	LessonID  uuid.UUID
	UserID    uuid.UUID
	PayStatus string
}

type EnrollmentQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*EnrollmentView, error)
	List(ctx context.Context, filter EnrollmentFilter, limit int) ([]*EnrollmentListItem, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*EnrollmentListItem, error)
	ListCancellationRequests(ctx context.Context) ([]*CancellationRequestItem, error)
	LessonAvailability(ctx context.Context, lessonID uuid.UUID) (*LessonAvailabilityView, error)
}

type EnrollmentViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*EnrollmentView, error)
	FindFiltered(ctx context.Context, filter EnrollmentFilter, limit int32) ([]*EnrollmentListItem, error)
	FindPendingCancellations(ctx context.Context) ([]*CancellationRequestItem, error)
	FindLessonAvailability(ctx context.Context, lessonID uuid.UUID, now time.Time) (*LessonAvailabilityView, error)
}

type enrollmentQueriesImpl struct {
	repo EnrollmentViewRepo
	now  func() time.Time
}

func NewEnrollmentQueries(repo EnrollmentViewRepo, now func() time.Time) EnrollmentQueries {
	return &enrollmentQueriesImpl{repo: repo, now: now}
}

func (q *enrollmentQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*EnrollmentView, error) {
	return q.repo.FindByID(ctx, id)
}

func (q *enrollmentQueriesImpl) List(ctx context.Context, filter EnrollmentFilter, limit int) ([]*EnrollmentListItem, error) {
	if limit <= 0 {
		limit = 50
	}
	return q.repo.FindFiltered(ctx, filter, int32(limit))
}

func (q *enrollmentQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*EnrollmentListItem, error) {
	if limit <= 0 {
		limit = 50
	}
	return q.repo.FindFiltered(ctx, EnrollmentFilter{UserID: userID}, int32(limit))
}

func (q *enrollmentQueriesImpl) ListCancellationRequests(ctx context.Context) ([]*CancellationRequestItem, error) {
	return q.repo.FindPendingCancellations(ctx)
}

func (q *enrollmentQueriesImpl) LessonAvailability(ctx context.Context, lessonID uuid.UUID) (*LessonAvailabilityView, error) {
	return q.repo.FindLessonAvailability(ctx, lessonID, q.now())
}
