package shared

import (
	"time"

	"github.com/google/uuid"
)

// EnrollmentSnapshot is the command-side view returned to callers after a
// state-changing operation.
type EnrollmentSnapshot struct {
	ID              uuid.UUID `json:"id"`
	UserID          uuid.UUID `json:"user_id"`
	LessonID        uuid.UUID `json:"lesson_id"`
	Status          string    `json:"status"`
	PayStatus       string    `json:"pay_status"`
	CancelStatus    string    `json:"cancel_status"`
	ExpiresAt       time.Time `json:"expires_at"`
	UsesLocker      bool      `json:"uses_locker"`
	LockerAllocated bool      `json:"locker_allocated"`
	Renewal         bool      `json:"renewal"`
}

// LockerAvailability is the read-only answer of the inventory manager.
type LockerAvailability struct {
	Category  string `json:"category"`
	Available int    `json:"available"`
	Total     int    `json:"total"`
}
