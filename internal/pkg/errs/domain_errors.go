package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Lesson errors
	ErrLessonNotFound = errors.New("lesson not found")
	ErrLessonNotOpen  = errors.New("lesson is not open for enrollment")

	// Admission errors
	ErrCapacityExhausted   = errors.New("lesson capacity exhausted")
	ErrDuplicateEnrollment = errors.New("duplicate enrollment")
	ErrWindowClosed        = errors.New("registration window closed")
	ErrMonthlyLimit        = errors.New("monthly enrollment limit reached")

	// Enrollment state errors
	ErrEnrollmentNotFound = errors.New("enrollment not found")
	ErrNotUnpaid          = errors.New("enrollment is not unpaid")
	ErrAlreadyCanceled    = errors.New("enrollment already canceled")
	ErrHoldExpired        = errors.New("enrollment hold expired")
	ErrInvalidCancelState = errors.New("invalid cancel-status transition")

	// Locker errors
	ErrLockerExhausted = errors.New("no locker available for category")

	// Reconciliation integrity errors
	ErrMalformedOrderRef = errors.New("malformed order reference")
	ErrTidConflict       = errors.New("transaction id bound to another enrollment")
	ErrPaymentConflict   = errors.New("conflicting payment already recorded for enrollment")

	// Contention errors
	ErrTransientConflict = errors.New("transient transaction conflict")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
