package request

type CreateEnrollmentRequest struct {
	// Renewal marks a continuation from the previous month and switches
	// the registration-window rule.
	Renewal     bool `json:"renewal"`
	WantsLocker bool `json:"wants_locker"`
}

type ApproveCancelRequest struct {
	// DaysUsedOverride replaces the system-computed usage day count.
	DaysUsedOverride *int `json:"days_used_override,omitempty" binding:"omitempty,min=0"`
}

type OverrideDaysUsedRequest struct {
	DaysUsed int `json:"days_used" binding:"min=0"`
}
