package payment

// AmountSplit is the attribution of a confirmed gateway amount to the
// lesson and locker portions.
type AmountSplit struct {
	LessonAmount int64
	LockerAmount int64
	// Reconciled is false when the remainder over the lesson price did not
	// fall inside the locker-fee tolerance band; the full amount is then
	// attributed to the lesson portion instead of guessing a split.
	Reconciled bool
}

// SplitAmount attributes total between the lesson portion (the lesson's
// price) and the locker portion (the remainder, when it sits within
// tolerance of the expected locker fee).
func SplitAmount(total, lessonPrice, lockerFee, tolerance int64) AmountSplit {
	remainder := total - lessonPrice

	if remainder == 0 {
		return AmountSplit{LessonAmount: total, Reconciled: true}
	}

	if remainder > 0 && remainder >= lockerFee-tolerance && remainder <= lockerFee+tolerance {
		return AmountSplit{LessonAmount: lessonPrice, LockerAmount: remainder, Reconciled: true}
	}

	return AmountSplit{LessonAmount: total, Reconciled: false}
}
