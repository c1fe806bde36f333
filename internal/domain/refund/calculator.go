// Package refund computes prorated refunds under the day-rate policy.
// Calculation is pure: no persistence, no clock, all inputs explicit, so
// admin previews can call it repeatedly with different overrides.
package refund

import "time"

// Breakdown is the full result of a refund calculation. Both the
// system-computed and the effective day counts are carried so admin UIs can
// show the override delta.
type Breakdown struct {
	PaidLessonAmount  int64
	LockerAmount      int64
	SystemDaysUsed    int
	EffectiveDaysUsed int
	DailyRate         int64
	UsageDeduction    int64
	Refundable        int64
}

// Input carries the facts the calculation needs. LessonAmount of zero with
// a positive PaidAmount triggers the fallback attribution.
type Input struct {
	LessonStart  time.Time
	LessonPrice  int64
	PaidAmount   int64
	LessonAmount int64
	LockerAmount int64
	// AssumedLockerFee backs the fallback when the payment record carries
	// no lesson-portion attribution.
	AssumedLockerFee int64
}

// Calculate produces the refund breakdown as of asOf. manualDaysOverride,
// when non-nil and non-negative, replaces the system-computed days used.
// Locker fees are never refunded; the locker portion is reported for
// transparency only.
func Calculate(in Input, manualDaysOverride *int, dailyRate int64, asOf time.Time) Breakdown {
	paidLesson := in.LessonAmount
	if paidLesson <= 0 && in.PaidAmount > 0 {
		// Best-effort fallback: strip an assumed locker fee off the total.
		paidLesson = in.PaidAmount - in.AssumedLockerFee
		if paidLesson < 0 {
			paidLesson = in.PaidAmount
		}
	}

	systemDays := daysUsed(in.LessonStart, asOf)

	effectiveDays := systemDays
	if manualDaysOverride != nil && *manualDaysOverride >= 0 {
		effectiveDays = *manualDaysOverride
	}

	deduction := dailyRate * int64(effectiveDays)

	refundable := paidLesson - deduction
	if refundable < 0 {
		refundable = 0
	}
	if refundable > paidLesson {
		refundable = paidLesson
	}

	return Breakdown{
		PaidLessonAmount:  paidLesson,
		LockerAmount:      in.LockerAmount,
		SystemDaysUsed:    systemDays,
		EffectiveDaysUsed: effectiveDays,
		DailyRate:         dailyRate,
		UsageDeduction:    deduction,
		Refundable:        refundable,
	}
}

// daysUsed counts calendar days from the lesson start through asOf,
// inclusive of the start day. Before the lesson starts it is zero.
func daysUsed(start, asOf time.Time) int {
	s := truncateToDay(start)
	a := truncateToDay(asOf)
	if a.Before(s) {
		return 0
	}
	return int(a.Sub(s).Hours()/24) + 1
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
