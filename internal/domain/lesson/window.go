package lesson

import "time"

// Registration window policy.
//
// A lesson starting in the current month accepts new enrollments until the
// end of the month. A lesson starting next month opens early-bird
// registration on day 26. Renewals for next month's lesson run on days
// 20-25, before general registration opens.
const (
	renewalOpenDay  = 20
	renewalCloseDay = 25
	generalOpenDay  = 26
)

// EnrollWindowOpen reports whether a fresh enrollment for a lesson starting
// at lessonStart is allowed at now.
func EnrollWindowOpen(now, lessonStart time.Time) bool {
	if sameMonth(now, lessonStart) {
		return true
	}
	if nextMonth(now, lessonStart) {
		return now.Day() >= generalOpenDay
	}
	return false
}

// RenewalWindowOpen reports whether a renewal into a lesson starting at
// lessonStart is allowed at now. Renewals only target next month's lesson.
func RenewalWindowOpen(now, lessonStart time.Time) bool {
	if !nextMonth(now, lessonStart) {
		return false
	}
	return now.Day() >= renewalOpenDay && now.Day() <= renewalCloseDay
}

func sameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

func nextMonth(now, target time.Time) bool {
	n := now.AddDate(0, 1, -now.Day()+1) // first day of next month
	return n.Year() == target.Year() && n.Month() == target.Month()
}
