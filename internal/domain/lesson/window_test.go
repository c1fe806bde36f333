//go:build unit

package lesson_test

import (
	"testing"
	"time"

	"swim-academy-api/internal/domain/lesson"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 10, 0, 0, 0, time.UTC)
}

func TestEnrollWindowOpen(t *testing.T) {
	testCases := []struct {
		name        string
		now         time.Time
		lessonStart time.Time
		want        bool
	}{
		{
			name:        "current-month lesson is open any day of the month",
			now:         date(2026, time.March, 3),
			lessonStart: date(2026, time.March, 1),
			want:        true,
		},
		{
			name:        "current-month lesson still open on the last day",
			now:         date(2026, time.March, 31),
			lessonStart: date(2026, time.March, 1),
			want:        true,
		},
		{
			name:        "next-month lesson closed before day 26",
			now:         date(2026, time.March, 25),
			lessonStart: date(2026, time.April, 1),
			want:        false,
		},
		{
			name:        "next-month lesson open from day 26",
			now:         date(2026, time.March, 26),
			lessonStart: date(2026, time.April, 1),
			want:        true,
		},
		{
			name:        "next-month lesson open across a year boundary",
			now:         date(2026, time.December, 27),
			lessonStart: date(2027, time.January, 1),
			want:        true,
		},
		{
			name:        "lesson two months out never open",
			now:         date(2026, time.March, 28),
			lessonStart: date(2026, time.May, 1),
			want:        false,
		},
		{
			name:        "past-month lesson never open",
			now:         date(2026, time.March, 2),
			lessonStart: date(2026, time.February, 1),
			want:        false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, lesson.EnrollWindowOpen(tc.now, tc.lessonStart))
		})
	}
}

func TestRenewalWindowOpen(t *testing.T) {
	testCases := []struct {
		name        string
		now         time.Time
		lessonStart time.Time
		want        bool
	}{
		{
			name:        "renewal opens on day 20",
			now:         date(2026, time.March, 20),
			lessonStart: date(2026, time.April, 1),
			want:        true,
		},
		{
			name:        "renewal closes after day 25",
			now:         date(2026, time.March, 26),
			lessonStart: date(2026, time.April, 1),
			want:        false,
		},
		{
			name:        "renewal closed before day 20",
			now:         date(2026, time.March, 19),
			lessonStart: date(2026, time.April, 1),
			want:        false,
		},
		{
			name:        "renewal never targets the current month",
			now:         date(2026, time.March, 22),
			lessonStart: date(2026, time.March, 1),
			want:        false,
		},
		{
			name:        "renewal across a year boundary",
			now:         date(2026, time.December, 21),
			lessonStart: date(2027, time.January, 1),
			want:        true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, lesson.RenewalWindowOpen(tc.now, tc.lessonStart))
		})
	}
}
