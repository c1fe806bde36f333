package lesson

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidCapacity = errors.New("capacity must be positive")
	ErrInvalidPeriod   = errors.New("start date must be before end date")
)

type Lesson struct {
	id        uuid.UUID
	title     string
	capacity  int
	price     int64
	startDate time.Time
	endDate   time.Time
	status    Status
}

func NewLesson(title string, capacity int, price int64, startDate, endDate time.Time) (*Lesson, error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	if !startDate.Before(endDate) {
		return nil, ErrInvalidPeriod
	}
	return &Lesson{
		id:        uuid.New(),
		title:     title,
		capacity:  capacity,
		price:     price,
		startDate: startDate,
		endDate:   endDate,
		status:    StatusOpen,
	}, nil
}

func ReconstructLesson(
	id uuid.UUID,
	title string,
	capacity int,
	price int64,
	startDate, endDate time.Time,
	status Status,
) *Lesson {
	return &Lesson{
		id:        id,
		title:     title,
		capacity:  capacity,
		price:     price,
		startDate: startDate,
		endDate:   endDate,
		status:    status,
	}
}

func (l *Lesson) ID() uuid.UUID        { return l.id }
func (l *Lesson) Title() string        { return l.title }
func (l *Lesson) Capacity() int        { return l.capacity }
func (l *Lesson) Price() int64         { return l.price }
func (l *Lesson) StartDate() time.Time { return l.startDate }
func (l *Lesson) EndDate() time.Time   { return l.endDate }
func (l *Lesson) Status() Status       { return l.status }

func (l *Lesson) IsOpen() bool {
	return l.status == StatusOpen
}

func (l *Lesson) HasEnded(now time.Time) bool {
	return now.After(l.endDate)
}

// Full returns whether occupied seats meet or exceed capacity.
func (l *Lesson) Full(occupied int) bool {
	return occupied >= l.capacity
}
