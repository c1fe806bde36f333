// Package locker models the counted locker resource, partitioned by a
// category key. Inventory is a per-period resource: usage is reset monthly,
// not accumulated.
package locker

import "errors"

var (
	ErrExhausted       = errors.New("locker inventory exhausted")
	ErrInvalidQuantity = errors.New("invalid locker quantity")
)

type Category string

const (
	CategoryMale   Category = "MALE"
	CategoryFemale Category = "FEMALE"
)

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	switch c {
	case CategoryMale, CategoryFemale:
		return true
	default:
		return false
	}
}

// Inventory holds the counters for one category. The invariant
// 0 <= Used <= Total holds at all times; violating mutations fail, they
// never clamp silently.
type Inventory struct {
	Category Category
	Total    int
	Used     int
}

func (i *Inventory) Available() int {
	return i.Total - i.Used
}

// Increment consumes one locker, failing when none is available.
func (i *Inventory) Increment() error {
	if i.Used >= i.Total {
		return ErrExhausted
	}
	i.Used++
	return nil
}

// Decrement releases one locker. Releasing at zero is reported so the
// caller can log it; the counter is left untouched.
func (i *Inventory) Decrement() (released bool) {
	if i.Used == 0 {
		return false
	}
	i.Used--
	return true
}

// SetUsed replaces the usage counter, used by the resync sweep. The
// invariant still applies.
func (i *Inventory) SetUsed(used int) error {
	if used < 0 || used > i.Total {
		return ErrInvalidQuantity
	}
	i.Used = used
	return nil
}
