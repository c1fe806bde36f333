//go:build unit

package errs_test

import (
	"testing"

	"swim-academy-api/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestIs(t *testing.T) {
	t.Run("matches a sentinel attached with Mark", func(t *testing.T) {
		err := errs.Mark(errs.New("used 10 of 10"), errs.ErrLockerExhausted)
		assert.True(t, errs.Is(err, errs.ErrLockerExhausted))
	})

	t.Run("matches a marked sentinel through further wrapping", func(t *testing.T) {
		err := errs.Mark(errs.New("row locked"), errs.ErrTransientConflict)
		err = errs.Wrap(err, "enrollment creation failed")
		assert.True(t, errs.Is(err, errs.ErrTransientConflict))
	})

	t.Run("matches a bare sentinel", func(t *testing.T) {
		assert.True(t, errs.Is(errs.ErrEnrollmentNotFound, errs.ErrEnrollmentNotFound))
	})

	t.Run("does not match an unrelated sentinel", func(t *testing.T) {
		err := errs.Mark(errs.New("boom"), errs.ErrLockerExhausted)
		assert.False(t, errs.Is(err, errs.ErrTidConflict))
	})

	t.Run("nil error matches nothing", func(t *testing.T) {
		assert.False(t, errs.Is(nil, errs.ErrLockerExhausted))
	})
}
