//go:build unit

package locker_test

import (
	"testing"

	"swim-academy-api/internal/domain/locker"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInventoryIncrement(t *testing.T) {
	inv := locker.Inventory{Category: locker.CategoryMale, Total: 2}

	require.NoError(t, inv.Increment())
	require.NoError(t, inv.Increment())
	assert.Equal(t, 0, inv.Available())

	err := inv.Increment()
	assert.ErrorIs(t, err, locker.ErrExhausted)
	assert.Equal(t, 2, inv.Used, "failed increment must not change state")
}

func TestInventoryDecrement(t *testing.T) {
	inv := locker.Inventory{Category: locker.CategoryFemale, Total: 3, Used: 1}

	assert.True(t, inv.Decrement())
	assert.Equal(t, 0, inv.Used)

	assert.False(t, inv.Decrement(), "decrement at zero is a reported no-op")
	assert.Equal(t, 0, inv.Used)
}

func TestInventorySetUsed(t *testing.T) {
	inv := locker.Inventory{Category: locker.CategoryMale, Total: 5, Used: 2}

	require.NoError(t, inv.SetUsed(5))
	assert.Equal(t, 5, inv.Used)

	assert.ErrorIs(t, inv.SetUsed(6), locker.ErrInvalidQuantity)
	assert.ErrorIs(t, inv.SetUsed(-1), locker.ErrInvalidQuantity)
	assert.Equal(t, 5, inv.Used)
}

func TestCategoryValidity(t *testing.T) {
	assert.True(t, locker.CategoryMale.IsValid())
	assert.True(t, locker.CategoryFemale.IsValid())
	assert.False(t, locker.Category("UNISEX").IsValid())
}
