//go:build unit

package location_test

import (
	"testing"

	"parkease/internal/domain/location"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconstruct(t *testing.T) {
	tests := []struct {
		name             string
		total, available int
		errIs            error
	}{
		{"full lot", 10, 10, nil},
		{"empty lot", 10, 0, nil},
		{"zero capacity", 0, 0, nil},
		{"negative available", 10, -1, location.ErrInvalidCapacity},
		{"available above total", 1, 2, location.ErrInvalidCapacity},
		{"negative total", -1, 0, location.ErrInvalidCapacity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := location.Reconstruct(uuid.New(), uuid.New(), "Lot", tt.total, tt.available)
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.available, loc.AvailableSpots())
		})
	}
}

func TestCounterAfterBooking(t *testing.T) {
	loc, err := location.Reconstruct(uuid.New(), uuid.New(), "Lot", 3, 3)
	require.NoError(t, err)

	next, ok := loc.CounterAfterBooking(3)
	assert.True(t, ok)
	assert.Equal(t, 2, next)

	next, ok = loc.CounterAfterBooking(1)
	assert.True(t, ok)
	assert.Equal(t, 0, next)

	_, ok = loc.CounterAfterBooking(0)
	assert.False(t, ok)

	_, ok = loc.CounterAfterBooking(-2)
	assert.False(t, ok)

	next, ok = loc.CounterAfterBooking(7)
	assert.True(t, ok)
	assert.Equal(t, 2, next, "clamped to total spots")
}
