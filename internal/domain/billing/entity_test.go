//go:build unit

package billing_test

import (
	"testing"
	"time"

	"hotel-desk/internal/domain/billing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRate(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		rate, err := billing.NewRate("Single", 100.0)
		require.NoError(t, err)

		assert.Equal(t, "Single", rate.RoomType())
		assert.Equal(t, 100.0, rate.PerDay())
	})

	t.Run("zero rate is valid", func(t *testing.T) {
		rate, err := billing.NewRate("Comp", 0)
		require.NoError(t, err)
		assert.Equal(t, 0.0, rate.PerDay())
	})

	t.Run("room type is trimmed", func(t *testing.T) {
		rate, err := billing.NewRate("  Double  ", 150.0)
		require.NoError(t, err)
		assert.Equal(t, "Double", rate.RoomType())
	})

	t.Run("empty room type", func(t *testing.T) {
		_, err := billing.NewRate("  ", 100.0)
		require.ErrorIs(t, err, billing.ErrEmptyRoomType)
	})

	t.Run("negative rate", func(t *testing.T) {
		_, err := billing.NewRate("Single", -1)
		require.ErrorIs(t, err, billing.ErrNegativeRate)
	})
}

func TestNewInvoice(t *testing.T) {
	issuedAt := time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC)

	rate := func(t *testing.T, perDay float64) billing.Rate {
		t.Helper()
		r, err := billing.NewRate("Single", perDay)
		require.NoError(t, err)
		return r
	}

	t.Run("amount is rate times days", func(t *testing.T) {
		inv, err := billing.NewInvoice("B1", rate(t, 100.0), 3, issuedAt)
		require.NoError(t, err)

		assert.Equal(t, "B1", inv.BookingID())
		assert.Equal(t, "Single", inv.RoomType())
		assert.Equal(t, 3, inv.Days())
		assert.Equal(t, 300.0, inv.Amount())
		assert.Equal(t, issuedAt, inv.IssuedAt())
	})

	t.Run("single day", func(t *testing.T) {
		inv, err := billing.NewInvoice("B1", rate(t, 150.0), 1, issuedAt)
		require.NoError(t, err)
		assert.Equal(t, 150.0, inv.Amount())
	})

	t.Run("zero days", func(t *testing.T) {
		_, err := billing.NewInvoice("B1", rate(t, 100.0), 0, issuedAt)
		require.ErrorIs(t, err, billing.ErrInvalidDays)
	})

	t.Run("negative days", func(t *testing.T) {
		_, err := billing.NewInvoice("B1", rate(t, 100.0), -2, issuedAt)
		require.ErrorIs(t, err, billing.ErrInvalidDays)
	})
}
