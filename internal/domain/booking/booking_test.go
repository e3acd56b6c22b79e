//go:build unit

package booking_test

import (
	"testing"
	"time"

	"shareit/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func TestValidatePeriod(t *testing.T) {
	testCases := []struct {
		name  string
		start time.Time
		end   time.Time
		errIs error
	}{
		{
			name:  "start in the future, end after start",
			start: now.Add(time.Hour),
			end:   now.Add(2 * time.Hour),
		},
		{
			name:  "start exactly at now is allowed",
			start: now,
			end:   now.Add(time.Hour),
		},
		{
			name:  "start one nanosecond in the past",
			start: now.Add(-time.Nanosecond),
			end:   now.Add(time.Hour),
			errIs: booking.ErrStartInPast,
		},
		{
			name:  "end equals start",
			start: now.Add(time.Hour),
			end:   now.Add(time.Hour),
			errIs: booking.ErrEndNotAfterStart,
		},
		{
			name:  "end before start",
			start: now.Add(2 * time.Hour),
			end:   now.Add(time.Hour),
			errIs: booking.ErrEndNotAfterStart,
		},
		{
			name:  "start check wins when both are violated",
			start: now.Add(-time.Hour),
			end:   now.Add(-2 * time.Hour),
			errIs: booking.ErrStartInPast,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := booking.ValidatePeriod(tc.start, tc.end, now)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNew(t *testing.T) {
	t.Run("new booking starts WAITING with zero id", func(t *testing.T) {
		b, err := booking.New(10, 20, now.Add(time.Hour), now.Add(2*time.Hour), now)
		require.NoError(t, err)

		assert.Equal(t, int64(0), b.ID)
		assert.Equal(t, int64(10), b.ItemID)
		assert.Equal(t, int64(20), b.BookerID)
		assert.Equal(t, booking.StatusWaiting, b.Status)
		assert.False(t, b.Status.Terminal())
	})

	t.Run("invalid period yields zero booking", func(t *testing.T) {
		b, err := booking.New(10, 20, now.Add(-time.Hour), now.Add(time.Hour), now)
		assert.ErrorIs(t, err, booking.ErrStartInPast)
		assert.Equal(t, booking.Booking{}, b)
	})
}

func TestDecide(t *testing.T) {
	newWaiting := func(t *testing.T) booking.Booking {
		t.Helper()
		b, err := booking.New(10, 20, now.Add(time.Hour), now.Add(2*time.Hour), now)
		require.NoError(t, err)
		return b
	}

	t.Run("approve", func(t *testing.T) {
		b := newWaiting(t)
		require.NoError(t, b.Decide(true))
		assert.Equal(t, booking.StatusApproved, b.Status)
		assert.True(t, b.Status.Terminal())
	})

	t.Run("reject", func(t *testing.T) {
		b := newWaiting(t)
		require.NoError(t, b.Decide(false))
		assert.Equal(t, booking.StatusRejected, b.Status)
		assert.True(t, b.Status.Terminal())
	})

	t.Run("deciding twice fails and keeps the first decision", func(t *testing.T) {
		b := newWaiting(t)
		require.NoError(t, b.Decide(false))
		assert.ErrorIs(t, b.Decide(true), booking.ErrNotWaiting)
		assert.Equal(t, booking.StatusRejected, b.Status)
	})
}

func TestParseState(t *testing.T) {
	testCases := []struct {
		in   string
		want booking.State
	}{
		{"ALL", booking.StateAll},
		{"current", booking.StateCurrent},
		{"  Past  ", booking.StatePast},
		{"FUTURE", booking.StateFuture},
		{"waiting", booking.StateWaiting},
		{"REJECTED", booking.StateRejected},
		{"", booking.StateUnknown},
		{"APPROVED", booking.StateUnknown},
		{"garbage", booking.StateUnknown},
	}

	for _, tc := range testCases {
		t.Run("parse "+tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, booking.ParseState(tc.in))
		})
	}
}
