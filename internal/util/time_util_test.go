package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func Test_DateKey(t *testing.T) {
	ts := time.Date(2025, 6, 1, 17, 30, 45, 12, time.UTC)
	require.Equal(t, NewDate(2025, 6, 1), DateKey(ts))
}

func Test_DaysBetween(t *testing.T) {
	t.Run("same day counts as one", func(t *testing.T) {
		d := NewDate(2025, 6, 1)
		require.Equal(t, 1, DaysBetween(d, d))
	})

	t.Run("inclusive of both endpoints", func(t *testing.T) {
		require.Equal(t, 3, DaysBetween(NewDate(2025, 6, 1), NewDate(2025, 6, 3)))
	})

	t.Run("spans month boundaries", func(t *testing.T) {
		require.Equal(t, 2, DaysBetween(NewDate(2025, 6, 30), NewDate(2025, 7, 1)))
	})
}

func Test_EachDate(t *testing.T) {
	t.Run("lists every date inclusive", func(t *testing.T) {
		dates := EachDate(NewDate(2025, 6, 29), NewDate(2025, 7, 1))
		require.Equal(t, []time.Time{
			NewDate(2025, 6, 29),
			NewDate(2025, 6, 30),
			NewDate(2025, 7, 1),
		}, dates)
	})

	t.Run("single day range", func(t *testing.T) {
		d := NewDate(2025, 6, 1)
		require.Equal(t, []time.Time{d}, EachDate(d, d))
	})

	t.Run("inverted range is empty", func(t *testing.T) {
		require.Empty(t, EachDate(NewDate(2025, 6, 2), NewDate(2025, 6, 1)))
	})
}

func Test_ParseDate(t *testing.T) {
	d, err := ParseDate("2025-06-01")
	require.NoError(t, err)
	require.Equal(t, NewDate(2025, 6, 1), d)
	require.Equal(t, "2025-06-01", FormatDate(d))

	_, err = ParseDate("06/01/2025")
	require.Error(t, err)
}
