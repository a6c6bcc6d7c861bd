package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookingTransitions(t *testing.T) {
	cases := []struct {
		from, to BookingStatus
		ok       bool
	}{
		{StatusPending, StatusAccepted, true},
		{StatusPending, StatusCancelled, true},
		{StatusAccepted, StatusCompleted, true},
		{StatusPending, StatusCompleted, false},
		{StatusPending, StatusPending, false},
		{StatusAccepted, StatusCancelled, false},
		{StatusAccepted, StatusPending, false},
		{StatusCompleted, StatusPending, false},
		{StatusCancelled, StatusAccepted, false},
	}

	for _, tc := range cases {
		err := tc.from.CheckTransition(tc.to)
		if tc.ok {
			assert.NoError(t, err, "%s -> %s", tc.from, tc.to)
		} else {
			assert.Error(t, err, "%s -> %s", tc.from, tc.to)
		}
	}
}

func TestTransitionErrorMessage(t *testing.T) {
	assert.EqualError(t, StatusCompleted.CheckTransition(StatusPending), "no transitions allowed from completed")
	assert.EqualError(t, StatusPending.CheckTransition(StatusCompleted), "invalid transition from pending to completed")
}

func TestParseBookingStatus(t *testing.T) {
	for _, s := range []string{"pending", "accepted", "completed", "cancelled"} {
		_, ok := ParseBookingStatus(s)
		assert.True(t, ok, s)
	}

	_, ok := ParseBookingStatus("confirmed")
	assert.False(t, ok)
	assert.True(t, StatusCancelled.IsTerminal())
	assert.False(t, StatusAccepted.IsTerminal())
}
