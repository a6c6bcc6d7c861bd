package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		kind   Kind
		status int
	}{
		{"validation", Validation("bad"), KindValidation, http.StatusBadRequest},
		{"unauthorized", Unauthorized("who"), KindUnauthorized, http.StatusUnauthorized},
		{"forbidden", Forbidden("no"), KindForbidden, http.StatusForbidden},
		{"not found", NotFound("gone"), KindNotFound, http.StatusNotFound},
		{"unconfigured", Unconfigured("off"), KindUnconfigured, http.StatusServiceUnavailable},
		{"unexpected", Unexpected("boom", errors.New("db down")), KindUnexpected, http.StatusInternalServerError},
		{"plain error", errors.New("raw"), KindUnexpected, http.StatusInternalServerError},
		{"wrapped", fmt.Errorf("ctx: %w", NotFound("Booking not found")), KindNotFound, http.StatusNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.kind, KindOf(tc.err))
			assert.Equal(t, tc.status, Status(tc.err))
		})
	}
}

func TestMessageHidesUnexpectedCause(t *testing.T) {
	cause := errors.New("pq: connection refused")
	err := Unexpected("Failed to fetch bookings", cause)

	assert.Equal(t, "Failed to fetch bookings", Message(err))
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "Internal server error", Message(cause))
}

func TestDetail(t *testing.T) {
	assert.Equal(t, "title is required", Detail(InvalidInput(errors.New("title is required"))))
	assert.Equal(t, "Invalid input", Message(InvalidInput(errors.New("x"))))
	assert.Empty(t, Detail(Validation("bad")))
	assert.Empty(t, Detail(Unexpected("boom", errors.New("secret dsn"))))
	assert.Empty(t, Detail(errors.New("raw")))
}
