package booking

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTime(t *testing.T, s string) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, s)
	require.NoError(t, err)
	return ts
}

func TestNewShareCode(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		code := newShareCode()
		require.Len(t, code, shareCodeLength)
		for _, r := range code {
			assert.True(t, strings.ContainsRune(shareCodeAlphabet, r), "unexpected rune %q in %q", r, code)
		}
		seen[code] = true
	}
	// 100 draws from a 31^6 space should essentially never collide.
	assert.Greater(t, len(seen), 95)
}

func TestValidateCreateRequest(t *testing.T) {
	base := func() *CreateBookingRequest {
		return &CreateBookingRequest{
			EventTypeID:  "et-1",
			Start:        mustTime(t, "2026-03-02T09:00:00Z"),
			InviteeEmail: "guest@example.com",
			InviteeName:  "Guest",
		}
	}

	req := base()
	require.NoError(t, validateCreateRequest(req))
	assert.Equal(t, "UTC", req.Timezone, "empty timezone defaults to UTC")

	cases := []struct {
		name  string
		mut   func(*CreateBookingRequest)
		field string
	}{
		{"missing event type", func(r *CreateBookingRequest) { r.EventTypeID = "" }, "eventTypeId"},
		{"zero start", func(r *CreateBookingRequest) { r.Start = mustTime(t, "0001-01-01T00:00:00Z") }, "start"},
		{"bad email", func(r *CreateBookingRequest) { r.InviteeEmail = "not-an-email" }, "inviteeEmail"},
		{"blank name", func(r *CreateBookingRequest) { r.InviteeName = "  " }, "inviteeName"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := base()
			tc.mut(req)
			err := validateCreateRequest(req)
			var valErr *ValidationError
			require.ErrorAs(t, err, &valErr)
			assert.Equal(t, tc.field, valErr.Field)
		})
	}
}
