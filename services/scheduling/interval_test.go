package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"slotify/models"
)

func iv(t *testing.T, start, end string) models.TimeInterval {
	t.Helper()
	s, err := time.Parse(time.RFC3339, start)
	if err != nil {
		t.Fatalf("bad start %q: %v", start, err)
	}
	e, err := time.Parse(time.RFC3339, end)
	if err != nil {
		t.Fatalf("bad end %q: %v", end, err)
	}
	return models.TimeInterval{Start: s, End: e}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b models.TimeInterval
		want bool
	}{
		{
			name: "identical intervals",
			a:    iv(t, "2026-03-02T14:00:00Z", "2026-03-02T14:30:00Z"),
			b:    iv(t, "2026-03-02T14:00:00Z", "2026-03-02T14:30:00Z"),
			want: true,
		},
		{
			name: "partial overlap",
			a:    iv(t, "2026-03-02T14:00:00Z", "2026-03-02T15:00:00Z"),
			b:    iv(t, "2026-03-02T14:30:00Z", "2026-03-02T15:30:00Z"),
			want: true,
		},
		{
			name: "containment",
			a:    iv(t, "2026-03-02T14:00:00Z", "2026-03-02T16:00:00Z"),
			b:    iv(t, "2026-03-02T14:30:00Z", "2026-03-02T15:00:00Z"),
			want: true,
		},
		{
			name: "boundary touch is not overlap",
			a:    iv(t, "2026-03-02T14:00:00Z", "2026-03-02T14:30:00Z"),
			b:    iv(t, "2026-03-02T14:30:00Z", "2026-03-02T15:00:00Z"),
			want: false,
		},
		{
			name: "disjoint",
			a:    iv(t, "2026-03-02T09:00:00Z", "2026-03-02T10:00:00Z"),
			b:    iv(t, "2026-03-02T12:00:00Z", "2026-03-02T13:00:00Z"),
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.a, tt.b))
			assert.Equal(t, tt.want, Overlaps(tt.b, tt.a), "overlap must be symmetric")
		})
	}
}

func TestExpand(t *testing.T) {
	base := iv(t, "2026-03-02T10:00:00Z", "2026-03-02T10:30:00Z")

	expanded := Expand(base, 15, 15)
	assert.Equal(t, iv(t, "2026-03-02T09:45:00Z", "2026-03-02T10:45:00Z"), expanded)

	// Zero buffers leave the interval untouched.
	assert.Equal(t, base, Expand(base, 0, 0))

	// Asymmetric buffers.
	assert.Equal(t, iv(t, "2026-03-02T09:30:00Z", "2026-03-02T10:40:00Z"), Expand(base, 30, 10))
}

func TestExpandDoesNotMutateInput(t *testing.T) {
	base := iv(t, "2026-03-02T10:00:00Z", "2026-03-02T10:30:00Z")
	want := base
	_ = Expand(base, 60, 60)
	assert.Equal(t, want, base)
}

func TestNewTimeInterval(t *testing.T) {
	start := time.Date(2026, 3, 2, 14, 0, 0, 0, time.UTC)

	_, err := models.NewTimeInterval(start, start.Add(30*time.Minute))
	assert.NoError(t, err)

	_, err = models.NewTimeInterval(start, start)
	assert.Error(t, err, "zero-length intervals are invalid")

	_, err = models.NewTimeInterval(start, start.Add(-time.Minute))
	assert.Error(t, err, "inverted intervals are invalid")
}
