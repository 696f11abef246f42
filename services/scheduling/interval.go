package scheduling

import (
	"time"

	"slotify/models"
)

// Overlaps reports whether two half-open intervals intersect.
// Intervals that merely touch at a boundary do not overlap.
func Overlaps(a, b models.TimeInterval) bool {
	return a.Start.Before(b.End) && b.Start.Before(a.End)
}

// Expand widens an interval by before minutes at the start and after
// minutes at the end. Used to materialize buffer zones around existing
// bookings before overlap testing.
func Expand(iv models.TimeInterval, before, after int) models.TimeInterval {
	return models.TimeInterval{
		Start: iv.Start.Add(-time.Duration(before) * time.Minute),
		End:   iv.End.Add(time.Duration(after) * time.Minute),
	}
}
