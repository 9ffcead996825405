// Package timeutil holds the duration math shared by the board, the
// allocation engine, and the UIs. Everything here is pure.
package timeutil

import (
	"math"
	"time"
)

// Quarter is the scheduling granularity for estimates and snapped blocks.
const Quarter = 15 * time.Minute

// DurationMinutes returns the whole minutes between start and end, rounded
// to the nearest minute and never negative. Inverted ranges count as zero.
func DurationMinutes(start, end time.Time) int {
	m := int(math.Round(end.Sub(start).Minutes()))
	if m < 0 {
		return 0
	}
	return m
}

// DurationHours returns the fractional hours between start and end, clamped
// at zero.
func DurationHours(start, end time.Time) float64 {
	h := end.Sub(start).Hours()
	if h < 0 {
		return 0
	}
	return h
}

// RoundToQuarterHour quantizes an hour count to 0.25 steps. Estimates are
// stored quantized so floating point noise never accumulates in the blobs.
// Non-finite or negative input quantizes to zero.
func RoundToQuarterHour(hours float64) float64 {
	if math.IsNaN(hours) || math.IsInf(hours, 0) || hours < 0 {
		return 0
	}
	return math.Round(hours*4) / 4
}

// SnapToQuarterHour rounds a timestamp to the nearest quarter hour. Used when
// a coarse gesture (a drop point, a bare --at flag) becomes a schedulable
// block boundary.
func SnapToQuarterHour(t time.Time) time.Time {
	return t.Round(Quarter)
}
