// Package overlap computes intersections of half-open time intervals
package overlap

// Interval is the half-open range [Start, Start+Duration)
type Interval struct {
	Start    uint64
	Duration uint64
}

// End returns the exclusive end of the interval, saturating at the uint64 max
func (i Interval) End() uint64 {
	return saturatingAdd(i.Start, i.Duration)
}

// Empty reports whether the interval covers no time
func (i Interval) Empty() bool {
	return i.Duration == 0
}

// Intersect returns the common part of a and b. Disjoint or touching intervals
// produce an empty interval.
func Intersect(a, b Interval) Interval {
	start := max(a.Start, b.Start)
	end := min(a.End(), b.End())
	if end <= start {
		return Interval{Start: start}
	}
	return Interval{Start: start, Duration: end - start}
}

// BoostedTime returns how long the boost window [boostStart, boostStart+boostDuration)
// overlaps the action window [actionStart, actionStart+actionDuration).
// The result is symmetric in the two intervals.
func BoostedTime(actionStart, actionDuration, boostStart, boostDuration uint64) uint64 {
	return Intersect(
		Interval{Start: actionStart, Duration: actionDuration},
		Interval{Start: boostStart, Duration: boostDuration},
	).Duration
}

func saturatingAdd(a, b uint64) uint64 {
	sum := a + b
	if sum < a {
		return ^uint64(0)
	}
	return sum
}
