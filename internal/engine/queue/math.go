package queue

import (
	"math/bits"

	"github.com/KirkDiggler/rpg-progression/internal/errors"
)

const maxUint64 = ^uint64(0)

// mulDiv returns a*b/d using a 128-bit intermediate
func mulDiv(a, b, d uint64) (uint64, error) {
	hi, lo := bits.Mul64(a, b)
	if hi >= d {
		return 0, errors.OutOfRangef("%d * %d / %d overflows", a, b, d)
	}
	q, _ := bits.Div64(hi, lo, d)
	return q, nil
}

func satAdd(a, b uint64) uint64 {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return maxUint64
	}
	return sum
}

func add(a, b uint64) (uint64, error) {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return 0, errors.OutOfRangef("%d + %d overflows", a, b)
	}
	return sum, nil
}

func mul(a, b uint64) (uint64, error) {
	hi, lo := bits.Mul64(a, b)
	if hi != 0 {
		return 0, errors.OutOfRangef("%d * %d overflows", a, b)
	}
	return lo, nil
}

// credit rounds t down to whole units
func credit(t, unit uint64) uint64 {
	if unit == 0 {
		return t
	}
	return t / unit * unit
}

// productiveLimit is the largest cumulative productive time for which an input consumed at
// perHour is covered by budget units.
func productiveLimit(budget, perHour, unit uint64) uint64 {
	if perHour == 0 || budget == maxUint64 {
		return maxUint64
	}
	// credit(t)*perHour/3600 <= budget  <=>  credit(t) <= ((budget+1)*3600 - 1) / perHour
	hi, lo := bits.Mul64(budget+1, secondsPerHour)
	if hi != 0 {
		return maxUint64
	}
	limit := (lo - 1) / perHour
	if unit == 0 {
		return limit
	}
	units := limit / unit
	hi, lo = bits.Mul64(units, unit)
	if hi != 0 {
		return maxUint64
	}
	limit, carry := bits.Add64(lo, unit-1, 0)
	if carry != 0 {
		return maxUint64
	}
	return limit
}
