// Package levels maps accumulated experience to skill levels
package levels

import (
	"sort"

	"github.com/KirkDiggler/rpg-progression/internal/errors"
)

// MaxLevel is the highest reachable level. Experience beyond the last threshold saturates here.
const MaxLevel = 100

// thresholds[i] is the minimum experience required for level i+1
var thresholds = [MaxLevel]uint64{
	0, 83, 173, 270, 373, 484, 604, 732, 869, 1016,
	1174, 1344, 1526, 1721, 1929, 2153, 2393, 2650, 2925, 3220,
	3536, 3875, 4238, 4627, 5044, 5490, 5968, 6481, 7030, 7618,
	8248, 8922, 9645, 10420, 11249, 12138, 13091, 14111, 15204, 16375,
	17630, 18974, 20415, 21958, 23611, 25383, 27281, 29314, 31494, 33829,
	36331, 39011, 41884, 44962, 48260, 51794, 55581, 59639, 63987, 68647,
	73641, 78992, 84726, 90871, 97455, 104512, 112074, 120178, 128863, 138170,
	148144, 158833, 170288, 182564, 195720, 209819, 224929, 241122, 258476, 277075,
	297007, 318369, 341263, 365799, 392094, 420276, 450479, 482848, 517539, 554719,
	594566, 637271, 683040, 732093, 784665, 841009, 901395, 966114, 1035476, 1109796,
}

// LevelForXP returns the largest level whose threshold is at or below xp.
func LevelForXP(xp uint64) uint32 {
	// first index whose threshold exceeds xp
	idx := sort.Search(MaxLevel, func(i int) bool {
		return thresholds[i] > xp
	})
	return uint32(idx)
}

// XPForLevel returns the minimum experience required to reach level
func XPForLevel(level uint32) (uint64, error) {
	if level == 0 {
		return 0, errors.InvalidArgument("level must be at least 1")
	}
	if level > MaxLevel {
		return 0, errors.OutOfRangef("level %d exceeds max level %d", level, MaxLevel)
	}
	return thresholds[level-1], nil
}

// Thresholds returns a copy of the level table
func Thresholds() []uint64 {
	out := make([]uint64, MaxLevel)
	copy(out, thresholds[:])
	return out
}
