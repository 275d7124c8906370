// Package roller derives deterministic dice rolls and coin flips from a single random word.
// The same word always produces the same sequence, so battle resolution stays a pure function
// of its inputs.
package roller

import (
	"crypto/sha256"
	"encoding/binary"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-progression/internal/errors"
)

const (
	tagRoll byte = 's'
	tagCoin byte = 'c'
)

// Seeded is a dice.Roller whose rolls are derived from a random word and a roll counter.
// It is not safe for concurrent use.
type Seeded struct {
	word    uint64
	counter uint64
}

var _ dice.Roller = (*Seeded)(nil)

// NewSeeded creates a roller keyed by word
func NewSeeded(word uint64) *Seeded {
	return &Seeded{word: word}
}

// Roll returns a value in [1, size]
func (s *Seeded) Roll(size int) (int, error) {
	if size <= 0 {
		return 0, errors.InvalidArgumentf("die size must be positive: %d", size)
	}
	v := Digest(s.word, tagRoll, s.counter)
	s.counter++
	return int(v%uint64(size)) + 1, nil
}

// RollN rolls count dice of the given size
func (s *Seeded) RollN(count, size int) ([]int, error) {
	if count < 0 {
		return nil, errors.InvalidArgumentf("dice count must not be negative: %d", count)
	}
	out := make([]int, 0, count)
	for i := 0; i < count; i++ {
		v, err := s.Roll(size)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// Shuffle permutes items in place with Fisher-Yates driven by r
func Shuffle[T any](r dice.Roller, items []T) error {
	for i := len(items) - 1; i >= 1; i-- {
		v, err := r.Roll(i + 1)
		if err != nil {
			return errors.Wrap(err, "failed to roll shuffle index")
		}
		j := v - 1
		items[i], items[j] = items[j], items[i]
	}
	return nil
}

// Coins is a cursor over the coin bitstream of a random word. Bits 0..63 are the word itself;
// later bits come from hash extension blocks.
type Coins struct {
	word   uint64
	cursor uint64
	block  uint64
	bits   uint64
}

// NewCoins creates a coin stream positioned at bit zero
func NewCoins(word uint64) *Coins {
	return &Coins{word: word, bits: word}
}

// Next returns the next coin (true for heads) and advances the cursor
func (c *Coins) Next() bool {
	if blk := c.cursor / 64; blk != c.block {
		c.block = blk
		c.bits = Digest(c.word, tagCoin, blk)
	}
	heads := (c.bits>>(c.cursor%64))&1 == 1
	c.cursor++
	return heads
}

// Flip consumes n coins and returns how many came up heads
func (c *Coins) Flip(n uint32) uint32 {
	var heads uint32
	for i := uint32(0); i < n; i++ {
		if c.Next() {
			heads++
		}
	}
	return heads
}

// Position returns the number of coins consumed so far
func (c *Coins) Position() uint64 {
	return c.cursor
}

// Digest returns the first 8 bytes, big endian, of sha256(word || tag || n)
func Digest(word uint64, tag byte, n uint64) uint64 {
	var buf [17]byte
	binary.BigEndian.PutUint64(buf[0:8], word)
	buf[8] = tag
	binary.BigEndian.PutUint64(buf[9:17], n)
	sum := sha256.Sum256(buf[:])
	return binary.BigEndian.Uint64(sum[:8])
}
