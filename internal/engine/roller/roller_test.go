package roller_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-progression/internal/engine/roller"
	"github.com/KirkDiggler/rpg-progression/internal/errors"
)

func TestSeeded_Roll(t *testing.T) {
	t.Run("fixed sequence for a word", func(t *testing.T) {
		r := roller.NewSeeded(7)
		rolls, err := r.RollN(5, 6)
		require.NoError(t, err)
		assert.Equal(t, []int{1, 1, 6, 1, 4}, rolls)
	})

	t.Run("same word same sequence", func(t *testing.T) {
		a, err := roller.NewSeeded(42).RollN(20, 20)
		require.NoError(t, err)
		b, err := roller.NewSeeded(42).RollN(20, 20)
		require.NoError(t, err)
		assert.Equal(t, a, b)
		for _, v := range a {
			assert.GreaterOrEqual(t, v, 1)
			assert.LessOrEqual(t, v, 20)
		}
	})

	t.Run("invalid size", func(t *testing.T) {
		_, err := roller.NewSeeded(1).Roll(0)
		require.Error(t, err)
		assert.True(t, errors.IsInvalidArgument(err))
	})

	t.Run("negative count", func(t *testing.T) {
		_, err := roller.NewSeeded(1).RollN(-1, 6)
		require.Error(t, err)
		assert.True(t, errors.IsInvalidArgument(err))
	})
}

func TestShuffle(t *testing.T) {
	items := []int{1, 2, 3, 4}
	require.NoError(t, roller.Shuffle(roller.NewSeeded(1), items))
	assert.Equal(t, []int{1, 3, 4, 2}, items)

	items = []int{1, 2, 3, 4}
	require.NoError(t, roller.Shuffle(roller.NewSeeded(2), items))
	assert.Equal(t, []int{2, 3, 4, 1}, items)

	single := []string{"only"}
	require.NoError(t, roller.Shuffle(roller.NewSeeded(9), single))
	assert.Equal(t, []string{"only"}, single)
}

func TestCoins(t *testing.T) {
	t.Run("low bits come from the word", func(t *testing.T) {
		c := roller.NewCoins(0b1101)
		assert.True(t, c.Next())
		assert.False(t, c.Next())
		assert.True(t, c.Next())
		assert.True(t, c.Next())
		assert.False(t, c.Next())
		assert.Equal(t, uint64(5), c.Position())
	})

	t.Run("flip counts heads", func(t *testing.T) {
		c := roller.NewCoins(0b0111)
		assert.Equal(t, uint32(2), c.Flip(2))
		assert.Equal(t, uint32(1), c.Flip(2))
		assert.Equal(t, uint32(0), c.Flip(3))
	})

	t.Run("extension blocks after 64 coins", func(t *testing.T) {
		word := uint64(12345)
		c := roller.NewCoins(word)
		c.Flip(64)

		ext := roller.Digest(word, 'c', 1)
		for k := 0; k < 64; k++ {
			assert.Equal(t, (ext>>k)&1 == 1, c.Next(), "bit %d", k)
		}
	})
}
