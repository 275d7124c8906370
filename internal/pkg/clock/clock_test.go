package clock_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/rpg-progression/internal/pkg/clock"
)

func TestFixed(t *testing.T) {
	start := time.Unix(1_700_000_000, 0)
	c := clock.NewFixed(start)
	assert.Equal(t, uint64(1_700_000_000), clock.Unix(c))

	c.Advance(90 * time.Second)
	assert.Equal(t, uint64(1_700_000_090), clock.Unix(c))
}

func TestUnix_BeforeEpoch(t *testing.T) {
	c := clock.NewFixed(time.Unix(-5, 0))
	assert.Equal(t, uint64(0), clock.Unix(c))
}
