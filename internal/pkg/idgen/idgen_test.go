package idgen_test

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-progression/internal/pkg/idgen"
)

func TestUUIDGenerator(t *testing.T) {
	id := idgen.NewUUID("qa").Generate()
	require.True(t, strings.HasPrefix(id, "qa_"))
	_, err := uuid.Parse(strings.TrimPrefix(id, "qa_"))
	assert.NoError(t, err)

	assert.NotEqual(t, id, idgen.NewUUID("qa").Generate())
}

func TestSequentialGenerator(t *testing.T) {
	gen := idgen.NewSequential("qa")
	assert.Equal(t, "qa_1", gen.Generate())
	assert.Equal(t, "qa_2", gen.Generate())

	bare := idgen.NewSequential("")
	assert.Equal(t, "1", bare.Generate())
}
