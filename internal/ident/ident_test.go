package ident

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	seen := make(map[string]struct{})

	for i := 0; i < 1000; i++ {
		id := New()
		require.NotEmpty(t, id)

		_, ok := seen[id]
		require.False(t, ok)
		seen[id] = struct{}{}
	}
}

func TestSeed(t *testing.T) {
	assert.Equal(t, Seed("abc", 1000), Seed("abc", 1000))
	assert.Less(t, Seed("abc", 1000), uint32(1000))
	assert.NotEqual(t, Seed("abc", 1000000), Seed("abd", 1000000))
}
