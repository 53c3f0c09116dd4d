package static

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGen_GeneratePosts(t *testing.T) {
	g := New()

	out, err := g.GeneratePosts(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, out, 5)

	for _, v := range out {
		assert.NotEmpty(t, v.Handle)
		assert.True(t, v.Label.IsValid())
		assert.GreaterOrEqual(t, v.Likes, 0)
	}

	// more than the fixture set cycles rather than failing
	out, err = g.GeneratePosts(context.Background(), 20)
	require.NoError(t, err)
	require.Len(t, out, 20)

	out, err = g.GeneratePosts(context.Background(), 0)
	require.NoError(t, err)
	require.Empty(t, out)
}
