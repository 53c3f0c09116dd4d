package media

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexus-social/nexus/internal/entities"
)

func TestRegistry(t *testing.T) {
	r := NewRegistry()

	o := r.Add("cat.png", "image/png", []byte{1, 2, 3})
	require.NotEmpty(t, o.ID)
	assert.Equal(t, "/v1/media/"+o.ID, o.URL())

	got, ok := r.Get(o.ID)
	require.True(t, ok)
	assert.Equal(t, o, got)

	_, ok = r.Get("missing")
	assert.False(t, ok)
}

func TestTypeOf(t *testing.T) {
	assert.Equal(t, entities.MediaVideo, TypeOf("video/mp4"))
	assert.Equal(t, entities.MediaImage, TypeOf("image/png"))
	assert.Equal(t, entities.MediaImage, TypeOf("application/octet-stream"))
}
