package views

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexus-social/nexus/internal/entities"
	"github.com/nexus-social/nexus/internal/store"
)

func testPosts() []entities.Post {
	return []entities.Post{
		{ID: "1", OwnerID: "u1", Owner: entities.User{ID: "u1", Label: entities.LabelDeveloper}},
		{ID: "2", OwnerID: "u2", Owner: entities.User{ID: "u2", Label: entities.LabelMusician}, Saved: true},
		{ID: "3", OwnerID: "u1", Owner: entities.User{ID: "u1", Label: entities.LabelDeveloper}, Saved: true},
		{ID: "4", OwnerID: "u3", Owner: entities.User{ID: "u3", Label: entities.LabelEveryone}},
	}
}

func TestFilteredFeed(t *testing.T) {
	posts := testPosts()

	assert.Equal(t, posts, FilteredFeed(posts, store.FilterAll))

	devs := FilteredFeed(posts, string(entities.LabelDeveloper))
	require.Len(t, devs, 2)
	assert.Equal(t, "1", devs[0].ID)
	assert.Equal(t, "3", devs[1].ID)

	assert.Empty(t, FilteredFeed(posts, string(entities.LabelActor)))
}

// every post appears in exactly one label partition
func TestFilteredFeed_partition(t *testing.T) {
	posts := testPosts()

	total := 0
	seen := make(map[string]int)

	for _, l := range entities.Labels() {
		for _, p := range FilteredFeed(posts, string(l)) {
			seen[p.ID]++
			total++
		}
	}

	assert.Equal(t, len(posts), total)
	for id, n := range seen {
		assert.Equal(t, 1, n, id)
	}
}

func TestProfilePosts(t *testing.T) {
	posts := testPosts()

	own := ProfilePosts(posts, "u1", TabPosts)
	require.Len(t, own, 2)
	assert.Equal(t, "1", own[0].ID)
	assert.Equal(t, "3", own[1].ID)

	saved := ProfilePosts(posts, "u1", TabSaved)
	require.Len(t, saved, 2)
	assert.Equal(t, "2", saved[0].ID)
	assert.Equal(t, "3", saved[1].ID)

	assert.Empty(t, ProfilePosts(posts, "u1", TabTagged))
	assert.Empty(t, ProfilePosts(posts, "nobody", TabPosts))
}

func TestHasUnread(t *testing.T) {
	assert.False(t, HasUnread(nil))
	assert.False(t, HasUnread([]entities.Notification{{Read: true}, {Read: true}}))
	assert.True(t, HasUnread([]entities.Notification{{Read: true}, {Read: false}}))
}
