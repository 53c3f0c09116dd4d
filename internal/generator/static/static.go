// Package static is a fixture content provider used when no generative
// backend is configured and in tests.
package static

import (
	"context"

	"github.com/nexus-social/nexus/internal/entities"
	"github.com/nexus-social/nexus/internal/generator"
)

// nolint:gochecknoglobals
var fixtures = []generator.PostSeed{
	{Name: "Jane Doyle", Handle: "@dev_jane", Label: entities.LabelDeveloper, Caption: "Shipped the dark mode rewrite today. 4000 lines gone.", Likes: 231},
	{Name: "Marcus Vee", Handle: "@marcus_onstage", Label: entities.LabelActor, Caption: "Table read for season two. Can't say more yet.", Likes: 1890},
	{Name: "Lena Okafor", Handle: "@lena_keys", Label: entities.LabelMusician, Caption: "New single drops Friday. Studio sunrise photo dump.", Likes: 987},
	{Name: "Teo Aranda", Handle: "@teo_paints", Label: entities.LabelArtist, Caption: "Gallery opening recap. Thank you all for coming.", Likes: 412},
	{Name: "Priya Nand", Handle: "@priya_builds", Label: entities.LabelEntrepreneur, Caption: "We just closed our seed round. Hiring engineers #3 to #7.", Likes: 1544},
	{Name: "Sam Loyd", Handle: "@sam_everywhere", Label: entities.LabelEveryone, Caption: "Weekend ride along the coast.", Likes: 77},
	{Name: "Ana Brandt", Handle: "@ana_codes", Label: entities.LabelDeveloper, Caption: "Hot take: code review is a design activity, not a gate.", Likes: 623},
	{Name: "Kofi Mensah", Handle: "@kofi_frets", Label: entities.LabelMusician, Caption: "Sound check done. Doors at eight.", Likes: 305},
}

type gen struct{}

// New creates a fixture-backed generator.
func New() generator.Generator {
	return gen{}
}

// GeneratePosts returns up to count fixture seeds, cycling through the
// fixture set when count exceeds it.
func (gen) GeneratePosts(_ context.Context, count int) ([]generator.PostSeed, error) {
	if count <= 0 {
		return nil, nil
	}

	out := make([]generator.PostSeed, count)
	for i := 0; i < count; i++ {
		out[i] = fixtures[i%len(fixtures)]
	}

	return out, nil
}
