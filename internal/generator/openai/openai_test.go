package openai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexus-social/nexus/internal/entities"
)

func Test_parseSeeds(t *testing.T) {
	tt := []struct {
		name string
		in   string

		count int
		err   bool
	}{
		{
			name:  "plain",
			in:    `[{"name":"Jane","handle":"@jane_dev","label":"Developer","caption":"hello","likes":10}]`,
			count: 1,
		},
		{
			name: "fenced",
			in: "```json\n" +
				`[{"name":"Jane","handle":"@jane_dev","label":"Developer","caption":"hello","likes":10}]` +
				"\n```",
			count: 1,
		},
		{
			name:  "empty array",
			in:    `[]`,
			count: 0,
		},
		{
			name: "not json",
			in:   "sorry, I cannot do that",
			err:  true,
		},
		{
			name:  "missing handle dropped",
			in:    `[{"name":"Jane","label":"Developer","caption":"hello","likes":10}]`,
			count: 0,
		},
	}

	for i := range tt {
		tc := tt[i]

		t.Run(tc.name, func(t *testing.T) {
			out, err := parseSeeds(tc.in)

			if tc.err {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Len(t, out, tc.count)
		})
	}
}

func Test_parseSeeds_normalization(t *testing.T) {
	out, err := parseSeeds(`[{"name":"Jane","handle":"@jane","label":"Astronaut","caption":"c","likes":-5}]`)
	require.NoError(t, err)
	require.Len(t, out, 1)

	assert.Equal(t, entities.LabelEveryone, out[0].Label)
	assert.Zero(t, out[0].Likes)
}
