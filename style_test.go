package splice_test

import (
	"testing"

	"github.com/fwojciec/splice"
	"github.com/stretchr/testify/assert"
)

func TestStyleSet(t *testing.T) {
	t.Parallel()

	t.Run("deduplicates by exact text", func(t *testing.T) {
		t.Parallel()

		set := splice.NewStyleSet()

		assert.True(t, set.Add(splice.StyleRule{Kind: splice.StyleBlock, Text: "td { padding: 0 }"}))
		assert.False(t, set.Add(splice.StyleRule{Kind: splice.StyleBlock, Text: "td { padding: 0 }"}))
		assert.Equal(t, 1, set.Len())
	})

	t.Run("deduplicates across kinds", func(t *testing.T) {
		t.Parallel()

		set := splice.NewStyleSet()
		set.Add(splice.StyleRule{Kind: splice.StyleBlock, Text: "p { margin: 0 }"})
		set.Add(splice.StyleRule{Kind: splice.StyleInline, Text: "p { margin: 0 }"})

		assert.Equal(t, 1, set.Len())
	})

	t.Run("keeps whitespace variants distinct", func(t *testing.T) {
		t.Parallel()

		set := splice.NewStyleSet()
		set.Add(splice.StyleRule{Text: "p{margin:0}"})
		set.Add(splice.StyleRule{Text: "p { margin: 0 }"})

		assert.Equal(t, 2, set.Len())
	})

	t.Run("preserves first-seen order", func(t *testing.T) {
		t.Parallel()

		set := splice.NewStyleSet()
		n := set.AddAll([]splice.StyleRule{
			{Text: "b"},
			{Text: "a"},
			{Text: "b"},
			{Text: "c"},
		})

		assert.Equal(t, 3, n)
		var texts []string
		for _, r := range set.Rules() {
			texts = append(texts, r.Text)
		}
		assert.Equal(t, []string{"b", "a", "c"}, texts)
	})

	t.Run("ignores empty rules", func(t *testing.T) {
		t.Parallel()

		set := splice.NewStyleSet()

		assert.False(t, set.Add(splice.StyleRule{}))
		assert.Equal(t, 0, set.Len())
	})
}
