package html_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/fwojciec/splice"
	sphtml "github.com/fwojciec/splice/html"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Parser implements splice.Parser at compile time.
var _ splice.Parser = (*sphtml.Parser)(nil)

func TestParser_Parse(t *testing.T) {
	t.Parallel()

	t.Run("records name and sequence", func(t *testing.T) {
		t.Parallel()

		doc, err := sphtml.NewParser().Parse("07.html", 6, strings.NewReader(`<p>x</p>`))

		require.NoError(t, err)
		assert.Equal(t, "07.html", doc.Name)
		assert.Equal(t, 6, doc.Seq)
		assert.NotNil(t, doc.Body())
		assert.NotNil(t, doc.Head())
	})

	t.Run("numbers nodes in document order", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, "01.html", `<body><div id="a"><p id="b">x</p></div><p id="c">y</p></body>`)
		a, b, c := byID(t, doc, "a"), byID(t, doc, "b"), byID(t, doc, "c")

		assert.Equal(t, 0, doc.Index(doc.Root))
		assert.True(t, doc.Precedes(a, b))
		assert.True(t, doc.Precedes(b, c))
		assert.False(t, doc.Precedes(c, a))
		assert.True(t, splice.IsAncestor(a, b))
		assert.False(t, splice.IsAncestor(b, a))
	})

	t.Run("decodes legacy charset to UTF-8", func(t *testing.T) {
		t.Parallel()

		raw := "<html><head><meta charset=\"windows-1252\"></head><body><p id=\"x\">caf\xe9 \x96 net</p></body></html>"

		doc := parse(t, "01.html", raw)

		assert.Equal(t, "café – net", byID(t, doc, "x").FirstChild.Data)
		assert.Contains(t, string(doc.Raw), "café")
	})

	t.Run("wraps read failures as invalid", func(t *testing.T) {
		t.Parallel()

		_, err := sphtml.NewParser().Parse("01.html", 0, failingReader{})

		require.Error(t, err)
		assert.Equal(t, splice.EINVALID, splice.ErrorCode(err))
	})
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("disk error")
}
