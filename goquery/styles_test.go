package goquery_test

import (
	"testing"

	"github.com/fwojciec/splice"
	"github.com/fwojciec/splice/goquery"
	"github.com/stretchr/testify/assert"
)

// Ensure StyleCollector implements splice.StyleCollector at compile time.
var _ splice.StyleCollector = (*goquery.StyleCollector)(nil)

func TestStyleCollector_Collect(t *testing.T) {
	t.Parallel()

	t.Run("collects style blocks and stylesheet links", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<html><head>`+
			`<style>td { font-size: 8pt }</style>`+
			`<link rel="stylesheet" href="filing.css">`+
			`<link rel="icon" href="favicon.ico">`+
			`<style>  </style>`+
			`</head><body><p>x</p></body></html>`)

		rules := goquery.NewStyleCollector().Collect(doc)

		assert.Equal(t, []splice.StyleRule{
			{Kind: splice.StyleBlock, Text: "td { font-size: 8pt }"},
			{Kind: splice.StyleLink, Text: `<link rel="stylesheet" href="filing.css"/>`},
		}, rules)
	})

	t.Run("matches rel tokens case-insensitively", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<html><head><link rel="Alternate StyleSheet" href="print.css"></head><body></body></html>`)

		rules := goquery.NewStyleCollector().Collect(doc)

		assert.Len(t, rules, 1)
		assert.Equal(t, splice.StyleLink, rules[0].Kind)
	})

	t.Run("ignores styles in the body", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<html><head></head><body><style>p { color: red }</style></body></html>`)

		assert.Empty(t, goquery.NewStyleCollector().Collect(doc))
	})

	t.Run("recovers bare rules from malformed headers", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<html><head><title>10-K</title>`+
			`.c1 { text-align: right } td.num { padding: 0 2pt; }`+
			`</head><body><p>x</p></body></html>`)

		rules := goquery.NewStyleCollector().Collect(doc)

		assert.Equal(t, []splice.StyleRule{
			{Kind: splice.StyleInline, Text: ".c1 { text-align: right }"},
			{Kind: splice.StyleInline, Text: "td.num { padding: 0 2pt; }"},
		}, rules)
	})
}

func TestInlineRules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{
			name: "skips rules inside style elements",
			raw:  `<head><style>p { margin: 0 }</style></head><body>`,
			want: nil,
		},
		{
			name: "skips rules inside comments",
			raw:  `<head><!-- p { margin: 0 } --></head><body>`,
			want: nil,
		},
		{
			name: "stops at the body",
			raw:  `<head></head><body>p { margin: 0 }</body>`,
			want: nil,
		},
		{
			name: "header closed by body only",
			raw:  `<title>x</title>b{font-weight:bold}<body><p>y</p>`,
			want: []string{"b{font-weight:bold}"},
		},
		{
			name: "no header region",
			raw:  `<p>a { b: c }</p>`,
			want: nil,
		},
		{
			name: "requires a declaration",
			raw:  `<head>Note {1}</head>`,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, goquery.InlineRules([]byte(tt.raw)))
		})
	}
}
