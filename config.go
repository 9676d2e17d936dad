package splice

import (
	"sort"
	"strings"

	"golang.org/x/net/html"
)

// Default configuration values.
const (
	DefaultWrapperPrefix = "ix:"
	DefaultTitle         = "Extracted Section"
	DefaultProfile       = "balance-sheet"
)

// DefaultTags is the locator's default tag priority: heading levels first,
// then inline emphasis and generic block and inline containers.
var DefaultTags = []string{"h1", "h2", "h3", "h4", "h5", "h6", "p", "b", "strong", "font", "span", "td", "div"}

// Markers is the literal (start, end) heading pair bounding a section.
type Markers struct {
	Start string `yaml:"start"`
	End   string `yaml:"end"`
}

// Validate returns an error if the marker pair cannot bound a section.
func (m Markers) Validate() error {
	if strings.TrimSpace(m.Start) == "" {
		return Errorf(EINVALID, "start marker required")
	}
	if strings.TrimSpace(m.End) == "" {
		return Errorf(EINVALID, "end marker required")
	}
	if m.Start == m.End {
		return Errorf(EINVALID, "start and end markers must differ")
	}
	return nil
}

// Config holds the settings of one extraction run.
type Config struct {
	Markers Markers

	// Tags lists candidate tag names for the marker locator in priority order.
	Tags []string

	// WrapperPrefix identifies inline tagging elements the sanitizer unwraps.
	WrapperPrefix string

	// Title is written to the assembled document's <title>.
	Title string
}

// Validate returns an error if the config contains invalid fields.
func (c *Config) Validate() error {
	if err := c.Markers.Validate(); err != nil {
		return err
	}
	if len(c.Tags) == 0 {
		return Errorf(EINVALID, "at least one locator tag required")
	}
	for _, tag := range c.Tags {
		if strings.TrimSpace(tag) == "" {
			return Errorf(EINVALID, "locator tags must not be empty")
		}
	}
	return nil
}

// DefaultConfig returns the configuration of the default profile.
func DefaultConfig() Config {
	p := BuiltinProfiles()[DefaultProfile]
	return p.Config()
}

// Profile is a named, partially specified Config. Empty fields fall back
// to the defaults when converted with Config.
type Profile struct {
	Start         string   `yaml:"start"`
	End           string   `yaml:"end"`
	Tags          []string `yaml:"tags"`
	WrapperPrefix string   `yaml:"wrapper_prefix"`
	Title         string   `yaml:"title"`
}

// Config expands the profile into a full Config.
func (p Profile) Config() Config {
	c := Config{
		Markers:       Markers{Start: p.Start, End: p.End},
		Tags:          append([]string(nil), p.Tags...),
		WrapperPrefix: p.WrapperPrefix,
		Title:         p.Title,
	}
	if len(c.Tags) == 0 {
		c.Tags = append([]string(nil), DefaultTags...)
	}
	if c.WrapperPrefix == "" {
		c.WrapperPrefix = DefaultWrapperPrefix
	}
	if c.Title == "" {
		c.Title = DefaultTitle
	}
	return c
}

// BuiltinProfiles returns the marker profiles available without a config file.
func BuiltinProfiles() map[string]Profile {
	return map[string]Profile{
		"balance-sheet": {
			Start: "CONSOLIDATED BALANCE SHEETS",
			End:   "CONSOLIDATED STATEMENTS OF OPERATIONS",
			Title: "Consolidated Balance Sheets",
		},
		"income-statement": {
			Start: "CONSOLIDATED STATEMENTS OF OPERATIONS",
			End:   "CONSOLIDATED STATEMENTS OF COMPREHENSIVE INCOME",
			Title: "Consolidated Statements of Operations",
		},
		"cash-flows": {
			Start: "CONSOLIDATED STATEMENTS OF CASH FLOWS",
			End:   "NOTES TO CONSOLIDATED FINANCIAL STATEMENTS",
			Title: "Consolidated Statements of Cash Flows",
		},
	}
}

// ProfileNames returns the sorted names of a profile set.
func ProfileNames(profiles map[string]Profile) []string {
	names := make([]string, 0, len(profiles))
	for name := range profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// MarkerLocator finds section boundary nodes.
type MarkerLocator interface {
	// Locate returns the node whose flattened text contains marker, or nil
	// if the document has none. Candidate tags are tried in priority order
	// and the first tag type yielding a match wins.
	Locate(doc *Document, marker string) *html.Node

	// LocateAfter is Locate restricted to candidates that follow after
	// (see Follows). It finds the end marker of a section whose heading
	// text also appears earlier in the document, e.g. in an index.
	LocateAfter(doc *Document, marker string, after *html.Node) *html.Node
}
