package splice

// StyleKind identifies where a style rule came from.
type StyleKind int

// Style rule kinds.
const (
	// StyleBlock is the body of a <style> element.
	StyleBlock StyleKind = iota
	// StyleLink is a serialized <link rel="stylesheet"> tag.
	StyleLink
	// StyleInline is a CSS rule matched in raw header text outside any
	// <style> element.
	StyleInline
)

// StyleRule is an opaque presentational rule collected from a document.
type StyleRule struct {
	Kind StyleKind
	Text string
}

// StyleSet accumulates style rules for a session, deduplicated by exact
// text equality and kept in first-seen order.
type StyleSet struct {
	rules []StyleRule
	seen  map[string]struct{}
}

// NewStyleSet returns an empty StyleSet.
func NewStyleSet() *StyleSet {
	return &StyleSet{seen: make(map[string]struct{})}
}

// Add appends rule unless a rule with identical text was added before.
// Returns false for duplicates and empty rules.
func (s *StyleSet) Add(rule StyleRule) bool {
	if rule.Text == "" {
		return false
	}
	if _, ok := s.seen[rule.Text]; ok {
		return false
	}
	s.seen[rule.Text] = struct{}{}
	s.rules = append(s.rules, rule)
	return true
}

// AddAll adds every rule and returns how many were new.
func (s *StyleSet) AddAll(rules []StyleRule) int {
	var n int
	for _, r := range rules {
		if s.Add(r) {
			n++
		}
	}
	return n
}

// Rules returns a copy of the collected rules in first-seen order.
func (s *StyleSet) Rules() []StyleRule {
	return append([]StyleRule(nil), s.rules...)
}

// Len returns the number of distinct rules.
func (s *StyleSet) Len() int {
	return len(s.rules)
}

// StyleCollector scans a document's metadata region for style rules.
type StyleCollector interface {
	Collect(doc *Document) []StyleRule
}
