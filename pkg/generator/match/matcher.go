package match

import (
	"github.com/Amr-9/VanityHunter/pkg/generator"
)

// Matcher tests addresses against one literal pattern.
// The pattern is pre-processed once so Matches does no allocation.
type Matcher struct {
	pattern       []byte
	mode          generator.VanityMode
	caseSensitive bool
	skip          *skipTable // Anywhere + case-insensitive + Horspool length
}

// NewMatcher creates a Matcher for a Prefix, Suffix or Anywhere pattern.
// Case-insensitive patterns are lowered here.
func NewMatcher(pattern string, mode generator.VanityMode, caseSensitive bool) *Matcher {
	m := &Matcher{
		pattern:       []byte(pattern),
		mode:          mode,
		caseSensitive: caseSensitive,
	}
	if !caseSensitive {
		m.pattern = Lower(m.pattern)
		if mode == generator.Anywhere && AlgorithmFor(len(m.pattern)) == Horspool {
			m.skip = newSkipTable(m.pattern)
		}
	}
	return m
}

// Pattern returns the pattern as it is compared (lowered when case-insensitive).
func (m *Matcher) Pattern() string {
	return string(m.pattern)
}

// Matches checks if the address satisfies the pattern for the configured mode.
// Regex mode is not handled here and never matches.
func (m *Matcher) Matches(addr []byte) bool {
	if m.caseSensitive {
		switch m.mode {
		case generator.Prefix:
			return HasPrefix(addr, m.pattern)
		case generator.Suffix:
			return HasSuffix(addr, m.pattern)
		case generator.Anywhere:
			return Contains(addr, m.pattern)
		}
		return false
	}

	switch m.mode {
	case generator.Prefix:
		return HasPrefixFold(addr, m.pattern)
	case generator.Suffix:
		return HasSuffixFold(addr, m.pattern)
	case generator.Anywhere:
		if m.skip != nil {
			return len(m.pattern) <= len(addr) && m.skip.contains(addr, m.pattern)
		}
		return ContainsFold(addr, m.pattern)
	}
	return false
}
