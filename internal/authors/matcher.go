// Package authors filters commits by matching their formatted author string
// against user-supplied regular expressions.
package authors

import (
	"fmt"
	"regexp"
)

// PatternError reports a pattern that failed to compile. It is returned
// before any repository work begins.
type PatternError struct {
	Pattern string
	Err     error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid author pattern %q: %v", e.Pattern, e.Err)
}

func (e *PatternError) Unwrap() error { return e.Err }

// Matcher matches commit author strings against a compiled pattern list.
// A Matcher with no patterns matches every commit.
type Matcher struct {
	patterns []*regexp.Regexp
}

// NewMatcher compiles the given patterns. Patterns are compiled exactly as
// given; the first compile failure aborts with a *PatternError.
func NewMatcher(patterns []string) (*Matcher, error) {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, &PatternError{Pattern: p, Err: err}
		}
		compiled = append(compiled, re)
	}
	return &Matcher{patterns: compiled}, nil
}

// Match reports whether the author string matches at least one pattern.
// Matching is an unanchored search, not a full-string match.
func (m *Matcher) Match(author string) bool {
	if len(m.patterns) == 0 {
		return true
	}
	for _, re := range m.patterns {
		if re.MatchString(author) {
			return true
		}
	}
	return false
}

// Format renders the canonical author string "Name <email>" used for
// matching and for per-commit output.
func Format(name, email string) string {
	return fmt.Sprintf("%s <%s>", name, email)
}
