// Package classify maps file paths to normalized extension tokens and decides
// which extensions count as analyzable text.
package classify

import "strings"

// Extension returns the normalized extension token for a path: the substring
// after the last dot of the final path segment, lower-cased, with a leading
// dot. Paths without an extension (including dotfiles like ".gitignore")
// return the empty string.
func Extension(path string) string {
	base := path
	if idx := strings.LastIndexByte(path, '/'); idx != -1 {
		base = path[idx+1:]
	}
	idx := strings.LastIndexByte(base, '.')
	if idx <= 0 {
		return ""
	}
	return strings.ToLower(base[idx:])
}

// Allowlist is a set of eligible extension tokens.
type Allowlist map[string]struct{}

// NewAllowlist builds an allowlist from extension tokens. Tokens are
// normalized to lower case with a leading dot.
func NewAllowlist(exts []string) Allowlist {
	a := make(Allowlist, len(exts))
	for _, e := range exts {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" {
			continue
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		a[e] = struct{}{}
	}
	return a
}

// Eligible reports whether the extension token is in the allowlist.
// The empty token is never eligible.
func (a Allowlist) Eligible(ext string) bool {
	_, ok := a[ext]
	return ok
}

// Classify returns the normalized extension token for a path when that token
// is eligible, or the empty string otherwise.
func (a Allowlist) Classify(path string) string {
	ext := Extension(path)
	if !a.Eligible(ext) {
		return ""
	}
	return ext
}

// textExtensions is the fixed set of text source/markup formats tracked by the
// analyzer. It is part of the output contract.
var textExtensions = []string{
	".txt", ".md", ".rs", ".py", ".js", ".ts", ".jsx", ".tsx",
	".html", ".css", ".scss", ".json", ".yaml", ".yml", ".toml",
	".c", ".cpp", ".h", ".hpp", ".java", ".go", ".rb", ".php",
}

// DefaultAllowlist returns the default text-extension allowlist.
func DefaultAllowlist() Allowlist {
	return NewAllowlist(textExtensions)
}

// DefaultExtensions returns a copy of the default extension list, in the
// order it is documented.
func DefaultExtensions() []string {
	out := make([]string, len(textExtensions))
	copy(out, textExtensions)
	return out
}
