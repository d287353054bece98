// Package text holds rune-aware string helpers shared by the translation and
// article text paths, where Devanagari input makes byte lengths misleading.
package text

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// CountRunes counts Unicode code points in s.
//
//	CountRunes("hello")  // 5
//	CountRunes("नमस्ते") // 6
func CountRunes(s string) int {
	return utf8.RuneCountInString(s)
}

// Truncate returns at most n runes of s, never splitting a code point.
// Non-positive n yields "".
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}

// CollapseWhitespace trims s and folds every run of whitespace into one
// space, keeping paragraph breaks as a single newline.
func CollapseWhitespace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	pendingSpace, pendingBreak := false, false
	for _, r := range strings.TrimSpace(s) {
		if unicode.IsSpace(r) {
			if r == '\n' {
				pendingBreak = true
			}
			pendingSpace = true
			continue
		}
		switch {
		case pendingBreak:
			b.WriteByte('\n')
		case pendingSpace:
			b.WriteByte(' ')
		}
		pendingSpace, pendingBreak = false, false
		b.WriteRune(r)
	}
	return b.String()
}
