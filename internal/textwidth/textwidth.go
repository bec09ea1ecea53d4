// ABOUTME: Display-width measurement for chart chrome: titles, labels, legend text
// ABOUTME: ANSI escapes count zero; grapheme clusters measure via runewidth

package textwidth

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Visible returns the number of terminal columns s occupies. ANSI escape
// sequences contribute nothing; wide runes (CJK, emoji) count per cell.
func Visible(s string) int {
	if s == "" {
		return 0
	}
	if plainASCII(s) {
		return len(s)
	}
	stripped := StripANSI(s)
	w := 0
	state := -1
	for len(stripped) > 0 {
		cluster, rest, _, next := uniseg.FirstGraphemeClusterInString(stripped, state)
		r, _ := utf8.DecodeRuneInString(cluster)
		w += runewidth.RuneWidth(r)
		stripped = rest
		state = next
	}
	return w
}

// plainASCII reports whether s is printable ASCII with no escapes, the fast
// path for uncolored labels.
func plainASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] > 0x7E {
			return false
		}
	}
	return true
}

// StripANSI removes CSI and OSC escape sequences from s.
func StripANSI(s string) string {
	if !strings.ContainsRune(s, '\x1b') {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	i := 0
	for i < len(s) {
		if s[i] == '\x1b' {
			i = skipSequence(s, i)
			continue
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String()
}

// skipSequence advances past the escape sequence starting at s[i] and
// returns the index of the first byte after it.
func skipSequence(s string, i int) int {
	i++ // ESC
	if i >= len(s) {
		return i
	}
	switch s[i] {
	case '[': // CSI: parameters then a final byte in 0x40-0x7E
		i++
		for i < len(s) {
			if s[i] >= 0x40 && s[i] <= 0x7E {
				return i + 1
			}
			i++
		}
		return i
	case ']': // OSC: terminated by BEL or ST
		i++
		for i < len(s) {
			if s[i] == '\a' {
				return i + 1
			}
			if s[i] == '\x1b' && i+1 < len(s) && s[i+1] == '\\' {
				return i + 2
			}
			i++
		}
		return i
	default: // two-byte ESC sequence
		return i + 1
	}
}
