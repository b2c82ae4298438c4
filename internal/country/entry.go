package country

import (
	"strings"

	"github.com/rivo/uniseg"
)

// flagBase is the distance between REGIONAL INDICATOR SYMBOL LETTER A and 'A'.
const flagBase = rune(0x1F1E6) - 'A'

// Lookup answers the localized name and the numeric calling code of a
// territory. Both answers may be absent.
type Lookup interface {
	LocalizedName(code string) (string, bool)
	DialingPrefix(code string) (string, bool)
}

// Source is a Lookup that can also enumerate every territory it knows.
type Source interface {
	Lookup
	AllTerritoryCodes() []string
}

// Entry is one row of the directory.
type Entry struct {
	Code   string
	Name   string
	Prefix string
	Flag   string
}

// Build returns the entry for code, or false when the name, the dialing
// prefix, or the flag glyph is unavailable.
func Build(code string, lookup Lookup) (Entry, bool) {
	if lookup == nil {
		return Entry{}, false
	}
	code = strings.ToUpper(code)
	flag, ok := Flag(code)
	if !ok {
		return Entry{}, false
	}
	name, ok := lookup.LocalizedName(code)
	if !ok || name == "" {
		return Entry{}, false
	}
	digits, ok := lookup.DialingPrefix(code)
	digits = strings.TrimPrefix(strings.TrimSpace(digits), "+")
	if !ok || digits == "" {
		return Entry{}, false
	}
	return Entry{
		Code:   code,
		Name:   name,
		Prefix: "+" + digits,
		Flag:   flag,
	}, true
}

// Flag derives the emoji flag for a two-letter territory code from its
// regional indicator symbols. The result must render as a single glyph.
func Flag(code string) (string, bool) {
	code = strings.ToUpper(code)
	if len(code) != 2 {
		return "", false
	}
	var b strings.Builder
	for i := 0; i < len(code); i++ {
		ch := code[i]
		if ch < 'A' || ch > 'Z' {
			return "", false
		}
		b.WriteRune(flagBase + rune(ch))
	}
	flag := b.String()
	if uniseg.GraphemeClusterCount(flag) != 1 {
		return "", false
	}
	return flag, true
}

// Matches reports whether the lowercased query is a substring of the
// entry's lowercased name, code, or prefix.
func (e Entry) Matches(query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(e.Name), q) ||
		strings.Contains(strings.ToLower(e.Code), q) ||
		strings.Contains(strings.ToLower(e.Prefix), q)
}

func (e Entry) String() string {
	return e.Code + " " + e.Prefix + " " + e.Name
}
