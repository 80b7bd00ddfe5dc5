package pathenv

import (
	"os"
	"strings"
	"unicode"
	"unicode/utf16"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Comparer is the concrete string-comparison strategy derived from a
// snapshot's comparison mode.
type Comparer interface {
	// Compare returns -1, 0, or +1 ordering a relative to b.
	Compare(a, b string) int
	// Equal reports whether a and b name the same path under this strategy.
	Equal(a, b string) bool
}

// Comparer maps the stored comparison mode to a Comparer.
//
// The mapping is exhaustive over the six defined variants; any other value
// is a defect (corrupted or forward-incompatible data) and fails with an
// unsupported-mode error rather than silently coercing to a default.
func (s Snapshot) Comparer() (Comparer, error) {
	switch s.Comparison {
	case Ordinal:
		return ordinalComparer{}, nil
	case OrdinalIgnoreCase:
		return ordinalComparer{fold: true}, nil
	case CultureSensitive:
		return collationComparer{c: collate.New(hostLocale())}, nil
	case CultureSensitiveIgnoreCase:
		return collationComparer{c: collate.New(hostLocale(), collate.IgnoreCase)}, nil
	case InvariantCulture:
		return collationComparer{c: collate.New(language.Und)}, nil
	case InvariantCultureIgnoreCase:
		return collationComparer{c: collate.New(language.Und, collate.IgnoreCase)}, nil
	default:
		return nil, newError(KindMode, "PATHENV-MODE-001", "unsupported comparison mode")
	}
}

// ordinalComparer compares by UTF-16 code unit value, optionally folding
// case first. Code-unit order differs from rune order for characters outside
// the basic multilingual plane, which matters for wire-faithful ordering.
type ordinalComparer struct {
	fold bool
}

func (o ordinalComparer) Compare(a, b string) int {
	if o.fold {
		a = strings.Map(unicode.ToLower, a)
		b = strings.Map(unicode.ToLower, b)
	}
	ua := utf16.Encode([]rune(a))
	ub := utf16.Encode([]rune(b))
	for i := 0; i < len(ua) && i < len(ub); i++ {
		if ua[i] != ub[i] {
			if ua[i] < ub[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(ua) < len(ub):
		return -1
	case len(ua) > len(ub):
		return 1
	default:
		return 0
	}
}

func (o ordinalComparer) Equal(a, b string) bool {
	if o.fold {
		return o.Compare(a, b) == 0
	}
	return a == b
}

type collationComparer struct {
	c *collate.Collator
}

func (cc collationComparer) Compare(a, b string) int { return cc.c.CompareString(a, b) }
func (cc collationComparer) Equal(a, b string) bool  { return cc.c.CompareString(a, b) == 0 }

// hostLocale resolves the process collation locale. Like the ambient-culture
// comparers it models, this is read at derivation time, not captured in the
// snapshot.
func hostLocale() language.Tag {
	for _, key := range []string{"LC_ALL", "LC_COLLATE", "LANG"} {
		v := os.Getenv(key)
		if v == "" || v == "C" || v == "POSIX" {
			continue
		}
		if i := strings.IndexAny(v, ".@"); i >= 0 {
			v = v[:i]
		}
		if tag, err := language.Parse(v); err == nil {
			return tag
		}
	}
	return language.Und
}
