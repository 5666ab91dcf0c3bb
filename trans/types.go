package trans

import (
	"regexp"
	"strings"
)

// builtinTypes seeds the type registry with the primitive C spellings
// a cast can always name, plus the generic pointer spelling.
var builtinTypes = []string{
	"char", "signed char", "unsigned char",
	"short", "short int", "unsigned short",
	"int", "unsigned", "unsigned int",
	"long", "long int", "unsigned long",
	"long long", "unsigned long long",
	"float", "double", "long double",
	"void",
}

// typeRegistry accumulates every type spelling the translation has
// seen so it can recognize C-style casts to statically-known types.
type typeRegistry struct {
	spellings []string
	pattern   *regexp.Regexp // nil while stale
}

func newTypeRegistry() *typeRegistry {
	return &typeRegistry{
		spellings: append([]string(nil), builtinTypes...),
	}
}

// remember registers a type spelling. Duplicates are allowed here;
// matching applies set semantics when the pattern is built. Any growth
// invalidates the cached cast pattern, since casts may name aggregates
// declared after a previous cast was already matched.
func (r *typeRegistry) remember(spelling string) {
	if spelling == "" {
		return
	}
	r.spellings = append(r.spellings, spelling)
	r.pattern = nil
}

// castPattern matches a parenthesized cast to any type registered so
// far: "(", optional whitespace, a known spelling with optional const
// qualifier and optional pointer marker, optional whitespace, ")".
// Rebuilt lazily after the type set grows.
func (r *typeRegistry) castPattern() *regexp.Regexp {
	if r.pattern != nil {
		return r.pattern
	}
	uniq := make(map[string]struct{}, len(r.spellings))
	alts := make([]string, 0, 2*len(r.spellings))
	for _, spelling := range r.spellings {
		if _, ok := uniq[spelling]; ok {
			continue
		}
		uniq[spelling] = struct{}{}
		quoted := regexp.QuoteMeta(spelling)
		alts = append(alts, quoted, `const\s+`+quoted)
	}
	r.pattern = regexp.MustCompile(`\(\s*(?:` + strings.Join(alts, "|") + `)\s*\*?\s*\)`)
	return r.pattern
}
