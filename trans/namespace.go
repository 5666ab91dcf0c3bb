package trans

import "strings"

// ScopeSep is the C++ scope separator.
const ScopeSep = "::"

// namespaceStack tracks nested namespace entry and exit. Pop always
// removes the most recent segment; balanced nesting is the caller's
// contract, not enforced here.
type namespaceStack struct {
	parts []string
}

func (s *namespaceStack) push(name string) {
	s.parts = append(s.parts, name)
}

func (s *namespaceStack) pop() {
	s.parts = s.parts[:len(s.parts)-1]
}

func (s *namespaceStack) current() string {
	return strings.Join(s.parts, ScopeSep)
}

// isIgnored reports whether the qualified spelling lives under any of
// the given namespace prefixes.
func isIgnored(spelling string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if strings.Contains(spelling, prefix+ScopeSep) {
			return true
		}
	}
	return false
}
