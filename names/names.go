// Package names is the default naming-policy collaborator: it keeps C
// spellings legal in the target language and produces the linkage
// directives that keep renamed declarations bound to their original
// symbols.
package names

import (
	"fmt"
	"strings"
)

// Target reserved words that are legal C identifiers. A declaration
// spelled like one of these must be renamed at registration time.
var reserved = map[string]struct{}{
	"abstract": {}, "alias": {}, "align": {}, "body": {}, "cast": {},
	"debug": {}, "delegate": {}, "deprecated": {}, "export": {},
	"final": {}, "foreach": {}, "function": {}, "immutable": {},
	"in": {}, "inout": {}, "interface": {}, "invariant": {}, "is": {},
	"lazy": {}, "mixin": {}, "module": {}, "out": {}, "override": {},
	"package": {}, "pragma": {}, "pure": {}, "ref": {}, "scope": {},
	"shared": {}, "super": {}, "synchronized": {}, "template": {},
	"typeof": {}, "unittest": {}, "version": {}, "with": {},
}

// Mapper maps C spellings to target-language-safe spellings.
type Mapper struct {
	trimPrefixes []string
}

func New(trimPrefixes []string) *Mapper {
	return &Mapper{trimPrefixes: trimPrefixes}
}

// SafeSpelling returns a spelling legal in the target language,
// trimming configured prefixes and renaming reserved words.
func (m *Mapper) SafeSpelling(name string) string {
	name = RemovePrefixedName(name, m.trimPrefixes)
	if IsReserved(name) {
		return name + "_"
	}
	return name
}

// Disambiguate returns the spelling used when name clashes with a
// declaration of another category.
func (m *Mapper) Disambiguate(name string) string {
	return name + "_"
}

// LinkageDirective overrides the declared name's linker symbol.
func (m *Mapper) LinkageDirective(mangled string) string {
	return fmt.Sprintf("pragma(mangle, %q)", mangled)
}

// ForwardDeclaration declares an aggregate by name only.
func (m *Mapper) ForwardDeclaration(name string) string {
	return "struct " + name + ";"
}

// IsReserved reports whether name is a target reserved word.
func IsReserved(name string) bool {
	_, ok := reserved[name]
	return ok
}

// RemovePrefixedName strips the first matching prefix from name.
func RemovePrefixedName(name string, trimPrefixes []string) string {
	for _, prefix := range trimPrefixes {
		if strings.HasPrefix(name, prefix) {
			return strings.TrimPrefix(name, prefix)
		}
	}
	return name
}
