package trans

import (
	"errors"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/hdrtrans/hdrtrans/ast"
)

// Policy makes target-language naming decisions: keeping a spelling
// legal in the target, disambiguating cross-category clashes, and
// producing the directives that pin a renamed declaration back to its
// original linker symbol.
type Policy interface {
	// SafeSpelling returns a spelling legal in the target language,
	// renaming reserved words at registration time.
	SafeSpelling(name string) string
	// Disambiguate returns an alternative spelling for a name that
	// clashes with another declaration category.
	Disambiguate(name string) string
	// LinkageDirective returns the directive that overrides the
	// declared name's linker symbol.
	LinkageDirective(mangled string) string
	// ForwardDeclaration returns a minimal stub declaring an aggregate
	// by name only.
	ForwardDeclaration(name string) string
}

// Config configures one translation Context.
type Config struct {
	Policy            Policy
	IgnoredNamespaces []string
	Logger            *zap.Logger
}

// Context carries every piece of per-translation-unit state: the output
// buffer, all registries, the namespace stack and the naming policy.
// One Context serves exactly one input file and is discarded afterward.
// Nothing in this package keeps package-level state, so independent
// files can translate concurrently on independent Contexts.
type Context struct {
	Out *Buffer

	seen    *identityRegistry
	nicks   *nicknameRegistry
	types   *typeRegistry
	syms    *symbolRegistry
	ns      namespaceStack
	policy  Policy
	ignored []string
	logger  *zap.Logger
	phase   fixupPhase
}

// NewContext creates the state for one translation unit.
func NewContext(conf *Config) (*Context, error) {
	if conf == nil {
		return nil, errors.New("config is nil")
	}
	if conf.Policy == nil {
		return nil, errors.New("naming policy is nil")
	}
	logger := conf.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Context{
		Out:     NewBuffer(),
		seen:    newIdentityRegistry(),
		nicks:   newNicknameRegistry(),
		types:   newTypeRegistry(),
		syms:    newSymbolRegistry(),
		policy:  conf.Policy,
		ignored: conf.IgnoredNamespaces,
		logger:  logger,
	}, nil
}

// HasSeen reports whether a structurally identical declaration was
// already translated; the caller must skip the node when true.
func (c *Context) HasSeen(n ast.Node) bool {
	return c.seen.hasSeen(n)
}

// Remember records the node's structural identity.
func (c *Context) Remember(n ast.Node) {
	c.seen.remember(n)
}

// Nickname returns the synthetic name for an anonymous aggregate,
// stable across re-queries within this unit.
func (c *Context) Nickname(n ast.Node) string {
	return c.nicks.nickname(n)
}

// MemberNickname returns the field-style synthetic name for an
// anonymous node, reformatted from the same nickname.
func (c *Context) MemberNickname(n ast.Node) string {
	return c.nicks.memberNickname(n)
}

// RememberType registers a type spelling for cast recognition.
func (c *Context) RememberType(spelling string) {
	c.types.remember(spelling)
}

// CastPattern returns a pattern matching C-style casts to any type
// registered so far.
func (c *Context) CastPattern() *regexp.Regexp {
	return c.types.castPattern()
}

// RememberAggregate marks name as taken by a struct, union or enum.
func (c *Context) RememberAggregate(name string) {
	c.syms.rememberAggregate(name)
}

// RememberFunctionMacro marks name as taken by a function-like macro.
func (c *Context) RememberFunctionMacro(name string) {
	c.syms.rememberFunctionMacro(name)
}

// RememberLinkable records a function or global-variable declaration
// about to be appended, capturing the next buffer index as its line.
// It returns the spelling the caller must emit, which the naming
// policy may have renamed to dodge a target reserved word.
func (c *Context) RememberLinkable(n ast.Node) string {
	spelling := c.policy.SafeSpelling(n.Spelling)
	c.syms.rememberLinkable(spelling, n.MangledName, c.Out.Len())
	return spelling
}

// RememberField records a struct-field declaration about to be
// appended, capturing the next buffer index as its line.
func (c *Context) RememberField(name string) {
	c.syms.rememberField(name, c.Out.Len())
}

// RememberFieldStruct records that a field's type references the given
// aggregate spelling, which may never get a real declaration.
func (c *Context) RememberFieldStruct(typeSpelling string) {
	c.syms.rememberFieldStruct(typeSpelling)
}

// PushNamespace enters a namespace scope.
func (c *Context) PushNamespace(name string) {
	c.ns.push(name)
}

// PopNamespace leaves the innermost namespace scope. Callers own the
// balancing; popping an empty stack is a contract violation.
func (c *Context) PopNamespace() {
	c.ns.pop()
}

// CurrentNamespace is the qualified prefix of the scopes entered so far.
func (c *Context) CurrentNamespace() string {
	return c.ns.current()
}

// IsIgnored reports whether the type's qualified spelling lives under a
// configured ignored namespace and should be skipped entirely.
func (c *Context) IsIgnored(t ast.Type) bool {
	return isIgnored(t.Spelling, c.ignored)
}

// StripNamespace removes the current namespace qualification from a
// spelling, if present.
func (c *Context) StripNamespace(spelling string) string {
	if prefix := c.ns.current(); prefix != "" {
		return strings.TrimPrefix(spelling, prefix+ScopeSep)
	}
	return spelling
}
