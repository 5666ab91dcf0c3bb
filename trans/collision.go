package trans

import (
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/hdrtrans/hdrtrans/internal/dbg"
)

// fixupPhase orders the end-of-unit collision pass. Phase 1 grows the
// aggregate set that phase 2 reads, so the order is load-bearing.
type fixupPhase int

const (
	phaseIdle fixupPhase = iota
	phaseDeclareUnknowns
	phaseFixLinkables
	phaseFixFields
	phaseDone
)

// Declarator suffix shapes. A variable or field stops at ";", a
// function name is followed by "(", an array bound by "[". Fields are
// never followed by "(".
var (
	linkableSuffixes = []string{";", "(", "["}
	fieldSuffixes    = []string{";", "["}
)

// ResolveCollisions runs the three fixup phases over the symbol tables,
// patching already-emitted buffer lines. It runs exactly once per unit
// and never fails: what cannot be found is synthesized, what clashes is
// renamed.
func (c *Context) ResolveCollisions() {
	if c.phase != phaseIdle {
		return
	}
	c.phase = phaseDeclareUnknowns
	c.declareUnknownAggregates()
	c.phase = phaseFixLinkables
	c.fixLinkables()
	c.phase = phaseFixFields
	c.fixFields()
	c.phase = phaseDone
}

// declareUnknownAggregates appends a forward-declaration stub for every
// aggregate spelling referenced by a field but never declared. The
// referencing text was already emitted assuming the aggregate exists.
func (c *Context) declareUnknownAggregates() {
	var missing []string
	for name := range c.syms.fieldStructs {
		if !c.syms.hasAggregate(name) {
			missing = append(missing, name)
		}
	}
	sort.Strings(missing)
	for _, name := range missing {
		c.logger.Info("synthesizing forward declaration for undeclared aggregate",
			zap.String("name", name))
		c.Out.AppendDecl(c.policy.ForwardDeclaration(name), name)
		c.syms.rememberAggregate(name)
	}
}

// fixLinkables rewrites every function or global whose name is also
// taken by an aggregate or a function-like macro. C allows the sharing;
// the target language does not. The declared line is patched to carry a
// linkage-override directive for the original mangled symbol and a
// disambiguated surface spelling.
func (c *Context) fixLinkables() {
	var clashing []string
	for name := range c.syms.linkables {
		if c.syms.hasAggregate(name) || c.syms.hasFunctionMacro(name) {
			clashing = append(clashing, name)
		}
	}
	sort.Strings(clashing)
	for _, name := range clashing {
		linkable := c.syms.linkables[name]
		line := c.Out.At(linkable.Line)
		renamed := c.policy.Disambiguate(name)
		replacement := c.policy.LinkageDirective(linkable.Mangled) + " " + renamed
		patched, ok := rewriteDeclarator(line.Text, name, replacement, linkableSuffixes)
		if !ok {
			c.logger.Warn("linkable clash found but declarator not matched on its line",
				zap.String("name", name), zap.Int("line", linkable.Line))
			continue
		}
		c.Out.Patch(linkable.Line, Line{Text: patched, Declarator: renamed})
		if dbg.GetDebugFixup() {
			c.logger.Debug("renamed clashing linkable",
				zap.String("name", name),
				zap.String("renamed", renamed),
				zap.String("mangled", linkable.Mangled),
				zap.Int("line", linkable.Line))
		}
	}
}

// fixFields rewrites every recorded field whose spelling is also an
// aggregate name. Same rewrite technique as fixLinkables, restricted to
// the ";"-terminated declarator shape.
func (c *Context) fixFields() {
	var clashing []string
	for name := range c.syms.fields {
		if c.syms.hasAggregate(name) {
			clashing = append(clashing, name)
		}
	}
	sort.Strings(clashing)
	for _, name := range clashing {
		lineIdx := c.syms.fields[name]
		line := c.Out.At(lineIdx)
		renamed := c.policy.Disambiguate(name)
		patched, ok := rewriteDeclarator(line.Text, name, renamed, fieldSuffixes)
		if !ok {
			c.logger.Warn("field clash found but declarator not matched on its line",
				zap.String("name", name), zap.Int("line", lineIdx))
			continue
		}
		c.Out.Patch(lineIdx, Line{Text: patched, Declarator: renamed})
		if dbg.GetDebugFixup() {
			c.logger.Debug("renamed field clashing with aggregate",
				zap.String("name", name),
				zap.String("renamed", renamed),
				zap.Int("line", lineIdx))
		}
	}
}

// rewriteDeclarator replaces the declarator occurrence of name in text.
// The match is conservative: the name immediately followed by one of
// the given suffix shapes. When the line carries no structural
// declarator tag this substring form is all we have.
func rewriteDeclarator(text, name, replacement string, suffixes []string) (string, bool) {
	for _, suffix := range suffixes {
		old := name + suffix
		if strings.Contains(text, old) {
			return strings.Replace(text, old, replacement+suffix, 1), true
		}
	}
	return text, false
}
