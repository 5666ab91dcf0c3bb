package trans

import "github.com/hdrtrans/hdrtrans/ast"

// identityKey is the structural identity of a declaration. Two nodes
// with equal keys are the same declaration no matter which include path
// delivered them, so repeated inclusion of a header is idempotent.
type identityKey struct {
	spelling     string
	kind         ast.Kind
	typeSpelling string
	typeKind     ast.TypeKind
}

func identityOf(n ast.Node) identityKey {
	return identityKey{
		spelling:     n.Spelling,
		kind:         n.Kind,
		typeSpelling: n.UnderlyingType.Spelling,
		typeKind:     n.UnderlyingType.Kind,
	}
}

type identityRegistry struct {
	seen map[identityKey]struct{}
}

func newIdentityRegistry() *identityRegistry {
	return &identityRegistry{seen: make(map[identityKey]struct{})}
}

func (r *identityRegistry) hasSeen(n ast.Node) bool {
	_, ok := r.seen[identityOf(n)]
	return ok
}

// remember records the node's identity. Nodes without a spelling are
// skipped, except enum declarations: C lets an unnamed enum define
// members, and those members must not be re-emitted on a re-visit.
func (r *identityRegistry) remember(n ast.Node) {
	if n.Spelling == "" && n.Kind != ast.EnumDecl {
		return
	}
	r.seen[identityOf(n)] = struct{}{}
}
