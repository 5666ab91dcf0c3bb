package trans

import (
	"fmt"
	"strings"

	"github.com/hdrtrans/hdrtrans/ast"
)

const (
	nicknamePrefix = "_Anonymous_"
	memberPrefix   = "_anonymous_"
)

// nicknameRegistry hands out stable synthetic names for anonymous
// aggregates, keyed by the node's structural hash since an anonymous
// node has no spelling to key on.
type nicknameRegistry struct {
	byHash map[uint64]string
	next   int
}

func newNicknameRegistry() *nicknameRegistry {
	return &nicknameRegistry{byHash: make(map[uint64]string)}
}

// nickname returns the node's synthetic name, minting a fresh one on
// first sight. The counter only grows, so no two nodes ever share a
// nickname within a run.
func (r *nicknameRegistry) nickname(n ast.Node) string {
	if nick, ok := r.byHash[n.StructuralHash]; ok {
		return nick
	}
	nick := fmt.Sprintf("%s%d", nicknamePrefix, r.next)
	r.next++
	r.byHash[n.StructuralHash] = nick
	return nick
}

// memberNickname is the field-style spelling for an anonymous node. It
// reformats the node's own nickname rather than minting a new one, so
// an anonymous aggregate and the field embedding it agree on the index
// even when both are first seen in the same call chain.
func (r *nicknameRegistry) memberNickname(n ast.Node) string {
	return memberPrefix + strings.TrimPrefix(r.nickname(n), nicknamePrefix)
}
