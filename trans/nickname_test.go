package trans

import (
	"fmt"
	"testing"

	"github.com/hdrtrans/hdrtrans/ast"
)

func TestNicknamesDeterministic(t *testing.T) {
	ctx := newTestContext(t)
	const n = 5
	for i := 0; i < n; i++ {
		node := ast.Node{Kind: ast.StructDecl, StructuralHash: uint64(100 + i)}
		want := fmt.Sprintf("_Anonymous_%d", i)
		if got := ctx.Nickname(node); got != want {
			t.Fatalf("nickname #%d = %q, want %q", i, got, want)
		}
	}
	// Re-querying an earlier node returns its original nickname, not a
	// fresh counter value.
	if got := ctx.Nickname(ast.Node{Kind: ast.StructDecl, StructuralHash: 102}); got != "_Anonymous_2" {
		t.Fatalf("re-query = %q, want _Anonymous_2", got)
	}
}

func TestMemberNicknameSharesIndex(t *testing.T) {
	ctx := newTestContext(t)
	node := ast.Node{Kind: ast.UnionDecl, StructuralHash: 7}

	// The member-style name must draw from the node's own nickname,
	// even when queried first: a fresh aggregate and the field that
	// embeds it may be minted in the same call chain.
	if got := ctx.MemberNickname(node); got != "_anonymous_0" {
		t.Fatalf("member nickname = %q, want _anonymous_0", got)
	}
	if got := ctx.Nickname(node); got != "_Anonymous_0" {
		t.Fatalf("nickname = %q, want _Anonymous_0", got)
	}

	other := ast.Node{Kind: ast.UnionDecl, StructuralHash: 8}
	if got := ctx.Nickname(other); got != "_Anonymous_1" {
		t.Fatalf("next nickname = %q, want _Anonymous_1", got)
	}
}
