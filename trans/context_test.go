package trans

import (
	"testing"

	"github.com/hdrtrans/hdrtrans/ast"
	"github.com/hdrtrans/hdrtrans/names"
)

func nodeOf(spelling string) ast.Node {
	return ast.Node{Spelling: spelling, Kind: ast.FuncDecl, MangledName: spelling}
}

func newTestContext(t *testing.T) *Context {
	t.Helper()
	ctx, err := NewContext(&Config{Policy: names.New(nil)})
	if err != nil {
		t.Fatalf("NewContext failed: %v", err)
	}
	return ctx
}

func TestNewContextNilConfig(t *testing.T) {
	if _, err := NewContext(nil); err == nil {
		t.Fatal("expected error for nil config")
	}
	if _, err := NewContext(&Config{}); err == nil {
		t.Fatal("expected error for nil policy")
	}
}

func TestRememberLinkableReturnsSafeSpelling(t *testing.T) {
	ctx := newTestContext(t)
	testCases := []struct {
		name string
		want string
	}{
		{"foo", "foo"},
		{"version", "version_"},
		{"scope", "scope_"},
	}
	for _, tc := range testCases {
		got := ctx.RememberLinkable(nodeOf(tc.name))
		if got != tc.want {
			t.Fatalf("RememberLinkable(%q) = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestRememberLinkableCapturesNextLine(t *testing.T) {
	ctx := newTestContext(t)
	ctx.Out.Append("module bindings;")
	ctx.Out.Append("")

	name := ctx.RememberLinkable(nodeOf("foo"))
	ctx.Out.AppendDecl("int "+name+"(void);", name)

	linkable, ok := ctx.syms.linkables[name]
	if !ok {
		t.Fatalf("linkable %q not recorded", name)
	}
	if linkable.Line != 2 {
		t.Fatalf("captured line = %d, want 2", linkable.Line)
	}
	if got := ctx.Out.At(linkable.Line).Declarator; got != name {
		t.Fatalf("line %d declares %q, want %q", linkable.Line, got, name)
	}
}
