package names_test

import (
	"testing"

	"github.com/hdrtrans/hdrtrans/names"
)

func TestSafeSpelling(t *testing.T) {
	testCases := []struct {
		name         string
		input        string
		trimPrefixes []string
		want         string
	}{
		{name: "plain", input: "sqlite3_open", want: "sqlite3_open"},
		{name: "reserved word", input: "version", want: "version_"},
		{name: "reserved word scope", input: "scope", want: "scope_"},
		{name: "trim prefix", input: "sqlite3_open", trimPrefixes: []string{"sqlite3_"}, want: "open"},
		{name: "trim first matching prefix", input: "cj_free", trimPrefixes: []string{"cjson_", "cj_"}, want: "free"},
		{name: "trimmed into reserved word", input: "lib_module", trimPrefixes: []string{"lib_"}, want: "module_"},
		{name: "no prefix match", input: "open", trimPrefixes: []string{"sqlite3_"}, want: "open"},
	}
	for _, tc := range testCases {
		m := names.New(tc.trimPrefixes)
		if got := m.SafeSpelling(tc.input); got != tc.want {
			t.Fatalf("%s: SafeSpelling(%q) = %q, want %q", tc.name, tc.input, got, tc.want)
		}
	}
}

func TestDisambiguate(t *testing.T) {
	m := names.New(nil)
	if got := m.Disambiguate("foo"); got != "foo_" {
		t.Fatalf("Disambiguate = %q, want foo_", got)
	}
}

func TestLinkageDirective(t *testing.T) {
	m := names.New(nil)
	want := `pragma(mangle, "_Z3foov")`
	if got := m.LinkageDirective("_Z3foov"); got != want {
		t.Fatalf("LinkageDirective = %q, want %q", got, want)
	}
}

func TestForwardDeclaration(t *testing.T) {
	m := names.New(nil)
	if got := m.ForwardDeclaration("Bar"); got != "struct Bar;" {
		t.Fatalf("ForwardDeclaration = %q", got)
	}
}

func TestIsReserved(t *testing.T) {
	if !names.IsReserved("delegate") {
		t.Fatal("delegate not reserved")
	}
	if names.IsReserved("widget") {
		t.Fatal("widget wrongly reserved")
	}
}
