package preproc

import (
	"runtime"
	"strings"
	"testing"
)

func TestStripLineMarkers(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "markers removed",
			input: "# 1 \"<stdin>\"\nstruct Foo;\n# 4 \"a.h\" 2\nint x;\n",
			want:  "struct Foo;\nint x;\n",
		},
		{
			name:  "no markers",
			input: "struct Foo;\nint x;",
			want:  "struct Foo;\nint x;",
		},
		{
			name:  "marker only",
			input: "# 1 \"a.h\"",
			want:  "",
		},
		{
			name:  "empty",
			input: "",
			want:  "",
		},
	}
	for _, tc := range testCases {
		if got := StripLineMarkers(tc.input); got != tc.want {
			t.Fatalf("%s: StripLineMarkers:\nwant %q\ngot  %q", tc.name, got, tc.want)
		}
	}
}

func TestCmdRun(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
	c := &Cmd{Path: "cat"}
	got, err := c.Run("struct Foo;\n")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if got != "struct Foo;\n" {
		t.Fatalf("Run output = %q", got)
	}
}

func TestCmdRunFailureCarriesDiagnostics(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
	c := &Cmd{Path: "sh", Args: []string{"-c", "echo boom >&2; exit 2"}}
	_, err := c.Run("")
	if err == nil {
		t.Fatal("expected error for non-zero exit")
	}
	if !strings.Contains(err.Error(), "boom") {
		t.Fatalf("captured stderr missing from error: %v", err)
	}
	if !strings.Contains(err.Error(), "sh") {
		t.Fatalf("failing command missing from error: %v", err)
	}
}
