// Package preproc invokes the external text-macro preprocessor over
// rendered translation output and strips its line-marker directives.
package preproc

import (
	"bytes"
	"os/exec"
	"strings"

	"github.com/cockroachdb/errors"
)

// Cmd runs a cpp-compatible preprocessor as an external process. The
// call is synchronous with no timeout; a hang in the process hangs the
// run.
type Cmd struct {
	Path string
	Args []string
}

// Run feeds input to the preprocessor on stdin and returns its stdout.
// A non-zero exit is a hard error carrying the failing command line and
// its captured stderr.
func (c *Cmd) Run(input string) (string, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.Command(c.Path, c.Args...)
	cmd.Stdin = strings.NewReader(input)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", errors.Wrapf(err, "%s %s: %s",
			c.Path, strings.Join(c.Args, " "), stderr.String())
	}
	return stdout.String(), nil
}

// StripLineMarkers drops every line beginning with the preprocessor's
// line-marker directive character.
func StripLineMarkers(s string) string {
	lines := strings.Split(s, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if strings.HasPrefix(line, "#") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}
