package trans

import (
	"bufio"
	"io"

	"github.com/hdrtrans/hdrtrans/internal/preproc"
)

// Expander is the include-expansion collaborator. It consumes raw
// input lines, recognizes include directives and performs the nested
// translation, calling back into the Context's Remember/HasSeen
// operations as it discovers declarations. It returns nothing beyond
// those side effects.
type Expander interface {
	ExpandLine(ctx *Context, line string) error
}

// Preprocessor runs the external text-macro preprocessor over the
// rendered translation.
type Preprocessor interface {
	Run(input string) (string, error)
}

// Translator drives one translation unit end to end: stream the input
// lines through the expander, resolve collisions exactly once, render,
// preprocess, strip line markers, emit.
type Translator struct {
	Ctx *Context
	Exp Expander
	Pre Preprocessor
}

// Translate consumes the whole input and writes the final translation
// to w. On preprocessor failure nothing is written and the error
// carries the process diagnostics.
func (t *Translator) Translate(r io.Reader, w io.Writer) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		if err := t.Exp.ExpandLine(t.Ctx, sc.Text()); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return err
	}

	t.Ctx.ResolveCollisions()

	out, err := t.Pre.Run(t.Ctx.Out.Render())
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, preproc.StripLineMarkers(out))
	return err
}
