// Package include expands #include directives by translating the
// included headers inline through the same translation Context.
package include

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/hdrtrans/hdrtrans/trans"
)

var includeRe = regexp.MustCompile(`^\s*#\s*include\s*[<"]([^">]+)[">]`)

// ConstructTranslator is the per-construct translation collaborator:
// it turns one non-include line into target text, recording symbols on
// the Context as it goes.
type ConstructTranslator interface {
	TranslateLine(ctx *trans.Context, line string) error
}

// Expander resolves include directives against the configured search
// directories and feeds the included text back through itself, so
// nested headers translate into the same unit. Declaration-level
// deduplication is the Context's job; Expander only guards against
// include cycles at the file level.
type Expander struct {
	Trans      ConstructTranslator
	SearchDirs []string
	Logger     *zap.Logger

	expanded map[string]struct{}
}

func NewExpander(ct ConstructTranslator, searchDirs []string, logger *zap.Logger) *Expander {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Expander{
		Trans:      ct,
		SearchDirs: searchDirs,
		Logger:     logger,
		expanded:   make(map[string]struct{}),
	}
}

// ExpandLine handles one raw input line. Include directives are
// resolved and recursively expanded; everything else is delegated to
// the construct translator.
func (e *Expander) ExpandLine(ctx *trans.Context, line string) error {
	m := includeRe.FindStringSubmatch(line)
	if m == nil {
		return e.Trans.TranslateLine(ctx, line)
	}
	path, err := e.resolve(m[1])
	if err != nil {
		// System headers outside the search dirs resolve through the
		// preprocessor stage instead; keep the directive in the output.
		e.Logger.Debug("include not found in search dirs, passing through",
			zap.String("header", m[1]))
		ctx.Out.Append(line)
		return nil
	}
	if _, ok := e.expanded[path]; ok {
		return nil
	}
	e.expanded[path] = struct{}{}

	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "expanding include %q", m[1])
	}
	for _, inner := range strings.Split(string(data), "\n") {
		if err := e.ExpandLine(ctx, inner); err != nil {
			return err
		}
	}
	return nil
}

func (e *Expander) resolve(header string) (string, error) {
	for _, dir := range e.SearchDirs {
		path := filepath.Join(dir, header)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", errors.Newf("header %q not found", header)
}

// Passthrough is a minimal construct translator that emits each line
// unchanged. The real per-construct rules are an external collaborator;
// Passthrough keeps the pipeline runnable without them.
type Passthrough struct{}

func (Passthrough) TranslateLine(ctx *trans.Context, line string) error {
	ctx.Out.Append(line)
	return nil
}
