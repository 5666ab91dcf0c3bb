package trans

import "strings"

// Line is one emitted line of target text. Declarator, when set, names
// the identifier the line declares, so collision fixups can rewrite it
// without guessing at substrings.
type Line struct {
	Text       string
	Declarator string
}

// Buffer accumulates the translation output. Indices are stable once
// assigned: lines are only appended after or patched in place, never
// inserted or removed, so a line number captured before an append still
// addresses that declaration when the fixup pass runs.
type Buffer struct {
	lines []Line
}

func NewBuffer() *Buffer {
	return &Buffer{}
}

// Len is the index the next appended line will receive. Registries must
// capture it before the corresponding declaration is appended.
func (b *Buffer) Len() int {
	return len(b.lines)
}

// Append adds one line and returns its index.
func (b *Buffer) Append(text string) int {
	return b.AppendDecl(text, "")
}

// AppendDecl adds one line tagged with the identifier it declares.
func (b *Buffer) AppendDecl(text, declarator string) int {
	idx := len(b.lines)
	b.lines = append(b.lines, Line{Text: text, Declarator: declarator})
	return idx
}

// AppendAll adds the given lines in order.
func (b *Buffer) AppendAll(texts []string) {
	for _, text := range texts {
		b.Append(text)
	}
}

// At returns the line at index i.
func (b *Buffer) At(i int) Line {
	return b.lines[i]
}

// Patch replaces the line at index i in place. The buffer length never
// changes under Patch.
func (b *Buffer) Patch(i int, line Line) {
	b.lines[i] = line
}

// Render joins all lines with newlines.
func (b *Buffer) Render() string {
	texts := make([]string, len(b.lines))
	for i, line := range b.lines {
		texts[i] = line.Text
	}
	return strings.Join(texts, "\n")
}
