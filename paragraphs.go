package legalpages

import (
	"context"
	"strings"
)

// paragraphAssembler defines the contract for grouping lines into <p> blocks.
type paragraphAssembler interface {
	AssembleParagraphs(ctx context.Context, content string) string
}

// lineBufferAssembler groups consecutive plain-text lines into paragraphs
// using a local line buffer.
type lineBufferAssembler struct{}

// AssembleParagraphs splits content into lines and accumulates non-blank
// lines that do not start with an HTML tag. The buffer is flushed as one
// <p> block (lines trimmed and joined by single spaces) on a blank line,
// on a line that already carries HTML (which is then emitted verbatim,
// untrimmed), and at end of input. Blocks are joined by newlines.
func (a *lineBufferAssembler) AssembleParagraphs(ctx context.Context, content string) string {
	// Check for cancellation before processing
	if ctx.Err() != nil {
		return content
	}

	lines := strings.Split(content, "\n")
	blocks := make([]string, 0, len(lines))
	var buffer []string

	flush := func() {
		if len(buffer) == 0 {
			return
		}
		blocks = append(blocks, "<p>"+strings.Join(buffer, " ")+"</p>")
		buffer = buffer[:0]
	}

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
			flush()
		case !strings.HasPrefix(trimmed, "<"):
			buffer = append(buffer, trimmed)
		default:
			flush()
			blocks = append(blocks, line)
		}
	}
	flush()

	return strings.Join(blocks, "\n")
}
