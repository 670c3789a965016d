package legalpages

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/tarotdeck/legalpages/internal/assets"
)

// shellData holds the values interpolated into the page shell.
type shellData struct {
	Title string
	Body  template.HTML
}

// shellRenderer defines the contract for wrapping a body in the page shell.
type shellRenderer interface {
	RenderShell(ctx context.Context, body, title string) (string, error)
}

// shellRendering renders the fixed page shell around an assembled body.
type shellRendering struct {
	tmpl *template.Template
}

// newShellRendering creates a shellRendering with the embedded page template.
// Panics if the template cannot be loaded or parsed (programmer error).
func newShellRendering() *shellRendering {
	source, err := assets.LoadTemplate("page")
	if err != nil {
		panic("failed to load page template: " + err.Error())
	}
	return newShellRenderingFromSource(source)
}

// newShellRenderingFromSource parses a page template source.
// Panics if the source does not parse (programmer error).
func newShellRenderingFromSource(source string) *shellRendering {
	tmpl, err := template.New("page").Parse(source)
	if err != nil {
		panic("failed to parse page template: " + err.Error())
	}
	return &shellRendering{tmpl: tmpl}
}

// RenderShell wraps body in the page shell with the given display title.
// The body is inserted as-is; it already contains the HTML produced by
// the earlier pipeline steps. The title is escaped.
func (s *shellRendering) RenderShell(ctx context.Context, body, title string) (string, error) {
	// Check for cancellation
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := s.tmpl.Execute(&buf, shellData{Title: title, Body: template.HTML(body)}); err != nil {
		return "", fmt.Errorf("%w: %v", ErrShellRender, err)
	}
	return buf.String(), nil
}
