package legalpages

import (
	"context"
	"fmt"
)

// Service orchestrates the markdown-to-HTML page pipeline.
type Service struct {
	transformer markdownTransformer
	assembler   paragraphAssembler
	shell       shellRenderer
}

// New creates a Service with the embedded page shell.
// Use options to customize behavior (e.g., WithShellTemplate).
func New(opts ...Option) *Service {
	s := &Service{
		transformer: &regexTransformer{},
		assembler:   &lineBufferAssembler{},
		shell:       newShellRendering(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Convert runs the full pipeline: ordered regex substitutions, paragraph
// assembly, then shell wrapping. Any string input is accepted, including
// empty content and an empty title.
func (s *Service) Convert(ctx context.Context, input Input) (string, error) {
	body := s.transformer.TransformMarkdown(ctx, input.Markdown)
	if err := ctx.Err(); err != nil {
		return "", err
	}

	body = s.assembler.AssembleParagraphs(ctx, body)

	page, err := s.shell.RenderShell(ctx, body, input.Title)
	if err != nil {
		return "", fmt.Errorf("wrapping page shell: %w", err)
	}

	return page, nil
}
