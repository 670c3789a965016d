package legalpages

import (
	"context"
	"regexp"
)

// Precompiled regex patterns for performance.
var (
	// Line ending normalization
	crlfOrCR = regexp.MustCompile(`\r\n?`)

	// ATX headers, full lines only, converted in level order
	h1Pattern = regexp.MustCompile(`(?m)^# (.+)$`)
	h2Pattern = regexp.MustCompile(`(?m)^## (.+)$`)
	h3Pattern = regexp.MustCompile(`(?m)^### (.+)$`)

	// Inline emphasis; lazy so spans stop at the nearest closing marker
	boldPattern   = regexp.MustCompile(`\*\*(.+?)\*\*`)
	italicPattern = regexp.MustCompile(`\*(.+?)\*`)

	// Dashed list items, full lines only
	listItemPattern = regexp.MustCompile(`(?m)^- (.+)$`)

	// Run of list items. Greedy with dot-matches-newline, so the single
	// maximal match spans from the first <li> to the last </li> in the
	// document (see the package doc's known limitation).
	listRunPattern = regexp.MustCompile(`(?s)(<li>.*</li>)`)
)

// markdownTransformer defines the contract for the markdown-to-HTML body pass.
type markdownTransformer interface {
	TransformMarkdown(ctx context.Context, content string) string
}

// regexTransformer applies the ordered substitutions the legal documents
// rely on. Total for any input, including the empty string.
type regexTransformer struct{}

// TransformMarkdown applies all substitutions in pipeline order. The order
// matters: italic runs after bold so double asterisks are consumed first,
// and list wrapping needs the <li> tags produced by list item conversion.
func (t *regexTransformer) TransformMarkdown(ctx context.Context, content string) string {
	// Check for cancellation before processing
	if ctx.Err() != nil {
		return content
	}

	content = normalizeLineEndings(content)
	content = convertHeaders(content)
	content = convertBold(content)
	content = convertItalic(content)
	content = convertListItems(content)
	content = wrapListRuns(content)
	return content
}

// normalizeLineEndings converts \r\n and \r to \n.
func normalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// convertHeaders rewrites full-line #, ##, and ### headers to h1-h3 tags.
// Levels are converted in that order; deeper levels (####+) pass through.
func convertHeaders(content string) string {
	content = h1Pattern.ReplaceAllString(content, "<h1>$1</h1>")
	content = h2Pattern.ReplaceAllString(content, "<h2>$1</h2>")
	content = h3Pattern.ReplaceAllString(content, "<h3>$1</h3>")
	return content
}

// convertBold rewrites **text** spans to <strong> tags. Spans do not
// cross newlines.
func convertBold(content string) string {
	return boldPattern.ReplaceAllString(content, "<strong>$1</strong>")
}

// convertItalic rewrites *text* spans to <em> tags. Must run after
// convertBold; single asterisks left over from non-bold text are still at
// risk of matching.
func convertItalic(content string) string {
	return italicPattern.ReplaceAllString(content, "<em>$1</em>")
}

// convertListItems rewrites full "- item" lines to <li> tags.
func convertListItems(content string) string {
	return listItemPattern.ReplaceAllString(content, "<li>$1</li>")
}

// wrapListRuns wraps the maximal run of <li> tags in a single <ul>.
func wrapListRuns(content string) string {
	return listRunPattern.ReplaceAllString(content, "<ul>$1</ul>")
}
