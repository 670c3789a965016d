// Package legalpages converts the Tarot Deck App legal documents
// (privacy policy, terms of service, license, copyright) into static
// HTML pages that share one fixed page shell.
//
// # Quick Start
//
// Create a service and convert a document:
//
//	svc := legalpages.New()
//	page, err := svc.Convert(ctx, legalpages.Input{
//	    Markdown: content,
//	    Title:    "Privacy Policy",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("PRIVACY_POLICY.html", []byte(page), 0644)
//
// # Conversion Pipeline
//
// The conversion is an ordered sequence of text substitutions; later
// steps depend on tags produced by earlier ones:
//
//  1. Line-ending normalization
//  2. Headers (#, ##, ### on full lines)
//  3. Bold (**...**), then italic (*...*)
//  4. List items (- on full lines), then list wrapping
//  5. Paragraph assembly (consecutive plain lines become one <p>)
//  6. Page shell wrapping (head, back-link, footer)
//
// The documents use only this small markdown subset. This is not a
// compliant markdown parser: there are no nested lists, tables, code
// fences, links, or escaping rules, and markers are not mutually
// escaped (a literal * inside a header still starts an emphasis span).
//
// # Known Limitation
//
// List wrapping matches greedily across line breaks, so every list item
// in a document ends up inside a single <ul>, even when list blocks are
// separated by paragraphs. The legal documents each contain one list
// block, so this never surfaces in practice, but it is load-bearing
// behavior for documents that contain several.
package legalpages
