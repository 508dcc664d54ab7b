package service

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// Sanitizer cleans user supplied post content before it is stored.
type Sanitizer struct {
	body  *bluemonday.Policy
	plain *bluemonday.Policy
}

// NewSanitizer allows a small set of formatting tags in post bodies and
// strips all markup from titles and descriptions.
func NewSanitizer() *Sanitizer {
	p := bluemonday.NewPolicy()
	p.AllowElements(
		"p", "br", "ul", "ol", "li", "h2", "h3", "h4",
		"blockquote", "pre", "code", "strong", "em",
	)
	p.AllowAttrs("href").OnElements("a")
	p.AllowStandardURLs()
	p.AddTargetBlankToFullyQualifiedLinks(true)
	p.RequireNoReferrerOnLinks(true)
	p.AllowAttrs("src", "alt").OnElements("img")

	return &Sanitizer{body: p, plain: bluemonday.StrictPolicy()}
}

// Body sanitizes post text.
func (s *Sanitizer) Body(html string) string { return s.body.Sanitize(html) }

// Plain strips all markup and returns unescaped, trimmed text. The result
// is plain text and must be escaped by whoever renders it as HTML.
func (s *Sanitizer) Plain(text string) string {
	return strings.TrimSpace(html.UnescapeString(s.plain.Sanitize(text)))
}
