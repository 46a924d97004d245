package request

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// Sanitizer cleans user supplied text before it is stored.
type Sanitizer struct {
	rich  *bluemonday.Policy
	plain *bluemonday.Policy
}

// NewSanitizer creates a Sanitizer. Rich fields keep safe formatting
// markup; plain fields lose all tags.
func NewSanitizer() *Sanitizer {
	rich := bluemonday.UGCPolicy()
	rich.RequireNoFollowOnLinks(true)
	return &Sanitizer{rich: rich, plain: bluemonday.StrictPolicy()}
}

// HTML sanitises a rich text field.
func (s *Sanitizer) HTML(in string) string {
	return strings.TrimSpace(s.rich.Sanitize(in))
}

// Text strips every tag from a plain text field. Entities escaped by the
// policy are decoded again so "Tom & Jerry" survives intact.
func (s *Sanitizer) Text(in string) string {
	return strings.TrimSpace(html.UnescapeString(s.plain.Sanitize(in)))
}

// HTMLPtr sanitises a rich field that may be absent.
func (s *Sanitizer) HTMLPtr(in *string) {
	if in != nil {
		*in = s.HTML(*in)
	}
}

// TextPtr strips tags from a plain field that may be absent.
func (s *Sanitizer) TextPtr(in *string) {
	if in != nil {
		*in = s.Text(*in)
	}
}
