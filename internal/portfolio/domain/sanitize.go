package domain

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// SVGSanitizer strips everything from admin supplied SVG markup except plain
// vector shapes. Scripts, event handlers, links and foreignObject are removed.
type SVGSanitizer struct {
	policy *bluemonday.Policy
}

func NewSVGSanitizer() *SVGSanitizer {
	p := bluemonday.NewPolicy()
	p.AllowElements("svg", "g", "path", "circle", "ellipse", "rect", "line",
		"polyline", "polygon", "title", "defs", "lineargradient", "stop")
	p.AllowAttrs("viewbox", "xmlns", "fill", "stroke", "stroke-width", "stroke-linecap",
		"stroke-linejoin", "fill-rule", "clip-rule", "d", "cx", "cy", "r", "rx", "ry",
		"x", "y", "x1", "x2", "y1", "y2", "width", "height", "points", "transform",
		"opacity", "offset", "stop-color", "id", "class").Globally()
	return &SVGSanitizer{policy: p}
}

func (s *SVGSanitizer) Sanitize(markup string) string {
	return strings.TrimSpace(s.policy.Sanitize(markup))
}

// TextSanitizer rejects plain-text fields that carry HTML.
type TextSanitizer struct {
	policy *bluemonday.Policy
}

func NewTextSanitizer() *TextSanitizer {
	return &TextSanitizer{policy: bluemonday.StrictPolicy()}
}

// ContainsMarkup reports whether input has tags that a strict policy would
// drop. Entity escaping alone does not count.
func (s *TextSanitizer) ContainsMarkup(input string) bool {
	if !strings.ContainsAny(input, "<>") {
		return false
	}
	return s.policy.Sanitize(input) != strings.NewReplacer("<", "&lt;", ">", "&gt;", "&", "&amp;", `"`, "&#34;", "'", "&#39;").Replace(input)
}
