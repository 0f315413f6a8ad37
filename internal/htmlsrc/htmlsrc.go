// Package htmlsrc builds HTML source code by literal placeholder
// substitution.
//
// A Template owns a string with placeholder markers such as {ph_arg_1}.
// Markers are typed by where they sit in the markup, and each kind has its
// own substitution method:
//
//	AttrMarker  inside an attribute value   ReplaceAttributeValue (escaped)
//	TextMarker  as a text node              ReplaceTextNode       (escaped)
//	ElemMarker  where elements go           ReplaceHTMLSourceCode (nested Template)
//
// Substitution is single-pass literal replacement of every occurrence. A
// value that happens to contain another marker is not guarded against, but
// escaping means a value can never add markup of its own.
package htmlsrc

import (
	"html"
	"regexp"
	"slices"
	"strings"

	"github.com/gorewood/pwademo/internal/dom"
)

// AttrMarker is a placeholder inside an attribute value.
type AttrMarker string

// TextMarker is a placeholder for a text node.
type TextMarker string

// ElemMarker is a placeholder for a fragment of elements.
type ElemMarker string

// markerPattern matches the {ph_...} spelling used by the page templates.
var markerPattern = regexp.MustCompile(`\{ph_[A-Za-z0-9_]+\}`)

// Template is HTML source code under construction.
type Template struct {
	src string
}

// New creates a Template from source.
func New(source string) *Template {
	return &Template{src: source}
}

// ReplaceAttributeValue replaces every occurrence of m with the
// attribute-escaped value. Unlike plain substitution, a value never ends
// the attribute or opens markup: `"` becomes &#34;.
func (t *Template) ReplaceAttributeValue(m AttrMarker, value string) {
	t.replace(string(m), html.EscapeString(value))
}

// ReplaceTextNode replaces every occurrence of m with the HTML-escaped value.
func (t *Template) ReplaceTextNode(m TextMarker, value string) {
	t.replace(string(m), html.EscapeString(value))
}

// ReplaceHTMLSourceCode replaces every occurrence of m with the current
// HTML of nested.
func (t *Template) ReplaceHTMLSourceCode(m ElemMarker, nested *Template) {
	t.replace(string(m), nested.HTML())
}

// HTML returns the current source.
func (t *Template) HTML() string {
	return t.src
}

// Markers returns the distinct {ph_...} markers still in the source, in
// order of first appearance.
func (t *Template) Markers() []string {
	var markers []string
	for _, m := range markerPattern.FindAllString(t.src, -1) {
		if !slices.Contains(markers, m) {
			markers = append(markers, m)
		}
	}
	return markers
}

// InjectInto sets the source as the inner HTML of the element id.
func (t *Template) InjectInto(doc dom.Document, id string) error {
	return doc.SetInnerHTML(id, t.src)
}

func (t *Template) replace(marker, value string) {
	if marker == "" {
		return
	}
	t.src = strings.ReplaceAll(t.src, marker, value)
}
