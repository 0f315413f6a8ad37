package router

import (
	"github.com/gorewood/pwademo/internal/config"
)

// Result is the page a headless render produced.
type Result struct {
	Args     []string `json:"args"`
	Verb     string   `json:"verb"`
	Header   string   `json:"header"`
	Body     string   `json:"body"`
	BodyText string   `json:"body_text"`
	Error    string   `json:"error,omitempty"`
}

// OK reports whether the page rendered without an error message.
func (r Result) OK() bool {
	return r.Error == ""
}

// RenderFragment renders the page for a hash fragment into a fresh
// in-memory document, as a browser loading that URL would.
func RenderFragment(fragment string, cfg config.Config, opts ...Option) Result {
	doc := NewMemoryDocument()
	doc.SetHash(fragment)
	r := New(doc, cfg, opts...)
	list := r.Args()
	cmd := r.Start()

	return Result{
		Args:     list,
		Verb:     cmd.Verb(),
		Header:   doc.InnerHTML(ElemRoot),
		Body:     doc.InnerHTML(ElemBody),
		BodyText: doc.InnerText(ElemBody),
		Error:    doc.InnerText(ElemErrors),
	}
}
