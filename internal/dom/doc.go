// Package dom is the boundary between the demo and the page it draws on.
//
// The router never touches browser APIs directly. It talks to a Document,
// which has two implementations:
//
//	dom.NewBrowser()          // syscall/js, only in js/wasm builds
//	dom.NewMemory(ids...)     // in-process element tree
//
// Memory parses every injected fragment with golang.org/x/net/html so that
// elements created by one render (inputs, buttons, nested containers) can be
// addressed by the next call, the same way getElementById would find them.
// It is what the CLI, the MCP tool and the tests render into.
//
// Handler registration replaces the previous handler. Registering the same
// kind of listener twice never leaves two callbacks attached.
package dom

import "errors"

// ErrNoElement is returned when no element has the requested id.
var ErrNoElement = errors.New("no element with id")

// ErrNoHandler is returned by Memory.Click when nothing listens on the element.
var ErrNoHandler = errors.New("no click handler")

// Document is the DOM surface the router renders through.
type Document interface {
	// Hash returns the current location hash including the leading '#',
	// or "" when the URL has no fragment.
	Hash() string
	// SetInnerHTML replaces the markup inside the element.
	SetInnerHTML(id, markup string) error
	// SetInnerText replaces the content of the element with plain text.
	SetInnerText(id, text string) error
	// InputValue returns the current value of an input element.
	InputValue(id string) (string, error)
	// OnClick sets the click handler of the element.
	OnClick(id string, fn func()) error
	// OnHashChange sets the hash-change handler of the window.
	OnHashChange(fn func())
	// OpenURL navigates to the given URL.
	OpenURL(url string) error
}
