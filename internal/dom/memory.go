package dom

import (
	"fmt"
	"html"
	"maps"
	"slices"
	"strings"
	"sync"

	xhtml "golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

type element struct {
	parent  string
	markup  string
	text    string
	isText  bool
	value   string
	onClick func()
}

// Memory is an in-process Document.
type Memory struct {
	mu           sync.Mutex
	hash         string
	elements     map[string]*element
	onHashChange func()
	opened       []string
}

var _ Document = (*Memory)(nil)

// NewMemory creates a document whose host page contains the given
// top-level element ids.
func NewMemory(ids ...string) *Memory {
	m := &Memory{elements: make(map[string]*element, len(ids))}
	for _, id := range ids {
		m.elements[id] = &element{}
	}
	return m
}

// Hash returns the current location hash.
func (m *Memory) Hash() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.hash
}

// SetHash changes the hash without firing the hash-change handler,
// like the initial URL a page is loaded with.
func (m *Memory) SetHash(fragment string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.hash = normalizeHash(fragment)
}

// Navigate changes the hash and fires the hash-change handler when the
// hash actually changed.
func (m *Memory) Navigate(fragment string) {
	m.mu.Lock()
	next := normalizeHash(fragment)
	changed := next != m.hash
	m.hash = next
	handler := m.onHashChange
	m.mu.Unlock()

	if changed && handler != nil {
		handler()
	}
}

// SetInnerHTML replaces the element's markup and registers every element
// with an id found in it. Elements from the previous markup are dropped.
func (m *Memory) SetInnerHTML(id, markup string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	el, ok := m.elements[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNoElement, id)
	}
	m.removeChildren(id)
	el.markup = markup
	el.text = ""
	el.isText = false

	nodes, err := parseFragment(markup)
	if err != nil {
		return fmt.Errorf("parsing markup for %s: %w", id, err)
	}
	for _, node := range nodes {
		m.register(id, node)
	}
	return nil
}

// SetInnerText replaces the element's content with text.
func (m *Memory) SetInnerText(id, text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	el, ok := m.elements[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNoElement, id)
	}
	m.removeChildren(id)
	el.markup = ""
	el.text = text
	el.isText = true
	return nil
}

// InputValue returns the value of an input element.
func (m *Memory) InputValue(id string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	el, ok := m.elements[id]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrNoElement, id)
	}
	return el.value, nil
}

// SetInputValue simulates typing into an input element.
func (m *Memory) SetInputValue(id, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	el, ok := m.elements[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNoElement, id)
	}
	el.value = value
	return nil
}

// OnClick sets the element's click handler.
func (m *Memory) OnClick(id string, fn func()) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	el, ok := m.elements[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNoElement, id)
	}
	el.onClick = fn
	return nil
}

// Click fires the element's click handler.
func (m *Memory) Click(id string) error {
	m.mu.Lock()
	el, ok := m.elements[id]
	var handler func()
	if ok {
		handler = el.onClick
	}
	m.mu.Unlock()

	if !ok {
		return fmt.Errorf("%w: %s", ErrNoElement, id)
	}
	if handler == nil {
		return fmt.Errorf("%w: %s", ErrNoHandler, id)
	}
	handler()
	return nil
}

// OnHashChange sets the hash-change handler.
func (m *Memory) OnHashChange(fn func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onHashChange = fn
}

// OpenURL records the URL. A URL with a fragment navigates to it.
func (m *Memory) OpenURL(url string) error {
	m.mu.Lock()
	m.opened = append(m.opened, url)
	m.mu.Unlock()

	if _, fragment, ok := strings.Cut(url, "#"); ok {
		m.Navigate(fragment)
	}
	return nil
}

// Opened returns every URL passed to OpenURL, oldest first.
func (m *Memory) Opened() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.opened)
}

// Has reports whether an element with the id exists.
func (m *Memory) Has(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.elements[id]
	return ok
}

// InnerHTML returns the element's content as markup. Text set through
// SetInnerText is escaped.
func (m *Memory) InnerHTML(id string) string {
	m.mu.Lock()
	defer m.mu.Unlock()

	el, ok := m.elements[id]
	if !ok {
		return ""
	}
	if el.isText {
		return html.EscapeString(el.text)
	}
	return el.markup
}

// InnerText returns the element's text content.
func (m *Memory) InnerText(id string) string {
	m.mu.Lock()
	defer m.mu.Unlock()

	el, ok := m.elements[id]
	if !ok {
		return ""
	}
	if el.isText {
		return el.text
	}
	return textContent(el.markup)
}

// Snapshot returns the markup of every element, keyed by id.
func (m *Memory) Snapshot() map[string]string {
	m.mu.Lock()
	ids := slices.Sorted(maps.Keys(m.elements))
	m.mu.Unlock()

	snap := make(map[string]string, len(ids))
	for _, id := range ids {
		snap[id] = m.InnerHTML(id)
	}
	return snap
}

// removeChildren drops every element registered under parent, recursively.
// Caller holds m.mu.
func (m *Memory) removeChildren(parent string) {
	for id, el := range m.elements {
		if el.parent == parent {
			delete(m.elements, id)
			m.removeChildren(id)
		}
	}
}

// register adds node and its descendants that carry an id. An id that is
// already registered keeps its first element, as getElementById would.
// Caller holds m.mu.
func (m *Memory) register(parent string, node *xhtml.Node) {
	if node.Type == xhtml.ElementNode {
		if id := attr(node, "id"); id != "" && m.elements[id] == nil {
			el := &element{parent: parent}
			if node.DataAtom == atom.Input || node.DataAtom == atom.Textarea {
				el.value = attr(node, "value")
			}
			m.elements[id] = el
			parent = id
		}
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		m.register(parent, child)
	}
}

func parseFragment(markup string) ([]*xhtml.Node, error) {
	context := &xhtml.Node{Type: xhtml.ElementNode, Data: "div", DataAtom: atom.Div}
	nodes, err := xhtml.ParseFragment(strings.NewReader(markup), context)
	if err != nil {
		return nil, err
	}
	return nodes, nil
}

func textContent(markup string) string {
	nodes, err := parseFragment(markup)
	if err != nil {
		return ""
	}
	var b strings.Builder
	var walk func(*xhtml.Node)
	walk = func(n *xhtml.Node) {
		if n.Type == xhtml.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range nodes {
		walk(n)
	}
	return b.String()
}

func attr(node *xhtml.Node, key string) string {
	for _, a := range node.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func normalizeHash(fragment string) string {
	fragment = strings.TrimPrefix(fragment, "#")
	if fragment == "" {
		return ""
	}
	return "#" + fragment
}
