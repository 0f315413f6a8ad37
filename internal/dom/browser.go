//go:build js && wasm

package dom

import (
	"fmt"
	"syscall/js"
)

// Browser is a Document backed by the page the WASM module runs in.
type Browser struct {
	window     js.Value
	document   js.Value
	hashChange js.Func
	clicks     map[string]js.Func
}

var _ Document = (*Browser)(nil)

// NewBrowser binds to the global window and document.
func NewBrowser() *Browser {
	window := js.Global().Get("window")
	return &Browser{
		window:   window,
		document: window.Get("document"),
		clicks:   make(map[string]js.Func),
	}
}

// Hash returns window.location.hash. The browser does not decode it.
func (b *Browser) Hash() string {
	return b.window.Get("location").Get("hash").String()
}

// SetInnerHTML sets innerHTML of the element.
func (b *Browser) SetInnerHTML(id, markup string) error {
	el, err := b.element(id)
	if err != nil {
		return err
	}
	el.Set("innerHTML", markup)
	return nil
}

// SetInnerText sets innerText of the element.
func (b *Browser) SetInnerText(id, text string) error {
	el, err := b.element(id)
	if err != nil {
		return err
	}
	el.Set("innerText", text)
	return nil
}

// InputValue returns the value property of an input element.
func (b *Browser) InputValue(id string) (string, error) {
	el, err := b.element(id)
	if err != nil {
		return "", err
	}
	return el.Get("value").String(), nil
}

// OnClick assigns the element's onclick property.
func (b *Browser) OnClick(id string, fn func()) error {
	el, err := b.element(id)
	if err != nil {
		return err
	}
	if old, ok := b.clicks[id]; ok {
		old.Release()
	}
	cb := js.FuncOf(func(js.Value, []js.Value) any {
		fn()
		return nil
	})
	b.clicks[id] = cb
	el.Set("onclick", cb)
	return nil
}

// OnHashChange assigns window.onhashchange.
func (b *Browser) OnHashChange(fn func()) {
	if b.hashChange.Truthy() {
		b.hashChange.Release()
	}
	b.hashChange = js.FuncOf(func(js.Value, []js.Value) any {
		fn()
		return nil
	})
	b.window.Set("onhashchange", b.hashChange)
}

// Origin returns window.location.origin, e.g. https://example.org.
func (b *Browser) Origin() string {
	return b.window.Get("location").Get("origin").String()
}

// OpenURL assigns window.location.href.
func (b *Browser) OpenURL(url string) error {
	b.window.Get("location").Set("href", url)
	return nil
}

func (b *Browser) element(id string) (js.Value, error) {
	el := b.document.Call("getElementById", id)
	if el.IsNull() || el.IsUndefined() {
		return js.Value{}, fmt.Errorf("%w: %s", ErrNoElement, id)
	}
	return el, nil
}
