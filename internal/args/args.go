// Package args turns a URL hash fragment into a CLI-style argument list.
//
// In a browser the page can route on the hash fragment without reloading:
//
//	http://localhost:4000/pwademo/#print/world
//
// yields the list ["pwademo", "print", "world"]. Like os.Args, the first
// element is the program name, so handlers can index user arguments from 1.
package args

import (
	"net/url"
	"strings"
)

// List is an ordered sequence of argument tokens. Element 0 is always the
// sentinel program name.
type List []string

// FromHash builds a List from a hash fragment. The leading '#' is optional.
// An empty fragment yields a list holding only the sentinel.
//
// Each token is percent-decoded because browsers do not decode the hash.
// A token that is not valid percent-encoding is kept as written.
func FromHash(sentinel, fragment string) List {
	fragment = strings.TrimPrefix(fragment, "#")
	if fragment == "" {
		return List{sentinel}
	}

	parts := strings.Split(fragment, "/")
	list := make(List, 0, len(parts)+1)
	list = append(list, sentinel)
	for _, part := range parts {
		list = append(list, decode(part))
	}
	return list
}

// Get returns the argument at index i and whether it exists.
func (l List) Get(i int) (string, bool) {
	if i < 0 || i >= len(l) {
		return "", false
	}
	return l[i], true
}

// Sentinel returns the program name, or "" for a zero List.
func (l List) Sentinel() string {
	s, _ := l.Get(0)
	return s
}

// Hash renders the user arguments back into a fragment, without the '#'.
func (l List) Hash() string {
	if len(l) < 2 {
		return ""
	}
	parts := make([]string, 0, len(l)-1)
	for _, a := range l[1:] {
		parts = append(parts, url.PathEscape(a))
	}
	return strings.Join(parts, "/")
}

func decode(token string) string {
	decoded, err := url.PathUnescape(token)
	if err != nil {
		return token
	}
	return decoded
}
