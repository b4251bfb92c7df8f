package testsupport

import (
	"strings"
	"testing"

	"golang.org/x/net/html"
)

// Matcher selects element nodes.
type Matcher func(*html.Node) bool

// ParseHTML parses a document or fragment. Fragments end up inside the
// implied <body>.
func ParseHTML(t *testing.T, markup string) *html.Node {
	t.Helper()

	root, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	return root
}

// FindAll returns every element below root accepted by all matchers, in
// document order.
func FindAll(root *html.Node, matchers ...Matcher) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && matchAll(n, matchers) {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return out
}

// Children returns direct element children of n accepted by all matchers.
func Children(n *html.Node, matchers ...Matcher) []*html.Node {
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && matchAll(c, matchers) {
			out = append(out, c)
		}
	}
	return out
}

// Tag matches elements by name.
func Tag(name string) Matcher {
	return func(n *html.Node) bool { return n.Data == name }
}

// ClassIs matches elements whose class attribute equals class exactly.
func ClassIs(class string) Matcher {
	return func(n *html.Node) bool {
		value, ok := Attr(n, "class")
		return ok && value == class
	}
}

// HasClass matches elements whose class list contains token.
func HasClass(token string) Matcher {
	return func(n *html.Node) bool {
		value, _ := Attr(n, "class")
		for _, field := range strings.Fields(value) {
			if field == token {
				return true
			}
		}
		return false
	}
}

// AttrIs matches elements carrying key="value".
func AttrIs(key, value string) Matcher {
	return func(n *html.Node) bool {
		got, ok := Attr(n, key)
		return ok && got == value
	}
}

// Attr returns the value of attribute key.
func Attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// Text concatenates all text below n.
func Text(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

// Texts maps Text over nodes.
func Texts(nodes []*html.Node) []string {
	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, Text(n))
	}
	return out
}

func matchAll(n *html.Node, matchers []Matcher) bool {
	for _, m := range matchers {
		if m != nil && !m(n) {
			return false
		}
	}
	return true
}
