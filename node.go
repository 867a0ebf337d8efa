package goose

import (
	"strings"

	"golang.org/x/net/html"
)

// NodeID identifies a node within one parsed document and within every deep
// copy of it made through the same Arena. Zero means "no node".
type NodeID uint64

// Arena assigns stable IDs to document nodes. Copies made with Clone carry
// the IDs of their originals, so identity checks keep working after the
// working document has been copied or replaced by a copied subtree.
//
// An Arena belongs to a single Article and has a single writer.
type Arena struct {
	ids  map[*html.Node]NodeID
	next NodeID
}

// NewArena returns an empty Arena.
func NewArena() *Arena {
	return &Arena{ids: make(map[*html.Node]NodeID)}
}

// ID returns the ID of n, assigning a fresh one the first time n is seen.
func (a *Arena) ID(n *html.Node) NodeID {
	if n == nil {
		return 0
	}
	if id, ok := a.ids[n]; ok {
		return id
	}
	a.next++
	a.ids[n] = a.next
	return a.next
}

// Same reports whether x and y are the same node or copies of it.
func (a *Arena) Same(x, y *html.Node) bool {
	if x == nil || y == nil {
		return x == y
	}
	return a.ID(x) == a.ID(y)
}

// Clone returns a deep copy of n. Every copied node shares the ID of the
// node it was copied from.
func (a *Arena) Clone(n *html.Node) *html.Node {
	if n == nil {
		return nil
	}
	return cloneNode(n, func(orig, cp *html.Node) {
		a.ids[cp] = a.ID(orig)
	})
}

// CloneNode returns a deep copy of n detached from any parent.
func CloneNode(n *html.Node) *html.Node {
	if n == nil {
		return nil
	}
	return cloneNode(n, nil)
}

func cloneNode(n *html.Node, visit func(orig, cp *html.Node)) *html.Node {
	cp := &html.Node{
		Type:      n.Type,
		DataAtom:  n.DataAtom,
		Data:      n.Data,
		Namespace: n.Namespace,
	}
	if len(n.Attr) > 0 {
		cp.Attr = make([]html.Attribute, len(n.Attr))
		copy(cp.Attr, n.Attr)
	}
	if visit != nil {
		visit(n, cp)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		cp.AppendChild(cloneNode(c, visit))
	}
	return cp
}

// NodeText returns the concatenated text of n and its descendants.
func NodeText(n *html.Node) string {
	if n == nil {
		return ""
	}
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			b.WriteString(n.Data)
		case html.CommentNode:
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

// Contains reports whether root is n or an ancestor of n.
func Contains(root, n *html.Node) bool {
	for cur := n; cur != nil; cur = cur.Parent {
		if cur == root {
			return true
		}
	}
	return false
}
