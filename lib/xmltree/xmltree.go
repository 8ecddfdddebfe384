// Package xmltree decodes attribute-heavy XML documents into a
// navigable tree. Configured element tags fold into ordered sequences
// regardless of how many siblings occur, and sibling groups re-key into
// maps by the first configured identifying attribute present on the
// group, which is the shape row-set style schemas want.
package xmltree

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/beevik/etree"
	"golang.org/x/net/html/charset"
)

// Options configures how Parse folds a document.
type Options struct {
	// ListTags names elements that always fold into ordered sequences,
	// even when a parent holds just one of them.
	ListTags []string
	// KeyAttrs is a priority list of attribute names used to re-key a
	// sibling group of list elements into a map. The first name present
	// anywhere in the group wins; a group with none stays sequence-only.
	KeyAttrs []string
}

type Document struct {
	Root *Node
}

// Node is one folded XML element.
type Node struct {
	Tag   string
	Attrs map[string]string
	// Text holds the element's trimmed character data, including CDATA.
	Text string

	children []*Node
	seqs     map[string][]*Node
	keyed    map[string]map[string]*Node
}

// Parse decodes data and folds it according to opts. Documents in
// non-UTF-8 encodings are converted using the declared charset label.
func Parse(data []byte, opts Options) (*Document, error) {
	doc := etree.NewDocument()
	doc.ReadSettings.CharsetReader = charset.NewReaderLabel
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("decode xml: %w", err)
	}
	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("decode xml: document has no root element")
	}
	return &Document{Root: fold(root, opts)}, nil
}

func fold(el *etree.Element, opts Options) *Node {
	n := &Node{
		Tag:   el.Tag,
		Attrs: make(map[string]string, len(el.Attr)),
		Text:  strings.TrimSpace(el.Text()),
	}
	for _, attr := range el.Attr {
		n.Attrs[attr.Key] = attr.Value
	}

	for _, child := range el.ChildElements() {
		cn := fold(child, opts)
		n.children = append(n.children, cn)
		if slices.Contains(opts.ListTags, child.Tag) {
			if n.seqs == nil {
				n.seqs = make(map[string][]*Node)
			}
			n.seqs[child.Tag] = append(n.seqs[child.Tag], cn)
		}
	}

	for tag, group := range n.seqs {
		attr := groupKeyAttr(group, opts.KeyAttrs)
		if attr == "" {
			continue
		}
		m := make(map[string]*Node, len(group))
		for _, member := range group {
			id, ok := member.Attrs[attr]
			if !ok {
				// member lacks the group's key, it stays reachable
				// through the sequence only
				continue
			}
			if _, dup := m[id]; dup {
				slog.Warn(
					"duplicate key in sibling group, keeping the last row",
					"tag", tag,
					"attr", attr,
					"key", id,
				)
			}
			m[id] = member
		}
		if n.keyed == nil {
			n.keyed = make(map[string]map[string]*Node)
		}
		n.keyed[tag] = m
	}
	return n
}

func groupKeyAttr(group []*Node, priority []string) string {
	for _, attr := range priority {
		for _, member := range group {
			if _, ok := member.Attrs[attr]; ok {
				return attr
			}
		}
	}
	return ""
}

// Child returns the first direct child with the given tag, or nil.
func (n *Node) Child(tag string) *Node {
	if n == nil {
		return nil
	}
	for _, c := range n.children {
		if c.Tag == tag {
			return c
		}
	}
	return nil
}

// ChildText returns the trimmed text of the first child with the given
// tag, or "" when no such child exists.
func (n *Node) ChildText(tag string) string {
	c := n.Child(tag)
	if c == nil {
		return ""
	}
	return c.Text
}

// Children returns every direct child element in document order.
func (n *Node) Children() []*Node {
	if n == nil {
		return nil
	}
	return n.children
}

// Seq returns the ordered sequence of list-tag children with the given
// tag. Ranging over the result is safe on any node.
func (n *Node) Seq(tag string) []*Node {
	if n == nil || n.seqs == nil {
		return nil
	}
	return n.seqs[tag]
}

// Map returns the sibling group with the given tag re-keyed by its
// identifying attribute, or nil when no priority attribute was present
// on the group.
func (n *Node) Map(tag string) map[string]*Node {
	if n == nil || n.keyed == nil {
		return nil
	}
	return n.keyed[tag]
}

// Attr returns the attribute value, or "" when absent.
func (n *Node) Attr(name string) string {
	if n == nil {
		return ""
	}
	return n.Attrs[name]
}

// HasAttr reports whether the attribute is present, distinguishing an
// absent attribute from an empty one.
func (n *Node) HasAttr(name string) bool {
	if n == nil {
		return false
	}
	_, ok := n.Attrs[name]
	return ok
}
