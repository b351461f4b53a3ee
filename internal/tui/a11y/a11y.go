// Package a11y models the semantic tree a component exposes next to its
// rendered cells: roles, accessible names and ARIA-style attributes.
//
// Terminal output has no DOM, so screen-reader bridges and tests read this
// tree instead. Queries mirror the ones testing-library offers for the web.
package a11y

import (
	"fmt"
	"sort"
	"strings"
)

// Roles used by the components in this module.
const (
	RoleDialog    = "dialog"
	RoleGeneric   = "generic"
	RoleHeading   = "heading"
	RoleParagraph = "paragraph"
	RoleButton    = "button"
	RoleGroup     = "group"
	RoleImg       = "img"
)

// Common attribute keys.
const (
	AttrModal       = "aria-modal"
	AttrLabel       = "aria-label"
	AttrLabelledBy  = "aria-labelledby"
	AttrDescribedBy = "aria-describedby"
	AttrHidden      = "aria-hidden"
	AttrTabIndex    = "tabindex"
	AttrClass       = "class"
	AttrID          = "id"
	AttrLevel       = "level"
	AttrFocused     = "focused"
)

// Node is one element of the semantic tree.
type Node struct {
	Role     string
	Text     string
	Attrs    map[string]string
	Children []*Node
}

// New returns a node with the given role and attribute pairs.
// Pairs with an empty value are skipped.
func New(role string, attrs ...string) *Node {
	n := &Node{Role: role, Attrs: map[string]string{}}
	for i := 0; i+1 < len(attrs); i += 2 {
		n.Set(attrs[i], attrs[i+1])
	}
	return n
}

// Set sets an attribute. An empty value removes it.
func (n *Node) Set(key, value string) *Node {
	if n.Attrs == nil {
		n.Attrs = map[string]string{}
	}
	if value == "" {
		delete(n.Attrs, key)
		return n
	}
	n.Attrs[key] = value
	return n
}

// Attr returns an attribute value, or "" when unset.
func (n *Node) Attr(key string) string {
	return n.Attrs[key]
}

// Append adds children and returns n.
func (n *Node) Append(children ...*Node) *Node {
	n.Children = append(n.Children, children...)
	return n
}

// nameFromContent lists roles whose accessible name is computed from their
// text content when no aria-label is set.
var nameFromContent = map[string]bool{
	RoleButton:    true,
	RoleHeading:   true,
	RoleParagraph: true,
}

// Name is the accessible name: aria-label when present, otherwise the text
// content for roles named from content, otherwise "".
func (n *Node) Name() string {
	if label := n.Attr(AttrLabel); label != "" {
		return label
	}
	if !nameFromContent[n.Role] {
		return ""
	}
	return strings.TrimSpace(n.textContent())
}

func (n *Node) textContent() string {
	if n.Attr(AttrHidden) == "true" {
		return ""
	}
	parts := []string{}
	if n.Text != "" {
		parts = append(parts, n.Text)
	}
	for _, c := range n.Children {
		if t := c.textContent(); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, " ")
}

// Walk visits n and its descendants depth-first. Returning false from fn
// stops the walk.
func (n *Node) Walk(fn func(*Node) bool) bool {
	if !fn(n) {
		return false
	}
	for _, c := range n.Children {
		if !c.Walk(fn) {
			return false
		}
	}
	return true
}

// Find returns the first node matching pred, or nil.
func (n *Node) Find(pred func(*Node) bool) *Node {
	var found *Node
	n.Walk(func(c *Node) bool {
		if pred(c) {
			found = c
			return false
		}
		return true
	})
	return found
}

// FindAll returns every node matching pred in document order.
func (n *Node) FindAll(pred func(*Node) bool) []*Node {
	var out []*Node
	n.Walk(func(c *Node) bool {
		if pred(c) {
			out = append(out, c)
		}
		return true
	})
	return out
}

// ByRole returns the first node with role and accessible name. An empty
// name matches any node of that role.
func (n *Node) ByRole(role, name string) *Node {
	return n.Find(func(c *Node) bool {
		return c.Role == role && (name == "" || c.Name() == name)
	})
}

// AllByRole returns all nodes with the given role.
func (n *Node) AllByRole(role string) []*Node {
	return n.FindAll(func(c *Node) bool { return c.Role == role })
}

// ByText returns the first node whose own text equals text.
func (n *Node) ByText(text string) *Node {
	return n.Find(func(c *Node) bool { return c.Text == text })
}

// ByID returns the node whose id attribute equals id.
func (n *Node) ByID(id string) *Node {
	return n.Find(func(c *Node) bool { return c.Attr(AttrID) == id })
}

// Focused returns the node marked as focused, if any.
func (n *Node) Focused() *Node {
	return n.Find(func(c *Node) bool { return c.Attr(AttrFocused) == "true" })
}

// String dumps the tree one node per line, two spaces per level, with
// attributes sorted by key. The format is stable for snapshot tests.
func (n *Node) String() string {
	var sb strings.Builder
	n.dump(&sb, 0)
	return sb.String()
}

func (n *Node) dump(sb *strings.Builder, depth int) {
	sb.WriteString(strings.Repeat("  ", depth))
	sb.WriteString(n.Role)
	if name := n.Name(); name != "" {
		fmt.Fprintf(sb, " %q", name)
	}
	if len(n.Attrs) > 0 {
		keys := make([]string, 0, len(n.Attrs))
		for k := range n.Attrs {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		pairs := make([]string, len(keys))
		for i, k := range keys {
			pairs[i] = fmt.Sprintf("%s=%q", k, n.Attrs[k])
		}
		sb.WriteString(" [" + strings.Join(pairs, " ") + "]")
	}
	sb.WriteString("\n")
	for _, c := range n.Children {
		c.dump(sb, depth+1)
	}
}
