// Package layout holds the per-frame layout tree and the box layout algorithm.
//
// Widgets report Hints to their parent, then produce a Node whose bounds are
// relative to the parent. Once the root has been laid out the driver calls
// ToAbsolute so draw and event handling see screen coordinates.
package layout

import (
	"github.com/go-drift/sway/pkg/graphics"
	"github.com/go-drift/sway/pkg/identity"
)

// Node is the computed position and size of one widget for one frame.
type Node struct {
	Bounds   graphics.Rect
	ID       identity.ID
	Children []Node
}

// Leaf returns a childless node of the given size at the origin.
func Leaf(id identity.ID, size graphics.Size) Node {
	return Node{Bounds: graphics.RectFromOffsetSize(graphics.Offset{}, size), ID: id}
}

// WithChildren returns a node of the given size at the origin.
func WithChildren(id identity.ID, size graphics.Size, children []Node) Node {
	return Node{Bounds: graphics.RectFromOffsetSize(graphics.Offset{}, size), ID: id, Children: children}
}

// Size returns the node's size.
func (n Node) Size() graphics.Size {
	return n.Bounds.Size()
}

// Translate moves the node's own bounds by o. Children are relative to the
// node until ToAbsolute runs, so they are not touched.
func (n *Node) Translate(o graphics.Offset) {
	n.Bounds = n.Bounds.Shift(o)
}

// Translated returns a copy moved by o.
func (n Node) Translated(o graphics.Offset) Node {
	n.Translate(o)
	return n
}

// TranslateMain moves the node along axis.
func (n *Node) TranslateMain(axis Axis, d float64) {
	n.Translate(axis.MakeOffset(d, 0))
}

// TranslateCross moves the node across axis.
func (n *Node) TranslateCross(axis Axis, d float64) {
	n.Translate(axis.MakeOffset(0, d))
}

// ClearTranslation moves the node so its top-left corner is at the origin.
func (n *Node) ClearTranslation() {
	n.Bounds = graphics.RectFromOffsetSize(graphics.Offset{}, n.Bounds.Size())
}

// ToAbsolute rewrites every descendant's bounds from parent-relative to the
// coordinate space of n. It must run exactly once per tree.
func (n *Node) ToAbsolute() {
	n.toAbsolute(graphics.Offset{})
}

func (n *Node) toAbsolute(parent graphics.Offset) {
	n.Translate(parent)
	origin := n.Bounds.TopLeft()
	for i := range n.Children {
		n.Children[i].toAbsolute(origin)
	}
}

// Child returns the i-th child, or false if there is none.
func (n *Node) Child(i int) (*Node, bool) {
	if i < 0 || i >= len(n.Children) {
		return nil, false
	}
	return &n.Children[i], true
}

// Walk visits n and its descendants in pre-order until visit returns false.
func (n *Node) Walk(visit func(*Node) bool) bool {
	if !visit(n) {
		return false
	}
	for i := range n.Children {
		if !n.Children[i].Walk(visit) {
			return false
		}
	}
	return true
}

// Find returns the first node in pre-order with the given id.
func (n *Node) Find(id identity.ID) (*Node, bool) {
	var found *Node
	n.Walk(func(c *Node) bool {
		if c.ID == id {
			found = c
			return false
		}
		return true
	})
	return found, found != nil
}

// IDs collects every id in the tree.
func (n *Node) IDs() map[identity.ID]struct{} {
	ids := make(map[identity.ID]struct{})
	n.Walk(func(c *Node) bool {
		ids[c.ID] = struct{}{}
		return true
	})
	return ids
}
