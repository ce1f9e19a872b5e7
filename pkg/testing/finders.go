package testing

import (
	"fmt"

	"github.com/go-drift/sway/pkg/graphics"
	"github.com/go-drift/sway/pkg/identity"
	"github.com/go-drift/sway/pkg/layout"
)

// FindNode returns the node for id in the last frame's layout.
func (t *Tester) FindNode(id identity.ID) (*layout.Node, bool) {
	if t.frame == nil {
		return nil, false
	}
	return t.frame.Layout.Find(id)
}

// MustFindNode is like FindNode but fails the test when id was not laid out.
func (t *Tester) MustFindNode(id identity.ID) *layout.Node {
	t.t.Helper()
	n, ok := t.FindNode(id)
	if !ok {
		t.t.Fatalf("no node with id %s in the last frame", id)
	}
	return n
}

// Center returns the center of the node for id in screen coordinates.
func (t *Tester) Center(id identity.ID) (graphics.Offset, error) {
	n, ok := t.FindNode(id)
	if !ok {
		return graphics.Offset{}, fmt.Errorf("Center: no node with id %s", id)
	}
	return n.Bounds.Center(), nil
}

// Nodes returns every node of the last frame in depth-first pre-order.
func (t *Tester) Nodes() []*layout.Node {
	if t.frame == nil {
		return nil
	}
	var out []*layout.Node
	root := t.frame.Layout
	root.Walk(func(n *layout.Node) bool {
		out = append(out, n)
		return true
	})
	return out
}
