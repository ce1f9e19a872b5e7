package graphics

// DisplayList is an immutable, ordered list of clipped primitives for one frame.
type DisplayList struct {
	items []ClippedPrimitive
	size  Size
}

// Items returns the primitives in paint order.
func (d *DisplayList) Items() []ClippedPrimitive {
	if d == nil {
		return nil
	}
	return d.items
}

// Len returns the number of primitives.
func (d *DisplayList) Len() int {
	if d == nil {
		return 0
	}
	return len(d.items)
}

// Size returns the screen size the list was recorded for.
func (d *DisplayList) Size() Size {
	if d == nil {
		return Size{}
	}
	return d.size
}

// Paint replays the list onto canvas in order.
func (d *DisplayList) Paint(canvas Canvas) {
	if d == nil || canvas == nil {
		return
	}
	for _, item := range d.items {
		item.Primitive.execute(canvas, item.Clip)
	}
}
