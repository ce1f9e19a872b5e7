package callback

import "reflect"

// Lens describes how to reach a value of type T from a root state type
// without registering projections. Callbacks built from a lens target the
// root type directly.
type Lens[T any] struct {
	root reflect.Type
	get  func(root any) *T
}

// Root starts a lens at state type T.
func Root[T any]() Lens[T] {
	return Lens[T]{
		root: reflect.TypeFor[T](),
		get:  func(root any) *T { return root.(*T) },
	}
}

// DrillDown extends l with one more projection.
func DrillDown[T, U any](l Lens[T], fn func(*T) *U) Lens[U] {
	get := l.get
	return Lens[U]{
		root: l.root,
		get:  func(root any) *U { return fn(get(root)) },
	}
}

// RootType returns the state type the lens starts from.
func (l Lens[T]) RootType() reflect.Type {
	return l.root
}

// Get applies the lens to root, which must be a pointer to the root type.
func (l Lens[T]) Get(root any) *T {
	return l.get(root)
}

// LensCallback builds an external callback over the lens root that applies
// the lens before calling fn.
func LensCallback[T, P any](l Lens[T], fn func(*T, P)) Callback[P] {
	get := l.get
	return Callback[P]{ext: &external{
		target: l.root,
		invoke: func(root any, payload any) {
			fn(get(root), payload.(P))
		},
	}}
}
