package callback

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-drift/sway/pkg/errors"
)

type edge struct {
	from, to reflect.Type
	project  func(any) any
}

// Registry holds projections from one state type to a part of it.
//
// The projections form a directed acyclic graph over types. To run a callback
// written for type U against a root of type T, the registry searches a path
// T -> ... -> U and applies each projection along it.
type Registry struct {
	edges []edge
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds the projection fn from T to U. Registering the same pair again
// replaces the projection. An edge that would close a cycle is rejected.
func Register[T, U any](r *Registry, fn func(*T) *U) error {
	from, to := reflect.TypeFor[T](), reflect.TypeFor[U]()
	project := func(v any) any { return fn(v.(*T)) }
	for i, e := range r.edges {
		if e.from == from && e.to == to {
			r.edges[i].project = project
			return nil
		}
	}
	if from == to {
		return accessorError("callback.Register", from, to, errors.ErrAccessorCycle)
	}
	if _, err := r.FindPath(to, from); err == nil {
		return accessorError("callback.Register", from, to, errors.ErrAccessorCycle)
	}
	r.edges = append(r.edges, edge{from: from, to: to, project: project})
	return nil
}

// MustRegister is like Register but aborts on error.
func MustRegister[T, U any](r *Registry, fn func(*T) *U) {
	if err := Register(r, fn); err != nil {
		panic(err)
	}
}

// Len returns the number of registered projections.
func (r *Registry) Len() int {
	return len(r.edges)
}

// FindPath returns the types visited on the way from one type to another,
// both included. Edges are explored depth first in registration order.
func (r *Registry) FindPath(from, to reflect.Type) ([]reflect.Type, error) {
	if from == to {
		return []reflect.Type{from}, nil
	}
	s := search{r: r, to: to, onPath: make(map[reflect.Type]bool), done: make(map[reflect.Type]bool)}
	found, err := s.visit(from)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, accessorError("callback.FindPath", from, to, errors.ErrNoAccessorPath)
	}
	return s.path, nil
}

type search struct {
	r      *Registry
	to     reflect.Type
	onPath map[reflect.Type]bool
	done   map[reflect.Type]bool
	path   []reflect.Type
}

func (s *search) visit(t reflect.Type) (bool, error) {
	if s.onPath[t] {
		return false, accessorError("callback.FindPath", t, s.to, errors.ErrAccessorCycle)
	}
	if s.done[t] {
		return false, nil
	}
	s.onPath[t] = true
	s.path = append(s.path, t)
	if t == s.to {
		return true, nil
	}
	for _, e := range s.r.edges {
		if e.from != t {
			continue
		}
		found, err := s.visit(e.to)
		if err != nil || found {
			return found, err
		}
	}
	s.path = s.path[:len(s.path)-1]
	s.onPath[t] = false
	s.done[t] = true
	return false, nil
}

func (r *Registry) project(from, to reflect.Type) func(any) any {
	for _, e := range r.edges {
		if e.from == from && e.to == to {
			return e.project
		}
	}
	return nil
}

// Access walks from root, a pointer to some state, to a pointer of type *to.
func (r *Registry) Access(root any, to reflect.Type) (any, error) {
	rv := reflect.ValueOf(root)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return nil, errors.New("callback.Access", errors.KindCallback,
			fmt.Errorf("state must be a non-nil pointer, got %T", root))
	}
	path, err := r.FindPath(rv.Type().Elem(), to)
	if err != nil {
		return nil, err
	}
	cur := root
	for i := 0; i+1 < len(path); i++ {
		cur = r.project(path[i], path[i+1])(cur)
	}
	return cur, nil
}

// Invoke calls fn with a pointer to the part of state of type target.
func (r *Registry) Invoke(state any, target reflect.Type, fn func(any)) error {
	sub, err := r.Access(state, target)
	if err != nil {
		return err
	}
	fn(sub)
	return nil
}

// AccessorError names the types of a failed projection lookup.
type AccessorError struct {
	From, To reflect.Type
	Err      error
}

func (e *AccessorError) Error() string {
	return fmt.Sprintf("%s -> %s: %v", typeName(e.From), typeName(e.To), e.Err)
}

func (e *AccessorError) Unwrap() error { return e.Err }

func accessorError(op string, from, to reflect.Type, err error) error {
	return errors.New(op, errors.KindAccessor, &AccessorError{From: from, To: to, Err: err})
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	return strings.TrimPrefix(t.String(), "*")
}
