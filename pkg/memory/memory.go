// Package memory stores per-widget state that survives across frames.
//
// Entries are keyed by widget ID and the Go type of the stored value, so two
// widget kinds sharing an ID never see each other's state. Access goes through
// a Handle that must be released before the same entry is borrowed again;
// a second live borrow is a fatal error for the frame.
package memory

import (
	"fmt"
	"reflect"

	"github.com/go-drift/sway/pkg/errors"
	"github.com/go-drift/sway/pkg/identity"
)

// Policy decides what happens to entries of widgets that were not laid out in a frame.
type Policy int

const (
	// EvictUnvisited drops entries whose widget was absent from the last layout.
	EvictUnvisited Policy = iota
	// RetainAll keeps every entry until it is overwritten or deleted.
	RetainAll
)

func (p Policy) String() string {
	switch p {
	case EvictUnvisited:
		return "unvisited"
	case RetainAll:
		return "retain"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// ParsePolicy maps a config value to a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "", "unvisited":
		return EvictUnvisited, nil
	case "retain":
		return RetainAll, nil
	default:
		return 0, fmt.Errorf("unknown eviction policy %q", s)
	}
}

type key struct {
	id  identity.ID
	typ reflect.Type
}

type entry struct {
	// value always holds a *T for the key's type T.
	value    any
	borrowed bool
}

// Store is the persistent memory shared by every widget of an application.
// It is not safe for concurrent use; frames run on a single goroutine.
type Store struct {
	entries map[key]*entry
	policy  Policy
}

// NewStore creates an empty store with the given eviction policy.
func NewStore(policy Policy) *Store {
	return &Store{entries: make(map[key]*entry), policy: policy}
}

// Policy returns the store's eviction policy.
func (s *Store) Policy() Policy {
	return s.policy
}

// Len returns the number of entries.
func (s *Store) Len() int {
	return len(s.entries)
}

// Sweep applies the eviction policy given the set of ids laid out this frame.
// Borrowed entries are never evicted. It returns the number of entries removed.
func (s *Store) Sweep(visited map[identity.ID]struct{}) int {
	if s.policy == RetainAll {
		return 0
	}
	removed := 0
	for k, e := range s.entries {
		if _, ok := visited[k.id]; ok || e.borrowed {
			continue
		}
		delete(s.entries, k)
		removed++
	}
	return removed
}

// Clear drops every entry.
func (s *Store) Clear() {
	clear(s.entries)
}

// Handle is a borrow of one entry. Release it before borrowing the entry again.
type Handle[T any] struct {
	entry *entry
	ptr   *T
}

// Get returns a pointer to the stored value. It is only valid until Release.
func (h *Handle[T]) Get() *T {
	if h.entry == nil || !h.entry.borrowed {
		errors.Fatal("memory.Handle.Get", errors.KindMemory, fmt.Errorf("use after release: %w", errors.ErrAliasedBorrow))
	}
	return h.ptr
}

// Release ends the borrow. Releasing twice is a no-op.
func (h *Handle[T]) Release() {
	if h.entry != nil {
		h.entry.borrowed = false
		h.entry = nil
	}
}

func keyFor[T any](id identity.ID) key {
	return key{id: id, typ: reflect.TypeFor[T]()}
}

func (s *Store) lookup(op string, k key) (*entry, bool) {
	e, ok := s.entries[k]
	if !ok {
		return nil, false
	}
	if e.borrowed {
		errors.Fatal(op, errors.KindMemory, &BorrowError{ID: k.id, Type: k.typ})
	}
	return e, true
}

func borrow[T any](op string, e *entry, k key) *Handle[T] {
	ptr, ok := e.value.(*T)
	if !ok {
		errors.Fatal(op, errors.KindMemory, &TypeError{ID: k.id, Want: k.typ, Got: reflect.TypeOf(e.value)})
	}
	e.borrowed = true
	return &Handle[T]{entry: e, ptr: ptr}
}

// GetOr borrows the entry for id, initializing it to def on first access.
// Later calls ignore def.
func GetOr[T any](s *Store, id identity.ID, def T) *Handle[T] {
	return GetOrElse(s, id, func() T { return def })
}

// GetOrElse is like GetOr but only builds the default when the entry is missing.
func GetOrElse[T any](s *Store, id identity.ID, init func() T) *Handle[T] {
	const op = "memory.GetOr"
	k := keyFor[T](id)
	e, ok := s.lookup(op, k)
	if !ok {
		v := init()
		e = &entry{value: &v}
		s.entries[k] = e
	}
	return borrow[T](op, e, k)
}

// GetMut borrows an entry that must already exist.
func GetMut[T any](s *Store, id identity.ID) *Handle[T] {
	const op = "memory.GetMut"
	k := keyFor[T](id)
	e, ok := s.lookup(op, k)
	if !ok {
		errors.Fatal(op, errors.KindMemory, &MissingError{ID: id, Type: k.typ})
	}
	return borrow[T](op, e, k)
}

// Lookup borrows the entry if it exists.
func Lookup[T any](s *Store, id identity.ID) (*Handle[T], bool) {
	const op = "memory.Lookup"
	k := keyFor[T](id)
	e, ok := s.lookup(op, k)
	if !ok {
		return nil, false
	}
	return borrow[T](op, e, k), true
}

// Set stores v for id, replacing any existing value.
func Set[T any](s *Store, id identity.ID, v T) {
	const op = "memory.Set"
	k := keyFor[T](id)
	if e, ok := s.lookup(op, k); ok {
		e.value = &v
		return
	}
	s.entries[k] = &entry{value: &v}
}

// Read returns a copy of an entry that must already exist.
func Read[T any](s *Store, id identity.ID) T {
	h := GetMut[T](s, id)
	defer h.Release()
	return *h.Get()
}

// ReadOr returns a copy of the entry, initializing it to def when missing.
func ReadOr[T any](s *Store, id identity.ID, def T) T {
	h := GetOr(s, id, def)
	defer h.Release()
	return *h.Get()
}

// Update borrows the entry (initialized to def when missing) for the duration of fn.
func Update[T any](s *Store, id identity.ID, def T, fn func(*T)) {
	h := GetOr(s, id, def)
	defer h.Release()
	fn(h.Get())
}

// Has reports whether an entry of type T exists for id.
func Has[T any](s *Store, id identity.ID) bool {
	_, ok := s.entries[keyFor[T](id)]
	return ok
}

// Delete removes the entry of type T for id.
func Delete[T any](s *Store, id identity.ID) {
	const op = "memory.Delete"
	k := keyFor[T](id)
	if _, ok := s.lookup(op, k); ok {
		delete(s.entries, k)
	}
}

// MissingError reports a GetMut on an entry that was never initialized.
type MissingError struct {
	ID   identity.ID
	Type reflect.Type
}

func (e *MissingError) Error() string {
	return fmt.Sprintf("no %s entry for widget %s", e.Type, e.ID)
}

func (e *MissingError) Unwrap() error { return errors.ErrMissingEntry }

// TypeError reports a stored value whose type does not match its key.
type TypeError struct {
	ID   identity.ID
	Want reflect.Type
	Got  reflect.Type
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("widget %s: want %s, stored %s", e.ID, e.Want, e.Got)
}

func (e *TypeError) Unwrap() error { return errors.ErrWrongType }

// BorrowError reports a second borrow of an entry that is still held.
type BorrowError struct {
	ID   identity.ID
	Type reflect.Type
}

func (e *BorrowError) Error() string {
	return fmt.Sprintf("%s entry for widget %s is already borrowed", e.Type, e.ID)
}

func (e *BorrowError) Unwrap() error { return errors.ErrAliasedBorrow }
