package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/sway/pkg/errors"
	"github.com/go-drift/sway/pkg/identity"
)

// fatal runs fn and returns the error it aborted with, if any.
func fatal(fn func()) (err error) {
	defer func() { err = errors.FromRecovered("test", recover()) }()
	fn()
	return nil
}

type scroll struct{ offset float64 }

func TestSetThenRead(t *testing.T) {
	s := NewStore(RetainAll)
	id := identity.Root.With("w")
	Set(s, id, 42)
	assert.Equal(t, 42, Read[int](s, id))

	Set(s, id, 7)
	assert.Equal(t, 7, Read[int](s, id))
}

// The first default wins; later defaults are ignored.
func TestGetOrKeepsFirstDefault(t *testing.T) {
	s := NewStore(RetainAll)
	id := identity.Root.With("w")

	h := GetOr(s, id, "first")
	assert.Equal(t, "first", *h.Get())
	h.Release()

	h = GetOr(s, id, "second")
	assert.Equal(t, "first", *h.Get())
	h.Release()
}

func TestHandleMutatesInPlace(t *testing.T) {
	s := NewStore(RetainAll)
	id := identity.Root.With("scroll")
	Update(s, id, scroll{}, func(v *scroll) { v.offset += 12 })
	Update(s, id, scroll{offset: 99}, func(v *scroll) { v.offset += 3 })
	assert.Equal(t, 15.0, Read[scroll](s, id).offset)
}

// Entries are keyed by type as well as id.
func TestTypesDoNotCollide(t *testing.T) {
	s := NewStore(RetainAll)
	id := identity.Root.With("shared")
	Set(s, id, 1)
	Set(s, id, "one")
	assert.Equal(t, 1, Read[int](s, id))
	assert.Equal(t, "one", Read[string](s, id))
	assert.Equal(t, 2, s.Len())
}

func TestGetMutMissingIsFatal(t *testing.T) {
	s := NewStore(RetainAll)
	err := fatal(func() { GetMut[int](s, identity.Root.With("nope")) })
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrMissingEntry))

	var se *errors.SwayError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, errors.KindMemory, se.Kind)
}

func TestAliasedBorrowIsFatal(t *testing.T) {
	s := NewStore(RetainAll)
	id := identity.Root.With("w")
	h := GetOr(s, id, 0)

	err := fatal(func() { GetOr(s, id, 0) })
	assert.True(t, errors.Is(err, errors.ErrAliasedBorrow))

	err = fatal(func() { Set(s, id, 3) })
	assert.True(t, errors.Is(err, errors.ErrAliasedBorrow))

	h.Release()
	h.Release()
	assert.NoError(t, fatal(func() { GetOr(s, id, 0).Release() }))
}

func TestUseAfterReleaseIsFatal(t *testing.T) {
	s := NewStore(RetainAll)
	h := GetOr(s, identity.Root, 1)
	h.Release()
	err := fatal(func() { h.Get() })
	assert.True(t, errors.Is(err, errors.ErrAliasedBorrow))
}

func TestLookupAndDelete(t *testing.T) {
	s := NewStore(RetainAll)
	id := identity.Root.With("w")
	_, ok := Lookup[int](s, id)
	assert.False(t, ok)

	Set(s, id, 5)
	h, ok := Lookup[int](s, id)
	require.True(t, ok)
	assert.Equal(t, 5, *h.Get())
	h.Release()

	assert.True(t, Has[int](s, id))
	Delete[int](s, id)
	assert.False(t, Has[int](s, id))
}

func TestSweepEvictsUnvisited(t *testing.T) {
	s := NewStore(EvictUnvisited)
	kept := identity.Root.With("kept")
	gone := identity.Root.With("gone")
	Set(s, kept, 1)
	Set(s, gone, 2)
	held := GetOr(s, identity.Root.With("held"), 3)

	removed := s.Sweep(map[identity.ID]struct{}{kept: {}})
	assert.Equal(t, 1, removed)
	assert.True(t, Has[int](s, kept))
	assert.False(t, Has[int](s, gone))
	held.Release()
}

func TestSweepRetainAll(t *testing.T) {
	s := NewStore(RetainAll)
	Set(s, identity.Root.With("a"), 1)
	assert.Equal(t, 0, s.Sweep(nil))
	assert.Equal(t, 1, s.Len())
}

func TestParsePolicy(t *testing.T) {
	p, err := ParsePolicy("retain")
	require.NoError(t, err)
	assert.Equal(t, RetainAll, p)

	p, err = ParsePolicy("")
	require.NoError(t, err)
	assert.Equal(t, EvictUnvisited, p)

	_, err = ParsePolicy("lru")
	assert.Error(t, err)
}
