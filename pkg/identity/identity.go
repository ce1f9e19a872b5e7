// Package identity derives stable widget identifiers.
//
// An ID is recomputed every frame from the declared tree: each widget hashes
// its parent's ID together with a local key. Two siblings declared with the
// same key get the same ID; callers are expected to choose distinct keys.
package identity

import (
	"encoding/binary"
	"fmt"
	"math"
	"reflect"

	"github.com/cespare/xxhash/v2"
)

// ID is an opaque, hashable widget identifier.
type ID uint64

// Root is the parent ID handed to the root widget of every frame.
var Root = literal("sway.root")

// key type tags keep e.g. the string "1" and the int 1 apart.
const (
	tagString  byte = 's'
	tagInt     byte = 'i'
	tagUint    byte = 'u'
	tagFloat   byte = 'f'
	tagBool    byte = 'b'
	tagID      byte = 'd'
	tagType    byte = 't'
	tagOther   byte = 'v'
	tagLiteral byte = 'L'
)

// With derives a child ID from id and a local key.
//
// Keys may be strings, integers, floats, bools, IDs, reflect.Types or any
// value with a stable fmt representation.
func (id ID) With(key any) ID {
	d := xxhash.New()
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(id))
	_, _ = d.Write(buf[:])
	writeKey(d, key)
	return ID(d.Sum64())
}

// String returns the ID as 16 hex digits.
func (id ID) String() string {
	return fmt.Sprintf("%016x", uint64(id))
}

func literal(key any) ID {
	d := xxhash.New()
	_, _ = d.Write([]byte{tagLiteral})
	writeKey(d, key)
	return ID(d.Sum64())
}

func writeKey(d *xxhash.Digest, key any) {
	var buf [9]byte
	putUint := func(tag byte, v uint64) {
		buf[0] = tag
		binary.LittleEndian.PutUint64(buf[1:], v)
		_, _ = d.Write(buf[:])
	}
	switch k := key.(type) {
	case string:
		_, _ = d.Write([]byte{tagString})
		_, _ = d.WriteString(k)
	case int:
		putUint(tagInt, uint64(k))
	case int8:
		putUint(tagInt, uint64(k))
	case int16:
		putUint(tagInt, uint64(k))
	case int32:
		putUint(tagInt, uint64(k))
	case int64:
		putUint(tagInt, uint64(k))
	case uint:
		putUint(tagUint, uint64(k))
	case uint8:
		putUint(tagUint, uint64(k))
	case uint16:
		putUint(tagUint, uint64(k))
	case uint32:
		putUint(tagUint, uint64(k))
	case uint64:
		putUint(tagUint, k)
	case float32:
		putUint(tagFloat, math.Float64bits(float64(k)))
	case float64:
		putUint(tagFloat, math.Float64bits(k))
	case bool:
		v := uint64(0)
		if k {
			v = 1
		}
		putUint(tagBool, v)
	case ID:
		putUint(tagID, uint64(k))
	case reflect.Type:
		_, _ = d.Write([]byte{tagType})
		_, _ = d.WriteString(k.PkgPath())
		_, _ = d.WriteString(".")
		_, _ = d.WriteString(k.String())
	default:
		_, _ = d.Write([]byte{tagOther})
		_, _ = fmt.Fprintf(d, "%T:%v", k, k)
	}
}

// Gen describes how a widget resolves its ID from its parent's.
// The zero Gen defers to a fallback key chosen by the widget.
type Gen struct {
	key     any
	literal bool
	set     bool
}

// Key returns a Gen that derives the ID from the parent and k.
func Key(k any) Gen {
	return Gen{key: k, set: true}
}

// Literal returns a Gen whose ID depends only on k, so the widget keeps its
// state when moved to a different parent.
func Literal(k any) Gen {
	return Gen{key: k, literal: true, set: true}
}

// IsZero reports whether no key was chosen.
func (g Gen) IsZero() bool {
	return !g.set
}

// Resolve computes the ID under parent. A zero Gen resolves with a nil key.
func (g Gen) Resolve(parent ID) ID {
	return g.ResolveOr(parent, nil)
}

// ResolveOr is like Resolve but uses fallback as the key when g is zero.
func (g Gen) ResolveOr(parent ID, fallback any) ID {
	switch {
	case !g.set:
		return parent.With(fallback)
	case g.literal:
		return literal(g.key)
	default:
		return parent.With(g.key)
	}
}

func (g Gen) String() string {
	switch {
	case !g.set:
		return "Gen(auto)"
	case g.literal:
		return fmt.Sprintf("Literal(%v)", g.key)
	default:
		return fmt.Sprintf("Key(%v)", g.key)
	}
}
