package arr

import (
	"bytes"
	"encoding/binary"
	"hash"
	"io"
	"math"
	"reflect"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/exp/slices"
)

// FingerprintSize is the length in bytes of a [Fingerprint].
const FingerprintSize = blake2b.Size256

// digest is the key type [EqualKey] uses for values Go cannot compare. Being
// a distinct type, it never equals a caller's own [32]byte value.
type digest [FingerprintSize]byte

// EqualKey returns a map key for v such that EqualKey(a) == EqualKey(b)
// exactly when a and b are equal. Comparable values are their own key, so
// they follow Go's == including the dynamic type. Slices, maps and anything
// holding them are keyed by their [Fingerprint].
//
//	EqualKey(point{1, 2}) == EqualKey(point{1, 2})     // true
//	EqualKey([]any{1}) == EqualKey([]any{1.0})         // false
func EqualKey(v any) any {
	if v == nil || reflect.ValueOf(v).Comparable() {
		return v
	}
	return digest(Fingerprint(v))
}

// Fingerprint identifies v by its content, giving equality semantics to
// kinds Go cannot use as map keys:
//
//	arr.Fingerprint([]int{1, 2}) == arr.Fingerprint([]int{1, 2}) // true
//	arr.Fingerprint(1) == arr.Fingerprint(int64(1))               // false
//
// The dynamic type of every nested value is part of the fingerprint, as is
// every struct field, exported or not. Map entries are hashed independently
// of iteration order. Pointers, channels and funcs are identified by address,
// as == does. A slice or map that contains itself is hashed once per path.
func Fingerprint(v any) [FingerprintSize]byte {
	f := fingerprinter{h: newDigestHash(), active: make(map[visit]struct{})}
	f.value(reflect.ValueOf(v))
	var sum [FingerprintSize]byte
	f.h.Sum(sum[:0])
	return sum
}

func newDigestHash() hash.Hash {
	h, _ := blake2b.New256(nil) // only fails for keys longer than 64 bytes
	return h
}

// visit identifies a slice or map currently being walked.
type visit struct {
	ptr uintptr
	typ reflect.Type
	len int
}

type fingerprinter struct {
	h      hash.Hash
	buf    [8]byte
	active map[visit]struct{}
}

func (f *fingerprinter) uint(u uint64) {
	binary.LittleEndian.PutUint64(f.buf[:], u)
	f.h.Write(f.buf[:])
}

func (f *fingerprinter) str(s string) {
	f.uint(uint64(len(s)))
	io.WriteString(f.h, s)
}

func (f *fingerprinter) float(x float64) {
	if x == 0 {
		x = 0 // -0 == 0
	}
	f.uint(math.Float64bits(x))
}

// enter reports whether rv may be walked, and false when it is already on
// the current path.
func (f *fingerprinter) enter(rv reflect.Value) (visit, bool) {
	key := visit{ptr: rv.Pointer(), typ: rv.Type(), len: rv.Len()}
	if _, ok := f.active[key]; ok {
		return key, false
	}
	f.active[key] = struct{}{}
	return key, true
}

func (f *fingerprinter) value(rv reflect.Value) {
	if !rv.IsValid() {
		f.str("nil")
		return
	}
	t := rv.Type()
	f.str(t.PkgPath())
	f.str(t.String())

	switch rv.Kind() {
	case reflect.Bool:
		if rv.Bool() {
			f.uint(1)
		} else {
			f.uint(0)
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		f.uint(uint64(rv.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		f.uint(rv.Uint())
	case reflect.Float32, reflect.Float64:
		f.float(rv.Float())
	case reflect.Complex64, reflect.Complex128:
		c := rv.Complex()
		f.float(real(c))
		f.float(imag(c))
	case reflect.String:
		f.str(rv.String())
	case reflect.Interface:
		f.value(rv.Elem())
	case reflect.Struct:
		f.uint(uint64(rv.NumField()))
		for i := 0; i < rv.NumField(); i++ {
			f.str(t.Field(i).Name)
			f.value(rv.Field(i))
		}
	case reflect.Array:
		f.uint(uint64(rv.Len()))
		for i := 0; i < rv.Len(); i++ {
			f.value(rv.Index(i))
		}
	case reflect.Slice:
		key, ok := f.enter(rv)
		if !ok {
			f.str("cycle")
			return
		}
		f.uint(uint64(rv.Len()))
		for i := 0; i < rv.Len(); i++ {
			f.value(rv.Index(i))
		}
		delete(f.active, key)
	case reflect.Map:
		key, ok := f.enter(rv)
		if !ok {
			f.str("cycle")
			return
		}
		f.mapEntries(rv)
		delete(f.active, key)
	default:
		// Pointer, Chan, Func, UnsafePointer.
		f.uint(uint64(rv.Pointer()))
	}
}

// mapEntries hashes each entry on its own and writes the sorted entry sums,
// so the result does not depend on iteration order.
func (f *fingerprinter) mapEntries(rv reflect.Value) {
	entries := make([][FingerprintSize]byte, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		sub := fingerprinter{h: newDigestHash(), active: f.active}
		sub.value(iter.Key())
		sub.value(iter.Value())
		var sum [FingerprintSize]byte
		sub.h.Sum(sum[:0])
		entries = append(entries, sum)
	}
	slices.SortFunc(entries, func(a, b [FingerprintSize]byte) int { return bytes.Compare(a[:], b[:]) })
	f.uint(uint64(len(entries)))
	for _, e := range entries {
		f.h.Write(e[:])
	}
}
