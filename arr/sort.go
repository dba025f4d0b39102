package arr

import (
	"cmp"
	"fmt"
	"reflect"
	"strings"

	"github.com/maruel/natural"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// ─────────────────────────────────────────────────────────────────────────────
// Sorting
//
// Every sort in this file is stable: elements that compare equal keep their
// original relative order. Inputs are never modified.
// ─────────────────────────────────────────────────────────────────────────────

// Sort returns an ascending, sorted copy of items.
func Sort[T constraints.Ordered](items []T) []T {
	return SortFunc(items, cmp.Compare[T])
}

// SortFunc returns a copy of items sorted by compare, which returns a negative
// number when a < b, zero when equal and a positive number when a > b.
func SortFunc[T any](items []T, compare func(a, b T) int) []T {
	out := clone(items)
	slices.SortStableFunc(out, compare)
	return out
}

// SortBy returns a copy of items sorted ascending by the key fn extracts.
// Keys are computed once per element.
func SortBy[T any, K constraints.Ordered](items []T, fn func(T) K) []T {
	return sortKeyed(items, fn, cmp.Compare[K])
}

// SortByAny is [SortBy] for keys of dynamic or mixed type, ordered the same
// way as [SortByField]. Integer keys compare exactly at any magnitude.
//
//	arr.SortByAny(users, func(u User) any { return u.ID })
func SortByAny[T any](items []T, fn func(T) any) []T {
	return sortKeyed(items, fn, compareAny)
}

// SortByAnyDesc is [SortByAny] in descending order. Equal keys still keep
// their original relative order.
func SortByAnyDesc[T any](items []T, fn func(T) any) []T {
	return sortKeyed(items, fn, func(a, b any) int { return compareAny(b, a) })
}

// SortByField sorts items by a single named field or map key, resolved the
// same way as [Dig]. Only one level is supported: a dotted reference such as
// "Address.City" yields [ErrMultiLevelPath]. Use [SortByAny] with a closure
// for deeper keys.
//
// Field values are ordered nil first, then numbers, strings and booleans,
// each compared naturally. Other kinds are grouped by type name.
func SortByField[T any](items []T, field string) ([]T, error) {
	if strings.Contains(field, ".") {
		return nil, fmt.Errorf("%w: %q", ErrMultiLevelPath, field)
	}
	return SortByAny(items, func(item T) any {
		key, _ := Dig(item, field)
		return key
	}), nil
}

func sortKeyed[T, K any](items []T, key func(T) K, compare func(a, b K) int) []T {
	keyed := make([]Pair[K, T], len(items))
	for i, item := range items {
		keyed[i] = Pair[K, T]{First: key(item), Second: item}
	}
	slices.SortStableFunc(keyed, func(a, b Pair[K, T]) int { return compare(a.First, b.First) })
	out := make([]T, len(keyed))
	for i, p := range keyed {
		out[i] = p.Second
	}
	return out
}

// SortNatural returns a copy of items in natural order, so that digit runs
// compare numerically: "img2" sorts before "img10".
func SortNatural(items []string) []string {
	return SortFunc(items, func(a, b string) int {
		switch {
		case natural.Less(a, b):
			return -1
		case natural.Less(b, a):
			return 1
		default:
			return 0
		}
	})
}

// sortRank orders kinds that are not directly comparable with each other.
func sortRank(v reflect.Value) int {
	if !v.IsValid() {
		return 0
	}
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return 1
	case reflect.String:
		return 2
	case reflect.Bool:
		return 3
	default:
		return 4
	}
}

func compareAny(a, b any) int {
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	ra, rb := sortRank(va), sortRank(vb)
	if ra != rb {
		return cmp.Compare(ra, rb)
	}
	switch ra {
	case 0:
		return 0
	case 1:
		return compareNumbers(va, vb)
	case 2:
		return cmp.Compare(va.String(), vb.String())
	case 3:
		return cmp.Compare(boolRank(va.Bool()), boolRank(vb.Bool()))
	default:
		return cmp.Compare(va.Type().String(), vb.Type().String())
	}
}

// compareNumbers compares integers exactly and falls back to float64 only
// when a float is involved.
func compareNumbers(a, b reflect.Value) int {
	switch {
	case a.CanInt() && b.CanInt():
		return cmp.Compare(a.Int(), b.Int())
	case a.CanUint() && b.CanUint():
		return cmp.Compare(a.Uint(), b.Uint())
	case a.CanInt() && b.CanUint():
		return compareIntUint(a.Int(), b.Uint())
	case a.CanUint() && b.CanInt():
		return -compareIntUint(b.Int(), a.Uint())
	default:
		return cmp.Compare(toFloat(a), toFloat(b))
	}
}

func compareIntUint(i int64, u uint64) int {
	if i < 0 {
		return -1
	}
	return cmp.Compare(uint64(i), u)
}

func toFloat(v reflect.Value) float64 {
	switch {
	case v.CanInt():
		return float64(v.Int())
	case v.CanUint():
		return float64(v.Uint())
	default:
		return v.Float()
	}
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}
