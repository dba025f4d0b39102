package arr

import (
	"fmt"

	"golang.org/x/exp/maps"
)

// ─────────────────────────────────────────────────────────────────────────────
// Merging
//
// All helpers here copy the receiver and never modify their arguments. On a
// key collision the value supplied last wins.
// ─────────────────────────────────────────────────────────────────────────────

// Extend returns a copy of m with every map in others merged in, in order.
//
//	arr.Extend(map[string]int{"a": 1, "b": 2}, map[string]int{"b": 3, "c": 4})
//	// → map[a:1 b:3 c:4]
func Extend[K comparable, V any](m map[K]V, others ...map[K]V) map[K]V {
	out := maps.Clone(m)
	if out == nil {
		out = make(map[K]V)
	}
	for _, o := range others {
		maps.Copy(out, o)
	}
	return out
}

// ExtendPairs returns a copy of m with each key/value pair applied in order.
func ExtendPairs[K comparable, V any](m map[K]V, pairs ...Pair[K, V]) map[K]V {
	out := Extend(m)
	for _, p := range pairs {
		out[p.First] = p.Second
	}
	return out
}

// ExtendKV merges an untyped argument list into a copy of m. The list is
// either flat alternating keys and values, or consists of map[string]any
// values, which are merged like [Extend]. Both forms may be mixed:
//
//	arr.ExtendKV(m, "name", "Bob", "age", 42)
//	arr.ExtendKV(m, map[string]any{"name": "Bob"})
//
// A dangling key yields [ErrOddKeyValues]; a key that is not a string yields
// [ErrNonStringKey].
func ExtendKV(m map[string]any, kv ...any) (map[string]any, error) {
	out := Extend(m)
	for i := 0; i < len(kv); i++ {
		switch key := kv[i].(type) {
		case map[string]any:
			maps.Copy(out, key)
		case string:
			if i+1 == len(kv) {
				return nil, fmt.Errorf("%w: key %q has no value", ErrOddKeyValues, key)
			}
			out[key] = kv[i+1]
			i++
		default:
			return nil, fmt.Errorf("%w: got %T at position %d", ErrNonStringKey, kv[i], i)
		}
	}
	return out, nil
}

// ExtendDeep is [Extend] for nested map[string]any values: when both sides
// hold a map under the same key the two maps are merged recursively instead
// of the incoming one replacing the other.
func ExtendDeep(m map[string]any, others ...map[string]any) map[string]any {
	out := Extend(m)
	for _, o := range others {
		for k, incoming := range o {
			current, ok := out[k].(map[string]any)
			nested, isMap := incoming.(map[string]any)
			if ok && isMap {
				out[k] = ExtendDeep(current, nested)
				continue
			}
			out[k] = incoming
		}
	}
	return out
}
