package arr

import (
	"reflect"
	"strconv"
	"strings"
)

// ─────────────────────────────────────────────────────────────────────────────
// Path lookup
//
// Safe nested reads over map[string]any and, through Dig, over any value.
// A missing segment is never an error: lookups report absence instead.
//
//	m := map[string]any{
//	    "user": map[string]any{
//	        "name": "Alice",
//	        "address": map[string]any{"city": "London"},
//	    },
//	}
//
//	Get(m, "user.address.city")  → "London"
//	Get(m, "user.address.zip")   → nil
//	Has(m, "user.name")          → true
// ─────────────────────────────────────────────────────────────────────────────

// Get retrieves a value from m using a dot-notation key.
// Returns def[0] (or nil) when any segment along the way is missing or is not
// a nested map. Get never panics.
//
//	Get(m, "user.address.city")        // "London"
//	Get(m, "user.missing", "default")  // "default"
func Get(m map[string]any, key string, def ...any) any {
	if v, ok := GetPath(m, strings.Split(key, ".")...); ok {
		return v
	}
	if len(def) > 0 {
		return def[0]
	}
	return nil
}

// GetPath is the segmented form of [Get], for keys that themselves contain
// dots. The second result reports whether the full path resolved.
//
//	GetPath(m, "hosts", "api.example.com", "port")
func GetPath(m map[string]any, segments ...string) (any, bool) {
	if len(segments) == 0 {
		return nil, false
	}
	current := m
	for i, seg := range segments {
		val, ok := current[seg]
		if !ok {
			return nil, false
		}
		if i == len(segments)-1 {
			return val, true
		}
		if current, ok = val.(map[string]any); !ok {
			return nil, false
		}
	}
	return nil, false
}

// Dig walks segments through arbitrary values: map[string]any and other
// string-keyed maps by key, structs by exported field name, slices and arrays
// by decimal index. Pointers and interfaces are followed transparently.
// Returns nil and false as soon as a segment cannot be resolved.
//
//	Dig(order, "Lines", "0", "SKU")
func Dig(v any, segments ...string) (any, bool) {
	for _, seg := range segments {
		if m, ok := v.(map[string]any); ok {
			if v, ok = m[seg]; !ok {
				return nil, false
			}
			continue
		}
		next, ok := digValue(reflect.ValueOf(v), seg)
		if !ok {
			return nil, false
		}
		v = next
	}
	return v, true
}

func digValue(rv reflect.Value, seg string) (any, bool) {
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		val := rv.MapIndex(reflect.ValueOf(seg).Convert(rv.Type().Key()))
		if !val.IsValid() {
			return nil, false
		}
		return val.Interface(), true
	case reflect.Struct:
		field, ok := rv.Type().FieldByName(seg)
		if !ok || !field.IsExported() {
			return nil, false
		}
		return rv.FieldByIndex(field.Index).Interface(), true
	case reflect.Slice, reflect.Array:
		idx, err := strconv.Atoi(seg)
		if err != nil || idx < 0 || idx >= rv.Len() {
			return nil, false
		}
		return rv.Index(idx).Interface(), true
	default:
		return nil, false
	}
}

// Has reports whether the dot-notation key resolves in m.
func Has(m map[string]any, key string) bool {
	_, ok := GetPath(m, strings.Split(key, ".")...)
	return ok
}

// Set writes value into m at the dot-notation key, creating intermediate maps
// (and replacing non-map values) as needed. Unlike the rest of this package it
// mutates m.
func Set(m map[string]any, key string, value any) {
	segments := strings.Split(key, ".")
	current := m
	for _, seg := range segments[:len(segments)-1] {
		nested, ok := current[seg].(map[string]any)
		if !ok {
			nested = make(map[string]any)
			current[seg] = nested
		}
		current = nested
	}
	current[segments[len(segments)-1]] = value
}

// HasAll reports whether every dot-notation key resolves in m.
func HasAll(m map[string]any, keys ...string) bool {
	for _, key := range keys {
		if !Has(m, key) {
			return false
		}
	}
	return true
}

// HasAny reports whether at least one dot-notation key resolves in m.
func HasAny(m map[string]any, keys ...string) bool {
	return Contains(keys, func(key string) bool { return Has(m, key) })
}

// Forget deletes the dot-notation key from m in place. Missing segments are
// ignored and emptied parents are left behind.
func Forget(m map[string]any, key string) {
	segments := strings.Split(key, ".")
	current := m
	for _, seg := range segments[:len(segments)-1] {
		nested, ok := current[seg].(map[string]any)
		if !ok {
			return
		}
		current = nested
	}
	delete(current, segments[len(segments)-1])
}

// Only returns a new map holding just the given top-level keys of m.
func Only(m map[string]any, keys ...string) map[string]any {
	out := make(map[string]any, len(keys))
	for _, k := range keys {
		if v, ok := m[k]; ok {
			out[k] = v
		}
	}
	return out
}

// Except returns a shallow copy of m without the given top-level keys.
func Except(m map[string]any, keys ...string) map[string]any {
	out := Extend(m)
	for _, k := range keys {
		delete(out, k)
	}
	return out
}

// Dot flattens nested maps into a single level keyed by dotted paths.
// Non-map values, including slices, are kept as leaves.
//
//	Dot(map[string]any{"a": map[string]any{"b": 1}}) // {"a.b": 1}
func Dot(m map[string]any) map[string]any {
	out := make(map[string]any)
	var walk func(prefix string, m map[string]any)
	walk = func(prefix string, m map[string]any) {
		for k, v := range m {
			if prefix != "" {
				k = prefix + "." + k
			}
			if nested, ok := v.(map[string]any); ok && len(nested) > 0 {
				walk(k, nested)
				continue
			}
			out[k] = v
		}
	}
	walk("", m)
	return out
}
