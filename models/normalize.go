// Package models holds the DTOs exchanged with the backend services.
//
// The services are independently versioned and disagree on field
// naming (id vs id_cliente vs idCliente, and so on), so each DTO comes
// with a Normalize function that resolves fields through a documented,
// ordered priority list. Normalization is the only place shape
// guessing is allowed; everything past this boundary works with the
// canonical structs.
package models

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Raw is an undecoded JSON object as returned by the HTTP client.
type Raw = map[string]interface{}

// asRaw coerces a decoded JSON value into an object, returning nil for
// anything else.
func asRaw(v interface{}) Raw {
	m, _ := v.(map[string]interface{})
	return m
}

// RawSlice coerces a decoded JSON value into a list of objects,
// skipping entries that are not objects.
func RawSlice(v interface{}) []Raw {
	items, ok := v.([]interface{})
	if !ok {
		return nil
	}
	out := make([]Raw, 0, len(items))
	for _, it := range items {
		if m := asRaw(it); m != nil {
			out = append(out, m)
		}
	}
	return out
}

// stringField returns the first non-empty string under any of keys.
func stringField(m Raw, keys ...string) string {
	for _, k := range keys {
		if v, ok := m[k]; ok {
			switch s := v.(type) {
			case string:
				if s != "" {
					return s
				}
			case float64:
				return strconv.FormatFloat(s, 'f', -1, 64)
			}
		}
	}
	return ""
}

// intField returns the first numeric value under any of keys. JSON
// numbers decode as float64; numeric strings are tolerated too.
func intField(m Raw, keys ...string) (int64, bool) {
	for _, k := range keys {
		v, ok := m[k]
		if !ok || v == nil {
			continue
		}
		switch n := v.(type) {
		case float64:
			return int64(n), true
		case json.Number:
			if i, err := n.Int64(); err == nil {
				return i, true
			}
		case string:
			if i, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64); err == nil {
				return i, true
			}
		}
	}
	return 0, false
}

// IntField is the exported form of the ordered numeric lookup, for
// callers that work on raw payloads outside this package.
func IntField(m Raw, keys ...string) (int64, bool) {
	return intField(m, keys...)
}

func floatField(m Raw, keys ...string) float64 {
	for _, k := range keys {
		v, ok := m[k]
		if !ok || v == nil {
			continue
		}
		switch n := v.(type) {
		case float64:
			return n
		case string:
			if f, err := strconv.ParseFloat(strings.TrimSpace(n), 64); err == nil {
				return f
			}
		}
	}
	return 0
}

// nested returns the object stored under any of keys, or nil.
func nested(m Raw, keys ...string) Raw {
	for _, k := range keys {
		if sub := asRaw(m[k]); sub != nil {
			return sub
		}
	}
	return nil
}
