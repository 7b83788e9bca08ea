package header

import (
	"iter"
	"maps"
	"slices"
)

// Map holds header values keyed case-insensitively. The name used by the most
// recent insertion is the one reported back on iteration.
type Map struct {
	entries map[string]entry
}

type entry struct {
	key   Key
	value string
}

func NewMap() *Map {
	return &Map{entries: make(map[string]entry, 8)}
}

// FromPairs builds a Map from name/value pairs. Later pairs win.
func FromPairs(pairs ...[2]string) *Map {
	m := NewMap()
	for _, p := range pairs {
		m.Insert(p[0], p[1])
	}
	return m
}

// Insert stores value under key and reports whether an entry with the same
// case-insensitive name was replaced.
func (m *Map) Insert(key, value string) bool {
	if m.entries == nil {
		m.entries = make(map[string]entry, 8)
	}
	k := Key(key)
	id := k.Fold()
	_, existed := m.entries[id]
	m.entries[id] = entry{key: k, value: value}
	return existed
}

func (m *Map) Get(key string) (string, bool) {
	e, ok := m.entries[Key(key).Fold()]
	if !ok {
		return "", false
	}
	return e.value, true
}

// Value returns the stored value or "" when the header is missing.
func (m *Map) Value(key string) string {
	return m.entries[Key(key).Fold()].value
}

func (m *Map) ContainsKey(key string) bool {
	_, ok := m.entries[Key(key).Fold()]
	return ok
}

func (m *Map) Remove(key string) bool {
	id := Key(key).Fold()
	_, ok := m.entries[id]
	delete(m.entries, id)
	return ok
}

func (m *Map) Len() int {
	return len(m.entries)
}

// All yields every header once, with the name as it was last inserted.
func (m *Map) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, e := range m.entries {
			if !yield(string(e.key), e.value) {
				return
			}
		}
	}
}

// Keys returns the stored header names in sorted order.
func (m *Map) Keys() []string {
	keys := make([]string, 0, len(m.entries))
	for _, e := range m.entries {
		keys = append(keys, string(e.key))
	}
	slices.Sort(keys)
	return keys
}

func (m *Map) Clone() *Map {
	if m.entries == nil {
		return NewMap()
	}
	return &Map{entries: maps.Clone(m.entries)}
}
