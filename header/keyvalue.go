package header

import (
	"iter"
	"maps"
	"slices"
)

// KeyValue is a case-sensitive string map used for query parameters and
// request cookies: "id" and "ID" are different entries.
type KeyValue struct {
	entries map[string]string
}

func NewKeyValue() *KeyValue {
	return &KeyValue{entries: make(map[string]string, 4)}
}

// FromKeyValuePairs builds a KeyValue from pairs. Later pairs win.
func FromKeyValuePairs(pairs ...[2]string) *KeyValue {
	kv := NewKeyValue()
	for _, p := range pairs {
		kv.Insert(p[0], p[1])
	}
	return kv
}

// Insert stores value under key and reports whether it replaced an entry.
func (kv *KeyValue) Insert(key, value string) bool {
	if kv.entries == nil {
		kv.entries = make(map[string]string, 4)
	}
	_, existed := kv.entries[key]
	kv.entries[key] = value
	return existed
}

func (kv *KeyValue) Get(key string) (string, bool) {
	v, ok := kv.entries[key]
	return v, ok
}

func (kv *KeyValue) ContainsKey(key string) bool {
	_, ok := kv.entries[key]
	return ok
}

func (kv *KeyValue) Remove(key string) bool {
	_, ok := kv.entries[key]
	delete(kv.entries, key)
	return ok
}

func (kv *KeyValue) Len() int {
	return len(kv.entries)
}

func (kv *KeyValue) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for k, v := range kv.entries {
			if !yield(k, v) {
				return
			}
		}
	}
}

func (kv *KeyValue) Keys() []string {
	return slices.Sorted(maps.Keys(kv.entries))
}

func (kv *KeyValue) Clone() *KeyValue {
	if kv.entries == nil {
		return NewKeyValue()
	}
	return &KeyValue{entries: maps.Clone(kv.entries)}
}
