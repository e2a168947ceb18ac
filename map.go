package ini

import "iter"

// Map is an ordered map from keys to values. Decoding into an `any`
// produces a *Map whose values are strings, in document order.
//
// The zero value is an empty map ready to use.
type Map struct {
	entries []mapEntry
	index   map[string]int // key -> position in entries
}

type mapEntry struct {
	key   string
	value any
}

// Get returns the value stored under key.
func (m *Map) Get(key string) (any, bool) {
	i, ok := m.index[key]
	if !ok {
		return nil, false
	}
	return m.entries[i].value, true
}

// Set stores value under key. A key that is already present keeps its
// position and takes the new value.
func (m *Map) Set(key string, value any) {
	if i, ok := m.index[key]; ok {
		m.entries[i].value = value
		return
	}
	if m.index == nil {
		m.index = map[string]int{}
	}
	m.index[key] = len(m.entries)
	m.entries = append(m.entries, mapEntry{key: key, value: value})
}

// Delete removes key, if present.
func (m *Map) Delete(key string) {
	i, ok := m.index[key]
	if !ok {
		return
	}
	m.entries = append(m.entries[:i], m.entries[i+1:]...)
	delete(m.index, key)
	for j := i; j < len(m.entries); j++ {
		m.index[m.entries[j].key] = j
	}
}

// Len returns the number of entries.
func (m *Map) Len() int {
	return len(m.entries)
}

// All iterates over the entries in order.
func (m *Map) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		for _, e := range m.entries {
			if !yield(e.key, e.value) {
				return
			}
		}
	}
}

// Keys iterates over the keys in order.
func (m *Map) Keys() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, e := range m.entries {
			if !yield(e.key) {
				return
			}
		}
	}
}

// MarshalINI writes the entries as key=value lines in order.
func (m *Map) MarshalINI(s *Serializer) error {
	ms, err := s.Map()
	if err != nil {
		return err
	}
	for k, v := range m.All() {
		if err := ms.Entry(k, v); err != nil {
			return err
		}
	}
	return ms.End()
}

// UnmarshalINI adds the leading key-value pairs to m. Repeated keys keep
// their first position and their last value.
func (m *Map) UnmarshalINI(d *Deserializer) error {
	return d.DecodeMap(func(key string, value *Deserializer) error {
		v, err := value.DecodeAny()
		if err != nil {
			return err
		}
		m.Set(key, v)
		return nil
	})
}
