package housekeeper

import "sort"

// Metadata defines a key value field sent with every message as queue attributes,
// to add context without the need of decoding the payload.
type Metadata map[string]string

// Get returns the metadata value for the given key.
// If the key is not found, an empty string is returned.
func (m Metadata) Get(key string) string {
	if v, ok := m[key]; ok {
		return v
	}

	return ""
}

// Set sets the metadata key to value.
func (m Metadata) Set(key, value string) {
	m[key] = value
}

// Keys returns the metadata keys sorted.
func (m Metadata) Keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
