// SPDX-License-Identifier: ice License 1.0

package headers

import (
	"strings"
)

func NewMap() *Map {
	return new(Map)
}

func (m *Map) Add(name, value string) {
	m.fields = append(m.fields, Field{Name: strings.ToLower(name), Value: value})
}

func (m *Map) Append(name, value string) {
	name = strings.ToLower(name)
	for ix := range m.fields {
		if m.fields[ix].Name == name {
			m.fields[ix].Value += value

			return
		}
	}
	m.fields = append(m.fields, Field{Name: name, Value: value})
}

// Get returns the first value stored for name.
func (m *Map) Get(name string) (string, bool) {
	name = strings.ToLower(name)
	for ix := range m.fields {
		if m.fields[ix].Name == name {
			return m.fields[ix].Value, true
		}
	}

	return "", false
}

// Values returns every value stored for name, in insertion order.
func (m *Map) Values(name string) []string {
	name = strings.ToLower(name)
	var values []string
	for ix := range m.fields {
		if m.fields[ix].Name == name {
			values = append(values, m.fields[ix].Value)
		}
	}

	return values
}

func (m *Map) Len() int {
	return len(m.fields)
}

func (m *Map) Range(fn func(name, value string) bool) {
	for ix := range m.fields {
		if !fn(m.fields[ix].Name, m.fields[ix].Value) {
			return
		}
	}
}

// Fields returns a copy of the stored entries.
func (m *Map) Fields() []Field {
	fields := make([]Field, len(m.fields))
	copy(fields, m.fields)

	return fields
}
