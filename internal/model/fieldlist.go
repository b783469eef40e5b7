package model

import "strings"

// FieldList is an ordered list of free-text entries edited row by row in
// admin forms (qualifications, responsibilities, skills, tags, ...).
// Entries keep their insertion order; blank rows are dropped by Normalize
// at the validation boundary, not scattered through the UI layer.
type FieldList []string

// Add appends an entry.
func (l FieldList) Add(entry string) FieldList {
	return append(l, entry)
}

// Remove deletes the entry at index i. Out-of-range indexes are a no-op.
func (l FieldList) Remove(i int) FieldList {
	if i < 0 || i >= len(l) {
		return l
	}
	return append(l[:i:i], l[i+1:]...)
}

// Update replaces the entry at index i. Out-of-range indexes are a no-op.
func (l FieldList) Update(i int, entry string) FieldList {
	if i < 0 || i >= len(l) {
		return l
	}
	out := make(FieldList, len(l))
	copy(out, l)
	out[i] = entry
	return out
}

// Normalize drops blank and whitespace-only entries, preserving the order
// of the rest.
func (l FieldList) Normalize() FieldList {
	out := make(FieldList, 0, len(l))
	for _, entry := range l {
		if strings.TrimSpace(entry) != "" {
			out = append(out, entry)
		}
	}
	return out
}
