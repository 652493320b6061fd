package model

// Modifiers maps an attribute to a signed delta. A nil map is a valid empty
// map for every read operation.
//
// Storage keeps itself minimal: Set removes a key instead of storing zero.
// External data paths (catalogue templates, bulk form submissions) may still
// write zeros directly into the raw map, so Active recomputes the non-zero
// view on read rather than trusting the write-side invariant.
type Modifiers map[Attribute]int

// Get returns the delta for attr, 0 when absent.
func (m Modifiers) Get(attr Attribute) int {
	return m[attr]
}

// Set stores value for attr, removing the key entirely when value is 0.
func (m Modifiers) Set(attr Attribute, value int) {
	if value == 0 {
		delete(m, attr)
		return
	}
	m[attr] = value
}

// Active returns the subset of entries with a non-zero value.
func (m Modifiers) Active() Modifiers {
	out := make(Modifiers, len(m))
	for attr, v := range m {
		if v != 0 {
			out[attr] = v
		}
	}
	return out
}

// HasAny reports whether at least one entry has a non-zero value.
func (m Modifiers) HasAny() bool {
	for _, v := range m {
		if v != 0 {
			return true
		}
	}
	return false
}

// Clone returns an independent copy, never nil.
func (m Modifiers) Clone() Modifiers {
	out := make(Modifiers, len(m))
	for attr, v := range m {
		out[attr] = v
	}
	return out
}
