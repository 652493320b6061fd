package model

import "testing"

func TestModifiersGet(t *testing.T) {
	m := Modifiers{AttrStrength: 2, AttrAgility: -1}

	tests := []struct {
		name string
		attr Attribute
		want int
	}{
		{"positive entry", AttrStrength, 2},
		{"negative entry", AttrAgility, -1},
		{"absent entry", AttrLuck, 0},
		{"unknown attribute", Attribute("defense"), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.Get(tt.attr); got != tt.want {
				t.Errorf("Get(%q) = %d, want %d", tt.attr, got, tt.want)
			}
		})
	}
}

func TestModifiersGetNilMap(t *testing.T) {
	var m Modifiers
	if got := m.Get(AttrStrength); got != 0 {
		t.Errorf("Get on nil map = %d, want 0", got)
	}
}

func TestModifiersSetRemovesZero(t *testing.T) {
	m := Modifiers{}

	m.Set(AttrStrength, 3)
	if got := m.Get(AttrStrength); got != 3 {
		t.Fatalf("after Set(3): Get = %d, want 3", got)
	}

	m.Set(AttrStrength, 0)
	if _, exists := m[AttrStrength]; exists {
		t.Error("Set(attr, 0) left the key in the map")
	}
	if len(m) != 0 {
		t.Errorf("map length = %d, want 0", len(m))
	}
}

func TestModifiersActiveSkipsZeros(t *testing.T) {
	// Zeros can land in raw storage through bulk writes; Active must
	// filter them on read.
	m := Modifiers{AttrStrength: 2, AttrAgility: 0, AttrLuck: -1}

	active := m.Active()
	if len(active) != 2 {
		t.Fatalf("Active() length = %d, want 2", len(active))
	}
	if _, exists := active[AttrAgility]; exists {
		t.Error("Active() contains a zero-valued entry")
	}
}

func TestModifiersHasAny(t *testing.T) {
	tests := []struct {
		name string
		m    Modifiers
		want bool
	}{
		{"nil map", nil, false},
		{"empty map", Modifiers{}, false},
		{"only zeros", Modifiers{AttrStrength: 0, AttrLuck: 0}, false},
		{"one non-zero", Modifiers{AttrStrength: 0, AttrLuck: 1}, true},
		{"negative counts", Modifiers{AttrAgility: -2}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.HasAny(); got != tt.want {
				t.Errorf("HasAny() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestModifiersClone(t *testing.T) {
	m := Modifiers{AttrStrength: 2}
	c := m.Clone()

	c.Set(AttrStrength, 5)
	if m.Get(AttrStrength) != 2 {
		t.Error("mutating the clone changed the original")
	}

	var empty Modifiers
	if got := empty.Clone(); got == nil {
		t.Error("Clone of nil map returned nil")
	}
}
