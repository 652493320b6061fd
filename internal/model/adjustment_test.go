package model

import (
	"errors"
	"testing"
)

func TestAdjustmentModifierFor(t *testing.T) {
	adj := NewAdjustment("Lucky Charm", Modifiers{AttrLuck: 1})

	if got := adj.ModifierFor(AttrLuck); got != 1 {
		t.Errorf("ModifierFor(luck) = %d, want 1", got)
	}
	if got := adj.ModifierFor(AttrStrength); got != 0 {
		t.Errorf("ModifierFor(strength) = %d, want 0", got)
	}
	// Attributes outside the adjustable set are inert, not rejected.
	if got := adj.ModifierFor(Attribute("willpower")); got != 0 {
		t.Errorf("ModifierFor(willpower) = %d, want 0", got)
	}
}

func TestAdjustmentEffectivelyActive(t *testing.T) {
	tests := []struct {
		name     string
		active   bool
		owner    func(h *Hero) AdjustmentOwner
		equipped bool
		want     bool
	}{
		{
			name:   "standalone active",
			active: true,
			owner:  func(*Hero) AdjustmentOwner { return nil },
			want:   true,
		},
		{
			name:   "standalone inactive",
			active: false,
			owner:  func(*Hero) AdjustmentOwner { return nil },
			want:   false,
		},
		{
			name:   "item owner equipped",
			active: true,
			owner: func(h *Hero) AdjustmentOwner {
				item := NewItem("Sword")
				h.AddItem(item)
				item.Equipped = true
				return item
			},
			want: true,
		},
		{
			name:   "item owner unequipped",
			active: true,
			owner: func(h *Hero) AdjustmentOwner {
				item := NewItem("Sword")
				h.AddItem(item)
				return item
			},
			want: false,
		},
		{
			name:   "item owner equipped but adjustment off",
			active: false,
			owner: func(h *Hero) AdjustmentOwner {
				item := NewItem("Sword")
				h.AddItem(item)
				item.Equipped = true
				return item
			},
			want: false,
		},
		{
			name:   "injury owner is never equip-gated",
			active: true,
			owner: func(h *Hero) AdjustmentOwner {
				inj := NewInjury("Broken Arm")
				h.AddInjury(inj)
				return inj
			},
			want: true,
		},
		{
			name:   "madness owner follows active flag only",
			active: false,
			owner: func(h *Hero) AdjustmentOwner {
				m := NewMadness("Paranoia")
				h.AddMadness(m)
				return m
			},
			want: false,
		},
		{
			name:   "mutation owner is always worn",
			active: true,
			owner: func(h *Hero) AdjustmentOwner {
				m := NewMutation("Third Eye")
				h.AddMutation(m)
				return m
			},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hero := NewHero("Jake")
			adj := NewAdjustment("test", Modifiers{AttrLuck: 1})
			adj.Active = tt.active
			adj.SetOwner(tt.owner(hero))

			if got := adj.EffectivelyActive(); got != tt.want {
				t.Errorf("EffectivelyActive() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAdjustmentValidate(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		wantErr bool
	}{
		{"valid title", "Whiskey Bottle", false},
		{"empty title", "", true},
		{"whitespace title", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adj := NewAdjustment(tt.title, nil)
			err := adj.Validate()

			if tt.wantErr {
				var verr *ValidationError
				if !errors.As(err, &verr) {
					t.Fatalf("Validate() = %v, want *ValidationError", err)
				}
				if verr.Field != "title" {
					t.Errorf("ValidationError.Field = %q, want %q", verr.Field, "title")
				}
			} else if err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
		})
	}
}

func TestNewAdjustmentDefaults(t *testing.T) {
	adj := NewAdjustment("test", nil)

	if !adj.Active {
		t.Error("new adjustment should default to active")
	}
	if adj.Modifiers == nil {
		t.Error("new adjustment should default to an empty modifier map, not nil")
	}
	if adj.Owner() != nil {
		t.Error("new adjustment should be standalone")
	}
}
