package model

import "strings"

// afflictionData is the shape shared by injuries, madnesses and mutations:
// a named condition, optionally instantiated from a catalogue chart, with
// its own modifier map mirrored into an owned adjustment.
type afflictionData struct {
	ID          int64
	Name        string
	Description string
	ChartKey    string
	Roll        int
	Modifiers   Modifiers
}

// EntityID implements AdjustmentOwner for the embedding types.
func (a *afflictionData) EntityID() int64 { return a.ID }

// FromChart reports whether the affliction was instantiated from the
// catalogue rather than entered free-form.
func (a *afflictionData) FromChart() bool { return a.ChartKey != "" }

// HasModifiers reports whether at least one stored modifier is non-zero.
func (a *afflictionData) HasModifiers() bool { return a.Modifiers.HasAny() }

// ModifierFor returns the affliction's own delta for attr, 0 when absent.
func (a *afflictionData) ModifierFor(attr Attribute) int { return a.Modifiers.Get(attr) }

// ActiveModifiers returns the non-zero subset of the affliction's map.
func (a *afflictionData) ActiveModifiers() Modifiers { return a.Modifiers.Active() }

// Validate reports the constraint violations that block persisting.
func (a *afflictionData) Validate() error {
	if strings.TrimSpace(a.Name) == "" {
		return &ValidationError{Field: "name", Message: "can't be blank"}
	}
	return nil
}

// SyncOwnedAdjustment reconciles an affliction's owned adjustment against
// its current modifier content. Invoked after every create or update of the
// owner; callers never manage the adjustment by hand. The resulting
// invariant: the owner has a live adjustment iff it currently has any
// non-zero modifier.
//
// Returns the adjustment now owned (nil when none), replacing current.
// The hero's adjustment set is updated in place.
func SyncOwnedAdjustment(h *Hero, owner AdjustmentOwner, title string, mods Modifiers, current *Adjustment) *Adjustment {
	if mods.HasAny() {
		if current != nil {
			current.Title = title
			current.Modifiers = mods.Clone()
			return current
		}
		adj := NewAdjustment(title, mods.Clone())
		adj.SetOwner(owner)
		if h != nil {
			h.Adjustments = append(h.Adjustments, adj)
		}
		return adj
	}
	if current != nil && h != nil {
		h.removeAdjustment(current)
	}
	return nil
}
