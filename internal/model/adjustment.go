package model

import "strings"

// OwnerKind discriminates the entity type an adjustment is linked to.
type OwnerKind string

const (
	OwnerItem     OwnerKind = "item"
	OwnerInjury   OwnerKind = "injury"
	OwnerMadness  OwnerKind = "madness"
	OwnerMutation OwnerKind = "mutation"
)

// AdjustmentOwner is implemented by the four entity types that can own an
// adjustment. Holding the owner as a single interface-typed field makes the
// "at most one owner" rule structural rather than conventional.
type AdjustmentOwner interface {
	AdjustmentOwnerKind() OwnerKind
	// EntityID returns the persisted id of the owner, 0 before first save.
	EntityID() int64
}

// Adjustment is the unit of stat modification: a titled, toggleable bundle
// of attribute deltas, optionally linked to the item or affliction it came
// from. Standalone adjustments (nil owner) are created directly by the user.
type Adjustment struct {
	ID        int64
	Title     string
	Active    bool
	Modifiers Modifiers

	owner AdjustmentOwner
}

// NewAdjustment returns a standalone adjustment, active by default.
func NewAdjustment(title string, mods Modifiers) *Adjustment {
	if mods == nil {
		mods = Modifiers{}
	}
	return &Adjustment{Title: title, Active: true, Modifiers: mods}
}

// Owner returns the linked owner, nil for standalone adjustments.
func (a *Adjustment) Owner() AdjustmentOwner { return a.owner }

// SetOwner links a to owner, replacing any previous link. A nil owner makes
// the adjustment standalone.
func (a *Adjustment) SetOwner(owner AdjustmentOwner) { a.owner = owner }

// ModifierFor returns the delta this adjustment applies to attr, 0 for
// absent or unknown attributes. Attributes outside the adjustable set are
// not rejected, merely inert.
func (a *Adjustment) ModifierFor(attr Attribute) int {
	return a.Modifiers.Get(attr)
}

// EffectivelyActive decides whether the adjustment contributes to hero
// totals. Only item-linked adjustments are gated by equip state; afflictions
// are always "worn", so their adjustments follow the Active flag alone.
// This asymmetry is the central rule of the engine.
func (a *Adjustment) EffectivelyActive() bool {
	if !a.Active {
		return false
	}
	if item, ok := a.owner.(*Item); ok {
		return item.Equipped
	}
	return true
}

// Validate reports the constraint violations that block persisting.
func (a *Adjustment) Validate() error {
	if strings.TrimSpace(a.Title) == "" {
		return &ValidationError{Field: "title", Message: "can't be blank"}
	}
	return nil
}
