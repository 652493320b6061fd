package model

// TotalAdjustmentFor sums the deltas every effectively active adjustment
// applies to attr. May be negative. Recomputed on every call; per-hero
// adjustment counts are tens, not thousands, so O(n) per query is fine.
func (h *Hero) TotalAdjustmentFor(attr Attribute) int {
	total := 0
	for _, adj := range h.Adjustments {
		if adj.EffectivelyActive() {
			total += adj.ModifierFor(attr)
		}
	}
	return total
}

// AdjustedValueFor returns base value plus total adjustment for attr.
func (h *Hero) AdjustedValueFor(attr Attribute) int {
	return h.BaseValue(attr) + h.TotalAdjustmentFor(attr)
}

// HasAdjustmentFor reports whether any effectively active adjustment moves
// attr away from its base value.
func (h *Hero) HasAdjustmentFor(attr Attribute) bool {
	return h.TotalAdjustmentFor(attr) != 0
}

// AdjustmentsSummary maps each adjustable attribute to its non-zero total.
// A pure query used for compact display; attributes summing to zero are
// omitted.
func (h *Hero) AdjustmentsSummary() Modifiers {
	out := Modifiers{}
	for _, attr := range AdjustableAttributes {
		if total := h.TotalAdjustmentFor(attr); total != 0 {
			out[attr] = total
		}
	}
	return out
}

// Per-attribute adjusted accessors, one per entry of AdjustableAttributes.
// A derived read-only view over AdjustedValueFor, never stored.

// AdjustedHealth returns health after adjustments.
func (h *Hero) AdjustedHealth() int { return h.AdjustedValueFor(AttrHealth) }

// AdjustedSanity returns sanity after adjustments.
func (h *Hero) AdjustedSanity() int { return h.AdjustedValueFor(AttrSanity) }

// AdjustedAgility returns agility after adjustments.
func (h *Hero) AdjustedAgility() int { return h.AdjustedValueFor(AttrAgility) }

// AdjustedCunning returns cunning after adjustments.
func (h *Hero) AdjustedCunning() int { return h.AdjustedValueFor(AttrCunning) }

// AdjustedSpirit returns spirit after adjustments.
func (h *Hero) AdjustedSpirit() int { return h.AdjustedValueFor(AttrSpirit) }

// AdjustedStrength returns strength after adjustments.
func (h *Hero) AdjustedStrength() int { return h.AdjustedValueFor(AttrStrength) }

// AdjustedLore returns lore after adjustments.
func (h *Hero) AdjustedLore() int { return h.AdjustedValueFor(AttrLore) }

// AdjustedLuck returns luck after adjustments.
func (h *Hero) AdjustedLuck() int { return h.AdjustedValueFor(AttrLuck) }

// AdjustedInitiative returns initiative after adjustments.
func (h *Hero) AdjustedInitiative() int { return h.AdjustedValueFor(AttrInitiative) }

// AdjustedCombat returns combat after adjustments.
func (h *Hero) AdjustedCombat() int { return h.AdjustedValueFor(AttrCombat) }

// AdjustedMaxGrit returns max grit after adjustments.
func (h *Hero) AdjustedMaxGrit() int { return h.AdjustedValueFor(AttrMaxGrit) }

// AdjustedCorruptResist returns corruption resistance after adjustments.
func (h *Hero) AdjustedCorruptResist() int { return h.AdjustedValueFor(AttrCorruptResist) }

// AdjustedSidebagCapacity returns sidebag capacity after adjustments.
func (h *Hero) AdjustedSidebagCapacity() int { return h.AdjustedValueFor(AttrSidebagCapacity) }

// TotalHands returns the hand count after adjustments (base 2).
func (h *Hero) TotalHands() int { return h.AdjustedValueFor(AttrTotalHands) }

// AdjustedMove returns movement after adjustments (no stored base).
func (h *Hero) AdjustedMove() int { return h.AdjustedValueFor(AttrMove) }
