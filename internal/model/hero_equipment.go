package model

// WeightCapacityBase is the flat part of carrying capacity; adjusted
// strength supplies the rest.
const WeightCapacityBase = 5

// HandsInUse sums hands committed by equipped items.
func (h *Hero) HandsInUse() int {
	used := 0
	for _, item := range h.Items {
		if item.Equipped {
			used += item.HandsRequired
		}
	}
	return used
}

// FreeHands returns adjusted total hands minus hands committed by equipped
// items.
func (h *Hero) FreeHands() int {
	return h.TotalHands() - h.HandsInUse()
}

// OccupiedBodyParts returns the deduplicated union of slot sets over all
// equipped items, in canonical slot order. Recomputed live, never cached.
func (h *Hero) OccupiedBodyParts() []BodyPart {
	occupied := h.occupiedBodyPartsExcept(nil)
	out := make([]BodyPart, 0, len(occupied))
	for _, p := range BodyParts {
		if _, ok := occupied[p]; ok {
			out = append(out, p)
		}
	}
	return out
}

// BodyPartOccupied reports whether any equipped item occupies p.
func (h *Hero) BodyPartOccupied(p BodyPart) bool {
	_, ok := h.occupiedBodyPartsExcept(nil)[p]
	return ok
}

// occupiedBodyPartsExcept collects slots used by equipped items, skipping
// except so an item can test legality against the rest of the loadout.
func (h *Hero) occupiedBodyPartsExcept(except *Item) map[BodyPart]struct{} {
	occupied := make(map[BodyPart]struct{})
	for _, item := range h.Items {
		if !item.Equipped || item == except {
			continue
		}
		for _, p := range item.BodyPartsUsed {
			occupied[p] = struct{}{}
		}
	}
	return occupied
}

// TotalItemWeight sums the weight of every owned item, equipped or not.
func (h *Hero) TotalItemWeight() int {
	total := 0
	for _, item := range h.Items {
		total += item.Weight
	}
	return total
}

// WeightCapacity returns 5 + adjusted strength. Capacity is informational:
// nothing stops a hero owning more weight than it can carry.
func (h *Hero) WeightCapacity() int {
	return WeightCapacityBase + h.AdjustedStrength()
}

// OverWeightCapacity reports whether owned weight exceeds capacity.
func (h *Hero) OverWeightCapacity() bool {
	return h.TotalItemWeight() > h.WeightCapacity()
}

// WeightCapacityRemaining returns capacity minus owned weight; negative
// when over capacity.
func (h *Hero) WeightCapacityRemaining() int {
	return h.WeightCapacity() - h.TotalItemWeight()
}
