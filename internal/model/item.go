package model

import (
	"fmt"
	"strings"
)

// BodyPart is an equipment slot on the hero's body.
type BodyPart string

const (
	PartHead      BodyPart = "head"
	PartFace      BodyPart = "face"
	PartShoulders BodyPart = "shoulders"
	PartChest     BodyPart = "chest"
	PartLegs      BodyPart = "legs"
)

// BodyParts lists the valid equipment slots in display order.
var BodyParts = []BodyPart{PartHead, PartFace, PartShoulders, PartChest, PartLegs}

// ValidBodyPart reports whether p is one of the known slots.
func ValidBodyPart(p BodyPart) bool {
	for _, known := range BodyParts {
		if p == known {
			return true
		}
	}
	return false
}

// Item is a piece of equipment owned by a hero. It occupies the listed body
// parts and committed hands only while equipped. Its adjustment, unlike an
// affliction's, is edited explicitly and is allowed to sit empty.
type Item struct {
	ID            int64
	Name          string
	Description   string
	Equipped      bool
	BodyPartsUsed []BodyPart
	HandsRequired int
	Weight        int

	hero       *Hero
	adjustment *Adjustment
}

// NewItem returns an unequipped item with no slot or hand requirements.
func NewItem(name string) *Item {
	return &Item{Name: name, BodyPartsUsed: []BodyPart{}}
}

// AdjustmentOwnerKind implements AdjustmentOwner.
func (i *Item) AdjustmentOwnerKind() OwnerKind { return OwnerItem }

// EntityID implements AdjustmentOwner.
func (i *Item) EntityID() int64 { return i.ID }

// Hero returns the owning hero, nil before the item is attached.
func (i *Item) Hero() *Hero { return i.hero }

// Adjustment returns the item's owned adjustment, nil if it has none.
func (i *Item) Adjustment() *Adjustment { return i.adjustment }

// RequiresBodyParts reports whether equipping occupies any body slot.
func (i *Item) RequiresBodyParts() bool { return len(i.BodyPartsUsed) > 0 }

// RequiresHands reports whether equipping commits any hands.
func (i *Item) RequiresHands() bool { return i.HandsRequired > 0 }

// Equippable reports whether the item occupies anything at all when worn.
// Auto-equip on create is only attempted for equippable items.
func (i *Item) Equippable() bool { return i.RequiresBodyParts() || i.RequiresHands() }

// conflictingParts returns the item's required slots already occupied by
// the hero's other equipped items, recomputed live.
func (i *Item) conflictingParts() []BodyPart {
	if i.hero == nil {
		return nil
	}
	occupied := i.hero.occupiedBodyPartsExcept(i)
	var conflicts []BodyPart
	for _, p := range i.BodyPartsUsed {
		if _, taken := occupied[p]; taken {
			conflicts = append(conflicts, p)
		}
	}
	return conflicts
}

// CanEquip reports whether equipping is legal right now: not already
// equipped, no body-part conflicts with other equipped items, and enough
// free hands.
func (i *Item) CanEquip() bool {
	return i.CannotEquipReason() == ""
}

// CannotEquipReason returns the human-readable refusal reason, or "" when
// equipping is legal. Checks run in priority order: already equipped, then
// body-part conflicts, then hand shortage.
func (i *Item) CannotEquipReason() string {
	if i.Equipped {
		return "already equipped"
	}
	if i.RequiresBodyParts() {
		if conflicts := i.conflictingParts(); len(conflicts) > 0 {
			names := make([]string, len(conflicts))
			for n, p := range conflicts {
				names[n] = titleize(string(p))
			}
			return fmt.Sprintf("%s already in use", strings.Join(names, ", "))
		}
	}
	if i.RequiresHands() && i.hero != nil {
		if free := i.hero.FreeHands(); free < i.HandsRequired {
			return fmt.Sprintf("not enough free hands (need %d, have %d)", i.HandsRequired, free)
		}
	}
	return ""
}

// Equip marks the item equipped. Returns an *EquipError and leaves state
// untouched when equipping is illegal, including when already equipped.
func (i *Item) Equip() error {
	if reason := i.CannotEquipReason(); reason != "" {
		return &EquipError{Reason: reason}
	}
	i.Equipped = true
	return nil
}

// Unequip marks the item unequipped. Always succeeds; unequipping an
// already-unequipped item is a no-op.
func (i *Item) Unequip() {
	i.Equipped = false
}

// HasModifiers reports whether the item's adjustment carries any non-zero
// modifier.
func (i *Item) HasModifiers() bool {
	return i.adjustment != nil && i.adjustment.Modifiers.HasAny()
}

// SetAdjustment attaches mods as the item's adjustment, titled after the
// item. Submissions where every value is zero are rejected outright: nothing
// is created and an existing adjustment is left alone. Emptying an existing
// item adjustment goes through the standalone adjustment edit path instead.
func (i *Item) SetAdjustment(mods Modifiers) {
	if !mods.HasAny() {
		return
	}
	if i.adjustment == nil {
		adj := NewAdjustment(i.Name, mods.Clone())
		adj.SetOwner(i)
		i.adjustment = adj
		if i.hero != nil {
			i.hero.Adjustments = append(i.hero.Adjustments, adj)
		}
		return
	}
	i.adjustment.Title = i.Name
	i.adjustment.Modifiers = mods.Clone()
}

// Validate reports the constraint violations that block persisting.
func (i *Item) Validate() error {
	if strings.TrimSpace(i.Name) == "" {
		return &ValidationError{Field: "name", Message: "can't be blank"}
	}
	if i.HandsRequired < 0 || i.HandsRequired > 3 {
		return &ValidationError{Field: "hands_required", Message: "must be between 0 and 3"}
	}
	if i.Weight < 0 {
		return &ValidationError{Field: "weight", Message: "must be greater than or equal to 0"}
	}
	for _, p := range i.BodyPartsUsed {
		if !ValidBodyPart(p) {
			return &ValidationError{Field: "body_parts", Message: fmt.Sprintf("contains unknown part %q", p)}
		}
	}
	return nil
}

// titleize capitalizes each underscore- or space-separated word:
// "head" -> "Head".
func titleize(s string) string {
	words := strings.FieldsFunc(s, func(r rune) bool { return r == '_' || r == ' ' })
	for n, w := range words {
		words[n] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
