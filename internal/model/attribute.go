package model

// Attribute names a hero stat. Stored modifier maps key on these, so the
// type is a plain string kind: unknown names coming in from external data
// are carried around harmlessly and simply never contribute anywhere.
type Attribute string

const (
	AttrHealth          Attribute = "health"
	AttrSanity          Attribute = "sanity"
	AttrAgility         Attribute = "agility"
	AttrCunning         Attribute = "cunning"
	AttrSpirit          Attribute = "spirit"
	AttrStrength        Attribute = "strength"
	AttrLore            Attribute = "lore"
	AttrLuck            Attribute = "luck"
	AttrInitiative      Attribute = "initiative"
	AttrCombat          Attribute = "combat"
	AttrMaxGrit         Attribute = "max_grit"
	AttrCorruptResist   Attribute = "corrupt_resist"
	AttrSidebagCapacity Attribute = "sidebag_capacity"
	AttrTotalHands      Attribute = "total_hands"
	AttrMove            Attribute = "move"
)

// AdjustableAttributes is the fixed set of stats an Adjustment may affect,
// in display order. Dice-target stats (range/melee to-hit, defense,
// willpower) are deliberately absent: they are only editable directly on
// the hero sheet.
var AdjustableAttributes = []Attribute{
	AttrHealth,
	AttrSanity,
	AttrAgility,
	AttrCunning,
	AttrSpirit,
	AttrStrength,
	AttrLore,
	AttrLuck,
	AttrInitiative,
	AttrCombat,
	AttrMaxGrit,
	AttrCorruptResist,
	AttrSidebagCapacity,
	AttrTotalHands,
	AttrMove,
}

var adjustableSet = func() map[Attribute]struct{} {
	set := make(map[Attribute]struct{}, len(AdjustableAttributes))
	for _, a := range AdjustableAttributes {
		set[a] = struct{}{}
	}
	return set
}()

// Adjustable reports whether a is one of the attributes adjustments are
// permitted to affect.
func (a Attribute) Adjustable() bool {
	_, ok := adjustableSet[a]
	return ok
}
