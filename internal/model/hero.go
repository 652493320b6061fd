package model

import "strings"

// DefaultSidebagCapacity is the base sidebag size before adjustments.
const DefaultSidebagCapacity = 5

// baseTotalHands is every hero's hand count before adjustments.
const baseTotalHands = 2

// Hero is a character sheet: base attributes, resources, the sidebag, and
// the five owned collections. Destroying a hero destroys everything it owns.
//
// A hero is loaded, mutated and saved as one aggregate; nothing here is
// cached between calls, every derived value recomputes from current state.
type Hero struct {
	ID        int64
	Name      string
	HeroClass string
	Portrait  string

	// Adjustable base attributes.
	Health        int
	Sanity        int
	Agility       int
	Cunning       int
	Spirit        int
	Strength      int
	Lore          int
	Luck          int
	Initiative    int
	Combat        int
	MaxGrit       int
	CorruptResist int

	// Dice-target stats, editable directly but never adjustable.
	RangeToHit int
	MeleeToHit int
	Defense    int
	Willpower  int

	// Resources.
	Experience int
	Gold       int
	DarkStone  int

	SidebagCapacity int
	SidebagContents []string

	Adjustments []*Adjustment
	Items       []*Item
	Injuries    []*Injury
	Madnesses   []*Madness
	Mutations   []*Mutation
}

// NewHero returns a hero with defaulted sidebag and empty collections.
func NewHero(name string) *Hero {
	return &Hero{
		Name:            name,
		SidebagCapacity: DefaultSidebagCapacity,
		SidebagContents: []string{},
		Adjustments:     []*Adjustment{},
		Items:           []*Item{},
		Injuries:        []*Injury{},
		Madnesses:       []*Madness{},
		Mutations:       []*Mutation{},
	}
}

// Validate reports the constraint violations that block persisting.
func (h *Hero) Validate() error {
	if strings.TrimSpace(h.Name) == "" {
		return &ValidationError{Field: "name", Message: "can't be blank"}
	}
	return nil
}

// BaseValue returns the unadjusted value for attr. Attributes without a
// stored base field use their defaults: 2 hands, the stored sidebag
// capacity, 0 move. Unknown attributes are 0.
func (h *Hero) BaseValue(attr Attribute) int {
	switch attr {
	case AttrHealth:
		return h.Health
	case AttrSanity:
		return h.Sanity
	case AttrAgility:
		return h.Agility
	case AttrCunning:
		return h.Cunning
	case AttrSpirit:
		return h.Spirit
	case AttrStrength:
		return h.Strength
	case AttrLore:
		return h.Lore
	case AttrLuck:
		return h.Luck
	case AttrInitiative:
		return h.Initiative
	case AttrCombat:
		return h.Combat
	case AttrMaxGrit:
		return h.MaxGrit
	case AttrCorruptResist:
		return h.CorruptResist
	case AttrSidebagCapacity:
		return h.SidebagCapacity
	case AttrTotalHands:
		return baseTotalHands
	case AttrMove:
		return 0
	default:
		return 0
	}
}

// AddAdjustment attaches a standalone adjustment to the hero.
func (h *Hero) AddAdjustment(adj *Adjustment) {
	h.Adjustments = append(h.Adjustments, adj)
}

// RemoveAdjustment detaches adj from the hero, clearing any owner link so
// no dangling back-reference survives.
func (h *Hero) RemoveAdjustment(adj *Adjustment) {
	switch owner := adj.Owner().(type) {
	case *Item:
		owner.adjustment = nil
	case *Injury:
		owner.adjustment = nil
	case *Madness:
		owner.adjustment = nil
	case *Mutation:
		owner.adjustment = nil
	}
	h.removeAdjustment(adj)
}

func (h *Hero) removeAdjustment(adj *Adjustment) {
	for n, a := range h.Adjustments {
		if a == adj {
			h.Adjustments = append(h.Adjustments[:n], h.Adjustments[n+1:]...)
			return
		}
	}
}

// AddItem attaches an item to the hero. The item's adjustment, if it
// already carries one, joins the hero's adjustment set.
func (h *Hero) AddItem(item *Item) {
	item.hero = h
	h.Items = append(h.Items, item)
	if item.adjustment != nil {
		h.Adjustments = append(h.Adjustments, item.adjustment)
	}
}

// RemoveItem destroys the item and cascades to its owned adjustment.
func (h *Hero) RemoveItem(item *Item) {
	if item.adjustment != nil {
		h.removeAdjustment(item.adjustment)
		item.adjustment = nil
	}
	for n, it := range h.Items {
		if it == item {
			h.Items = append(h.Items[:n], h.Items[n+1:]...)
			break
		}
	}
	item.hero = nil
}

// AddInjury attaches an injury and reconciles its owned adjustment.
func (h *Hero) AddInjury(inj *Injury) {
	inj.hero = h
	h.Injuries = append(h.Injuries, inj)
	inj.SyncAdjustment()
}

// RemoveInjury destroys the injury and its adjustment. Permanent injuries
// refuse removal with ErrPermanent; nothing changes in that case.
func (h *Hero) RemoveInjury(inj *Injury) error {
	if inj.Permanent {
		return ErrPermanent
	}
	if inj.adjustment != nil {
		h.removeAdjustment(inj.adjustment)
		inj.adjustment = nil
	}
	for n, cur := range h.Injuries {
		if cur == inj {
			h.Injuries = append(h.Injuries[:n], h.Injuries[n+1:]...)
			break
		}
	}
	inj.hero = nil
	return nil
}

// AddMadness attaches a madness and reconciles its owned adjustment.
func (h *Hero) AddMadness(m *Madness) {
	m.hero = h
	h.Madnesses = append(h.Madnesses, m)
	m.SyncAdjustment()
}

// RemoveMadness destroys the madness and its adjustment. Permanent
// madnesses refuse removal with ErrPermanent.
func (h *Hero) RemoveMadness(m *Madness) error {
	if m.Permanent {
		return ErrPermanent
	}
	if m.adjustment != nil {
		h.removeAdjustment(m.adjustment)
		m.adjustment = nil
	}
	for n, cur := range h.Madnesses {
		if cur == m {
			h.Madnesses = append(h.Madnesses[:n], h.Madnesses[n+1:]...)
			break
		}
	}
	m.hero = nil
	return nil
}

// AddMutation attaches a mutation and reconciles its owned adjustment.
func (h *Hero) AddMutation(m *Mutation) {
	m.hero = h
	h.Mutations = append(h.Mutations, m)
	m.SyncAdjustment()
}

// RemoveMutation destroys the mutation and its adjustment. Mutations are
// always removable.
func (h *Hero) RemoveMutation(m *Mutation) {
	if m.adjustment != nil {
		h.removeAdjustment(m.adjustment)
		m.adjustment = nil
	}
	for n, cur := range h.Mutations {
		if cur == m {
			h.Mutations = append(h.Mutations[:n], h.Mutations[n+1:]...)
			break
		}
	}
	m.hero = nil
}

// ItemByID returns the owned item with the given id, nil if absent.
func (h *Hero) ItemByID(id int64) *Item {
	for _, it := range h.Items {
		if it.ID == id {
			return it
		}
	}
	return nil
}

// AdjustmentByID returns the owned adjustment with the given id, nil if
// absent.
func (h *Hero) AdjustmentByID(id int64) *Adjustment {
	for _, a := range h.Adjustments {
		if a.ID == id {
			return a
		}
	}
	return nil
}

// InjuryByID returns the owned injury with the given id, nil if absent.
func (h *Hero) InjuryByID(id int64) *Injury {
	for _, inj := range h.Injuries {
		if inj.ID == id {
			return inj
		}
	}
	return nil
}

// MadnessByID returns the owned madness with the given id, nil if absent.
func (h *Hero) MadnessByID(id int64) *Madness {
	for _, m := range h.Madnesses {
		if m.ID == id {
			return m
		}
	}
	return nil
}

// MutationByID returns the owned mutation with the given id, nil if absent.
func (h *Hero) MutationByID(id int64) *Mutation {
	for _, m := range h.Mutations {
		if m.ID == id {
			return m
		}
	}
	return nil
}
