package server

import (
	"github.com/brimhollow/herotrack/internal/model"
)

// View types shape the JSON the API returns. Derived values (adjusted
// stats, equip legality, sidebag room) are computed at render time from
// the loaded aggregate, never stored.

type ownerView struct {
	Kind string `json:"kind"`
	ID   int64  `json:"id"`
}

type adjustmentView struct {
	ID                int64          `json:"id"`
	Title             string         `json:"title"`
	Active            bool           `json:"active"`
	EffectivelyActive bool           `json:"effectively_active"`
	Modifiers         map[string]int `json:"modifiers"`
	Owner             *ownerView     `json:"owner,omitempty"`
}

type itemView struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Equipped      bool            `json:"equipped"`
	BodyParts     []string        `json:"body_parts"`
	HandsRequired int             `json:"hands_required"`
	Weight        int             `json:"weight"`
	CanEquip      bool            `json:"can_equip"`
	EquipBlocked  string          `json:"cannot_equip_reason,omitempty"`
	Adjustment    *adjustmentView `json:"adjustment,omitempty"`
}

type afflictionView struct {
	ID          int64          `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	ChartKey    string         `json:"chart_key,omitempty"`
	Roll        int            `json:"roll"`
	Modifiers   map[string]int `json:"modifiers"`
	Permanent   *bool          `json:"permanent,omitempty"`
}

type sidebagView struct {
	BaseCapacity     int      `json:"base_capacity"`
	AdjustedCapacity int      `json:"adjusted_capacity"`
	Tokens           []string `json:"tokens"`
	SlotsRemaining   int      `json:"slots_remaining"`
	Full             bool     `json:"full"`
}

type equipmentView struct {
	HandsInUse        int      `json:"hands_in_use"`
	FreeHands         int      `json:"free_hands"`
	OccupiedBodyParts []string `json:"occupied_body_parts"`
	TotalItemWeight   int      `json:"total_item_weight"`
	WeightCapacity    int      `json:"weight_capacity"`
	OverCapacity      bool     `json:"over_capacity"`
}

type heroView struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	HeroClass string `json:"hero_class,omitempty"`
	Portrait  string `json:"portrait,omitempty"`

	Health        int `json:"health"`
	Sanity        int `json:"sanity"`
	Agility       int `json:"agility"`
	Cunning       int `json:"cunning"`
	Spirit        int `json:"spirit"`
	Strength      int `json:"strength"`
	Lore          int `json:"lore"`
	Luck          int `json:"luck"`
	Initiative    int `json:"initiative"`
	Combat        int `json:"combat"`
	MaxGrit       int `json:"max_grit"`
	CorruptResist int `json:"corrupt_resist"`

	RangeToHit int `json:"range_to_hit"`
	MeleeToHit int `json:"melee_to_hit"`
	Defense    int `json:"defense"`
	Willpower  int `json:"willpower"`

	Experience int `json:"experience"`
	Gold       int `json:"gold"`
	DarkStone  int `json:"dark_stone"`

	Adjusted           map[string]int `json:"adjusted"`
	AdjustmentsSummary map[string]int `json:"adjustments_summary"`

	Sidebag   sidebagView   `json:"sidebag"`
	Equipment equipmentView `json:"equipment"`

	Adjustments []adjustmentView `json:"adjustments"`
	Items       []itemView       `json:"items"`
	Injuries    []afflictionView `json:"injuries"`
	Madnesses   []afflictionView `json:"madnesses"`
	Mutations   []afflictionView `json:"mutations"`
}

type heroSummaryView struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	HeroClass string `json:"hero_class,omitempty"`
	Portrait  string `json:"portrait,omitempty"`
}

func modifiersJSON(m model.Modifiers) map[string]int {
	out := make(map[string]int, len(m))
	for attr, v := range m.Active() {
		out[string(attr)] = v
	}
	return out
}

func newOwnerView(owner model.AdjustmentOwner) *ownerView {
	if owner == nil {
		return nil
	}
	return &ownerView{Kind: string(owner.AdjustmentOwnerKind()), ID: owner.EntityID()}
}

func newAdjustmentView(adj *model.Adjustment) adjustmentView {
	return adjustmentView{
		ID:                adj.ID,
		Title:             adj.Title,
		Active:            adj.Active,
		EffectivelyActive: adj.EffectivelyActive(),
		Modifiers:         modifiersJSON(adj.Modifiers),
		Owner:             newOwnerView(adj.Owner()),
	}
}

func newItemView(item *model.Item) itemView {
	parts := make([]string, len(item.BodyPartsUsed))
	for n, p := range item.BodyPartsUsed {
		parts[n] = string(p)
	}
	view := itemView{
		ID:            item.ID,
		Name:          item.Name,
		Description:   item.Description,
		Equipped:      item.Equipped,
		BodyParts:     parts,
		HandsRequired: item.HandsRequired,
		Weight:        item.Weight,
		CanEquip:      item.CanEquip(),
		EquipBlocked:  item.CannotEquipReason(),
	}
	if adj := item.Adjustment(); adj != nil {
		v := newAdjustmentView(adj)
		view.Adjustment = &v
	}
	return view
}

func newInjuryView(inj *model.Injury) afflictionView {
	permanent := inj.Permanent
	return afflictionView{
		ID:          inj.ID,
		Name:        inj.Name,
		Description: inj.Description,
		ChartKey:    inj.ChartKey,
		Roll:        inj.Roll,
		Modifiers:   modifiersJSON(inj.Modifiers),
		Permanent:   &permanent,
	}
}

func newMadnessView(m *model.Madness) afflictionView {
	permanent := m.Permanent
	return afflictionView{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		ChartKey:    m.ChartKey,
		Roll:        m.Roll,
		Modifiers:   modifiersJSON(m.Modifiers),
		Permanent:   &permanent,
	}
}

func newMutationView(m *model.Mutation) afflictionView {
	return afflictionView{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		ChartKey:    m.ChartKey,
		Roll:        m.Roll,
		Modifiers:   modifiersJSON(m.Modifiers),
	}
}

func newHeroView(h *model.Hero) heroView {
	adjusted := make(map[string]int, len(model.AdjustableAttributes))
	for _, attr := range model.AdjustableAttributes {
		adjusted[string(attr)] = h.AdjustedValueFor(attr)
	}

	occupied := h.OccupiedBodyParts()
	occupiedStr := make([]string, len(occupied))
	for n, p := range occupied {
		occupiedStr[n] = string(p)
	}

	view := heroView{
		ID:        h.ID,
		Name:      h.Name,
		HeroClass: h.HeroClass,
		Portrait:  h.Portrait,

		Health:        h.Health,
		Sanity:        h.Sanity,
		Agility:       h.Agility,
		Cunning:       h.Cunning,
		Spirit:        h.Spirit,
		Strength:      h.Strength,
		Lore:          h.Lore,
		Luck:          h.Luck,
		Initiative:    h.Initiative,
		Combat:        h.Combat,
		MaxGrit:       h.MaxGrit,
		CorruptResist: h.CorruptResist,

		RangeToHit: h.RangeToHit,
		MeleeToHit: h.MeleeToHit,
		Defense:    h.Defense,
		Willpower:  h.Willpower,

		Experience: h.Experience,
		Gold:       h.Gold,
		DarkStone:  h.DarkStone,

		Adjusted:           adjusted,
		AdjustmentsSummary: modifiersJSON(h.AdjustmentsSummary()),

		Sidebag: sidebagView{
			BaseCapacity:     h.BaseValue(model.AttrSidebagCapacity),
			AdjustedCapacity: h.AdjustedSidebagCapacity(),
			Tokens:           h.SidebagTokens(),
			SlotsRemaining:   h.SidebagSlotsRemaining(),
			Full:             h.SidebagFull(),
		},
		Equipment: equipmentView{
			HandsInUse:        h.HandsInUse(),
			FreeHands:         h.FreeHands(),
			OccupiedBodyParts: occupiedStr,
			TotalItemWeight:   h.TotalItemWeight(),
			WeightCapacity:    h.WeightCapacity(),
			OverCapacity:      h.OverWeightCapacity(),
		},

		Adjustments: make([]adjustmentView, 0, len(h.Adjustments)),
		Items:       make([]itemView, 0, len(h.Items)),
		Injuries:    make([]afflictionView, 0, len(h.Injuries)),
		Madnesses:   make([]afflictionView, 0, len(h.Madnesses)),
		Mutations:   make([]afflictionView, 0, len(h.Mutations)),
	}
	for _, adj := range h.Adjustments {
		view.Adjustments = append(view.Adjustments, newAdjustmentView(adj))
	}
	for _, item := range h.Items {
		view.Items = append(view.Items, newItemView(item))
	}
	for _, inj := range h.Injuries {
		view.Injuries = append(view.Injuries, newInjuryView(inj))
	}
	for _, m := range h.Madnesses {
		view.Madnesses = append(view.Madnesses, newMadnessView(m))
	}
	for _, m := range h.Mutations {
		view.Mutations = append(view.Mutations, newMutationView(m))
	}
	return view
}
