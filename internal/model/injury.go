package model

// Injury is a physical affliction on a hero. Permanent injuries refuse
// removal. Its owned adjustment is derived from its modifier map through
// SyncOwnedAdjustment, never managed by callers.
type Injury struct {
	afflictionData
	Permanent bool

	hero       *Hero
	adjustment *Adjustment
}

// NewInjury returns a non-permanent injury with an empty modifier map.
func NewInjury(name string) *Injury {
	return &Injury{afflictionData: afflictionData{Name: name, Modifiers: Modifiers{}}}
}

// AdjustmentOwnerKind implements AdjustmentOwner.
func (inj *Injury) AdjustmentOwnerKind() OwnerKind { return OwnerInjury }

// Hero returns the owning hero, nil before the injury is attached.
func (inj *Injury) Hero() *Hero { return inj.hero }

// Adjustment returns the owned adjustment, nil when the injury currently
// has no non-zero modifiers.
func (inj *Injury) Adjustment() *Adjustment { return inj.adjustment }

// AdjustmentTitle is the title the owned adjustment carries.
func (inj *Injury) AdjustmentTitle() string { return "Injury: " + inj.Name }

// SyncAdjustment reconciles the owned adjustment with the injury's current
// name and modifiers. Call after every create or update.
func (inj *Injury) SyncAdjustment() {
	inj.adjustment = SyncOwnedAdjustment(inj.hero, inj, inj.AdjustmentTitle(), inj.Modifiers, inj.adjustment)
}
