package model

// Madness is a mental affliction on a hero. It behaves exactly like an
// injury, including the permanence rule; only the adjustment title prefix
// differs.
type Madness struct {
	afflictionData
	Permanent bool

	hero       *Hero
	adjustment *Adjustment
}

// NewMadness returns a non-permanent madness with an empty modifier map.
func NewMadness(name string) *Madness {
	return &Madness{afflictionData: afflictionData{Name: name, Modifiers: Modifiers{}}}
}

// AdjustmentOwnerKind implements AdjustmentOwner.
func (m *Madness) AdjustmentOwnerKind() OwnerKind { return OwnerMadness }

// Hero returns the owning hero, nil before the madness is attached.
func (m *Madness) Hero() *Hero { return m.hero }

// Adjustment returns the owned adjustment, nil when the madness currently
// has no non-zero modifiers.
func (m *Madness) Adjustment() *Adjustment { return m.adjustment }

// AdjustmentTitle is the title the owned adjustment carries.
func (m *Madness) AdjustmentTitle() string { return "Madness: " + m.Name }

// SyncAdjustment reconciles the owned adjustment with the madness's current
// name and modifiers. Call after every create or update.
func (m *Madness) SyncAdjustment() {
	m.adjustment = SyncOwnedAdjustment(m.hero, m, m.AdjustmentTitle(), m.Modifiers, m.adjustment)
}
