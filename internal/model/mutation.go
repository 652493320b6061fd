package model

// Mutation is a corruption effect on a hero. Unlike injuries and madnesses
// there is no permanence flag: mutations are always removable.
type Mutation struct {
	afflictionData

	hero       *Hero
	adjustment *Adjustment
}

// NewMutation returns a mutation with an empty modifier map.
func NewMutation(name string) *Mutation {
	return &Mutation{afflictionData: afflictionData{Name: name, Modifiers: Modifiers{}}}
}

// AdjustmentOwnerKind implements AdjustmentOwner.
func (m *Mutation) AdjustmentOwnerKind() OwnerKind { return OwnerMutation }

// Hero returns the owning hero, nil before the mutation is attached.
func (m *Mutation) Hero() *Hero { return m.hero }

// Adjustment returns the owned adjustment, nil when the mutation currently
// has no non-zero modifiers.
func (m *Mutation) Adjustment() *Adjustment { return m.adjustment }

// AdjustmentTitle is the title the owned adjustment carries.
func (m *Mutation) AdjustmentTitle() string { return "Mutation: " + m.Name }

// SyncAdjustment reconciles the owned adjustment with the mutation's
// current name and modifiers. Call after every create or update.
func (m *Mutation) SyncAdjustment() {
	m.adjustment = SyncOwnedAdjustment(m.hero, m, m.AdjustmentTitle(), m.Modifiers, m.adjustment)
}
