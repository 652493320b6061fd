package model

// Aggregate rebuilding hooks for the persistence layer. These reattach
// stored children exactly as they were saved, without triggering the
// reconciliation that runs on live mutations.

// RestoreInjury reattaches a stored injury without syncing its adjustment.
func (h *Hero) RestoreInjury(inj *Injury) {
	inj.hero = h
	h.Injuries = append(h.Injuries, inj)
}

// RestoreMadness reattaches a stored madness without syncing its
// adjustment.
func (h *Hero) RestoreMadness(m *Madness) {
	m.hero = h
	h.Madnesses = append(h.Madnesses, m)
}

// RestoreMutation reattaches a stored mutation without syncing its
// adjustment.
func (h *Hero) RestoreMutation(m *Mutation) {
	m.hero = h
	h.Mutations = append(h.Mutations, m)
}

// RestoreAdjustment reattaches a stored adjustment, wiring both directions
// of the owner link. owner is nil for standalone adjustments.
func (h *Hero) RestoreAdjustment(adj *Adjustment, owner AdjustmentOwner) {
	switch o := owner.(type) {
	case *Item:
		adj.SetOwner(o)
		o.adjustment = adj
	case *Injury:
		adj.SetOwner(o)
		o.adjustment = adj
	case *Madness:
		adj.SetOwner(o)
		o.adjustment = adj
	case *Mutation:
		adj.SetOwner(o)
		o.adjustment = adj
	}
	h.Adjustments = append(h.Adjustments, adj)
}
