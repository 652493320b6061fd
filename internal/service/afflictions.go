package service

import (
	"context"
	"log/slog"

	"github.com/brimhollow/herotrack/internal/model"
)

// AfflictionParams carries optional injury/madness/mutation edits. Nil
// fields are left untouched; a non-nil Modifiers map replaces the modifier
// block. Permanent is ignored for mutations.
type AfflictionParams struct {
	Name        *string
	Description *string
	Roll        *int
	Modifiers   model.Modifiers
	Permanent   *bool
}

// AddInjury attaches an injury to the hero. A non-empty chartKey
// instantiates the catalogue template; otherwise a custom injury is built
// from params. The owned adjustment is reconciled either way.
func (s *HeroService) AddInjury(ctx context.Context, heroID int64, chartKey string, params AfflictionParams) (*model.Injury, error) {
	hero, err := s.loadHero(ctx, heroID)
	if err != nil {
		return nil, err
	}

	var inj *model.Injury
	if chartKey != "" {
		if inj = s.catalog.BuildInjury(chartKey); inj == nil {
			return nil, ErrUnknownChartKey
		}
	} else {
		inj = model.NewInjury("")
	}
	applyInjuryParams(inj, params)
	if err := inj.Validate(); err != nil {
		return nil, err
	}

	hero.AddInjury(inj)
	if err := s.saveHero(ctx, hero); err != nil {
		return nil, err
	}
	slog.Info("injury added", "heroID", heroID, "injuryID", inj.ID, "name", inj.Name)
	return inj, nil
}

// UpdateInjury applies the given edits and reconciles the owned adjustment.
func (s *HeroService) UpdateInjury(ctx context.Context, heroID, injuryID int64, params AfflictionParams) (*model.Injury, error) {
	hero, err := s.loadHero(ctx, heroID)
	if err != nil {
		return nil, err
	}
	inj := hero.InjuryByID(injuryID)
	if inj == nil {
		return nil, ErrInjuryNotFound
	}

	applyInjuryParams(inj, params)
	if err := inj.Validate(); err != nil {
		return nil, err
	}
	inj.SyncAdjustment()

	if err := s.saveHero(ctx, hero); err != nil {
		return nil, err
	}
	return inj, nil
}

// DeleteInjury removes the injury and its adjustment. A permanent injury
// refuses removal with model.ErrPermanent.
func (s *HeroService) DeleteInjury(ctx context.Context, heroID, injuryID int64) error {
	hero, err := s.loadHero(ctx, heroID)
	if err != nil {
		return err
	}
	inj := hero.InjuryByID(injuryID)
	if inj == nil {
		return ErrInjuryNotFound
	}

	if err := hero.RemoveInjury(inj); err != nil {
		return err
	}
	if err := s.saveHero(ctx, hero); err != nil {
		return err
	}
	slog.Info("injury removed", "heroID", heroID, "injuryID", injuryID)
	return nil
}

// AddMadness attaches a madness to the hero, from the catalogue when
// chartKey is non-empty.
func (s *HeroService) AddMadness(ctx context.Context, heroID int64, chartKey string, params AfflictionParams) (*model.Madness, error) {
	hero, err := s.loadHero(ctx, heroID)
	if err != nil {
		return nil, err
	}

	var m *model.Madness
	if chartKey != "" {
		if m = s.catalog.BuildMadness(chartKey); m == nil {
			return nil, ErrUnknownChartKey
		}
	} else {
		m = model.NewMadness("")
	}
	applyMadnessParams(m, params)
	if err := m.Validate(); err != nil {
		return nil, err
	}

	hero.AddMadness(m)
	if err := s.saveHero(ctx, hero); err != nil {
		return nil, err
	}
	slog.Info("madness added", "heroID", heroID, "madnessID", m.ID, "name", m.Name)
	return m, nil
}

// UpdateMadness applies the given edits and reconciles the owned adjustment.
func (s *HeroService) UpdateMadness(ctx context.Context, heroID, madnessID int64, params AfflictionParams) (*model.Madness, error) {
	hero, err := s.loadHero(ctx, heroID)
	if err != nil {
		return nil, err
	}
	m := hero.MadnessByID(madnessID)
	if m == nil {
		return nil, ErrMadnessNotFound
	}

	applyMadnessParams(m, params)
	if err := m.Validate(); err != nil {
		return nil, err
	}
	m.SyncAdjustment()

	if err := s.saveHero(ctx, hero); err != nil {
		return nil, err
	}
	return m, nil
}

// DeleteMadness removes the madness and its adjustment. A permanent madness
// refuses removal with model.ErrPermanent.
func (s *HeroService) DeleteMadness(ctx context.Context, heroID, madnessID int64) error {
	hero, err := s.loadHero(ctx, heroID)
	if err != nil {
		return err
	}
	m := hero.MadnessByID(madnessID)
	if m == nil {
		return ErrMadnessNotFound
	}

	if err := hero.RemoveMadness(m); err != nil {
		return err
	}
	if err := s.saveHero(ctx, hero); err != nil {
		return err
	}
	slog.Info("madness removed", "heroID", heroID, "madnessID", madnessID)
	return nil
}

// AddMutation attaches a mutation to the hero, from the catalogue when
// chartKey is non-empty.
func (s *HeroService) AddMutation(ctx context.Context, heroID int64, chartKey string, params AfflictionParams) (*model.Mutation, error) {
	hero, err := s.loadHero(ctx, heroID)
	if err != nil {
		return nil, err
	}

	var m *model.Mutation
	if chartKey != "" {
		if m = s.catalog.BuildMutation(chartKey); m == nil {
			return nil, ErrUnknownChartKey
		}
	} else {
		m = model.NewMutation("")
	}
	applyMutationParams(m, params)
	if err := m.Validate(); err != nil {
		return nil, err
	}

	hero.AddMutation(m)
	if err := s.saveHero(ctx, hero); err != nil {
		return nil, err
	}
	slog.Info("mutation added", "heroID", heroID, "mutationID", m.ID, "name", m.Name)
	return m, nil
}

// UpdateMutation applies the given edits and reconciles the owned
// adjustment.
func (s *HeroService) UpdateMutation(ctx context.Context, heroID, mutationID int64, params AfflictionParams) (*model.Mutation, error) {
	hero, err := s.loadHero(ctx, heroID)
	if err != nil {
		return nil, err
	}
	m := hero.MutationByID(mutationID)
	if m == nil {
		return nil, ErrMutationNotFound
	}

	applyMutationParams(m, params)
	if err := m.Validate(); err != nil {
		return nil, err
	}
	m.SyncAdjustment()

	if err := s.saveHero(ctx, hero); err != nil {
		return nil, err
	}
	return m, nil
}

// DeleteMutation removes the mutation and its adjustment. Mutations are
// always removable.
func (s *HeroService) DeleteMutation(ctx context.Context, heroID, mutationID int64) error {
	hero, err := s.loadHero(ctx, heroID)
	if err != nil {
		return err
	}
	m := hero.MutationByID(mutationID)
	if m == nil {
		return ErrMutationNotFound
	}

	hero.RemoveMutation(m)
	if err := s.saveHero(ctx, hero); err != nil {
		return err
	}
	slog.Info("mutation removed", "heroID", heroID, "mutationID", mutationID)
	return nil
}

func applyInjuryParams(inj *model.Injury, p AfflictionParams) {
	if p.Name != nil {
		inj.Name = *p.Name
	}
	if p.Description != nil {
		inj.Description = *p.Description
	}
	if p.Roll != nil {
		inj.Roll = *p.Roll
	}
	if p.Modifiers != nil {
		inj.Modifiers = p.Modifiers.Clone()
	}
	if p.Permanent != nil {
		inj.Permanent = *p.Permanent
	}
}

func applyMadnessParams(m *model.Madness, p AfflictionParams) {
	if p.Name != nil {
		m.Name = *p.Name
	}
	if p.Description != nil {
		m.Description = *p.Description
	}
	if p.Roll != nil {
		m.Roll = *p.Roll
	}
	if p.Modifiers != nil {
		m.Modifiers = p.Modifiers.Clone()
	}
	if p.Permanent != nil {
		m.Permanent = *p.Permanent
	}
}

func applyMutationParams(m *model.Mutation, p AfflictionParams) {
	if p.Name != nil {
		m.Name = *p.Name
	}
	if p.Description != nil {
		m.Description = *p.Description
	}
	if p.Roll != nil {
		m.Roll = *p.Roll
	}
	if p.Modifiers != nil {
		m.Modifiers = p.Modifiers.Clone()
	}
}
