package service

import (
	"context"
	"log/slog"

	"github.com/brimhollow/herotrack/internal/model"
)

// AdjustmentParams carries optional adjustment edits. Nil fields are left
// untouched; a non-nil Modifiers map replaces the modifier block wholesale.
type AdjustmentParams struct {
	Title     *string
	Active    *bool
	Modifiers model.Modifiers
}

func (p AdjustmentParams) apply(adj *model.Adjustment) {
	if p.Title != nil {
		adj.Title = *p.Title
	}
	if p.Active != nil {
		adj.Active = *p.Active
	}
	if p.Modifiers != nil {
		adj.Modifiers = p.Modifiers.Clone()
	}
}

// CreateAdjustment creates a standalone adjustment on the hero. It starts
// active unless params say otherwise.
func (s *HeroService) CreateAdjustment(ctx context.Context, heroID int64, title string, params AdjustmentParams) (*model.Adjustment, error) {
	hero, err := s.loadHero(ctx, heroID)
	if err != nil {
		return nil, err
	}

	adj := model.NewAdjustment(title, nil)
	params.apply(adj)
	if err := adj.Validate(); err != nil {
		return nil, err
	}

	hero.AddAdjustment(adj)
	if err := s.saveHero(ctx, hero); err != nil {
		return nil, err
	}
	slog.Info("adjustment created", "heroID", heroID, "adjustmentID", adj.ID, "title", adj.Title)
	return adj, nil
}

// UpdateAdjustment applies the given edits to an adjustment, owned or
// standalone alike.
func (s *HeroService) UpdateAdjustment(ctx context.Context, heroID, adjustmentID int64, params AdjustmentParams) (*model.Adjustment, error) {
	hero, err := s.loadHero(ctx, heroID)
	if err != nil {
		return nil, err
	}
	adj := hero.AdjustmentByID(adjustmentID)
	if adj == nil {
		return nil, ErrAdjustmentNotFound
	}

	params.apply(adj)
	if err := adj.Validate(); err != nil {
		return nil, err
	}
	if err := s.saveHero(ctx, hero); err != nil {
		return nil, err
	}
	return adj, nil
}

// ToggleAdjustment flips the adjustment's active flag.
func (s *HeroService) ToggleAdjustment(ctx context.Context, heroID, adjustmentID int64) (*model.Adjustment, error) {
	hero, err := s.loadHero(ctx, heroID)
	if err != nil {
		return nil, err
	}
	adj := hero.AdjustmentByID(adjustmentID)
	if adj == nil {
		return nil, ErrAdjustmentNotFound
	}

	adj.Active = !adj.Active
	if err := s.saveHero(ctx, hero); err != nil {
		return nil, err
	}
	return adj, nil
}

// DeleteAdjustment removes the adjustment, detaching it from its owner if
// it has one.
func (s *HeroService) DeleteAdjustment(ctx context.Context, heroID, adjustmentID int64) error {
	hero, err := s.loadHero(ctx, heroID)
	if err != nil {
		return err
	}
	adj := hero.AdjustmentByID(adjustmentID)
	if adj == nil {
		return ErrAdjustmentNotFound
	}

	hero.RemoveAdjustment(adj)
	if err := s.saveHero(ctx, hero); err != nil {
		return err
	}
	slog.Info("adjustment deleted", "heroID", heroID, "adjustmentID", adjustmentID)
	return nil
}
