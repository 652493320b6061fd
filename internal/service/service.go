// Package service orchestrates hero mutations over a persistence store.
//
// Every operation loads the hero as a full aggregate, applies the change
// in memory and saves the aggregate back in one transaction, so dependent
// writes (an injury edit plus its adjustment sync) land together.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/brimhollow/herotrack/internal/data"
	"github.com/brimhollow/herotrack/internal/model"
)

// Sentinel errors.
var (
	ErrHeroNotFound       = errors.New("hero not found")
	ErrItemNotFound       = errors.New("item not found")
	ErrAdjustmentNotFound = errors.New("adjustment not found")
	ErrInjuryNotFound     = errors.New("injury not found")
	ErrMadnessNotFound    = errors.New("madness not found")
	ErrMutationNotFound   = errors.New("mutation not found")
	ErrUnknownChartKey    = errors.New("unknown chart key")
	ErrUnknownHeroClass   = errors.New("unknown hero class")
)

// HeroStore persists hero aggregates.
// Implemented by db.Store.
type HeroStore interface {
	CreateHero(ctx context.Context, h *model.Hero) error
	LoadHero(ctx context.Context, heroID int64) (*model.Hero, error)
	SaveHero(ctx context.Context, h *model.Hero) error
	DeleteHero(ctx context.Context, heroID int64) (bool, error)
	ListHeroes(ctx context.Context) ([]*model.Hero, error)
}

// HeroService implements the hero tracker operations over a HeroStore and
// the static catalogue.
type HeroService struct {
	store   HeroStore
	catalog *data.Catalog
}

// NewHeroService creates a service over the given store and catalogue.
func NewHeroService(store HeroStore, catalog *data.Catalog) *HeroService {
	return &HeroService{store: store, catalog: catalog}
}

// HeroParams carries optional hero field edits. Nil fields are left
// untouched, so the same struct serves create defaults and partial update.
type HeroParams struct {
	Name     *string
	Portrait *string

	Health        *int
	Sanity        *int
	Agility       *int
	Cunning       *int
	Spirit        *int
	Strength      *int
	Lore          *int
	Luck          *int
	Initiative    *int
	Combat        *int
	MaxGrit       *int
	CorruptResist *int

	RangeToHit *int
	MeleeToHit *int
	Defense    *int
	Willpower  *int

	Experience *int
	Gold       *int
	DarkStone  *int

	SidebagCapacity *int
}

func (p HeroParams) apply(h *model.Hero) {
	if p.Name != nil {
		h.Name = *p.Name
	}
	if p.Portrait != nil {
		h.Portrait = *p.Portrait
	}
	for _, f := range []struct {
		src *int
		dst *int
	}{
		{p.Health, &h.Health},
		{p.Sanity, &h.Sanity},
		{p.Agility, &h.Agility},
		{p.Cunning, &h.Cunning},
		{p.Spirit, &h.Spirit},
		{p.Strength, &h.Strength},
		{p.Lore, &h.Lore},
		{p.Luck, &h.Luck},
		{p.Initiative, &h.Initiative},
		{p.Combat, &h.Combat},
		{p.MaxGrit, &h.MaxGrit},
		{p.CorruptResist, &h.CorruptResist},
		{p.RangeToHit, &h.RangeToHit},
		{p.MeleeToHit, &h.MeleeToHit},
		{p.Defense, &h.Defense},
		{p.Willpower, &h.Willpower},
		{p.Experience, &h.Experience},
		{p.Gold, &h.Gold},
		{p.DarkStone, &h.DarkStone},
		{p.SidebagCapacity, &h.SidebagCapacity},
	} {
		if f.src != nil {
			*f.dst = *f.src
		}
	}
}

// CreateHero creates a hero, optionally seeding its base attributes from a
// hero class template. Explicit params override the template.
func (s *HeroService) CreateHero(ctx context.Context, name, heroClass string, params HeroParams) (*model.Hero, error) {
	hero := model.NewHero(name)
	if heroClass != "" {
		if !s.catalog.ApplyHeroClass(hero, heroClass) {
			return nil, ErrUnknownHeroClass
		}
	}
	params.apply(hero)

	if err := hero.Validate(); err != nil {
		return nil, err
	}
	if err := s.store.CreateHero(ctx, hero); err != nil {
		return nil, fmt.Errorf("create hero: %w", err)
	}

	slog.Info("hero created", "heroID", hero.ID, "name", hero.Name, "class", hero.HeroClass)
	return hero, nil
}

// GetHero loads a hero with all collections attached.
func (s *HeroService) GetHero(ctx context.Context, heroID int64) (*model.Hero, error) {
	return s.loadHero(ctx, heroID)
}

// ListHeroes returns all heroes without children.
func (s *HeroService) ListHeroes(ctx context.Context) ([]*model.Hero, error) {
	heroes, err := s.store.ListHeroes(ctx)
	if err != nil {
		return nil, fmt.Errorf("list heroes: %w", err)
	}
	return heroes, nil
}

// UpdateHero applies the given field edits and saves the hero.
func (s *HeroService) UpdateHero(ctx context.Context, heroID int64, params HeroParams) (*model.Hero, error) {
	hero, err := s.loadHero(ctx, heroID)
	if err != nil {
		return nil, err
	}
	params.apply(hero)

	if err := hero.Validate(); err != nil {
		return nil, err
	}
	if err := s.saveHero(ctx, hero); err != nil {
		return nil, err
	}
	return hero, nil
}

// DeleteHero removes the hero and everything it owns.
func (s *HeroService) DeleteHero(ctx context.Context, heroID int64) error {
	existed, err := s.store.DeleteHero(ctx, heroID)
	if err != nil {
		return fmt.Errorf("delete hero %d: %w", heroID, err)
	}
	if !existed {
		return ErrHeroNotFound
	}
	slog.Info("hero deleted", "heroID", heroID)
	return nil
}

// AddSidebagToken appends a token to the hero's sidebag. A full sidebag is
// a silent no-op, never an error.
func (s *HeroService) AddSidebagToken(ctx context.Context, heroID int64, token string) (*model.Hero, error) {
	hero, err := s.loadHero(ctx, heroID)
	if err != nil {
		return nil, err
	}
	if hero.AddSidebagToken(token) {
		if err := s.saveHero(ctx, hero); err != nil {
			return nil, err
		}
	}
	return hero, nil
}

// RemoveSidebagTokenAt removes the token at index. Out-of-range indices are
// silent no-ops, never errors.
func (s *HeroService) RemoveSidebagTokenAt(ctx context.Context, heroID int64, index int) (*model.Hero, error) {
	hero, err := s.loadHero(ctx, heroID)
	if err != nil {
		return nil, err
	}
	if hero.RemoveSidebagTokenAt(index) {
		if err := s.saveHero(ctx, hero); err != nil {
			return nil, err
		}
	}
	return hero, nil
}

func (s *HeroService) loadHero(ctx context.Context, heroID int64) (*model.Hero, error) {
	hero, err := s.store.LoadHero(ctx, heroID)
	if err != nil {
		return nil, fmt.Errorf("load hero %d: %w", heroID, err)
	}
	if hero == nil {
		return nil, ErrHeroNotFound
	}
	return hero, nil
}

func (s *HeroService) saveHero(ctx context.Context, hero *model.Hero) error {
	if err := s.store.SaveHero(ctx, hero); err != nil {
		return fmt.Errorf("save hero %d: %w", hero.ID, err)
	}
	return nil
}
