package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/brimhollow/herotrack/internal/model"
)

// Store loads and saves heroes as whole aggregates. A hero is read fully
// wired (owner pointers resolved) and written back in a single transaction,
// so dependent writes (an affliction change plus its adjustment sync)
// commit together or not at all.
type Store struct {
	pool        *pgxpool.Pool
	heroes      *HeroRepository
	items       *ItemRepository
	afflictions *AfflictionRepository
	adjustments *AdjustmentRepository
}

// NewStore creates a Store over the given pool.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{
		pool:        pool,
		heroes:      NewHeroRepository(pool),
		items:       NewItemRepository(pool),
		afflictions: NewAfflictionRepository(pool),
		adjustments: NewAdjustmentRepository(pool),
	}
}

// CreateHero inserts a new hero row and assigns its id. A freshly created
// hero has no children; use SaveHero for everything after that.
func (s *Store) CreateHero(ctx context.Context, h *model.Hero) error {
	return s.heroes.Insert(ctx, h)
}

// LoadHero loads a hero with all owned collections attached and every
// adjustment owner link resolved to its entity.
// Returns nil, nil when the hero does not exist.
func (s *Store) LoadHero(ctx context.Context, heroID int64) (*model.Hero, error) {
	hero, err := s.heroes.LoadByID(ctx, heroID)
	if err != nil || hero == nil {
		return hero, err
	}

	items, err := s.items.LoadByHero(ctx, heroID)
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		hero.AddItem(item)
	}

	injuries, err := s.afflictions.LoadInjuries(ctx, heroID)
	if err != nil {
		return nil, err
	}
	for _, inj := range injuries {
		hero.RestoreInjury(inj)
	}

	madnesses, err := s.afflictions.LoadMadnesses(ctx, heroID)
	if err != nil {
		return nil, err
	}
	for _, m := range madnesses {
		hero.RestoreMadness(m)
	}

	mutations, err := s.afflictions.LoadMutations(ctx, heroID)
	if err != nil {
		return nil, err
	}
	for _, m := range mutations {
		hero.RestoreMutation(m)
	}

	rows, err := s.adjustments.LoadByHero(ctx, heroID)
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		owner, err := resolveOwner(hero, row)
		if err != nil {
			return nil, err
		}
		hero.RestoreAdjustment(row.Adjustment, owner)
	}

	return hero, nil
}

// resolveOwner maps a stored (kind, id) owner reference to the loaded
// entity. A reference to a missing entity is an invariant violation, never
// silently skipped.
func resolveOwner(hero *model.Hero, row AdjustmentRow) (model.AdjustmentOwner, error) {
	switch row.OwnerKind {
	case "":
		return nil, nil
	case model.OwnerItem:
		if item := hero.ItemByID(row.OwnerID); item != nil {
			return item, nil
		}
	case model.OwnerInjury:
		if inj := hero.InjuryByID(row.OwnerID); inj != nil {
			return inj, nil
		}
	case model.OwnerMadness:
		if m := hero.MadnessByID(row.OwnerID); m != nil {
			return m, nil
		}
	case model.OwnerMutation:
		if m := hero.MutationByID(row.OwnerID); m != nil {
			return m, nil
		}
	default:
		return nil, fmt.Errorf("adjustment %d: unknown owner kind %q", row.Adjustment.ID, row.OwnerKind)
	}
	return nil, fmt.Errorf("adjustment %d: dangling %s reference %d",
		row.Adjustment.ID, row.OwnerKind, row.OwnerID)
}

// SaveHero writes the whole aggregate in one transaction: hero row, then
// items and afflictions (assigning fresh ids), then adjustments whose
// owner references those ids.
func (s *Store) SaveHero(ctx context.Context, h *model.Hero) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := s.heroes.UpdateTx(ctx, tx, h); err != nil {
		return err
	}
	if err := s.items.SaveAllTx(ctx, tx, h.ID, h.Items); err != nil {
		return err
	}
	if err := s.afflictions.SaveInjuriesTx(ctx, tx, h.ID, h.Injuries); err != nil {
		return err
	}
	if err := s.afflictions.SaveMadnessesTx(ctx, tx, h.ID, h.Madnesses); err != nil {
		return err
	}
	if err := s.afflictions.SaveMutationsTx(ctx, tx, h.ID, h.Mutations); err != nil {
		return err
	}
	if err := s.adjustments.SaveAllTx(ctx, tx, h.ID, h.Adjustments); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// DeleteHero removes the hero and, through cascading foreign keys, every
// owned item, affliction and adjustment. Reports whether the hero existed.
func (s *Store) DeleteHero(ctx context.Context, heroID int64) (bool, error) {
	return s.heroes.Delete(ctx, heroID)
}

// ListHeroes returns all heroes without children, for index views.
func (s *Store) ListHeroes(ctx context.Context) ([]*model.Hero, error) {
	return s.heroes.List(ctx)
}
