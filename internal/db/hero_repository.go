package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/brimhollow/herotrack/internal/model"
)

// heroColumns is the scan order shared by LoadByID and List.
const heroColumns = `
	id, name, hero_class, portrait,
	health, sanity, agility, cunning, spirit, strength, lore, luck,
	initiative, combat, max_grit, corrupt_resist,
	range_to_hit, melee_to_hit, defense, willpower,
	experience, gold, dark_stone,
	sidebag_capacity, sidebag_contents`

// HeroRepository manages hero rows. Children are handled by their own
// repositories; the Store composes them into aggregates.
type HeroRepository struct {
	pool *pgxpool.Pool
}

// NewHeroRepository creates a new HeroRepository.
func NewHeroRepository(pool *pgxpool.Pool) *HeroRepository {
	return &HeroRepository{pool: pool}
}

// Insert stores a new hero row and assigns its generated id.
func (r *HeroRepository) Insert(ctx context.Context, h *model.Hero) error {
	contents, err := json.Marshal(h.SidebagTokens())
	if err != nil {
		return fmt.Errorf("encoding sidebag contents: %w", err)
	}

	err = r.pool.QueryRow(ctx, `
		INSERT INTO heroes (
			name, hero_class, portrait,
			health, sanity, agility, cunning, spirit, strength, lore, luck,
			initiative, combat, max_grit, corrupt_resist,
			range_to_hit, melee_to_hit, defense, willpower,
			experience, gold, dark_stone,
			sidebag_capacity, sidebag_contents
		) VALUES (
			$1, $2, $3,
			$4, $5, $6, $7, $8, $9, $10, $11,
			$12, $13, $14, $15,
			$16, $17, $18, $19,
			$20, $21, $22,
			$23, $24
		) RETURNING id`,
		h.Name, h.HeroClass, h.Portrait,
		h.Health, h.Sanity, h.Agility, h.Cunning, h.Spirit, h.Strength, h.Lore, h.Luck,
		h.Initiative, h.Combat, h.MaxGrit, h.CorruptResist,
		h.RangeToHit, h.MeleeToHit, h.Defense, h.Willpower,
		h.Experience, h.Gold, h.DarkStone,
		h.SidebagCapacity, contents,
	).Scan(&h.ID)
	if err != nil {
		return fmt.Errorf("inserting hero %q: %w", h.Name, err)
	}
	return nil
}

// LoadByID loads a hero row without children.
// Returns nil, nil when the hero does not exist.
func (r *HeroRepository) LoadByID(ctx context.Context, heroID int64) (*model.Hero, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+heroColumns+` FROM heroes WHERE id = $1`, heroID)

	h, err := scanHero(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("querying hero %d: %w", heroID, err)
	}
	return h, nil
}

// List returns all hero rows without children, ordered by id.
func (r *HeroRepository) List(ctx context.Context) ([]*model.Hero, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+heroColumns+` FROM heroes ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("querying heroes: %w", err)
	}
	defer rows.Close()

	var heroes []*model.Hero
	for rows.Next() {
		h, err := scanHero(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning hero row: %w", err)
		}
		heroes = append(heroes, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating hero rows: %w", err)
	}
	return heroes, nil
}

// UpdateTx updates the hero row inside the aggregate-save transaction.
func (r *HeroRepository) UpdateTx(ctx context.Context, tx pgx.Tx, h *model.Hero) error {
	contents, err := json.Marshal(h.SidebagTokens())
	if err != nil {
		return fmt.Errorf("encoding sidebag contents: %w", err)
	}

	tag, err := tx.Exec(ctx, `
		UPDATE heroes SET
			name = $2, hero_class = $3, portrait = $4,
			health = $5, sanity = $6, agility = $7, cunning = $8,
			spirit = $9, strength = $10, lore = $11, luck = $12,
			initiative = $13, combat = $14, max_grit = $15, corrupt_resist = $16,
			range_to_hit = $17, melee_to_hit = $18, defense = $19, willpower = $20,
			experience = $21, gold = $22, dark_stone = $23,
			sidebag_capacity = $24, sidebag_contents = $25,
			updated_at = $26
		WHERE id = $1`,
		h.ID,
		h.Name, h.HeroClass, h.Portrait,
		h.Health, h.Sanity, h.Agility, h.Cunning,
		h.Spirit, h.Strength, h.Lore, h.Luck,
		h.Initiative, h.Combat, h.MaxGrit, h.CorruptResist,
		h.RangeToHit, h.MeleeToHit, h.Defense, h.Willpower,
		h.Experience, h.Gold, h.DarkStone,
		h.SidebagCapacity, contents,
		time.Now(),
	)
	if err != nil {
		return fmt.Errorf("updating hero %d: %w", h.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("updating hero %d: no such row", h.ID)
	}
	return nil
}

// Delete removes the hero row; children follow through ON DELETE CASCADE.
// Reports whether a row was deleted.
func (r *HeroRepository) Delete(ctx context.Context, heroID int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM heroes WHERE id = $1`, heroID)
	if err != nil {
		return false, fmt.Errorf("deleting hero %d: %w", heroID, err)
	}
	return tag.RowsAffected() > 0, nil
}

func scanHero(row pgx.Row) (*model.Hero, error) {
	h := model.NewHero("")
	var contents []byte

	err := row.Scan(
		&h.ID, &h.Name, &h.HeroClass, &h.Portrait,
		&h.Health, &h.Sanity, &h.Agility, &h.Cunning, &h.Spirit, &h.Strength, &h.Lore, &h.Luck,
		&h.Initiative, &h.Combat, &h.MaxGrit, &h.CorruptResist,
		&h.RangeToHit, &h.MeleeToHit, &h.Defense, &h.Willpower,
		&h.Experience, &h.Gold, &h.DarkStone,
		&h.SidebagCapacity, &contents,
	)
	if err != nil {
		return nil, err
	}

	h.SidebagContents = []string{}
	if len(contents) > 0 {
		if err := json.Unmarshal(contents, &h.SidebagContents); err != nil {
			return nil, fmt.Errorf("decoding sidebag contents for hero %d: %w", h.ID, err)
		}
	}
	if h.SidebagContents == nil {
		h.SidebagContents = []string{}
	}
	return h, nil
}
