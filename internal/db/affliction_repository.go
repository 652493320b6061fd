package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/brimhollow/herotrack/internal/model"
)

// AfflictionRepository manages injury, madness and mutation rows. The three
// tables share a shape; mutations simply have no permanent column.
type AfflictionRepository struct {
	pool *pgxpool.Pool
}

// NewAfflictionRepository creates a new AfflictionRepository.
func NewAfflictionRepository(pool *pgxpool.Pool) *AfflictionRepository {
	return &AfflictionRepository{pool: pool}
}

// afflictionRow is the scan target shared by the three tables.
type afflictionRow struct {
	id          int64
	name        string
	description string
	chartKey    string
	roll        int
	modifiers   model.Modifiers
	permanent   bool
}

func (r *AfflictionRepository) loadRows(ctx context.Context, table string, withPermanent bool, heroID int64) ([]afflictionRow, error) {
	cols := `id, name, description, chart_key, roll, modifiers`
	if withPermanent {
		cols += `, permanent`
	}
	rows, err := r.pool.Query(ctx,
		`SELECT `+cols+` FROM `+table+` WHERE hero_id = $1 ORDER BY id`, heroID)
	if err != nil {
		return nil, fmt.Errorf("querying %s for hero %d: %w", table, heroID, err)
	}
	defer rows.Close()

	var out []afflictionRow
	for rows.Next() {
		var row afflictionRow
		var mods []byte

		dest := []any{&row.id, &row.name, &row.description, &row.chartKey, &row.roll, &mods}
		if withPermanent {
			dest = append(dest, &row.permanent)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scanning %s row: %w", table, err)
		}

		row.modifiers = model.Modifiers{}
		if len(mods) > 0 {
			if err := json.Unmarshal(mods, &row.modifiers); err != nil {
				return nil, fmt.Errorf("decoding modifiers for %s %d: %w", table, row.id, err)
			}
		}
		if row.modifiers == nil {
			row.modifiers = model.Modifiers{}
		}

		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating %s rows: %w", table, err)
	}
	return out, nil
}

// LoadInjuries loads all injuries owned by a hero, ordered by id.
func (r *AfflictionRepository) LoadInjuries(ctx context.Context, heroID int64) ([]*model.Injury, error) {
	rows, err := r.loadRows(ctx, "injuries", true, heroID)
	if err != nil {
		return nil, err
	}
	injuries := make([]*model.Injury, 0, len(rows))
	for _, row := range rows {
		inj := model.NewInjury(row.name)
		inj.ID = row.id
		inj.Description = row.description
		inj.ChartKey = row.chartKey
		inj.Roll = row.roll
		inj.Modifiers = row.modifiers
		inj.Permanent = row.permanent
		injuries = append(injuries, inj)
	}
	return injuries, nil
}

// LoadMadnesses loads all madnesses owned by a hero, ordered by id.
func (r *AfflictionRepository) LoadMadnesses(ctx context.Context, heroID int64) ([]*model.Madness, error) {
	rows, err := r.loadRows(ctx, "madnesses", true, heroID)
	if err != nil {
		return nil, err
	}
	madnesses := make([]*model.Madness, 0, len(rows))
	for _, row := range rows {
		m := model.NewMadness(row.name)
		m.ID = row.id
		m.Description = row.description
		m.ChartKey = row.chartKey
		m.Roll = row.roll
		m.Modifiers = row.modifiers
		m.Permanent = row.permanent
		madnesses = append(madnesses, m)
	}
	return madnesses, nil
}

// LoadMutations loads all mutations owned by a hero, ordered by id.
func (r *AfflictionRepository) LoadMutations(ctx context.Context, heroID int64) ([]*model.Mutation, error) {
	rows, err := r.loadRows(ctx, "mutations", false, heroID)
	if err != nil {
		return nil, err
	}
	mutations := make([]*model.Mutation, 0, len(rows))
	for _, row := range rows {
		m := model.NewMutation(row.name)
		m.ID = row.id
		m.Description = row.description
		m.ChartKey = row.chartKey
		m.Roll = row.roll
		m.Modifiers = row.modifiers
		mutations = append(mutations, m)
	}
	return mutations, nil
}

// SaveInjuriesTx writes the hero's current injury set inside the
// aggregate-save transaction.
func (r *AfflictionRepository) SaveInjuriesTx(ctx context.Context, tx pgx.Tx, heroID int64, injuries []*model.Injury) error {
	keep := make([]int64, 0, len(injuries))
	for _, inj := range injuries {
		mods, err := json.Marshal(inj.Modifiers)
		if err != nil {
			return fmt.Errorf("encoding modifiers for injury %q: %w", inj.Name, err)
		}
		if inj.ID == 0 {
			err = tx.QueryRow(ctx, `
				INSERT INTO injuries (hero_id, name, description, chart_key, roll, modifiers, permanent)
				VALUES ($1, $2, $3, $4, $5, $6, $7)
				RETURNING id`,
				heroID, inj.Name, inj.Description, inj.ChartKey, inj.Roll, mods, inj.Permanent,
			).Scan(&inj.ID)
			if err != nil {
				return fmt.Errorf("inserting injury %q: %w", inj.Name, err)
			}
		} else {
			_, err = tx.Exec(ctx, `
				UPDATE injuries
				SET name = $3, description = $4, chart_key = $5, roll = $6, modifiers = $7, permanent = $8
				WHERE id = $1 AND hero_id = $2`,
				inj.ID, heroID, inj.Name, inj.Description, inj.ChartKey, inj.Roll, mods, inj.Permanent,
			)
			if err != nil {
				return fmt.Errorf("updating injury %d: %w", inj.ID, err)
			}
		}
		keep = append(keep, inj.ID)
	}

	if _, err := tx.Exec(ctx,
		`DELETE FROM injuries WHERE hero_id = $1 AND NOT (id = ANY($2))`,
		heroID, keep,
	); err != nil {
		return fmt.Errorf("pruning injuries for hero %d: %w", heroID, err)
	}
	return nil
}

// SaveMadnessesTx writes the hero's current madness set inside the
// aggregate-save transaction.
func (r *AfflictionRepository) SaveMadnessesTx(ctx context.Context, tx pgx.Tx, heroID int64, madnesses []*model.Madness) error {
	keep := make([]int64, 0, len(madnesses))
	for _, m := range madnesses {
		mods, err := json.Marshal(m.Modifiers)
		if err != nil {
			return fmt.Errorf("encoding modifiers for madness %q: %w", m.Name, err)
		}
		if m.ID == 0 {
			err = tx.QueryRow(ctx, `
				INSERT INTO madnesses (hero_id, name, description, chart_key, roll, modifiers, permanent)
				VALUES ($1, $2, $3, $4, $5, $6, $7)
				RETURNING id`,
				heroID, m.Name, m.Description, m.ChartKey, m.Roll, mods, m.Permanent,
			).Scan(&m.ID)
			if err != nil {
				return fmt.Errorf("inserting madness %q: %w", m.Name, err)
			}
		} else {
			_, err = tx.Exec(ctx, `
				UPDATE madnesses
				SET name = $3, description = $4, chart_key = $5, roll = $6, modifiers = $7, permanent = $8
				WHERE id = $1 AND hero_id = $2`,
				m.ID, heroID, m.Name, m.Description, m.ChartKey, m.Roll, mods, m.Permanent,
			)
			if err != nil {
				return fmt.Errorf("updating madness %d: %w", m.ID, err)
			}
		}
		keep = append(keep, m.ID)
	}

	if _, err := tx.Exec(ctx,
		`DELETE FROM madnesses WHERE hero_id = $1 AND NOT (id = ANY($2))`,
		heroID, keep,
	); err != nil {
		return fmt.Errorf("pruning madnesses for hero %d: %w", heroID, err)
	}
	return nil
}

// SaveMutationsTx writes the hero's current mutation set inside the
// aggregate-save transaction.
func (r *AfflictionRepository) SaveMutationsTx(ctx context.Context, tx pgx.Tx, heroID int64, mutations []*model.Mutation) error {
	keep := make([]int64, 0, len(mutations))
	for _, m := range mutations {
		mods, err := json.Marshal(m.Modifiers)
		if err != nil {
			return fmt.Errorf("encoding modifiers for mutation %q: %w", m.Name, err)
		}
		if m.ID == 0 {
			err = tx.QueryRow(ctx, `
				INSERT INTO mutations (hero_id, name, description, chart_key, roll, modifiers)
				VALUES ($1, $2, $3, $4, $5, $6)
				RETURNING id`,
				heroID, m.Name, m.Description, m.ChartKey, m.Roll, mods,
			).Scan(&m.ID)
			if err != nil {
				return fmt.Errorf("inserting mutation %q: %w", m.Name, err)
			}
		} else {
			_, err = tx.Exec(ctx, `
				UPDATE mutations
				SET name = $3, description = $4, chart_key = $5, roll = $6, modifiers = $7
				WHERE id = $1 AND hero_id = $2`,
				m.ID, heroID, m.Name, m.Description, m.ChartKey, m.Roll, mods,
			)
			if err != nil {
				return fmt.Errorf("updating mutation %d: %w", m.ID, err)
			}
		}
		keep = append(keep, m.ID)
	}

	if _, err := tx.Exec(ctx,
		`DELETE FROM mutations WHERE hero_id = $1 AND NOT (id = ANY($2))`,
		heroID, keep,
	); err != nil {
		return fmt.Errorf("pruning mutations for hero %d: %w", heroID, err)
	}
	return nil
}
