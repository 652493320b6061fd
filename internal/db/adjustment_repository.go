package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/brimhollow/herotrack/internal/model"
)

// AdjustmentRepository manages adjustment rows. Owner links are persisted
// as a (kind, id) pair and resolved back to entity pointers by the Store.
type AdjustmentRepository struct {
	pool *pgxpool.Pool
}

// NewAdjustmentRepository creates a new AdjustmentRepository.
func NewAdjustmentRepository(pool *pgxpool.Pool) *AdjustmentRepository {
	return &AdjustmentRepository{pool: pool}
}

// AdjustmentRow is a loaded adjustment plus its raw owner reference,
// before the Store resolves the owner pointer.
type AdjustmentRow struct {
	Adjustment *model.Adjustment
	OwnerKind  model.OwnerKind // "" for standalone
	OwnerID    int64
}

// LoadByHero loads all adjustments owned by a hero, ordered by id.
func (r *AdjustmentRepository) LoadByHero(ctx context.Context, heroID int64) ([]AdjustmentRow, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, title, active, modifiers, owner_kind, owner_id
		FROM adjustments
		WHERE hero_id = $1
		ORDER BY id`, heroID)
	if err != nil {
		return nil, fmt.Errorf("querying adjustments for hero %d: %w", heroID, err)
	}
	defer rows.Close()

	var out []AdjustmentRow
	for rows.Next() {
		adj := model.NewAdjustment("", nil)
		var mods []byte
		var ownerKind *string
		var ownerID *int64

		if err := rows.Scan(&adj.ID, &adj.Title, &adj.Active, &mods, &ownerKind, &ownerID); err != nil {
			return nil, fmt.Errorf("scanning adjustment row: %w", err)
		}

		adj.Modifiers = model.Modifiers{}
		if len(mods) > 0 {
			if err := json.Unmarshal(mods, &adj.Modifiers); err != nil {
				return nil, fmt.Errorf("decoding modifiers for adjustment %d: %w", adj.ID, err)
			}
		}
		if adj.Modifiers == nil {
			adj.Modifiers = model.Modifiers{}
		}

		row := AdjustmentRow{Adjustment: adj}
		if ownerKind != nil && ownerID != nil {
			row.OwnerKind = model.OwnerKind(*ownerKind)
			row.OwnerID = *ownerID
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating adjustment rows: %w", err)
	}
	return out, nil
}

// SaveAllTx writes the hero's current adjustment set inside the
// aggregate-save transaction. Must run after items and afflictions so
// that newly inserted owners already carry their ids.
func (r *AdjustmentRepository) SaveAllTx(ctx context.Context, tx pgx.Tx, heroID int64, adjustments []*model.Adjustment) error {
	keep := make([]int64, 0, len(adjustments))

	for _, adj := range adjustments {
		mods, err := json.Marshal(adj.Modifiers)
		if err != nil {
			return fmt.Errorf("encoding modifiers for adjustment %q: %w", adj.Title, err)
		}

		var ownerKind *string
		var ownerID *int64
		if owner := adj.Owner(); owner != nil {
			if owner.EntityID() == 0 {
				return fmt.Errorf("adjustment %q: owner %s has no id yet", adj.Title, owner.AdjustmentOwnerKind())
			}
			kind := string(owner.AdjustmentOwnerKind())
			id := owner.EntityID()
			ownerKind, ownerID = &kind, &id
		}

		if adj.ID == 0 {
			err = tx.QueryRow(ctx, `
				INSERT INTO adjustments (hero_id, title, active, modifiers, owner_kind, owner_id)
				VALUES ($1, $2, $3, $4, $5, $6)
				RETURNING id`,
				heroID, adj.Title, adj.Active, mods, ownerKind, ownerID,
			).Scan(&adj.ID)
			if err != nil {
				return fmt.Errorf("inserting adjustment %q: %w", adj.Title, err)
			}
		} else {
			_, err = tx.Exec(ctx, `
				UPDATE adjustments
				SET title = $3, active = $4, modifiers = $5, owner_kind = $6, owner_id = $7
				WHERE id = $1 AND hero_id = $2`,
				adj.ID, heroID, adj.Title, adj.Active, mods, ownerKind, ownerID,
			)
			if err != nil {
				return fmt.Errorf("updating adjustment %d: %w", adj.ID, err)
			}
		}
		keep = append(keep, adj.ID)
	}

	if _, err := tx.Exec(ctx,
		`DELETE FROM adjustments WHERE hero_id = $1 AND NOT (id = ANY($2))`,
		heroID, keep,
	); err != nil {
		return fmt.Errorf("pruning adjustments for hero %d: %w", heroID, err)
	}
	return nil
}
