package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/brimhollow/herotrack/internal/model"
)

// ItemRepository manages item rows.
type ItemRepository struct {
	pool *pgxpool.Pool
}

// NewItemRepository creates a new ItemRepository.
func NewItemRepository(pool *pgxpool.Pool) *ItemRepository {
	return &ItemRepository{pool: pool}
}

// LoadByHero loads all items owned by a hero, ordered by id.
func (r *ItemRepository) LoadByHero(ctx context.Context, heroID int64) ([]*model.Item, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, description, equipped, body_parts, hands_required, weight
		FROM items
		WHERE hero_id = $1
		ORDER BY id`, heroID)
	if err != nil {
		return nil, fmt.Errorf("querying items for hero %d: %w", heroID, err)
	}
	defer rows.Close()

	var items []*model.Item
	for rows.Next() {
		item := model.NewItem("")
		var bodyParts []byte

		if err := rows.Scan(
			&item.ID, &item.Name, &item.Description, &item.Equipped,
			&bodyParts, &item.HandsRequired, &item.Weight,
		); err != nil {
			return nil, fmt.Errorf("scanning item row: %w", err)
		}

		item.BodyPartsUsed = []model.BodyPart{}
		if len(bodyParts) > 0 {
			if err := json.Unmarshal(bodyParts, &item.BodyPartsUsed); err != nil {
				return nil, fmt.Errorf("decoding body parts for item %d: %w", item.ID, err)
			}
		}
		if item.BodyPartsUsed == nil {
			item.BodyPartsUsed = []model.BodyPart{}
		}

		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating item rows: %w", err)
	}
	return items, nil
}

// SaveAllTx writes the hero's current item set inside the aggregate-save
// transaction: new items are inserted (assigning their ids), existing ones
// updated, and rows absent from items are deleted.
func (r *ItemRepository) SaveAllTx(ctx context.Context, tx pgx.Tx, heroID int64, items []*model.Item) error {
	keep := make([]int64, 0, len(items))

	for _, item := range items {
		bodyParts, err := json.Marshal(item.BodyPartsUsed)
		if err != nil {
			return fmt.Errorf("encoding body parts for item %q: %w", item.Name, err)
		}

		if item.ID == 0 {
			err = tx.QueryRow(ctx, `
				INSERT INTO items (hero_id, name, description, equipped, body_parts, hands_required, weight)
				VALUES ($1, $2, $3, $4, $5, $6, $7)
				RETURNING id`,
				heroID, item.Name, item.Description, item.Equipped,
				bodyParts, item.HandsRequired, item.Weight,
			).Scan(&item.ID)
			if err != nil {
				return fmt.Errorf("inserting item %q: %w", item.Name, err)
			}
		} else {
			_, err = tx.Exec(ctx, `
				UPDATE items
				SET name = $3, description = $4, equipped = $5, body_parts = $6,
				    hands_required = $7, weight = $8
				WHERE id = $1 AND hero_id = $2`,
				item.ID, heroID, item.Name, item.Description, item.Equipped,
				bodyParts, item.HandsRequired, item.Weight,
			)
			if err != nil {
				return fmt.Errorf("updating item %d: %w", item.ID, err)
			}
		}
		keep = append(keep, item.ID)
	}

	if _, err := tx.Exec(ctx,
		`DELETE FROM items WHERE hero_id = $1 AND NOT (id = ANY($2))`,
		heroID, keep,
	); err != nil {
		return fmt.Errorf("pruning items for hero %d: %w", heroID, err)
	}
	return nil
}
