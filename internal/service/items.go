package service

import (
	"context"
	"log/slog"

	"github.com/brimhollow/herotrack/internal/model"
)

// ItemParams carries optional item field edits. Nil fields are left
// untouched. Modifiers, when non-nil, is an adjustment submission: an
// all-zero submission is dropped outright, whether or not the item already
// has an adjustment. Emptying an item adjustment goes through the standalone
// adjustment edit operation.
type ItemParams struct {
	Name          *string
	Description   *string
	BodyPartsUsed []model.BodyPart
	HandsRequired *int
	Weight        *int
	Modifiers     model.Modifiers
}

func (p ItemParams) apply(item *model.Item) {
	if p.Name != nil {
		item.Name = *p.Name
	}
	if p.Description != nil {
		item.Description = *p.Description
	}
	if p.BodyPartsUsed != nil {
		item.BodyPartsUsed = p.BodyPartsUsed
	}
	if p.HandsRequired != nil {
		item.HandsRequired = *p.HandsRequired
	}
	if p.Weight != nil {
		item.Weight = *p.Weight
	}
}

// CreateItem creates an item for the hero. If the item is equippable and
// equipping is legal right now it is equipped immediately; a failed
// auto-equip is silent, the item stays created unequipped.
func (s *HeroService) CreateItem(ctx context.Context, heroID int64, name string, params ItemParams) (*model.Item, error) {
	hero, err := s.loadHero(ctx, heroID)
	if err != nil {
		return nil, err
	}

	item := model.NewItem(name)
	params.apply(item)
	if err := item.Validate(); err != nil {
		return nil, err
	}

	hero.AddItem(item)
	if params.Modifiers != nil {
		item.SetAdjustment(params.Modifiers)
	}
	if item.Equippable() {
		_ = item.Equip() // auto-equip is best effort, refusal is not an error
	}

	if err := s.saveHero(ctx, hero); err != nil {
		return nil, err
	}
	slog.Info("item created", "heroID", heroID, "itemID", item.ID,
		"name", item.Name, "equipped", item.Equipped)
	return item, nil
}

// UpdateItem applies the given edits. When an adjustment submission rides
// along, the adjustment's title is forced to the item's current name.
func (s *HeroService) UpdateItem(ctx context.Context, heroID, itemID int64, params ItemParams) (*model.Item, error) {
	hero, err := s.loadHero(ctx, heroID)
	if err != nil {
		return nil, err
	}
	item := hero.ItemByID(itemID)
	if item == nil {
		return nil, ErrItemNotFound
	}

	params.apply(item)
	if err := item.Validate(); err != nil {
		return nil, err
	}
	if params.Modifiers != nil {
		item.SetAdjustment(params.Modifiers)
	}

	if err := s.saveHero(ctx, hero); err != nil {
		return nil, err
	}
	return item, nil
}

// DeleteItem destroys the item and cascades to its owned adjustment.
func (s *HeroService) DeleteItem(ctx context.Context, heroID, itemID int64) error {
	hero, err := s.loadHero(ctx, heroID)
	if err != nil {
		return err
	}
	item := hero.ItemByID(itemID)
	if item == nil {
		return ErrItemNotFound
	}

	hero.RemoveItem(item)
	if err := s.saveHero(ctx, hero); err != nil {
		return err
	}
	slog.Info("item deleted", "heroID", heroID, "itemID", itemID)
	return nil
}

// EquipItem equips the item. An illegal equip returns the *model.EquipError
// with its human-readable reason and changes nothing.
func (s *HeroService) EquipItem(ctx context.Context, heroID, itemID int64) (*model.Item, error) {
	hero, err := s.loadHero(ctx, heroID)
	if err != nil {
		return nil, err
	}
	item := hero.ItemByID(itemID)
	if item == nil {
		return nil, ErrItemNotFound
	}

	if err := item.Equip(); err != nil {
		return nil, err
	}
	if err := s.saveHero(ctx, hero); err != nil {
		return nil, err
	}
	return item, nil
}

// UnequipItem unequips the item. Always succeeds, even when the item is
// already unequipped.
func (s *HeroService) UnequipItem(ctx context.Context, heroID, itemID int64) (*model.Item, error) {
	hero, err := s.loadHero(ctx, heroID)
	if err != nil {
		return nil, err
	}
	item := hero.ItemByID(itemID)
	if item == nil {
		return nil, ErrItemNotFound
	}

	item.Unequip()
	if err := s.saveHero(ctx, hero); err != nil {
		return nil, err
	}
	return item, nil
}
