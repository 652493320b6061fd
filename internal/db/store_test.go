package db

import (
	"context"
	"testing"

	"github.com/brimhollow/herotrack/internal/model"
	"github.com/brimhollow/herotrack/internal/testutil"
)

func TestStore_RoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	pool := testutil.SetupTestDB(t)
	store := NewStore(pool)
	ctx := context.Background()

	hero := model.NewHero("Doc Holliday")
	hero.Strength = 3
	hero.Agility = 4
	hero.Gold = 150
	hero.SidebagContents = []string{"bandage", "whiskey"}

	if err := store.CreateHero(ctx, hero); err != nil {
		t.Fatalf("CreateHero() error: %v", err)
	}
	if hero.ID == 0 {
		t.Fatal("CreateHero() did not assign an id")
	}

	// Item with its own adjustment, equipped on a body part.
	hat := model.NewItem("Lucky Hat")
	hat.BodyPartsUsed = []model.BodyPart{model.PartHead}
	hero.AddItem(hat)
	hat.SetAdjustment(model.Modifiers{model.AttrLuck: 1})
	if err := hat.Equip(); err != nil {
		t.Fatalf("Equip() refused: %v", err)
	}

	// Affliction whose adjustment is created by sync.
	injury := model.NewInjury("Broken Arm")
	injury.Modifiers = model.Modifiers{model.AttrAgility: -1, model.AttrCombat: -1}
	hero.AddInjury(injury)

	madness := model.NewMadness("Paranoia")
	madness.Permanent = true
	hero.AddMadness(madness)

	mutation := model.NewMutation("Extra Arm")
	mutation.Modifiers = model.Modifiers{model.AttrTotalHands: 1}
	hero.AddMutation(mutation)

	// Free-standing adjustment with no owner.
	hero.AddAdjustment(model.NewAdjustment("Blessing", model.Modifiers{model.AttrSpirit: 2}))

	if err := store.SaveHero(ctx, hero); err != nil {
		t.Fatalf("SaveHero() error: %v", err)
	}

	loaded, err := store.LoadHero(ctx, hero.ID)
	if err != nil {
		t.Fatalf("LoadHero() error: %v", err)
	}
	if loaded == nil {
		t.Fatal("LoadHero() returned nil for existing hero")
	}

	if loaded.Name != "Doc Holliday" {
		t.Errorf("Name = %q; want %q", loaded.Name, "Doc Holliday")
	}
	if got := len(loaded.SidebagContents); got != 2 {
		t.Errorf("len(SidebagContents) = %d; want 2", got)
	}
	if got := len(loaded.Items); got != 1 {
		t.Fatalf("len(Items) = %d; want 1", got)
	}
	if got := len(loaded.Adjustments); got != 5 {
		t.Fatalf("len(Adjustments) = %d; want 5", got)
	}

	loadedHat := loaded.Items[0]
	if !loadedHat.Equipped {
		t.Error("loaded item lost its equipped state")
	}
	if loadedHat.Adjustment() == nil {
		t.Fatal("loaded item lost its adjustment")
	}
	if owner := loadedHat.Adjustment().Owner(); owner != model.AdjustmentOwner(loadedHat) {
		t.Errorf("item adjustment owner = %v; want the loaded item", owner)
	}

	// Aggregation must survive the round trip: base 4 agility - 1 injury.
	if got := loaded.AdjustedAgility(); got != 3 {
		t.Errorf("AdjustedAgility() = %d; want 3", got)
	}
	// base 2 hands + extra arm mutation.
	if got := loaded.TotalHands(); got != 3 {
		t.Errorf("TotalHands() = %d; want 3", got)
	}
	if got := loaded.AdjustedLuck(); got != 1 {
		t.Errorf("AdjustedLuck() = %d; want 1", got)
	}

	if len(loaded.Madnesses) != 1 || !loaded.Madnesses[0].Permanent {
		t.Error("madness permanence not preserved")
	}
}

func TestStore_SavePrunesRemoved(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	pool := testutil.SetupTestDB(t)
	store := NewStore(pool)
	ctx := context.Background()

	hero := model.NewHero("Wanderer")
	if err := store.CreateHero(ctx, hero); err != nil {
		t.Fatalf("CreateHero() error: %v", err)
	}

	knife := model.NewItem("Knife")
	lantern := model.NewItem("Lantern")
	hero.AddItem(knife)
	hero.AddItem(lantern)
	injury := model.NewInjury("Leg Wound")
	injury.Modifiers = model.Modifiers{model.AttrMove: -1}
	hero.AddInjury(injury)

	if err := store.SaveHero(ctx, hero); err != nil {
		t.Fatalf("SaveHero() error: %v", err)
	}

	hero.RemoveItem(knife)
	if err := hero.RemoveInjury(injury); err != nil {
		t.Fatalf("RemoveInjury() error: %v", err)
	}
	if err := store.SaveHero(ctx, hero); err != nil {
		t.Fatalf("SaveHero() after removal error: %v", err)
	}

	loaded, err := store.LoadHero(ctx, hero.ID)
	if err != nil {
		t.Fatalf("LoadHero() error: %v", err)
	}
	if got := len(loaded.Items); got != 1 {
		t.Fatalf("len(Items) = %d; want 1", got)
	}
	if loaded.Items[0].Name != "Lantern" {
		t.Errorf("surviving item = %q; want Lantern", loaded.Items[0].Name)
	}
	if len(loaded.Injuries) != 0 {
		t.Errorf("len(Injuries) = %d; want 0", len(loaded.Injuries))
	}
	if len(loaded.Adjustments) != 0 {
		t.Errorf("len(Adjustments) = %d; want 0", len(loaded.Adjustments))
	}
}

func TestStore_DeleteHeroCascades(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	pool := testutil.SetupTestDB(t)
	store := NewStore(pool)
	ctx := context.Background()

	hero := model.NewHero("Doomed")
	if err := store.CreateHero(ctx, hero); err != nil {
		t.Fatalf("CreateHero() error: %v", err)
	}
	hero.AddItem(model.NewItem("Rope"))
	if err := store.SaveHero(ctx, hero); err != nil {
		t.Fatalf("SaveHero() error: %v", err)
	}

	existed, err := store.DeleteHero(ctx, hero.ID)
	if err != nil {
		t.Fatalf("DeleteHero() error: %v", err)
	}
	if !existed {
		t.Error("DeleteHero() = false; want true for existing hero")
	}

	loaded, err := store.LoadHero(ctx, hero.ID)
	if err != nil {
		t.Fatalf("LoadHero() after delete error: %v", err)
	}
	if loaded != nil {
		t.Error("LoadHero() after delete returned a hero")
	}

	var count int
	if err := pool.QueryRow(ctx, "SELECT COUNT(*) FROM items WHERE hero_id = $1", hero.ID).Scan(&count); err != nil {
		t.Fatalf("counting orphan items: %v", err)
	}
	if count != 0 {
		t.Errorf("orphan items after delete = %d; want 0", count)
	}

	existed, err = store.DeleteHero(ctx, hero.ID)
	if err != nil {
		t.Fatalf("DeleteHero() second call error: %v", err)
	}
	if existed {
		t.Error("DeleteHero() = true for missing hero; want false")
	}
}

func TestStore_ListHeroes(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	pool := testutil.SetupTestDB(t)
	store := NewStore(pool)
	ctx := context.Background()

	for _, name := range []string{"Amos", "Belle", "Cole"} {
		h := model.NewHero(name)
		if err := store.CreateHero(ctx, h); err != nil {
			t.Fatalf("CreateHero(%q) error: %v", name, err)
		}
	}

	heroes, err := store.ListHeroes(ctx)
	if err != nil {
		t.Fatalf("ListHeroes() error: %v", err)
	}
	if len(heroes) != 3 {
		t.Fatalf("len(heroes) = %d; want 3", len(heroes))
	}
}
