package model

import (
	"errors"
	"testing"
)

func TestInjuryAdjustmentSyncOnCreate(t *testing.T) {
	t.Run("with modifiers", func(t *testing.T) {
		hero := NewHero("Jake")
		inj := NewInjury("Broken Arm")
		inj.Modifiers = Modifiers{AttrAgility: -1}
		hero.AddInjury(inj)

		adj := inj.Adjustment()
		if adj == nil {
			t.Fatal("no adjustment created for injury with modifiers")
		}
		if adj.Title != "Injury: Broken Arm" {
			t.Errorf("title = %q, want %q", adj.Title, "Injury: Broken Arm")
		}
		if !adj.Active {
			t.Error("synced adjustment should be active")
		}
		if got := adj.ModifierFor(AttrAgility); got != -1 {
			t.Errorf("modifier = %d, want -1", got)
		}
		if len(hero.Adjustments) != 1 {
			t.Errorf("hero adjustment count = %d, want 1", len(hero.Adjustments))
		}
	})

	t.Run("without modifiers", func(t *testing.T) {
		hero := NewHero("Jake")
		inj := NewInjury("Scar")
		hero.AddInjury(inj)

		if inj.Adjustment() != nil {
			t.Error("adjustment created for modifier-less injury")
		}
		if len(hero.Adjustments) != 0 {
			t.Errorf("hero adjustment count = %d, want 0", len(hero.Adjustments))
		}
	})
}

func TestInjuryAdjustmentSyncOnUpdate(t *testing.T) {
	hero := NewHero("Jake")
	inj := NewInjury("Crushed Hand")
	inj.Modifiers = Modifiers{AttrCombat: -1}
	hero.AddInjury(inj)

	// Rename + change modifiers: the existing adjustment follows.
	first := inj.Adjustment()
	inj.Name = "Mangled Hand"
	inj.Modifiers = Modifiers{AttrCombat: -2}
	inj.SyncAdjustment()

	if inj.Adjustment() != first {
		t.Fatal("update replaced the adjustment instead of editing it")
	}
	if first.Title != "Injury: Mangled Hand" {
		t.Errorf("title = %q, want renamed", first.Title)
	}
	if got := first.ModifierFor(AttrCombat); got != -2 {
		t.Errorf("modifier = %d, want -2", got)
	}

	// Emptying the modifiers destroys the adjustment.
	inj.Modifiers = Modifiers{}
	inj.SyncAdjustment()
	if inj.Adjustment() != nil {
		t.Fatal("adjustment survived empty modifiers")
	}
	if len(hero.Adjustments) != 0 {
		t.Fatalf("hero adjustment count = %d, want 0", len(hero.Adjustments))
	}

	// Re-adding a non-zero modifier re-creates it.
	inj.Modifiers.Set(AttrCombat, -1)
	inj.SyncAdjustment()
	if inj.Adjustment() == nil {
		t.Fatal("adjustment not re-created")
	}
	if len(hero.Adjustments) != 1 {
		t.Errorf("hero adjustment count = %d, want 1", len(hero.Adjustments))
	}
}

func TestSyncTreatsAllZeroAsNoModifiers(t *testing.T) {
	// Bulk template application can write explicit zeros; they must not
	// keep an adjustment alive.
	hero := NewHero("Jake")
	inj := NewInjury("Bruise")
	inj.Modifiers = Modifiers{AttrAgility: 0, AttrLuck: 0}
	hero.AddInjury(inj)

	if inj.Adjustment() != nil {
		t.Error("all-zero modifiers produced an adjustment")
	}
}

func TestMadnessAdjustmentSync(t *testing.T) {
	hero := NewHero("Jake")
	m := NewMadness("Night Terrors")
	m.Modifiers = Modifiers{AttrSanity: -2}
	hero.AddMadness(m)

	adj := m.Adjustment()
	if adj == nil {
		t.Fatal("no adjustment created")
	}
	if adj.Title != "Madness: Night Terrors" {
		t.Errorf("title = %q, want %q", adj.Title, "Madness: Night Terrors")
	}
}

func TestMutationAdjustmentSync(t *testing.T) {
	hero := NewHero("Jake")
	m := NewMutation("Crimson Eyes")
	m.Modifiers = Modifiers{AttrLore: 1}
	hero.AddMutation(m)

	adj := m.Adjustment()
	if adj == nil {
		t.Fatal("no adjustment created")
	}
	if adj.Title != "Mutation: Crimson Eyes" {
		t.Errorf("title = %q, want %q", adj.Title, "Mutation: Crimson Eyes")
	}
}

func TestRemoveInjury(t *testing.T) {
	t.Run("permanent injuries refuse removal", func(t *testing.T) {
		hero := NewHero("Jake")
		inj := NewInjury("Lost Eye")
		inj.Permanent = true
		inj.Modifiers = Modifiers{AttrCunning: -1}
		hero.AddInjury(inj)

		err := hero.RemoveInjury(inj)
		if !errors.Is(err, ErrPermanent) {
			t.Fatalf("RemoveInjury = %v, want ErrPermanent", err)
		}
		if len(hero.Injuries) != 1 {
			t.Error("permanent injury was removed")
		}
		if len(hero.Adjustments) != 1 {
			t.Error("permanent injury's adjustment was removed")
		}
	})

	t.Run("removal cascades to the adjustment", func(t *testing.T) {
		hero := NewHero("Jake")
		inj := NewInjury("Sprained Ankle")
		inj.Modifiers = Modifiers{AttrAgility: -1}
		hero.AddInjury(inj)

		if err := hero.RemoveInjury(inj); err != nil {
			t.Fatalf("RemoveInjury = %v", err)
		}
		if len(hero.Injuries) != 0 {
			t.Error("injury not removed")
		}
		if len(hero.Adjustments) != 0 {
			t.Error("owned adjustment left dangling")
		}
	})
}

func TestRemoveMadnessPermanent(t *testing.T) {
	hero := NewHero("Jake")
	m := NewMadness("The Fear")
	m.Permanent = true
	hero.AddMadness(m)

	if err := hero.RemoveMadness(m); !errors.Is(err, ErrPermanent) {
		t.Fatalf("RemoveMadness = %v, want ErrPermanent", err)
	}
}

func TestRemoveMutationAlwaysAllowed(t *testing.T) {
	// Mutations have no permanence flag at all.
	hero := NewHero("Jake")
	m := NewMutation("Bone Spurs")
	m.Modifiers = Modifiers{AttrAgility: -1}
	hero.AddMutation(m)

	hero.RemoveMutation(m)
	if len(hero.Mutations) != 0 {
		t.Error("mutation not removed")
	}
	if len(hero.Adjustments) != 0 {
		t.Error("owned adjustment left dangling")
	}
}

func TestAfflictionFromChart(t *testing.T) {
	inj := NewInjury("Broken Leg")
	if inj.FromChart() {
		t.Error("FromChart() = true without a chart key")
	}
	inj.ChartKey = "broken_leg"
	if !inj.FromChart() {
		t.Error("FromChart() = false with a chart key")
	}
}

func TestAfflictionValidate(t *testing.T) {
	inj := NewInjury("")
	var verr *ValidationError
	if err := inj.Validate(); !errors.As(err, &verr) {
		t.Fatalf("Validate() = %v, want *ValidationError", err)
	}
}
