package model

import (
	"reflect"
	"testing"
)

func TestSidebagDefaults(t *testing.T) {
	hero := NewHero("Jake")

	if got := hero.SidebagCapacity; got != 5 {
		t.Errorf("SidebagCapacity = %d, want 5", got)
	}
	if got := hero.SidebagTokens(); len(got) != 0 {
		t.Errorf("SidebagTokens() = %v, want empty", got)
	}
	if got := hero.SidebagSlotsRemaining(); got != 5 {
		t.Errorf("SidebagSlotsRemaining() = %d, want 5", got)
	}
}

func TestSidebagCapacityZeroStaysZero(t *testing.T) {
	hero := NewHero("Jake")
	hero.SidebagCapacity = 0

	// Defaulting happens at construction only; an explicit 0 is honored.
	if got := hero.AdjustedSidebagCapacity(); got != 0 {
		t.Errorf("AdjustedSidebagCapacity() = %d, want 0", got)
	}
	if !hero.SidebagFull() {
		t.Error("SidebagFull() = false on an empty bag with capacity 0")
	}
	if hero.AddSidebagToken("bandage") {
		t.Error("AddSidebagToken = true with capacity 0")
	}
}

func TestAddSidebagToken(t *testing.T) {
	hero := NewHero("Jake")
	hero.SidebagCapacity = 3

	for _, token := range []string{"bandage", "whiskey", "dynamite"} {
		if !hero.AddSidebagToken(token) {
			t.Fatalf("AddSidebagToken(%q) = false before full", token)
		}
	}

	if !hero.SidebagFull() {
		t.Fatal("SidebagFull() = false at capacity")
	}

	// Adding to a full bag: silent no-op, never an error.
	if hero.AddSidebagToken("extra") {
		t.Error("AddSidebagToken on full bag = true")
	}
	if got := hero.SidebagCount(); got != 3 {
		t.Errorf("SidebagCount() = %d, want 3 (unchanged)", got)
	}
	if got := hero.SidebagTokens(); !reflect.DeepEqual(got, []string{"bandage", "whiskey", "dynamite"}) {
		t.Errorf("insertion order lost: %v", got)
	}
}

func TestAddSidebagTokenAdjustedCapacity(t *testing.T) {
	hero := NewHero("Jake")
	hero.SidebagCapacity = 2
	hero.AddSidebagToken("bandage")
	hero.AddSidebagToken("whiskey")

	if hero.AddSidebagToken("salt") {
		t.Fatal("bag should be full at base capacity")
	}

	// A capacity adjustment opens room without touching contents.
	hero.AddAdjustment(NewAdjustment("Big Bag", Modifiers{AttrSidebagCapacity: 1}))
	if !hero.AddSidebagToken("salt") {
		t.Error("AddSidebagToken = false with adjusted capacity 3")
	}
}

func TestSidebagSlotsRemainingCanGoNegative(t *testing.T) {
	hero := NewHero("Jake")
	hero.SidebagCapacity = 5
	for _, token := range []string{"a", "b", "c", "d", "e"} {
		hero.AddSidebagToken(token)
	}

	// Capacity reduced below contents: nothing is trimmed.
	hero.AddAdjustment(NewAdjustment("Torn Bag", Modifiers{AttrSidebagCapacity: -2}))

	if got := hero.SidebagCount(); got != 5 {
		t.Errorf("SidebagCount() = %d, want 5", got)
	}
	if got := hero.SidebagSlotsRemaining(); got != -2 {
		t.Errorf("SidebagSlotsRemaining() = %d, want -2", got)
	}
}

func TestRemoveSidebagTokenAt(t *testing.T) {
	setup := func() *Hero {
		hero := NewHero("Jake")
		hero.SidebagContents = []string{"bandage", "whiskey", "dynamite"}
		return hero
	}

	t.Run("removes at index", func(t *testing.T) {
		hero := setup()
		if !hero.RemoveSidebagTokenAt(1) {
			t.Fatal("RemoveSidebagTokenAt(1) = false")
		}
		if got := hero.SidebagTokens(); !reflect.DeepEqual(got, []string{"bandage", "dynamite"}) {
			t.Errorf("tokens = %v, want [bandage dynamite]", got)
		}
	})

	t.Run("negative index is a silent no-op", func(t *testing.T) {
		hero := setup()
		if hero.RemoveSidebagTokenAt(-1) {
			t.Error("RemoveSidebagTokenAt(-1) = true")
		}
		if got := hero.SidebagCount(); got != 3 {
			t.Errorf("SidebagCount() = %d, want 3", got)
		}
	})

	t.Run("out-of-range index is a silent no-op", func(t *testing.T) {
		hero := setup()
		if hero.RemoveSidebagTokenAt(99) {
			t.Error("RemoveSidebagTokenAt(99) = true")
		}
		if got := hero.SidebagCount(); got != 3 {
			t.Errorf("SidebagCount() = %d, want 3", got)
		}
	})
}
