package survival

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestInventory_AddRemove(t *testing.T) {
	inv := NewInventory()
	inv.Add(ItemWood, 3)
	inv.Add(ItemWood, 2)

	if got := inv.Count(ItemWood); got != 5 {
		t.Fatalf("count=%d want 5", got)
	}
	if inv.Remove(ItemWood, 6) {
		t.Fatal("removed more than held")
	}
	if got := inv.Count(ItemWood); got != 5 {
		t.Fatalf("count=%d want 5 after refused removal", got)
	}
	if !inv.Remove(ItemWood, 5) {
		t.Fatal("exact removal refused")
	}
	if inv.Len() != 0 {
		t.Fatalf("len=%d want 0, drained kind must drop its key", inv.Len())
	}
}

func TestInventory_InsertionOrder(t *testing.T) {
	inv := NewInventory()
	inv.Add(ItemWood, 1)
	inv.Add(ItemAxe, 1)
	inv.Add(ItemCoconut, 2)
	inv.Add(ItemWood, 1) // existing kind keeps its slot

	want := []string{ItemWood, ItemAxe, ItemCoconut}
	if got := inv.Kinds(); !reflect.DeepEqual(got, want) {
		t.Fatalf("kinds=%v want %v", got, want)
	}

	// Draining and re-adding moves the kind to the back.
	inv.Remove(ItemWood, 2)
	inv.Add(ItemWood, 1)
	want = []string{ItemAxe, ItemCoconut, ItemWood}
	if got := inv.Kinds(); !reflect.DeepEqual(got, want) {
		t.Fatalf("kinds=%v want %v", got, want)
	}
}

func TestInventory_GearAndResources(t *testing.T) {
	inv := NewInventory()
	inv.Add(ItemWood, 4)
	inv.Add(ItemAxe, 1)
	inv.Add(ItemCoconut, 1)
	inv.Add(ItemWall, 2)

	if got := inv.Gear(); !reflect.DeepEqual(got, []string{ItemAxe, ItemWall}) {
		t.Fatalf("gear=%v want [axe wall]", got)
	}
	if got := inv.Resources(); !reflect.DeepEqual(got, []string{ItemWood, ItemCoconut}) {
		t.Fatalf("resources=%v want [wood coconut]", got)
	}
}

func TestInventory_JSONRoundTripKeepsOrder(t *testing.T) {
	inv := NewInventory()
	inv.Add(ItemDriftwood, 2)
	inv.Add(ItemAxe, 1)
	inv.Add(ItemWood, 7)

	raw, err := json.Marshal(inv)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	back := NewInventory()
	if err := json.Unmarshal(raw, back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !reflect.DeepEqual(back.Kinds(), inv.Kinds()) {
		t.Fatalf("kinds=%v want %v", back.Kinds(), inv.Kinds())
	}
	for _, k := range inv.Kinds() {
		if back.Count(k) != inv.Count(k) {
			t.Fatalf("count(%s)=%d want %d", k, back.Count(k), inv.Count(k))
		}
	}
}

func TestInventory_CloneIsIndependent(t *testing.T) {
	inv := NewInventory()
	inv.Add(ItemWood, 2)

	cl := inv.Clone()
	cl.Add(ItemWood, 5)
	if inv.Count(ItemWood) != 2 {
		t.Fatalf("original count=%d want 2", inv.Count(ItemWood))
	}
}
