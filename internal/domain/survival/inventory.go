package survival

import "encoding/json"

// Inventory is a sparse count ledger. Counts are always positive: a write
// that drains a kind to zero deletes the key. Insertion order is tracked
// because the hotbar maps slots onto the gear subset in that order.
type Inventory struct {
	counts map[string]int
	order  []string
}

func NewInventory() *Inventory {
	return &Inventory{counts: map[string]int{}}
}

func (inv *Inventory) Count(kind string) int {
	return inv.counts[kind]
}

func (inv *Inventory) Add(kind string, amount int) {
	if kind == "" || amount <= 0 {
		return
	}
	if inv.counts == nil {
		inv.counts = map[string]int{}
	}
	if _, ok := inv.counts[kind]; !ok {
		inv.order = append(inv.order, kind)
	}
	inv.counts[kind] += amount
}

// Remove deducts amount of kind, refusing entirely when the count is short.
func (inv *Inventory) Remove(kind string, amount int) bool {
	if kind == "" || amount <= 0 {
		return false
	}
	current := inv.counts[kind]
	if current < amount {
		return false
	}
	if current == amount {
		delete(inv.counts, kind)
		inv.dropFromOrder(kind)
		return true
	}
	inv.counts[kind] = current - amount
	return true
}

func (inv *Inventory) dropFromOrder(kind string) {
	for i, k := range inv.order {
		if k == kind {
			inv.order = append(inv.order[:i], inv.order[i+1:]...)
			return
		}
	}
}

// Kinds returns all held kinds in insertion order.
func (inv *Inventory) Kinds() []string {
	out := make([]string, len(inv.order))
	copy(out, inv.order)
	return out
}

// Gear returns held tools and placeables in insertion order; this is the
// hotbar slot mapping.
func (inv *Inventory) Gear() []string {
	var out []string
	for _, k := range inv.order {
		if IsGear(k) {
			out = append(out, k)
		}
	}
	return out
}

// Resources returns held non-gear kinds in insertion order.
func (inv *Inventory) Resources() []string {
	var out []string
	for _, k := range inv.order {
		if !IsGear(k) {
			out = append(out, k)
		}
	}
	return out
}

func (inv *Inventory) Len() int {
	return len(inv.order)
}

func (inv *Inventory) Clone() *Inventory {
	out := NewInventory()
	for _, k := range inv.order {
		out.Add(k, inv.counts[k])
	}
	return out
}

type inventoryEntry struct {
	Kind  string `json:"kind"`
	Count int    `json:"count"`
}

// MarshalJSON encodes the ledger as an ordered entry list so insertion
// order survives a save/load round trip.
func (inv *Inventory) MarshalJSON() ([]byte, error) {
	entries := make([]inventoryEntry, 0, len(inv.order))
	for _, k := range inv.order {
		entries = append(entries, inventoryEntry{Kind: k, Count: inv.counts[k]})
	}
	return json.Marshal(entries)
}

func (inv *Inventory) UnmarshalJSON(data []byte) error {
	var entries []inventoryEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return err
	}
	inv.counts = map[string]int{}
	inv.order = nil
	for _, e := range entries {
		inv.Add(e.Kind, e.Count)
	}
	return nil
}
