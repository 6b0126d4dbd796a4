package domain

// UpgradeKind enumerates the purchasable upgrades.
type UpgradeKind int

const (
	Chicken UpgradeKind = iota
	HenHouse
)

// UpgradeKinds lists every kind in catalog order.
var UpgradeKinds = []UpgradeKind{Chicken, HenHouse}

func (k UpgradeKind) String() string {
	switch k {
	case Chicken:
		return "Chicken"
	case HenHouse:
		return "Hen House"
	default:
		return "Unknown"
	}
}

// Valid reports whether k is part of the catalog.
func (k UpgradeKind) Valid() bool {
	return k >= Chicken && k <= HenHouse
}

// Owned is one ownership entry.
type Owned struct {
	Kind  UpgradeKind
	Count uint32
}

// Ownership records how many of each kind the player holds, in the order the
// kinds were first acquired. Each kind appears at most once.
type Ownership struct {
	entries []Owned
}

// Count returns how many of kind are owned, 0 if none.
func (o *Ownership) Count(kind UpgradeKind) uint32 {
	for _, e := range o.entries {
		if e.Kind == kind {
			return e.Count
		}
	}
	return 0
}

// Add increments the count for kind, creating the entry if absent, and
// returns the new count.
func (o *Ownership) Add(kind UpgradeKind) uint32 {
	for i := range o.entries {
		if o.entries[i].Kind == kind {
			o.entries[i].Count++
			return o.entries[i].Count
		}
	}
	o.entries = append(o.entries, Owned{Kind: kind, Count: 1})
	return 1
}

// Entries returns a copy of the ownership list.
func (o *Ownership) Entries() []Owned {
	out := make([]Owned, len(o.entries))
	copy(out, o.entries)
	return out
}

// Len returns the number of distinct kinds owned.
func (o *Ownership) Len() int {
	return len(o.entries)
}
