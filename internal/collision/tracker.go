package collision

// Duplicate records an entry whose key was already used by an earlier entry.
type Duplicate[K comparable] struct {
	Key      K
	First    int // position of the entry that is shadowed
	Position int // position of the entry that wins (last write)
}

// Tracker records the position of every key it sees and reports the positions
// that were overwritten. The lookup indices resolve duplicates last-write-wins;
// Tracker keeps the history needed to tell the user about them.
type Tracker[K comparable] struct {
	seen       map[K]int
	duplicates []Duplicate[K]
}

// NewTracker creates a tracker sized for n keys.
func NewTracker[K comparable](n int) *Tracker[K] {
	return &Tracker[K]{
		seen: make(map[K]int, n),
	}
}

// Track records key at position pos. It returns true if the key was already
// tracked, in which case pos replaces the previous position.
func (t *Tracker[K]) Track(key K, pos int) bool {
	prev, exists := t.seen[key]
	t.seen[key] = pos
	if exists {
		t.duplicates = append(t.duplicates, Duplicate[K]{Key: key, First: prev, Position: pos})
	}

	return exists
}

// Duplicates returns the overwritten keys in the order they were detected.
func (t *Tracker[K]) Duplicates() []Duplicate[K] {
	return t.duplicates
}

// Positions returns the key to position map. The map is owned by the tracker.
func (t *Tracker[K]) Positions() map[K]int {
	return t.seen
}
