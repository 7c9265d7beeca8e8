package label

import "sync"

// Dictionary interns label strings into dense int32 ids, assigned in
// first-come-first-served order starting at 0.
//
// Thread-safety: guarded by a sync.RWMutex, mirroring core.Graph's
// locking model, so a single Dictionary may be shared read-heavy across
// a join's candidate-verification pass even though any one TED engine
// call is itself single-threaded.
type Dictionary struct {
	mu      sync.RWMutex
	idOf    map[string]int32
	labelOf []string
}

// NewDictionary returns an empty Dictionary ready for use.
func NewDictionary() *Dictionary {
	return &Dictionary{
		idOf: make(map[string]int32),
	}
}

// Insert returns the id for s, assigning a new one if s is unseen.
// Idempotent: calling Insert twice with the same string returns the
// same id both times.
//
// Complexity: O(1) average.
func (d *Dictionary) Insert(s string) int32 {
	d.mu.Lock()
	defer d.mu.Unlock()

	if id, ok := d.idOf[s]; ok {
		return id
	}

	id := int32(len(d.labelOf))
	d.idOf[s] = id
	d.labelOf = append(d.labelOf, s)

	return id
}

// Get returns the id for s and whether it has been interned.
//
// Complexity: O(1) average.
func (d *Dictionary) Get(s string) (int32, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	id, ok := d.idOf[s]

	return id, ok
}

// Label returns the string interned under id, or ("", false) if id is
// out of range. Useful for diagnostics and serialization round-trips.
func (d *Dictionary) Label(id int32) (string, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if id < 0 || int(id) >= len(d.labelOf) {
		return "", false
	}

	return d.labelOf[id], true
}

// Size returns the number of distinct labels interned so far.
func (d *Dictionary) Size() int {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return len(d.labelOf)
}

// Clear resets the Dictionary to empty, ready for a new, unrelated
// computation. Existing ids handed out before Clear are no longer
// meaningful against this Dictionary.
func (d *Dictionary) Clear() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.idOf = make(map[string]int32)
	d.labelOf = nil
}
