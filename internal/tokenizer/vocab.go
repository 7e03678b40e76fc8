package tokenizer

import "sync"

// Vocabulary maps distinct token texts to stable integer IDs.
// IDs are assigned in first-seen order starting at 0 and stay fixed until
// Reset. A single instance is shared by the whole process, so all access
// goes through an RWMutex.
type Vocabulary struct {
	mu   sync.RWMutex
	ids  map[string]int
	next int
}

// NewVocabulary creates an empty Vocabulary.
func NewVocabulary() *Vocabulary {
	return &Vocabulary{ids: make(map[string]int)}
}

// GetOrAssignID returns the ID for text, assigning the next free ID on
// first occurrence.
func (v *Vocabulary) GetOrAssignID(text string) int {
	v.mu.Lock()
	defer v.mu.Unlock()
	if id, ok := v.ids[text]; ok {
		return id
	}
	id := v.next
	v.ids[text] = id
	v.next++
	return id
}

// Size returns the number of distinct entries.
func (v *Vocabulary) Size() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return len(v.ids)
}

// Reset clears all entries and restarts ID assignment at 0. Idempotent.
func (v *Vocabulary) Reset() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.ids = make(map[string]int)
	v.next = 0
}

// Snapshot returns a copy of the current text→ID mapping.
func (v *Vocabulary) Snapshot() map[string]int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	out := make(map[string]int, len(v.ids))
	for text, id := range v.ids {
		out[text] = id
	}
	return out
}
