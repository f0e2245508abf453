package curation

import "github.com/google/uuid"

// Selection is the in-memory id set accumulated while customer mode is
// active. Toggle is symmetric: two toggles of the same id cancel out.
type Selection map[uuid.UUID]struct{}

// NewSelection returns an empty selection
func NewSelection() Selection {
	return make(Selection)
}

// Toggle adds the id if absent and removes it if present
func (s Selection) Toggle(id uuid.UUID) {
	if _, ok := s[id]; ok {
		delete(s, id)
		return
	}
	s[id] = struct{}{}
}

// Has reports whether the id is currently selected
func (s Selection) Has(id uuid.UUID) bool {
	_, ok := s[id]
	return ok
}

// IDs returns the selected ids in no particular order
func (s Selection) IDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	return ids
}

// Clear empties the selection
func (s Selection) Clear() {
	for id := range s {
		delete(s, id)
	}
}
