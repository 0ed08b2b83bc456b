package cards

// Table is a read-only card-id lookup, typically a *Store shared across
// decode calls. A nil Table behaves as an empty one.
type Table interface {
	Lookup(id uint64) (Card, bool)
}

// Static is a fixed in-memory Table keyed by card id, for tests and
// offline use.
type Static map[uint64]Card

func (m Static) Lookup(id uint64) (Card, bool) {
	c, ok := m[id]
	return c, ok
}

// Normalize maps a raw card id to the id it counts as a copy of. Ids
// without metadata, or whose metadata names no canonical form, pass
// through unchanged; normalization never fails.
func Normalize(id uint64, t Table) uint64 {
	if t == nil {
		return id
	}
	c, ok := t.Lookup(id)
	if !ok || c.CanonicalID == 0 {
		return id
	}
	return c.CanonicalID
}
