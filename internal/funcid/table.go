// Package funcid implements the per-library function-id lookup (§4.3): a
// frozen, case-insensitive name -> dense integer id map built once from a
// library's method-name list, so each library's hot-path dispatch can
// switch on a small integer instead of hashing or string-comparing the
// method name inside the match arms.
package funcid

import "strings"

// ID is a library-local dense identifier, contiguous from 0.
type ID int

// Table is an immutable, case-insensitive name -> ID map. Once built via
// New, it is never mutated. Find lower-cases the queried name, which
// allocates when that name contains upper-case letters.
type Table struct {
	byLower map[string]ID
	names   []string // names[id] == the canonical (as-registered) spelling
}

// New builds a Table from an ordered list of method names. The name at
// index i is assigned ID(i). Names must be unique case-insensitively;
// New panics on a duplicate, since the table set is fixed at construction
// and a collision indicates a programming error in the library's method
// list, not a runtime condition.
func New(names []string) *Table {
	t := &Table{
		byLower: make(map[string]ID, len(names)),
		names:   append([]string(nil), names...),
	}
	for i, n := range names {
		lower := strings.ToLower(n)
		if _, dup := t.byLower[lower]; dup {
			panic("funcid: duplicate method name (case-insensitive): " + n)
		}
		t.byLower[lower] = ID(i)
	}
	return t
}

// Find returns the id for name (case-insensitive) and whether it was found.
func (t *Table) Find(name string) (ID, bool) {
	id, ok := t.byLower[strings.ToLower(name)]
	return id, ok
}

// FindMatch reports whether name maps to exactly the expected id.
func (t *Table) FindMatch(name string, expected ID) bool {
	id, ok := t.Find(name)
	return ok && id == expected
}

// Name returns the canonical spelling an id was registered under.
func (t *Table) Name(id ID) string {
	if int(id) < 0 || int(id) >= len(t.names) {
		return ""
	}
	return t.names[id]
}

// Len returns the number of registered names.
func (t *Table) Len() int { return len(t.names) }

// Names returns the canonical names in registration (id) order. The
// returned slice is a copy; callers may sort or filter it freely.
func (t *Table) Names() []string {
	out := make([]string, len(t.names))
	copy(out, t.names)
	return out
}
