// Package catalog holds the statute dataset loaded once at startup. The
// catalog is read-only after construction, so it can be shared across
// concurrent requests without locking.
package catalog

import (
	"nyaay-backend/models"
)

// Catalog is the immutable in-memory table of statute sections.
type Catalog struct {
	entries []models.StatuteEntry
}

// New creates a catalog from the given entries. The slice is copied so
// later mutation by the caller cannot leak into the shared catalog.
func New(entries []models.StatuteEntry) *Catalog {
	copied := make([]models.StatuteEntry, len(entries))
	copy(copied, entries)
	return &Catalog{entries: copied}
}

// Empty returns a catalog with no entries. The matcher tolerates this and
// falls back to category-level references only.
func Empty() *Catalog {
	return &Catalog{}
}

// Entries returns the catalog rows in dataset order.
func (c *Catalog) Entries() []models.StatuteEntry {
	return c.entries
}

// Len returns the number of rows in the catalog.
func (c *Catalog) Len() int {
	return len(c.entries)
}
