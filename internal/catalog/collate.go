package catalog

import (
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Collator compares product names with the storefront locale's collation
// rules. It is safe for concurrent use.
type Collator struct {
	mu  sync.Mutex
	col *collate.Collator
}

// NewCollator builds a collator for a BCP 47 locale such as "fr". Unknown
// tags fall back to the root collation.
func NewCollator(locale string) *Collator {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.Und
	}
	return &Collator{col: collate.New(tag)}
}

// Compare returns -1, 0 or 1.
func (c *Collator) Compare(a, b string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.col.CompareString(a, b)
}
