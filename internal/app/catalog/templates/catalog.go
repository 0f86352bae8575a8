package templates

import (
	"fmt"
	"sort"
	"strings"

	"github.com/murkotick/storefront-catalog-service/internal/app/catalog/domain"
)

// Catalog is the read-only template registry. It is built once at startup and
// never mutated, so it is safe for concurrent use without locking.
type Catalog struct {
	byID      map[string]*Definition
	summaries []Summary
}

// NewCatalog builds a registry from defs. It rejects empty or duplicate IDs and
// category orders that disagree with the category's position; missing orders are
// filled with the 1-based position. Item-to-category references are not checked
// here; see Definition.Validate.
func NewCatalog(defs ...Definition) (*Catalog, error) {
	c := &Catalog{byID: make(map[string]*Definition, len(defs))}

	for i := range defs {
		def := defs[i].clone()
		def.ID = strings.TrimSpace(def.ID)
		if def.ID == "" {
			return nil, fmt.Errorf("template #%d: empty id", i)
		}
		if _, dup := c.byID[def.ID]; dup {
			return nil, fmt.Errorf("template %q: duplicate id", def.ID)
		}
		for pos := range def.Categories {
			want := pos + 1
			switch def.Categories[pos].Order {
			case 0:
				def.Categories[pos].Order = want
			case want:
			default:
				return nil, fmt.Errorf("template %q: category %q has order %d, want %d",
					def.ID, def.Categories[pos].Name, def.Categories[pos].Order, want)
			}
		}
		c.byID[def.ID] = def
		c.summaries = append(c.summaries, def.Summary())
	}

	sort.Slice(c.summaries, func(i, j int) bool { return c.summaries[i].ID < c.summaries[j].ID })
	return c, nil
}

// MustNewCatalog is NewCatalog that panics on error. Intended for static registries.
func MustNewCatalog(defs ...Definition) *Catalog {
	c, err := NewCatalog(defs...)
	if err != nil {
		panic(err)
	}
	return c
}

// Resolve returns a copy of the template with the given ID.
func (c *Catalog) Resolve(templateID string) (*Definition, error) {
	def, ok := c.byID[strings.TrimSpace(templateID)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrTemplateNotFound, templateID)
	}
	return def.clone(), nil
}

// ListAvailable returns the summaries of all templates ordered by ID.
// Each call returns a fresh slice.
func (c *Catalog) ListAvailable() []Summary {
	out := make([]Summary, len(c.summaries))
	copy(out, c.summaries)
	return out
}
