package templates

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// CategorySpec declares one category of a template. Order is the 1-based
// position of the category in the template.
type CategorySpec struct {
	Name  string
	Order int
}

// ItemSpec declares one item of a template, bound to a category by name.
type ItemSpec struct {
	Category    string
	Name        string
	Description string
	Price       decimal.Decimal
}

// Definition is an immutable business template: ordered categories and ordered items.
type Definition struct {
	ID          string
	DisplayName string
	Categories  []CategorySpec
	Items       []ItemSpec
}

// Summary describes a template for selection screens.
type Summary struct {
	ID            string
	DisplayName   string
	CategoryCount int
	ItemCount     int
}

// Summary returns the template's summary.
func (d *Definition) Summary() Summary {
	return Summary{
		ID:            d.ID,
		DisplayName:   d.DisplayName,
		CategoryCount: len(d.Categories),
		ItemCount:     len(d.Items),
	}
}

// Validate reports duplicate category names and items that reference a
// category name the template does not declare.
func (d *Definition) Validate() error {
	seen := make(map[string]struct{}, len(d.Categories))
	for _, c := range d.Categories {
		if _, dup := seen[c.Name]; dup {
			return fmt.Errorf("template %q: duplicate category %q", d.ID, c.Name)
		}
		seen[c.Name] = struct{}{}
	}
	for _, it := range d.Items {
		if _, ok := seen[it.Category]; !ok {
			return fmt.Errorf("template %q: item %q references unknown category %q", d.ID, it.Name, it.Category)
		}
	}
	return nil
}

// clone returns a deep copy so registry data cannot be mutated through a resolved value.
func (d *Definition) clone() *Definition {
	out := &Definition{
		ID:          d.ID,
		DisplayName: d.DisplayName,
		Categories:  make([]CategorySpec, len(d.Categories)),
		Items:       make([]ItemSpec, len(d.Items)),
	}
	copy(out.Categories, d.Categories)
	copy(out.Items, d.Items)
	return out
}
