package schema

// FieldType kind of interactive control a category renders as.
type FieldType string

const (
	FieldText    FieldType = "text"
	FieldNumber  FieldType = "number"
	FieldBoolean FieldType = "boolean"
	FieldRating  FieldType = "rating"
	FieldOption  FieldType = "option"
)

// Option one selectable value of an option category.
// Value is the canonical stored string; ID is a UI key only.
type Option struct {
	ID    string `json:"id"`
	Value string `json:"value"`
	Label string `json:"label"`
	Color string `json:"color,omitempty"`
	Icon  string `json:"icon,omitempty"`
}

// Category one schema-defined field of an evolution record.
type Category struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	FieldType     FieldType `json:"field_type"`
	Options       []Option  `json:"options,omitempty"`        // only for FieldOption
	AllowMultiple bool      `json:"allow_multiple,omitempty"` // only for FieldOption
	Placeholder   string    `json:"placeholder,omitempty"`
}

// Catalog immutable category arena built once at startup.
// Declaration order is the display order; lookups go through a
// precomputed id->index map since the catalog is read far more often
// than it is built.
type Catalog struct {
	categories []Category
	byID       map[string]int
}

// NewCatalog concatenates the category sets in declaration order.
// Later sets may not redeclare an id from an earlier one; duplicates
// keep the first declaration.
func NewCatalog(sets ...[]Category) *Catalog {
	c := &Catalog{byID: map[string]int{}}
	for _, set := range sets {
		for _, cat := range set {
			if _, exists := c.byID[cat.ID]; exists {
				continue
			}
			c.byID[cat.ID] = len(c.categories)
			c.categories = append(c.categories, cat)
		}
	}
	return c
}

// ListAll returns the full catalog in declaration order.
// Callers must not mutate the returned slice.
func (c *Catalog) ListAll() []Category {
	return c.categories
}

// FindByID resolves a category id. A miss is not an error: callers
// skip unresolved entries.
func (c *Catalog) FindByID(id string) (Category, bool) {
	idx, ok := c.byID[id]
	if !ok {
		return Category{}, false
	}
	return c.categories[idx], true
}
