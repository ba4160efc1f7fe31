package wizard

import (
	"repouso-data/internal/domain"
	"repouso-data/internal/schema"
)

// FieldView echo of one schema-driven field: the category definition
// plus the displayed state derived from the stored value. This is what
// the console renders for the active step.
type FieldView struct {
	Category schema.Category    `json:"category"`
	HasValue bool               `json:"has_value"`
	Value    *domain.FieldValue `json:"value,omitempty"`
	// Selected canonical option values currently active (one entry for a
	// single-option field, selection order for multi-option).
	Selected []string `json:"selected,omitempty"`
}

// StepView materializes the renderable fields of a step. Dangling
// category ids were already dropped by the schema layer; the basic-info
// and review steps yield no schema-driven fields.
func StepView(catalog *schema.Catalog, st *State, stepIndex int) []FieldView {
	cats := schema.CategoriesForStep(catalog, stepIndex)
	views := make([]FieldView, 0, len(cats))
	for _, cat := range cats {
		view := FieldView{Category: cat}
		if v, ok := st.Values[cat.ID]; ok {
			view.HasValue = true
			value := v
			view.Value = &value
			switch v.Kind {
			case domain.KindOption:
				view.Selected = []string{v.Str}
			case domain.KindMultiOption:
				view.Selected = append([]string(nil), v.Multi...)
			}
		}
		views = append(views, view)
	}
	return views
}
