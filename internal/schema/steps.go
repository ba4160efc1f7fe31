package schema

// Step one wizard screen: an ordered group of category ids.
type Step struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Categories []string `json:"categories"`
}

// Steps fixed wizard progression. Index 0 is the basic-info step whose
// fields (resident, date, time, blood pressure) are not schema-driven;
// the last step is the review screen.
var Steps = []Step{
	{ID: "basic", Title: "Informações básicas"},
	{ID: "nutrition", Title: "Alimentação e hidratação", Categories: []string{
		"feeding", "hydration", "appetite", "foodNotes",
	}},
	{ID: "physical", Title: "Estado físico", Categories: []string{
		"mobility", "physicalActivity", "painLevel", "sleepQuality", "skinCondition", "physiotherapy",
	}},
	{ID: "medical", Title: "Saúde e medicação", Categories: []string{
		"medicationTaken", "medicationNotes", "temperature", "glycemia", "symptoms",
	}},
	{ID: "mental", Title: "Estado mental", Categories: []string{
		"mood", "orientation", "memory", "behaviorNotes",
	}},
	{ID: "social", Title: "Convívio social", Categories: []string{
		"socialInteraction", "familyContact", "generalNotes",
	}},
	{ID: "review", Title: "Revisão"},
}

// StepCount number of wizard steps.
func StepCount() int { return len(Steps) }

// CategoriesForStep resolves the ordered category definitions of a step.
// Ids without a catalog entry are dropped silently; the basic-info step
// and out-of-range indexes yield nil.
func CategoriesForStep(catalog *Catalog, stepIndex int) []Category {
	return categoriesForStep(catalog, Steps, stepIndex)
}

func categoriesForStep(catalog *Catalog, steps []Step, stepIndex int) []Category {
	if stepIndex <= 0 || stepIndex >= len(steps) {
		return nil
	}
	step := steps[stepIndex]
	var resolved []Category
	for _, id := range step.Categories {
		if cat, ok := catalog.FindByID(id); ok {
			resolved = append(resolved, cat)
		}
	}
	return resolved
}
