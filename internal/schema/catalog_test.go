package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog_DeclarationOrder(t *testing.T) {
	catalog := DefaultCatalog()
	all := catalog.ListAll()
	require.Equal(t, len(BaseCategories)+len(AdditionalCategories), len(all))

	// base set first, in declaration order, then the additional set
	for i, cat := range BaseCategories {
		assert.Equal(t, cat.ID, all[i].ID)
	}
	for i, cat := range AdditionalCategories {
		assert.Equal(t, cat.ID, all[len(BaseCategories)+i].ID)
	}
}

func TestCatalog_FindByID(t *testing.T) {
	catalog := DefaultCatalog()

	cat, ok := catalog.FindByID("feeding")
	require.True(t, ok)
	assert.Equal(t, "feeding", cat.ID)
	assert.Equal(t, FieldOption, cat.FieldType)
	assert.False(t, cat.AllowMultiple)

	cat, ok = catalog.FindByID("symptoms")
	require.True(t, ok)
	assert.True(t, cat.AllowMultiple)

	_, ok = catalog.FindByID("doesNotExist")
	assert.False(t, ok)
}

func TestNewCatalog_DuplicateKeepsFirst(t *testing.T) {
	catalog := NewCatalog(
		[]Category{{ID: "mood", Title: "Original", FieldType: FieldOption}},
		[]Category{{ID: "mood", Title: "Override", FieldType: FieldText}},
	)
	require.Equal(t, 1, len(catalog.ListAll()))

	cat, ok := catalog.FindByID("mood")
	require.True(t, ok)
	assert.Equal(t, "Original", cat.Title)
	assert.Equal(t, FieldOption, cat.FieldType)
}

func TestCategoriesForStep_ResolvesInOrder(t *testing.T) {
	catalog := DefaultCatalog()

	cats := CategoriesForStep(catalog, 1)
	require.Equal(t, []string{"feeding", "hydration", "appetite", "foodNotes"}, categoryIDs(cats))

	// basic-info and review have no schema-driven fields
	assert.Nil(t, CategoriesForStep(catalog, 0))
	assert.Nil(t, CategoriesForStep(catalog, StepCount()-1))

	// out of range
	assert.Nil(t, CategoriesForStep(catalog, -1))
	assert.Nil(t, CategoriesForStep(catalog, StepCount()))
}

func TestCategoriesForStep_DropsDanglingIDs(t *testing.T) {
	catalog := NewCatalog([]Category{
		{ID: "mood", Title: "Humor", FieldType: FieldOption},
		{ID: "generalNotes", Title: "Observações", FieldType: FieldText},
	})
	steps := []Step{
		{ID: "basic"},
		{ID: "mixed", Categories: []string{"mood", "removedCategory", "generalNotes"}},
	}

	cats := categoriesForStep(catalog, steps, 1)
	assert.Equal(t, []string{"mood", "generalNotes"}, categoryIDs(cats))
}

func categoryIDs(cats []Category) []string {
	ids := make([]string, 0, len(cats))
	for _, c := range cats {
		ids = append(ids, c.ID)
	}
	return ids
}
