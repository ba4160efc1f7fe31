package wizard

import (
	"testing"

	"repouso-data/internal/domain"
	"repouso-data/internal/schema"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestState_BloodPressureDerivation(t *testing.T) {
	st := NewState()

	st.SetSystolic("120")
	_, ok := st.Values[schema.CategoryBloodPressure]
	assert.False(t, ok, "half-filled pressure must not produce a value")

	st.SetDiastolic("80")
	v, ok := st.Values[schema.CategoryBloodPressure]
	require.True(t, ok)
	assert.Equal(t, domain.KindText, v.Kind)
	assert.Equal(t, "120/80 mmHg", v.Str)

	// editing either half recomputes
	st.SetSystolic("130")
	assert.Equal(t, "130/80 mmHg", st.Values[schema.CategoryBloodPressure].Str)

	// clearing one half removes the derived value entirely
	st.SetDiastolic("")
	_, ok = st.Values[schema.CategoryBloodPressure]
	assert.False(t, ok)
}

func TestState_BloodPressureNotDirectlyEditable(t *testing.T) {
	st := NewState()
	st.SetSystolic("120")
	st.SetDiastolic("80")

	cat, ok := schema.DefaultCatalog().FindByID(schema.CategoryBloodPressure)
	require.True(t, ok)
	st.Apply(cat, Input{Str: "999/999 adulterado"})

	assert.Equal(t, "120/80 mmHg", st.Values[schema.CategoryBloodPressure].Str)

	// a direct edit cannot create the key either
	delete(st.Values, schema.CategoryBloodPressure)
	st.Apply(cat, Input{Str: "abc"})
	_, ok = st.Values[schema.CategoryBloodPressure]
	assert.False(t, ok)
}

func TestState_BasicInfoComplete(t *testing.T) {
	st := NewState()
	assert.False(t, st.BasicInfoComplete())

	st.SetResident("res-1")
	st.SetDate("2026-08-30")
	assert.False(t, st.BasicInfoComplete())

	st.SetTime("14:30")
	assert.True(t, st.BasicInfoComplete())

	st.SetResident("")
	assert.False(t, st.BasicInfoComplete())
}

func TestState_ApplySingleOptionReplaces(t *testing.T) {
	st := NewState()
	cat := schema.Category{ID: "mood", FieldType: schema.FieldOption}

	st.Apply(cat, Input{Str: "Alegre"})
	assert.Equal(t, domain.OptionValue("Alegre"), st.Values["mood"])

	st.Apply(cat, Input{Str: "Triste"})
	assert.Equal(t, domain.OptionValue("Triste"), st.Values["mood"])
}

func TestState_ApplyMultiOptionToggle(t *testing.T) {
	st := NewState()
	cat := schema.Category{ID: "symptoms", FieldType: schema.FieldOption, AllowMultiple: true}

	st.Apply(cat, Input{Str: "Febre"})
	st.Apply(cat, Input{Str: "Tosse"})
	st.Apply(cat, Input{Str: "Tontura"})
	assert.Equal(t, []string{"Febre", "Tosse", "Tontura"}, st.Values["symptoms"].Multi)

	// toggling a middle value removes it and keeps click order
	st.Apply(cat, Input{Str: "Tosse"})
	assert.Equal(t, []string{"Febre", "Tontura"}, st.Values["symptoms"].Multi)

	// re-selecting appends at the end, never duplicates
	st.Apply(cat, Input{Str: "Tosse"})
	assert.Equal(t, []string{"Febre", "Tontura", "Tosse"}, st.Values["symptoms"].Multi)
}

func TestState_MultiOptionToggleTwiceRestoresSet(t *testing.T) {
	st := NewState()
	cat := schema.Category{ID: "symptoms", FieldType: schema.FieldOption, AllowMultiple: true}

	st.Apply(cat, Input{Str: "Febre"})
	st.Apply(cat, Input{Str: "Náusea"})
	st.Apply(cat, Input{Str: "Náusea"})
	assert.Equal(t, []string{"Febre"}, st.Values["symptoms"].Multi)
}

func TestState_ApplyRatingReplaces(t *testing.T) {
	st := NewState()
	cat := schema.Category{ID: "appetite", FieldType: schema.FieldRating}

	st.Apply(cat, Input{Rating: 3})
	assert.Equal(t, domain.RatingValue(3), st.Values["appetite"])

	st.Apply(cat, Input{Rating: 5})
	assert.Equal(t, domain.RatingValue(5), st.Values["appetite"])
}

func TestState_ApplyScalarFields(t *testing.T) {
	st := NewState()

	st.Apply(schema.Category{ID: "generalNotes", FieldType: schema.FieldText}, Input{Str: "Dia tranquilo"})
	assert.Equal(t, domain.TextValue("Dia tranquilo"), st.Values["generalNotes"])

	st.Apply(schema.Category{ID: "temperature", FieldType: schema.FieldNumber}, Input{Str: "36.7"})
	assert.Equal(t, domain.NumberValue("36.7"), st.Values["temperature"])

	st.Apply(schema.Category{ID: "familyContact", FieldType: schema.FieldBoolean}, Input{Bool: true})
	assert.Equal(t, domain.BoolValue(true), st.Values["familyContact"])
}

func TestState_ApplyUnknownFieldTypeIsInert(t *testing.T) {
	st := NewState()
	st.Apply(schema.Category{ID: "odd", FieldType: schema.FieldType("geo")}, Input{Str: "x"})
	assert.Empty(t, st.Values)
}

func TestState_ValuesSurviveNavigation(t *testing.T) {
	st := NewState()
	st.Apply(schema.Category{ID: "mood", FieldType: schema.FieldOption}, Input{Str: "Tranquilo"})

	st.StepIndex = 4
	st.StepIndex = 1
	assert.Equal(t, domain.OptionValue("Tranquilo"), st.Values["mood"])
}
