package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldValue_MarshalNaturalShapes(t *testing.T) {
	values := map[string]FieldValue{
		"bloodPressure": TextValue("120/80 mmHg"),
		"familyContact": BoolValue(true),
		"memory":        RatingValue(4),
		"symptoms":      MultiOptionValue("Febre", "Tosse"),
		"mood":          OptionValue("Alegre"),
	}
	data, err := json.Marshal(values)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"bloodPressure": "120/80 mmHg",
		"familyContact": true,
		"memory": 4,
		"symptoms": ["Febre", "Tosse"],
		"mood": "Alegre"
	}`, string(data))
}

func TestFieldValue_MarshalEmptyMultiAsArray(t *testing.T) {
	data, err := json.Marshal(MultiOptionValue())
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestFieldValue_UnmarshalInfersKindFromShape(t *testing.T) {
	var values map[string]FieldValue
	require.NoError(t, json.Unmarshal([]byte(`{
		"note": "tudo bem",
		"flag": false,
		"stars": 3,
		"set": ["a", "b"]
	}`), &values))

	// strings always decode as text; the catalog's field type tells
	// text, number and option apart when it matters
	assert.Equal(t, TextValue("tudo bem"), values["note"])
	assert.Equal(t, BoolValue(false), values["flag"])
	assert.Equal(t, RatingValue(3), values["stars"])
	assert.Equal(t, MultiOptionValue("a", "b"), values["set"])
}

func TestFieldValue_UnmarshalRejectsMixedArray(t *testing.T) {
	var fv FieldValue
	assert.Error(t, json.Unmarshal([]byte(`["a", 1]`), &fv))
	assert.Error(t, json.Unmarshal([]byte(`{"nested": true}`), &fv))
}

func TestFieldValue_Contains(t *testing.T) {
	fv := MultiOptionValue("Febre", "Tosse")
	assert.True(t, fv.Contains("Febre"))
	assert.False(t, fv.Contains("Tontura"))
	assert.False(t, TextValue("Febre").Contains("Febre"))
}
