package wizard

import (
	"repouso-data/internal/domain"
	"repouso-data/internal/schema"
)

// BasicInfo non-schema-driven fields of the first wizard step. All
// values stay raw strings until the validator parses them.
type BasicInfo struct {
	ResidentID string
	Date       string // YYYY-MM-DD
	Time       string // HH:MM
	Systolic   string
	Diastolic  string
}

// State form state of one wizard session. Values is the in-progress
// record payload, mutated incrementally as the user interacts with
// fields on any step; once set, a value survives step navigation.
type State struct {
	StepIndex  int
	BasicInfo  BasicInfo
	Values     map[string]domain.FieldValue
	Submitting bool
}

func NewState() *State {
	return &State{Values: map[string]domain.FieldValue{}}
}

// BasicInfoComplete tracked continuously; gates Next on step 0.
func (s *State) BasicInfoComplete() bool {
	return s.BasicInfo.ResidentID != "" && s.BasicInfo.Date != "" && s.BasicInfo.Time != ""
}

// ---- basic info edits ----

func (s *State) SetResident(id string) { s.BasicInfo.ResidentID = id }
func (s *State) SetDate(date string)   { s.BasicInfo.Date = date }
func (s *State) SetTime(t string)      { s.BasicInfo.Time = t }

func (s *State) SetSystolic(v string) {
	s.BasicInfo.Systolic = v
	s.recomputeBloodPressure()
}

func (s *State) SetDiastolic(v string) {
	s.BasicInfo.Diastolic = v
	s.recomputeBloodPressure()
}

// recomputeBloodPressure runs on every systolic/diastolic edit,
// regardless of the active step. The derived value exists only while
// both halves are non-empty.
func (s *State) recomputeBloodPressure() {
	if s.BasicInfo.Systolic != "" && s.BasicInfo.Diastolic != "" {
		s.Values[schema.CategoryBloodPressure] = domain.TextValue(
			s.BasicInfo.Systolic + "/" + s.BasicInfo.Diastolic + " mmHg")
		return
	}
	delete(s.Values, schema.CategoryBloodPressure)
}

// ---- field input normalization ----

// Input one user interaction with a schema-driven field. The meaningful
// member depends on the category's field type.
type Input struct {
	Str    string // text, number, option value
	Bool   bool   // boolean toggle
	Rating int    // rating 1..5
}

// Apply normalizes one input event into the value shape the category's
// field type expects and updates exactly that category's key. Unknown
// field types are inert: no key changes, no error. The derived
// blood-pressure entry is also inert here: it is written only by the
// systolic/diastolic recompute, never by direct field input.
func (s *State) Apply(cat schema.Category, in Input) {
	if cat.ID == schema.CategoryBloodPressure {
		return
	}
	switch cat.FieldType {
	case schema.FieldText:
		s.Values[cat.ID] = domain.TextValue(in.Str)
	case schema.FieldNumber:
		// kept as a raw string; numeric parsing happens in validation
		s.Values[cat.ID] = domain.NumberValue(in.Str)
	case schema.FieldBoolean:
		s.Values[cat.ID] = domain.BoolValue(in.Bool)
	case schema.FieldRating:
		// selecting rating k replaces any prior rating
		s.Values[cat.ID] = domain.RatingValue(in.Rating)
	case schema.FieldOption:
		if cat.AllowMultiple {
			s.toggleOption(cat.ID, in.Str)
		} else {
			s.Values[cat.ID] = domain.OptionValue(in.Str)
		}
	}
}

// toggleOption appends a value not yet selected (preserving click order)
// and removes one that is (toggle); never duplicates.
func (s *State) toggleOption(catID, value string) {
	current := s.Values[catID]
	if current.Kind != domain.KindMultiOption {
		s.Values[catID] = domain.MultiOptionValue(value)
		return
	}
	for i, v := range current.Multi {
		if v == value {
			next := append(append([]string(nil), current.Multi[:i]...), current.Multi[i+1:]...)
			s.Values[catID] = domain.MultiOptionValue(next...)
			return
		}
	}
	s.Values[catID] = domain.MultiOptionValue(append(append([]string(nil), current.Multi...), value)...)
}

// snapshotValues deep-copies the value map for the persisted record.
func (s *State) snapshotValues() map[string]domain.FieldValue {
	out := make(map[string]domain.FieldValue, len(s.Values))
	for k, v := range s.Values {
		if v.Kind == domain.KindMultiOption {
			v.Multi = append([]string(nil), v.Multi...)
		}
		out[k] = v
	}
	return out
}
