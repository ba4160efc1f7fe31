package domain

import (
	"encoding/json"
	"fmt"
)

// ValueKind discriminates the shapes a care-log field value can take.
type ValueKind string

const (
	KindText        ValueKind = "text"
	KindNumber      ValueKind = "number"
	KindBool        ValueKind = "boolean"
	KindRating      ValueKind = "rating"
	KindOption      ValueKind = "option"
	KindMultiOption ValueKind = "multi_option"
)

// FieldValue is a tagged union over the value shapes an evolution-record
// field can hold. Exactly one payload field is meaningful per Kind:
// Str for text/number/option, Bool for boolean, Rating for rating,
// Multi for multi-option (insertion-ordered, no duplicates).
type FieldValue struct {
	Kind   ValueKind
	Str    string
	Bool   bool
	Rating int
	Multi  []string
}

func TextValue(s string) FieldValue   { return FieldValue{Kind: KindText, Str: s} }
func NumberValue(s string) FieldValue { return FieldValue{Kind: KindNumber, Str: s} }
func BoolValue(b bool) FieldValue     { return FieldValue{Kind: KindBool, Bool: b} }
func RatingValue(n int) FieldValue    { return FieldValue{Kind: KindRating, Rating: n} }
func OptionValue(s string) FieldValue { return FieldValue{Kind: KindOption, Str: s} }

func MultiOptionValue(values ...string) FieldValue {
	return FieldValue{Kind: KindMultiOption, Multi: append([]string(nil), values...)}
}

// Contains reports whether a multi-option value currently holds v.
func (fv FieldValue) Contains(v string) bool {
	for _, s := range fv.Multi {
		if s == v {
			return true
		}
	}
	return false
}

// MarshalJSON writes the natural JSON shape for each kind:
// string for text/number/option, bool for boolean, integer for rating,
// string array for multi-option. This is the shape persisted in the
// evolutions JSONB column.
func (fv FieldValue) MarshalJSON() ([]byte, error) {
	switch fv.Kind {
	case KindText, KindNumber, KindOption:
		return json.Marshal(fv.Str)
	case KindBool:
		return json.Marshal(fv.Bool)
	case KindRating:
		return json.Marshal(fv.Rating)
	case KindMultiOption:
		if fv.Multi == nil {
			return json.Marshal([]string{})
		}
		return json.Marshal(fv.Multi)
	}
	return nil, fmt.Errorf("unknown field value kind %q", fv.Kind)
}

// UnmarshalJSON infers the kind from the JSON shape. Strings decode as
// KindText: text, number and option values share the same wire shape,
// and the category catalog's field type is the discriminant when a
// caller needs to tell them apart.
func (fv *FieldValue) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case string:
		*fv = TextValue(v)
	case bool:
		*fv = BoolValue(v)
	case float64:
		*fv = RatingValue(int(v))
	case []any:
		values := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return fmt.Errorf("multi-option array holds non-string element %T", item)
			}
			values = append(values, s)
		}
		*fv = MultiOptionValue(values...)
	default:
		return fmt.Errorf("unsupported field value shape %T", raw)
	}
	return nil
}
