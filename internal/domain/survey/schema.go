// Package survey models admin-defined questionnaires and renders them as
// editable forms or read-only answer summaries.
package survey

import (
	"bytes"
	"encoding/json"
	"fmt"

	"kala/internal/errors"
)

// FieldType discriminates the kinds of question a schema may hold.
type FieldType string

const (
	FieldCheckbox FieldType = "checkbox"
	FieldTextarea FieldType = "textarea"
)

// Option is one selectable choice of a checkbox field.
type Option struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// Field is one question. Checkbox fields carry Options, textarea fields may carry a Hint.
type Field struct {
	Key     string    `json:"key"`
	Type    FieldType `json:"type"`
	Label   string    `json:"label"`
	Hint    string    `json:"hint,omitempty"`
	Options []Option  `json:"options,omitempty"`
}

// Schema is an ordered set of fields. It is stored as a JSON object keyed by
// field key; the object's key order is the rendering order.
type Schema struct {
	Fields []Field
}

// ErrInvalidSchema is returned for schema documents that do not describe a valid survey.
var ErrInvalidSchema = errors.New("invalid survey schema")

// Parse decodes and validates a schema document.
func Parse(data []byte) (*Schema, error) {
	var s Schema
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}

	return &s, nil
}

// Field returns the field with the given key.
func (s *Schema) Field(key string) (Field, bool) {
	if s == nil {
		return Field{}, false
	}
	for _, f := range s.Fields {
		if f.Key == key {
			return f, true
		}
	}

	return Field{}, false
}

// Empty reports whether the schema has no fields.
func (s *Schema) Empty() bool {
	return s == nil || len(s.Fields) == 0
}

// Validate checks the structural rules every stored schema must satisfy.
func (s *Schema) Validate() error {
	seen := make(map[string]struct{}, len(s.Fields))
	for _, f := range s.Fields {
		if f.Key == "" {
			return errors.Wrap(ErrInvalidSchema, "field with empty key")
		}
		if _, dup := seen[f.Key]; dup {
			return errors.Wrapf(ErrInvalidSchema, "duplicate field %q", f.Key)
		}
		seen[f.Key] = struct{}{}

		if f.Label == "" {
			return errors.Wrapf(ErrInvalidSchema, "field %q has no label", f.Key)
		}

		switch f.Type {
		case FieldCheckbox:
			if err := validateOptions(f); err != nil {
				return err
			}
		case FieldTextarea:
			if len(f.Options) > 0 {
				return errors.Wrapf(ErrInvalidSchema, "textarea %q must not declare options", f.Key)
			}
		default:
			return errors.Wrapf(ErrInvalidSchema, "field %q has unknown type %q", f.Key, f.Type)
		}
	}

	return nil
}

func validateOptions(f Field) error {
	if len(f.Options) == 0 {
		return errors.Wrapf(ErrInvalidSchema, "checkbox %q has no options", f.Key)
	}

	keys := make(map[string]struct{}, len(f.Options))
	for _, o := range f.Options {
		if o.Key == "" || o.Label == "" {
			return errors.Wrapf(ErrInvalidSchema, "checkbox %q has an incomplete option", f.Key)
		}
		if _, dup := keys[o.Key]; dup {
			return errors.Wrapf(ErrInvalidSchema, "checkbox %q repeats option %q", f.Key, o.Key)
		}
		keys[o.Key] = struct{}{}
	}

	return nil
}

// MarshalJSON writes the schema as an object keyed by field key, in field order.
func (s Schema) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range s.Fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.Key)
		if err != nil {
			return nil, err
		}
		body, err := json.Marshal(f)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(body)
	}
	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// UnmarshalJSON reads a field-keyed object, keeping the document's key order,
// and validates the result.
func (s *Schema) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return errors.Wrap(ErrInvalidSchema, err.Error())
	}
	if tok == nil {
		s.Fields = nil

		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return errors.Wrap(ErrInvalidSchema, "schema must be a JSON object")
	}

	var fields []Field
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return errors.Wrap(ErrInvalidSchema, err.Error())
		}
		key, _ := keyTok.(string)

		var f Field
		if err := dec.Decode(&f); err != nil {
			return errors.Wrap(ErrInvalidSchema, fmt.Sprintf("field %q: %v", key, err))
		}
		if f.Key != "" && f.Key != key {
			return errors.Wrapf(ErrInvalidSchema, "field %q declares key %q", key, f.Key)
		}
		f.Key = key
		fields = append(fields, f)
	}

	if _, err := dec.Token(); err != nil {
		return errors.Wrap(ErrInvalidSchema, err.Error())
	}

	parsed := Schema{Fields: fields}
	if err := parsed.Validate(); err != nil {
		return err
	}
	*s = parsed

	return nil
}
