package survey

import (
	"bytes"
	"encoding/json"
	"sort"

	domainerrors "kala/internal/domain/errors"
	"kala/internal/errors"
)

// Answer is the response to one field: free text for textareas, a list of
// option keys for checkboxes.
type Answer struct {
	Text    string
	Choices []string
	list    bool
}

// TextAnswer builds a textarea answer.
func TextAnswer(text string) Answer {
	return Answer{Text: text}
}

// ChoiceAnswer builds a checkbox answer.
func ChoiceAnswer(keys ...string) Answer {
	choices := make([]string, len(keys))
	copy(choices, keys)

	return Answer{Choices: choices, list: true}
}

// IsList reports whether the answer holds checkbox choices.
func (a Answer) IsList() bool {
	return a.list
}

// IsEmpty reports whether the answer carries no information.
func (a Answer) IsEmpty() bool {
	if a.list {
		return len(a.Choices) == 0
	}

	return a.Text == ""
}

// Selected reports whether the option key was chosen.
func (a Answer) Selected(key string) bool {
	for _, c := range a.Choices {
		if c == key {
			return true
		}
	}

	return false
}

func (a Answer) MarshalJSON() ([]byte, error) {
	if a.list {
		if a.Choices == nil {
			return []byte("[]"), nil
		}

		return json.Marshal(a.Choices)
	}

	return json.Marshal(a.Text)
}

func (a *Answer) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var choices []string
		if err := json.Unmarshal(trimmed, &choices); err != nil {
			return errors.Wrap(err, "checkbox answer must be a list of strings")
		}
		*a = ChoiceAnswer(choices...)

		return nil
	}

	var text string
	if err := json.Unmarshal(trimmed, &text); err != nil {
		return errors.Wrap(err, "answer must be a string or a list of strings")
	}
	*a = TextAnswer(text)

	return nil
}

// Answers maps field keys to answers.
type Answers map[string]Answer

// Keys returns the answered field keys in lexical order.
func (a Answers) Keys() []string {
	keys := make([]string, 0, len(a))
	for k := range a {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

// Compact drops empty answers.
func (a Answers) Compact() Answers {
	out := make(Answers, len(a))
	for k, v := range a {
		if !v.IsEmpty() {
			out[k] = v
		}
	}

	return out
}

// ValidateAnswers rejects answers to fields the schema does not define and
// answers whose shape does not match the field type. Option keys are not
// checked against the schema's options.
func ValidateAnswers(s *Schema, answers Answers) error {
	var fields []domainerrors.FieldError
	for _, key := range answers.Keys() {
		answer := answers[key]
		f, ok := s.Field(key)
		if !ok {
			fields = append(fields, domainerrors.FieldError{Field: "answers." + key, Reason: "unknown question"})

			continue
		}

		switch f.Type {
		case FieldCheckbox:
			if !answer.IsList() {
				fields = append(fields, domainerrors.FieldError{Field: "answers." + key, Reason: "expected a list of options"})
			}
		case FieldTextarea:
			if answer.IsList() {
				fields = append(fields, domainerrors.FieldError{Field: "answers." + key, Reason: "expected text"})
			}
		}
	}

	if len(fields) > 0 {
		return domainerrors.NewValidationError(fields...)
	}

	return nil
}
