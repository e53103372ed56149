package survey

import "net/url"

// FormOption is a checkbox choice bound to the current answers.
type FormOption struct {
	Key     string `json:"key"`
	Label   string `json:"label"`
	Checked bool   `json:"checked"`
}

// FormField is one editable input of a rendered survey form.
type FormField struct {
	Key     string       `json:"key"`
	Type    FieldType    `json:"type"`
	Label   string       `json:"label"`
	Hint    string       `json:"hint,omitempty"`
	Options []FormOption `json:"options,omitempty"`
	Text    string       `json:"text,omitempty"`
	// Unlisted holds selected option keys the schema no longer offers.
	// They are carried through the form unchanged.
	Unlisted []string `json:"unlisted,omitempty"`
	// Selected is the stored choice order, listed and unlisted keys alike.
	Selected []string `json:"selected,omitempty"`
}

// DisplayItem is one answered question in read-only form.
type DisplayItem struct {
	Key    string    `json:"key"`
	Type   FieldType `json:"type"`
	Label  string    `json:"label"`
	Values []string  `json:"values"`
}

// EditForm renders the schema as inputs pre-filled with answers.
// A nil schema renders nothing.
func EditForm(s *Schema, answers Answers) []FormField {
	if s.Empty() {
		return nil
	}

	form := make([]FormField, 0, len(s.Fields))
	for _, f := range s.Fields {
		answer, answered := answers[f.Key]
		field := FormField{
			Key:   f.Key,
			Type:  f.Type,
			Label: f.Label,
			Hint:  f.Hint,
		}

		switch f.Type {
		case FieldCheckbox:
			field.Options = make([]FormOption, 0, len(f.Options))
			listed := make(map[string]struct{}, len(f.Options))
			for _, o := range f.Options {
				listed[o.Key] = struct{}{}
				field.Options = append(field.Options, FormOption{
					Key:     o.Key,
					Label:   o.Label,
					Checked: answered && answer.IsList() && answer.Selected(o.Key),
				})
			}
			if answered && answer.IsList() {
				field.Selected = append([]string(nil), answer.Choices...)
				for _, c := range answer.Choices {
					if _, ok := listed[c]; !ok {
						field.Unlisted = append(field.Unlisted, c)
					}
				}
			}
		case FieldTextarea:
			if answered && !answer.IsList() {
				field.Text = answer.Text
			}
		}

		form = append(form, field)
	}

	return form
}

// FormValues serialises a rendered form the way a browser would post it:
// one value per checked option and one value per non-empty textarea.
// Checkbox values keep the stored choice order; options checked after
// rendering follow in schema order.
func FormValues(form []FormField) url.Values {
	values := url.Values{}
	for _, f := range form {
		switch f.Type {
		case FieldCheckbox:
			for _, k := range checkedKeys(f) {
				values.Add(f.Key, k)
			}
		case FieldTextarea:
			if f.Text != "" {
				values.Set(f.Key, f.Text)
			}
		}
	}

	return values
}

func checkedKeys(f FormField) []string {
	checked := make(map[string]bool, len(f.Options)+len(f.Unlisted))
	for _, o := range f.Options {
		checked[o.Key] = o.Checked
	}
	for _, k := range f.Unlisted {
		checked[k] = true
	}

	keys := make([]string, 0, len(checked))
	seen := make(map[string]struct{}, len(checked))
	for _, k := range f.Selected {
		if _, dup := seen[k]; dup || !checked[k] {
			continue
		}
		seen[k] = struct{}{}
		keys = append(keys, k)
	}
	for _, o := range f.Options {
		if _, dup := seen[o.Key]; o.Checked && !dup {
			seen[o.Key] = struct{}{}
			keys = append(keys, o.Key)
		}
	}
	for _, k := range f.Unlisted {
		if _, dup := seen[k]; !dup {
			seen[k] = struct{}{}
			keys = append(keys, k)
		}
	}

	return keys
}

// ParseForm reads posted form values back into answers. Values for keys the
// schema does not define are ignored, and empty inputs produce no answer.
func ParseForm(s *Schema, values url.Values) Answers {
	answers := Answers{}
	if s.Empty() {
		return answers
	}

	for _, f := range s.Fields {
		switch f.Type {
		case FieldCheckbox:
			var choices []string
			for _, v := range values[f.Key] {
				if v != "" {
					choices = append(choices, v)
				}
			}
			if len(choices) > 0 {
				answers[f.Key] = ChoiceAnswer(choices...)
			}
		case FieldTextarea:
			if v := values.Get(f.Key); v != "" {
				answers[f.Key] = TextAnswer(v)
			}
		}
	}

	return answers
}

// Display resolves answers against the schema for read-only presentation.
// Questions are listed in schema order; answers to unknown questions and
// option keys the schema does not define are skipped.
func Display(s *Schema, answers Answers) []DisplayItem {
	if s.Empty() || len(answers) == 0 {
		return nil
	}

	var items []DisplayItem
	for _, f := range s.Fields {
		answer, ok := answers[f.Key]
		if !ok {
			continue
		}

		item := DisplayItem{Key: f.Key, Type: f.Type, Label: f.Label}
		switch f.Type {
		case FieldCheckbox:
			if !answer.IsList() {
				continue
			}
			item.Values = []string{}
			for _, o := range f.Options {
				if answer.Selected(o.Key) {
					item.Values = append(item.Values, o.Label)
				}
			}
		case FieldTextarea:
			if answer.IsList() {
				continue
			}
			item.Values = []string{answer.Text}
		}

		items = append(items, item)
	}

	return items
}
