package survey

import (
	"encoding/json"
	"net/url"
	"testing"

	domainerrors "kala/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const membershipSchema = `{
	"reason": {
		"type": "checkbox",
		"label": "Why do you wish to be a part of this community?",
		"key": "reason",
		"options": [
			{"key": "networking", "label": "Networking"},
			{"key": "training", "label": "Training"}
		]
	},
	"story": {
		"type": "textarea",
		"label": "Tell us about your work",
		"hint": "A few lines is enough"
	},
	"assistance": {
		"type": "checkbox",
		"label": "Do you need assistance with any of the following?",
		"options": [
			{"key": "website", "label": "Creating website"},
			{"key": "rateCards", "label": "Preparing Rate Cards"}
		]
	}
}`

func mustParse(t *testing.T, doc string) *Schema {
	t.Helper()
	s, err := Parse([]byte(doc))
	require.NoError(t, err)

	return s
}

func TestParse_KeepsDocumentOrder(t *testing.T) {
	s := mustParse(t, membershipSchema)

	require.Len(t, s.Fields, 3)
	assert.Equal(t, "reason", s.Fields[0].Key)
	assert.Equal(t, "story", s.Fields[1].Key)
	assert.Equal(t, "assistance", s.Fields[2].Key)
	assert.Equal(t, FieldTextarea, s.Fields[1].Type)
	assert.Equal(t, "A few lines is enough", s.Fields[1].Hint)
}

func TestParse_RejectsMalformedSchemas(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  string
	}{
		{name: "not an object", doc: `[1,2]`},
		{name: "unknown type", doc: `{"a": {"type": "radio", "label": "A"}}`},
		{name: "missing label", doc: `{"a": {"type": "textarea"}}`},
		{name: "checkbox without options", doc: `{"a": {"type": "checkbox", "label": "A"}}`},
		{name: "duplicate option", doc: `{"a": {"type": "checkbox", "label": "A", "options": [{"key":"x","label":"X"},{"key":"x","label":"Y"}]}}`},
		{name: "mismatched key", doc: `{"a": {"type": "textarea", "label": "A", "key": "b"}}`},
		{name: "textarea with options", doc: `{"a": {"type": "textarea", "label": "A", "options": [{"key":"x","label":"X"}]}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Parse([]byte(tt.doc))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidSchema)
		})
	}
}

func TestSchema_MarshalRoundTrip(t *testing.T) {
	s := mustParse(t, membershipSchema)

	data, err := json.Marshal(s)
	require.NoError(t, err)

	again, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, s, again)
}

func TestAnswers_JSONShapes(t *testing.T) {
	var answers Answers
	require.NoError(t, json.Unmarshal([]byte(`{"reason":["networking"],"story":"hello"}`), &answers))

	assert.True(t, answers["reason"].IsList())
	assert.Equal(t, []string{"networking"}, answers["reason"].Choices)
	assert.False(t, answers["story"].IsList())
	assert.Equal(t, "hello", answers["story"].Text)

	data, err := json.Marshal(answers)
	require.NoError(t, err)
	assert.JSONEq(t, `{"reason":["networking"],"story":"hello"}`, string(data))
}

func TestEditForm_ParseForm_RoundTrip(t *testing.T) {
	s := mustParse(t, membershipSchema)
	answers := Answers{
		"reason":     ChoiceAnswer("networking", "training"),
		"story":      TextAnswer("I shoot weddings"),
		"assistance": ChoiceAnswer("website", "legacyOption"),
	}

	form := EditForm(s, answers)
	require.Len(t, form, 3)
	assert.True(t, form[0].Options[0].Checked)
	assert.True(t, form[0].Options[1].Checked)
	assert.Equal(t, "I shoot weddings", form[1].Text)
	assert.Equal(t, []string{"legacyOption"}, form[2].Unlisted)

	parsed := ParseForm(s, FormValues(form))
	assert.Equal(t, answers, parsed)
}

func TestEditForm_ParseForm_KeepsStoredChoiceOrder(t *testing.T) {
	s := mustParse(t, membershipSchema)
	answers := Answers{
		"reason":     ChoiceAnswer("training", "networking"),
		"assistance": ChoiceAnswer("legacyOption", "website"),
	}

	form := EditForm(s, answers)
	require.Len(t, form, 3)
	assert.Equal(t, []string{"training", "networking"}, form[0].Selected)

	parsed := ParseForm(s, FormValues(form))
	assert.Equal(t, answers, parsed)
}

func TestFormValues_UncheckedAfterRenderIsDropped(t *testing.T) {
	s := mustParse(t, membershipSchema)
	form := EditForm(s, Answers{"reason": ChoiceAnswer("training", "networking")})
	require.NotEmpty(t, form[0].Options)

	for i := range form[0].Options {
		if form[0].Options[i].Key == "training" {
			form[0].Options[i].Checked = false
		}
	}

	assert.Equal(t, []string{"networking"}, FormValues(form)["reason"])
}

func TestParseForm_IgnoresUnknownKeysAndEmptyInputs(t *testing.T) {
	s := mustParse(t, membershipSchema)
	values := url.Values{
		"reason":  {"networking", ""},
		"story":   {""},
		"unknown": {"x"},
	}

	assert.Equal(t, Answers{"reason": ChoiceAnswer("networking")}, ParseForm(s, values))
}

func TestDisplay_ResolvesLabelsAndSkipsUnknown(t *testing.T) {
	s := mustParse(t, membershipSchema)
	answers := Answers{
		"assistance": ChoiceAnswer("rateCards", "removed"),
		"story":      TextAnswer("Portraits"),
		"retired":    TextAnswer("no longer asked"),
	}

	items := Display(s, answers)

	require.Len(t, items, 2)
	assert.Equal(t, "Tell us about your work", items[0].Label)
	assert.Equal(t, []string{"Portraits"}, items[0].Values)
	assert.Equal(t, "Do you need assistance with any of the following?", items[1].Label)
	assert.Equal(t, []string{"Preparing Rate Cards"}, items[1].Values)
}

func TestNilSchema_RendersNothing(t *testing.T) {
	var s *Schema
	answers := Answers{"reason": ChoiceAnswer("networking")}

	assert.Nil(t, EditForm(s, answers))
	assert.Nil(t, Display(s, answers))
	assert.Empty(t, ParseForm(s, url.Values{"reason": {"networking"}}))
}

func TestValidateAnswers(t *testing.T) {
	s := mustParse(t, membershipSchema)

	require.NoError(t, ValidateAnswers(s, Answers{
		"reason": ChoiceAnswer("not-an-option"),
		"story":  TextAnswer("ok"),
	}))

	err := ValidateAnswers(s, Answers{
		"reason":  TextAnswer("networking"),
		"story":   ChoiceAnswer("a"),
		"unknown": TextAnswer("x"),
	})
	require.Error(t, err)

	var vErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Len(t, vErr.Fields(), 3)
}
