package configurator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterVisibleAnswers_DropsHiddenQuestionAnswer(t *testing.T) {
	questions := []Question{
		{QuestionKey: "type", Type: QuestionTypeSingleSelect,
			Options: []QuestionOption{{Value: "carport"}, {Value: "pergola"}}},
		{QuestionKey: "zonnescherm", Type: QuestionTypeSingleSelect,
			Options: []QuestionOption{{Value: "ja"}, {Value: "nee"}},
			VisibilityRules: &VisibilityConfig{
				Logic: LogicAll,
				Rules: []VisibilityRule{{QuestionKey: "type", Operator: OpEquals, Value: "pergola"}},
			}},
	}

	filtered := FilterVisibleAnswers(questions, AnswerMap{"type": "carport", "zonnescherm": "ja"})

	assert.Equal(t, AnswerMap{"type": "carport"}, filtered)

	filtered = FilterVisibleAnswers(questions, AnswerMap{"type": "pergola", "zonnescherm": "ja"})
	assert.Equal(t, AnswerMap{"type": "pergola", "zonnescherm": "ja"}, filtered)
}

func TestFilterVisibleAnswers_DropsHiddenOptionSelection(t *testing.T) {
	questions := []Question{
		{QuestionKey: "type", Type: QuestionTypeSingleSelect,
			Options: []QuestionOption{{Value: "carport"}, {Value: "pergola"}}},
		{QuestionKey: "afwerking", Type: QuestionTypeSingleSelect,
			Options: []QuestionOption{
				{Value: "standaard"},
				{Value: "premium", VisibilityRules: &VisibilityConfig{
					Logic: LogicAll,
					Rules: []VisibilityRule{{QuestionKey: "type", Operator: OpEquals, Value: "pergola"}},
				}},
			}},
	}

	filtered := FilterVisibleAnswers(questions, AnswerMap{"type": "carport", "afwerking": "premium"})
	assert.NotContains(t, filtered, "afwerking")

	filtered = FilterVisibleAnswers(questions, AnswerMap{"type": "carport", "afwerking": "standaard"})
	assert.Equal(t, "standaard", filtered["afwerking"])
}

func TestFilterVisibleAnswers_FiltersMultiSelectValues(t *testing.T) {
	questions := []Question{
		{QuestionKey: "type", Type: QuestionTypeSingleSelect,
			Options: []QuestionOption{{Value: "carport"}, {Value: "pergola"}}},
		{QuestionKey: "extras", Type: QuestionTypeMultiSelect,
			Options: []QuestionOption{
				{Value: "led"},
				{Value: "zonnepanelen", VisibilityRules: &VisibilityConfig{
					Logic: LogicAll,
					Rules: []VisibilityRule{{QuestionKey: "type", Operator: OpEquals, Value: "carport"}},
				}},
			}},
	}

	filtered := FilterVisibleAnswers(questions,
		AnswerMap{"type": "pergola", "extras": []any{"led", "zonnepanelen"}})
	assert.Equal(t, []string{"led"}, filtered["extras"])

	// The answer disappears entirely when every selection is hidden.
	filtered = FilterVisibleAnswers(questions,
		AnswerMap{"type": "pergola", "extras": []any{"zonnepanelen"}})
	assert.NotContains(t, filtered, "extras")
}

// Unknown keys pass through; the price engine ignores them downstream.
func TestFilterVisibleAnswers_PassesUnknownKeysThrough(t *testing.T) {
	filtered := FilterVisibleAnswers(nil, AnswerMap{"stale_key": "value"})
	assert.Equal(t, AnswerMap{"stale_key": "value"}, filtered)
}

// Visibility is evaluated against the unfiltered answers, so a chain of
// rules behaves the same as in the wizard even when the head of the chain
// is itself hidden.
func TestFilterVisibleAnswers_EvaluatesAgainstUnfilteredMap(t *testing.T) {
	questions := []Question{
		{QuestionKey: "a", Type: QuestionTypeSingleSelect,
			Options: []QuestionOption{{Value: "x"}},
			VisibilityRules: &VisibilityConfig{
				Logic: LogicAll,
				Rules: []VisibilityRule{{QuestionKey: "missing", Operator: OpEquals, Value: "never"}},
			}},
		{QuestionKey: "b", Type: QuestionTypeSingleSelect,
			Options: []QuestionOption{{Value: "y"}},
			VisibilityRules: &VisibilityConfig{
				Logic: LogicAll,
				Rules: []VisibilityRule{{QuestionKey: "a", Operator: OpEquals, Value: "x"}},
			}},
	}

	filtered := FilterVisibleAnswers(questions, AnswerMap{"a": "x", "b": "y"})

	// "a" is hidden and dropped, but "b" still saw a's answer.
	assert.NotContains(t, filtered, "a")
	assert.Equal(t, "y", filtered["b"])
}

func TestFilterVisibleAnswers_DoesNotMutateInput(t *testing.T) {
	questions := []Question{
		{QuestionKey: "hidden", Type: QuestionTypeText,
			VisibilityRules: &VisibilityConfig{
				Logic: LogicAll,
				Rules: []VisibilityRule{{QuestionKey: "x", Operator: OpEquals, Value: "y"}},
			}},
	}
	answers := AnswerMap{"hidden": "secret"}

	_ = FilterVisibleAnswers(questions, answers)

	assert.Equal(t, AnswerMap{"hidden": "secret"}, answers)
}
