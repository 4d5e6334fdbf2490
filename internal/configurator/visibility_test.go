package configurator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func showWhen(rules ...VisibilityRule) *VisibilityConfig {
	return &VisibilityConfig{Rules: rules, Logic: LogicAll}
}

func TestIsVisible_NoConfig(t *testing.T) {
	assert.True(t, IsVisible(nil, AnswerMap{}))
	assert.True(t, IsVisible(&VisibilityConfig{}, AnswerMap{"x": "y"}))
	assert.True(t, IsVisible(&VisibilityConfig{Rules: []VisibilityRule{}}, nil))
}

func TestIsVisible_Equals(t *testing.T) {
	cfg := showWhen(VisibilityRule{QuestionKey: "type", Operator: OpEquals, Value: "carport"})

	assert.True(t, IsVisible(cfg, AnswerMap{"type": "carport"}))
	assert.False(t, IsVisible(cfg, AnswerMap{"type": "pergola"}))
	assert.False(t, IsVisible(cfg, AnswerMap{}))
}

// Rule values authored as strings must match numeric answers; both sides
// are stringified before comparison.
func TestIsVisible_EqualsStringifiesNumbers(t *testing.T) {
	cfg := showWhen(VisibilityRule{QuestionKey: "count", Operator: OpEquals, Value: "3"})
	assert.True(t, IsVisible(cfg, AnswerMap{"count": float64(3)}))

	cfg = showWhen(VisibilityRule{QuestionKey: "count", Operator: OpEquals, Value: float64(3)})
	assert.True(t, IsVisible(cfg, AnswerMap{"count": "3"}))
}

func TestIsVisible_NotEquals(t *testing.T) {
	cfg := showWhen(VisibilityRule{QuestionKey: "type", Operator: OpNotEquals, Value: "carport"})

	assert.False(t, IsVisible(cfg, AnswerMap{"type": "carport"}))
	assert.True(t, IsVisible(cfg, AnswerMap{"type": "pergola"}))
	// Missing answer stringifies to "", which differs from the value.
	assert.True(t, IsVisible(cfg, AnswerMap{}))
}

func TestIsVisible_Includes(t *testing.T) {
	cfg := showWhen(VisibilityRule{QuestionKey: "extras", Operator: OpIncludes, Value: "led"})

	assert.True(t, IsVisible(cfg, AnswerMap{"extras": []any{"led", "zonnepanelen"}}))
	assert.False(t, IsVisible(cfg, AnswerMap{"extras": []any{"zonnepanelen"}}))
	assert.False(t, IsVisible(cfg, AnswerMap{"extras": []any{}}))
	// Scalar answers fall back to equality.
	assert.True(t, IsVisible(cfg, AnswerMap{"extras": "led"}))
	assert.False(t, IsVisible(cfg, AnswerMap{"extras": "spots"}))
}

func TestIsVisible_NotIncludes(t *testing.T) {
	cfg := showWhen(VisibilityRule{QuestionKey: "extras", Operator: OpNotIncludes, Value: "led"})

	assert.False(t, IsVisible(cfg, AnswerMap{"extras": []string{"led"}}))
	assert.True(t, IsVisible(cfg, AnswerMap{"extras": []string{"spots"}}))
	assert.True(t, IsVisible(cfg, AnswerMap{}))
}

func TestIsVisible_Empty(t *testing.T) {
	empty := showWhen(VisibilityRule{QuestionKey: "note", Operator: OpIsEmpty})
	notEmpty := showWhen(VisibilityRule{QuestionKey: "note", Operator: OpIsNotEmpty})

	for _, answer := range []any{nil, "", []any{}, []string{}} {
		answers := AnswerMap{"note": answer}
		assert.True(t, IsVisible(empty, answers), "expected empty for %#v", answer)
		assert.False(t, IsVisible(notEmpty, answers), "expected not-not-empty for %#v", answer)
	}

	assert.True(t, IsVisible(empty, AnswerMap{}))
	assert.False(t, IsVisible(empty, AnswerMap{"note": "hello"}))
	assert.True(t, IsVisible(notEmpty, AnswerMap{"note": "hello"}))
	// Zero is an answered number, not an empty value.
	assert.True(t, IsVisible(notEmpty, AnswerMap{"note": float64(0)}))
}

func TestIsVisible_NumericComparisons(t *testing.T) {
	greater := showWhen(VisibilityRule{QuestionKey: "width", Operator: OpGreaterThan, Value: float64(4)})
	less := showWhen(VisibilityRule{QuestionKey: "width", Operator: OpLessThan, Value: float64(4)})

	assert.True(t, IsVisible(greater, AnswerMap{"width": float64(5)}))
	assert.False(t, IsVisible(greater, AnswerMap{"width": float64(4)}))
	assert.False(t, IsVisible(greater, AnswerMap{"width": float64(3)}))

	assert.True(t, IsVisible(less, AnswerMap{"width": float64(3)}))
	assert.False(t, IsVisible(less, AnswerMap{"width": float64(4)}))

	// Strict numeric semantics: numeric strings are not coerced.
	assert.False(t, IsVisible(greater, AnswerMap{"width": "5"}))
	assert.False(t, IsVisible(greater, AnswerMap{}))
}

func TestIsVisible_LogicAll(t *testing.T) {
	cfg := &VisibilityConfig{
		Logic: LogicAll,
		Rules: []VisibilityRule{
			{QuestionKey: "type", Operator: OpEquals, Value: "carport"},
			{QuestionKey: "width", Operator: OpGreaterThan, Value: float64(3)},
		},
	}

	assert.True(t, IsVisible(cfg, AnswerMap{"type": "carport", "width": float64(4)}))
	assert.False(t, IsVisible(cfg, AnswerMap{"type": "carport", "width": float64(2)}))
	assert.False(t, IsVisible(cfg, AnswerMap{"type": "pergola", "width": float64(4)}))
}

func TestIsVisible_LogicAny(t *testing.T) {
	cfg := &VisibilityConfig{
		Logic: LogicAny,
		Rules: []VisibilityRule{
			{QuestionKey: "type", Operator: OpEquals, Value: "carport"},
			{QuestionKey: "width", Operator: OpGreaterThan, Value: float64(3)},
		},
	}

	assert.True(t, IsVisible(cfg, AnswerMap{"type": "carport", "width": float64(2)}))
	assert.True(t, IsVisible(cfg, AnswerMap{"type": "pergola", "width": float64(4)}))
	assert.False(t, IsVisible(cfg, AnswerMap{"type": "pergola", "width": float64(2)}))
}

// Unrecognized logic values behave like "all".
func TestIsVisible_UnknownLogicDefaultsToAll(t *testing.T) {
	cfg := &VisibilityConfig{
		Logic: VisibilityLogic("sometimes"),
		Rules: []VisibilityRule{
			{QuestionKey: "a", Operator: OpEquals, Value: "1"},
			{QuestionKey: "b", Operator: OpEquals, Value: "2"},
		},
	}

	assert.True(t, IsVisible(cfg, AnswerMap{"a": "1", "b": "2"}))
	assert.False(t, IsVisible(cfg, AnswerMap{"a": "1", "b": "9"}))
}

// action: "hide" inverts the combined result for every answer map.
func TestIsVisible_HideInverts(t *testing.T) {
	rules := []VisibilityRule{{QuestionKey: "type", Operator: OpEquals, Value: "carport"}}
	show := &VisibilityConfig{Rules: rules, Logic: LogicAll}
	hide := &VisibilityConfig{Rules: rules, Logic: LogicAll, Action: ActionHide}

	for _, answers := range []AnswerMap{
		{"type": "carport"},
		{"type": "pergola"},
		{},
		{"type": []any{"carport"}},
	} {
		assert.Equal(t, !IsVisible(show, answers), IsVisible(hide, answers),
			"hide must be the exact complement for %#v", answers)
	}
}

func TestIsVisible_UnknownOperatorIsPermissive(t *testing.T) {
	cfg := showWhen(VisibilityRule{QuestionKey: "type", Operator: Operator("matches_regex"), Value: "c.*"})

	assert.True(t, IsVisible(cfg, AnswerMap{"type": "carport"}))
	assert.True(t, IsVisible(cfg, AnswerMap{}))
}

// A rule referencing a question nobody answered evaluates against nil.
func TestIsVisible_MissingReferencedAnswer(t *testing.T) {
	cfg := showWhen(VisibilityRule{QuestionKey: "ghost", Operator: OpEquals, Value: "x"})
	assert.False(t, IsVisible(cfg, AnswerMap{"other": "x"}))

	cfg = showWhen(VisibilityRule{QuestionKey: "ghost", Operator: OpIsEmpty})
	assert.True(t, IsVisible(cfg, AnswerMap{"other": "x"}))
}
