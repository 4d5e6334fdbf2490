package configurator

// QuestionType discriminates how a question is answered and priced.
type QuestionType string

const (
	QuestionTypeSingleSelect QuestionType = "single-select"
	QuestionTypeMultiSelect  QuestionType = "multi-select"
	QuestionTypeText         QuestionType = "text"
	QuestionTypeNumber       QuestionType = "number"
)

// Operator is the closed set of visibility rule operators. Unknown values
// are still accepted at runtime and evaluate permissively (see IsVisible).
type Operator string

const (
	OpEquals      Operator = "equals"
	OpNotEquals   Operator = "not_equals"
	OpIncludes    Operator = "includes"
	OpNotIncludes Operator = "not_includes"
	OpIsEmpty     Operator = "is_empty"
	OpIsNotEmpty  Operator = "is_not_empty"
	OpGreaterThan Operator = "greater_than"
	OpLessThan    Operator = "less_than"
)

// VisibilityLogic combines the per-rule results.
type VisibilityLogic string

const (
	LogicAll VisibilityLogic = "all"
	LogicAny VisibilityLogic = "any"
)

// VisibilityAction optionally inverts the combined result.
type VisibilityAction string

const (
	ActionShow VisibilityAction = "show"
	ActionHide VisibilityAction = "hide"
)

// VisibilityRule references another question's answer. Rules are authored
// in the admin panel; they must not reference the question they belong to,
// but that is a convention, not something evaluated here.
type VisibilityRule struct {
	QuestionKey string   `json:"questionKey"`
	Operator    Operator `json:"operator"`
	Value       any      `json:"value,omitempty"`
}

// VisibilityConfig attaches to a question or to an individual option.
// An empty rule list means always visible.
type VisibilityConfig struct {
	Rules  []VisibilityRule `json:"rules"`
	Logic  VisibilityLogic  `json:"logic"`
	Action VisibilityAction `json:"action,omitempty"`
}

// QuestionOption is one selectable choice of a select-type question.
// Price resolution precedence: catalogue reference, then explicit
// min/max, then the deprecated flat modifier, then no contribution.
type QuestionOption struct {
	Value           string  `json:"value"`
	Label           string  `json:"label"`
	Image           string  `json:"image,omitempty"`
	CatalogueItemID string  `json:"catalogueItemId,omitempty"`
	PriceModifierMin *int64 `json:"priceModifierMin,omitempty"`
	PriceModifierMax *int64 `json:"priceModifierMax,omitempty"`
	// Deprecated: flat amount applied to both bounds. Use CatalogueItemID
	// or PriceModifierMin/Max instead.
	PriceModifier   *int64            `json:"priceModifier,omitempty"`
	VisibilityRules *VisibilityConfig `json:"visibility_rules,omitempty"`
}

// Question is the read-only definition the engine works against.
type Question struct {
	QuestionKey     string            `json:"question_key"`
	Label           string            `json:"label"`
	Type            QuestionType      `json:"type"`
	Options         []QuestionOption  `json:"options,omitempty"`
	Required        bool              `json:"required"`
	VisibilityRules *VisibilityConfig `json:"visibility_rules,omitempty"`
	// Per-unit pricing, only meaningful for number questions. Zero means
	// not configured (authored zero and absent are equivalent).
	PricePerUnitMin int64  `json:"price_per_unit_min,omitempty"`
	PricePerUnitMax int64  `json:"price_per_unit_max,omitempty"`
	CatalogueItemID string `json:"catalogue_item_id,omitempty"`
}

// Catalogue units. An empty unit prices flat, like "per stuk".
const (
	UnitPerPiece       = "per stuk"
	UnitPerMeter       = "per m"
	UnitPerSquareMeter = "per m²"
)

// CatalogueItem is shared priced reference data. Prices are integer cents.
type CatalogueItem struct {
	ID       string `json:"id"`
	PriceMin int64  `json:"price_min"`
	PriceMax int64  `json:"price_max"`
	Unit     string `json:"unit,omitempty"`
}

// PriceModifier is the deprecated pricing path: a flat amount keyed on a
// question/option pair, applied on top of option-native pricing.
type PriceModifier struct {
	QuestionKey string `json:"questionKey"`
	OptionValue string `json:"optionValue"`
	Modifier    int64  `json:"modifier"`
}

// Pricing is the per-product pricing definition. Base prices are integer
// cents; min <= max is expected but never enforced here.
type Pricing struct {
	BasePriceMin   int64           `json:"base_price_min"`
	BasePriceMax   int64           `json:"base_price_max"`
	PriceModifiers []PriceModifier `json:"price_modifiers,omitempty"`
}

// AnswerMap holds the user's current selections keyed by question key.
// Values arrive from JSON as string, []any/[]string or float64. The engine
// never mutates it.
type AnswerMap map[string]any

// BreakdownLine is one priced contribution. Amount is the min-side value
// in cents; unit-scaled amounts can carry fractional cents, which is why
// this is a float (display formatting rounds, the engine does not).
type BreakdownLine struct {
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

// PriceBreakdown explains how a total was reached.
type PriceBreakdown struct {
	BaseMin   int64           `json:"base_min"`
	BaseMax   int64           `json:"base_max"`
	Modifiers []BreakdownLine `json:"modifiers"`
}

// PriceResult is the engine output, recomputed on every call.
type PriceResult struct {
	Min       float64        `json:"min"`
	Max       float64        `json:"max"`
	Breakdown PriceBreakdown `json:"breakdown"`
}

// ZeroResult is the documented "no pricing configured" signal. Callers that
// cannot resolve a pricing definition return this instead of an error.
func ZeroResult() PriceResult {
	return PriceResult{
		Breakdown: PriceBreakdown{Modifiers: []BreakdownLine{}},
	}
}

// OptionByValue finds the option matching a selected value, or nil.
func (q Question) OptionByValue(value string) *QuestionOption {
	for i := range q.Options {
		if q.Options[i].Value == value {
			return &q.Options[i]
		}
	}
	return nil
}
