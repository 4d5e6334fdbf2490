package configurator

import (
	"fmt"
	"strconv"
)

// CalculatePrice combines the base price with per-answer modifiers into a
// price range and line-item breakdown. Pure function over its arguments;
// callers own loading (and caching) of the definitions.
//
// Two pricing passes feed one running total: option-native pricing
// (catalogue reference, explicit min/max, or the deprecated flat modifier)
// and the deprecated pricing.PriceModifiers list. Both can fire for the
// same answer when both are configured; deduplication is an authoring
// responsibility.
//
// Dangling references never fail: answers for unknown questions and
// options pointing at deleted catalogue items contribute nothing. Admin
// edits must not crash in-flight wizard sessions.
//
// Answers are visited in question-definition order, then legacy modifiers
// in authored order, so identical inputs produce identical breakdowns.
func CalculatePrice(pricing Pricing, questions []Question, answers AnswerMap, catalogue []CatalogueItem) PriceResult {
	catalogueByID := make(map[string]CatalogueItem, len(catalogue))
	for _, item := range catalogue {
		catalogueByID[item.ID] = item
	}
	questionByKey := make(map[string]Question, len(questions))
	for _, q := range questions {
		questionByKey[q.QuestionKey] = q
	}

	area := inferArea(answers)
	length := inferLength(answers)

	var totalModifierMin, totalModifierMax float64
	breakdown := []BreakdownLine{}

	addOption := func(opt *QuestionOption) {
		min, max, ok := resolveOptionPrice(opt, catalogueByID, area, length)
		if !ok {
			return
		}
		totalModifierMin += min
		totalModifierMax += max
		breakdown = append(breakdown, BreakdownLine{
			Label:  optionBreakdownLabel(opt, catalogueByID, area, length),
			Amount: min,
		})
	}

	for _, q := range questions {
		answer, answered := answers[q.QuestionKey]
		if !answered || answer == nil {
			continue
		}

		switch q.Type {
		case QuestionTypeSingleSelect:
			selected, ok := answer.(string)
			if !ok {
				continue
			}
			if opt := q.OptionByValue(selected); opt != nil {
				addOption(opt)
			}

		case QuestionTypeMultiSelect:
			list, ok := answerList(answer)
			if !ok {
				continue
			}
			for _, selected := range list {
				if opt := q.OptionByValue(selected); opt != nil {
					addOption(opt)
				}
			}

		case QuestionTypeNumber:
			quantity, ok := numericValue(answer)
			if !ok {
				continue
			}
			// Dimension answers are consumed by area/length inference only.
			if isDimensionKey(q.QuestionKey) {
				continue
			}
			if q.PricePerUnitMin != 0 || q.PricePerUnitMax != 0 {
				perUnitMin := q.PricePerUnitMin
				perUnitMax := q.PricePerUnitMax
				if perUnitMax == 0 {
					perUnitMax = perUnitMin
				}
				totalModifierMin += float64(perUnitMin) * quantity
				totalModifierMax += float64(perUnitMax) * quantity
				breakdown = append(breakdown, BreakdownLine{
					Label:  fmt.Sprintf("%s: %s", q.Label, stringifyAnswer(answer)),
					Amount: float64(perUnitMin) * quantity,
				})
			}
		}
	}

	// Deprecated modifier list, applied on top of option-native pricing.
	for _, modifier := range pricing.PriceModifiers {
		answer := answers[modifier.QuestionKey]
		if answer == nil {
			continue
		}

		matched := false
		if selected, ok := answer.(string); ok {
			matched = selected == modifier.OptionValue
		} else if list, ok := answerList(answer); ok {
			matched = containsString(list, modifier.OptionValue)
		}
		if !matched {
			continue
		}

		totalModifierMin += float64(modifier.Modifier)
		totalModifierMax += float64(modifier.Modifier)

		label := modifier.OptionValue
		if q, ok := questionByKey[modifier.QuestionKey]; ok {
			if opt := q.OptionByValue(modifier.OptionValue); opt != nil {
				label = opt.Label
			}
		}
		breakdown = append(breakdown, BreakdownLine{
			Label:  label,
			Amount: float64(modifier.Modifier),
		})
	}

	return PriceResult{
		Min: float64(pricing.BasePriceMin) + totalModifierMin,
		Max: float64(pricing.BasePriceMax) + totalModifierMax,
		Breakdown: PriceBreakdown{
			BaseMin:   pricing.BasePriceMin,
			BaseMax:   pricing.BasePriceMax,
			Modifiers: breakdown,
		},
	}
}

// resolveOptionPrice resolves an option's contribution in cents.
//
// A catalogue reference takes precedence; its price is scaled by area for
// "per m²" items and by length for "per m" items when the dimension is
// known, flat otherwise. A reference to a deleted item contributes
// nothing, even when manual prices are also set. Without a reference the
// explicit min/max apply (max falls back to min), then the deprecated flat
// modifier. ok is false when the option carries no price at all.
func resolveOptionPrice(opt *QuestionOption, catalogueByID map[string]CatalogueItem, area, length float64) (min, max float64, ok bool) {
	if opt.CatalogueItemID != "" {
		item, found := catalogueByID[opt.CatalogueItemID]
		if !found {
			return 0, 0, false
		}
		min = float64(item.PriceMin)
		max = float64(item.PriceMax)
		if item.Unit == UnitPerSquareMeter && area > 0 {
			return min * area, max * area, true
		}
		if item.Unit == UnitPerMeter && length > 0 {
			return min * length, max * length, true
		}
		return min, max, true
	}

	if opt.PriceModifierMin != nil || opt.PriceModifierMax != nil {
		minCents := centsOrZero(opt.PriceModifierMin)
		maxCents := centsOrZero(opt.PriceModifierMax)
		if maxCents == 0 {
			maxCents = minCents
		}
		return float64(minCents), float64(maxCents), true
	}

	if opt.PriceModifier != nil {
		return float64(*opt.PriceModifier), float64(*opt.PriceModifier), true
	}

	return 0, 0, false
}

// optionBreakdownLabel annotates the option label with the applied
// dimension when a per-unit catalogue price was scaled.
func optionBreakdownLabel(opt *QuestionOption, catalogueByID map[string]CatalogueItem, area, length float64) string {
	if opt.CatalogueItemID == "" {
		return opt.Label
	}
	item, found := catalogueByID[opt.CatalogueItemID]
	if !found {
		return opt.Label
	}
	if item.Unit == UnitPerSquareMeter && area > 0 {
		return fmt.Sprintf("%s (%.1f m²)", opt.Label, area)
	}
	if item.Unit == UnitPerMeter && length > 0 {
		return fmt.Sprintf("%s (%s m)", opt.Label, strconv.FormatFloat(length, 'f', -1, 64))
	}
	return opt.Label
}

func centsOrZero(v *int64) int64 {
	if v == nil {
		return 0
	}
	return *v
}
