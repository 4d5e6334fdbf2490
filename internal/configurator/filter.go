package configurator

// FilterVisibleAnswers strips answers that belong to questions or options
// currently hidden by visibility rules. The HTTP boundary runs this before
// pricing as the authoritative server-side guard; the wizard applies the
// same rules client-side for rendering only.
//
// Visibility is evaluated against the unfiltered map, so rules chained on
// answers of hidden questions behave the same as in the wizard. Answers
// referencing unknown question keys pass through untouched; the price
// engine skips those on its own.
func FilterVisibleAnswers(questions []Question, answers AnswerMap) AnswerMap {
	byKey := make(map[string]Question, len(questions))
	for _, q := range questions {
		byKey[q.QuestionKey] = q
	}

	filtered := make(AnswerMap, len(answers))
	for key, value := range answers {
		q, known := byKey[key]
		if !known {
			filtered[key] = value
			continue
		}
		if !IsVisible(q.VisibilityRules, answers) {
			continue
		}

		switch q.Type {
		case QuestionTypeSingleSelect:
			if opt := q.OptionByValue(stringifyAnswer(value)); opt != nil && !IsVisible(opt.VisibilityRules, answers) {
				continue
			}
			filtered[key] = value

		case QuestionTypeMultiSelect:
			list, ok := answerList(value)
			if !ok {
				filtered[key] = value
				continue
			}
			kept := make([]string, 0, len(list))
			for _, selected := range list {
				opt := q.OptionByValue(selected)
				if opt != nil && !IsVisible(opt.VisibilityRules, answers) {
					continue
				}
				kept = append(kept, selected)
			}
			if len(kept) > 0 {
				filtered[key] = kept
			}

		default:
			filtered[key] = value
		}
	}
	return filtered
}
