package configurator

// IsVisible evaluates a visibility rule set against the current answers.
//
// Returns true when cfg is nil or has no rules. Otherwise every rule is
// evaluated and the results are combined with the configured logic ("all"
// is AND, anything else defaults to it; "any" is OR). When the action is
// "hide" the combined result is inverted: the rules describe when to hide
// rather than when to show.
//
// The function is pure and never fails: missing answers, type mismatches
// and unknown operators all degrade to documented defaults. The wizard
// calls this on every keystroke, the HTTP boundary calls it per request.
func IsVisible(cfg *VisibilityConfig, answers AnswerMap) bool {
	if cfg == nil || len(cfg.Rules) == 0 {
		return true
	}

	var match bool
	if cfg.Logic == LogicAny {
		for _, rule := range cfg.Rules {
			if evaluateRule(rule, answers) {
				match = true
				break
			}
		}
	} else {
		match = true
		for _, rule := range cfg.Rules {
			if !evaluateRule(rule, answers) {
				match = false
				break
			}
		}
	}

	if cfg.Action == ActionHide {
		return !match
	}
	return match
}

func evaluateRule(rule VisibilityRule, answers AnswerMap) bool {
	answer := answers[rule.QuestionKey]

	switch rule.Operator {
	case OpIsEmpty:
		return isEmptyAnswer(answer)

	case OpIsNotEmpty:
		return !isEmptyAnswer(answer)

	case OpEquals:
		// Deliberate stringified comparison: authored rule values may
		// arrive as strings from JSON even for numeric answers.
		return stringifyAnswer(answer) == stringifyAnswer(rule.Value)

	case OpNotEquals:
		return stringifyAnswer(answer) != stringifyAnswer(rule.Value)

	case OpIncludes:
		if list, ok := answerList(answer); ok {
			return containsString(list, stringifyAnswer(rule.Value))
		}
		return stringifyAnswer(answer) == stringifyAnswer(rule.Value)

	case OpNotIncludes:
		if list, ok := answerList(answer); ok {
			return !containsString(list, stringifyAnswer(rule.Value))
		}
		return stringifyAnswer(answer) != stringifyAnswer(rule.Value)

	case OpGreaterThan:
		a, aok := numericValue(answer)
		v, vok := numericValue(rule.Value)
		return aok && vok && a > v

	case OpLessThan:
		a, aok := numericValue(answer)
		v, vok := numericValue(rule.Value)
		return aok && vok && a < v

	default:
		// Unknown operator: permissive default, the question stays visible.
		return true
	}
}
