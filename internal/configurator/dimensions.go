package configurator

import (
	"sort"
	"strings"
)

// Dimension inference scans numeric answers for length/width/height style
// keys so catalogue items priced "per m" or "per m²" can be scaled. The
// term sets cover the English and Dutch spellings the admin panel uses.
// Matching is best effort: exact key match wins, then case-insensitive
// substring. When several answer keys match the same term set the
// lexicographically first one is taken; authors are expected to keep
// dimension keys unique.
var (
	lengthTerms = []string{"length", "lengte"}
	widthTerms  = []string{"width", "breedte"}
	heightTerms = []string{"height", "hoogte"}
)

func dimensionValue(answers AnswerMap, terms []string) float64 {
	for _, term := range terms {
		if v, ok := numericValue(answers[term]); ok && v > 0 {
			return v
		}
	}

	keys := make([]string, 0, len(answers))
	for key := range answers {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		v, ok := numericValue(answers[key])
		if !ok || v <= 0 {
			continue
		}
		lowerKey := strings.ToLower(key)
		for _, term := range terms {
			if strings.Contains(lowerKey, term) {
				return v
			}
		}
	}
	return 0
}

// inferLength resolves the length dimension, 0 when absent.
func inferLength(answers AnswerMap) float64 {
	return dimensionValue(answers, lengthTerms)
}

// inferArea combines two dimensions into square meters, preferring
// length×width, then length×height, then width×height. Fewer than two
// resolved dimensions yield 0.
func inferArea(answers AnswerMap) float64 {
	length := dimensionValue(answers, lengthTerms)
	width := dimensionValue(answers, widthTerms)
	height := dimensionValue(answers, heightTerms)

	switch {
	case length > 0 && width > 0:
		return length * width
	case length > 0 && height > 0:
		return length * height
	case width > 0 && height > 0:
		return width * height
	default:
		return 0
	}
}

// isDimensionKey reports whether a number question's key names a dimension.
// Dimension answers feed area/length inference and are never priced
// directly.
func isDimensionKey(questionKey string) bool {
	lowerKey := strings.ToLower(questionKey)
	for _, terms := range [][]string{lengthTerms, widthTerms, heightTerms} {
		for _, term := range terms {
			if strings.Contains(lowerKey, term) {
				return true
			}
		}
	}
	return false
}
