package request_models

// CalculateRequest is the public price estimate payload. Answers is the
// raw question_key -> value map from the wizard; values are strings,
// string lists or numbers.
type CalculateRequest struct {
	ProductSlug string         `json:"product_slug"`
	Answers     map[string]any `json:"answers"`
	Site        string         `json:"site"`
}
