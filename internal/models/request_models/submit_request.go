package request_models

type ContactDetails struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// SubmitQuoteRequest carries the finished configuration plus contact
// details from the wizard's final step.
type SubmitQuoteRequest struct {
	ProductSlug string         `json:"product_slug"`
	Answers     map[string]any `json:"answers"`
	Contact     ContactDetails `json:"contact"`
	Site        string         `json:"site"`
}
