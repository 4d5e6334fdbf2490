package response_models

// PriceDetails mirrors the public calculate contract: the wizard only
// advertises the lower bound plus its "Vanaf" label.
type PriceDetails struct {
	Min            float64 `json:"min"`
	MinFormatted   string  `json:"min_formatted"`
	RangeFormatted string  `json:"range_formatted"`
}

type CalculateResponse struct {
	Price PriceDetails `json:"price"`
}
