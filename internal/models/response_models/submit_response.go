package response_models

type SubmitPriceDetails struct {
	Min          float64 `json:"min"`
	Max          float64 `json:"max"`
	MinFormatted string  `json:"min_formatted"`
	MaxFormatted string  `json:"max_formatted"`
}

// EmailStatus reports per-channel delivery: a failed notification never
// fails the submission.
type EmailStatus struct {
	Customer bool `json:"customer"`
	Admin    bool `json:"admin"`
}

type SubmitQuoteResponse struct {
	Success      bool               `json:"success"`
	SubmissionID string             `json:"submission_id"`
	Price        SubmitPriceDetails `json:"price"`
	Emails       EmailStatus        `json:"emails"`
}
