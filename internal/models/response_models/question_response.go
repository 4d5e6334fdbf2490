package response_models

import "vpgquote/internal/configurator"

// QuestionResponse is the wizard-facing question shape. Subtitle maps to
// description for frontend compatibility.
type QuestionResponse struct {
	QuestionKey string                        `json:"question_key"`
	Label       string                        `json:"label"`
	Type        string                        `json:"type"`
	DisplayType string                        `json:"display_type"`
	Options     []configurator.QuestionOption `json:"options"`
	Required    bool                          `json:"required"`
	Description *string                       `json:"description,omitempty"`
	StepID      *string                       `json:"step_id,omitempty"`
}

type StepResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	OrderRank   int     `json:"order_rank"`
}

type QuestionListResponse struct {
	Questions []QuestionResponse `json:"questions"`
	Steps     []StepResponse     `json:"steps,omitempty"`
	Source    string             `json:"source"`
}
