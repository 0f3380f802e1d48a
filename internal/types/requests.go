package types

import (
	"github.com/go-playground/validator/v10"
)

// EvaluateRequest is the single inbound evaluation request: one application
// against one job posting.
type EvaluateRequest struct {
	ApplicationID        string `json:"application_id" validate:"required,min=1"`
	CVText               string `json:"cv_text"`
	ScreeningAnswersText string `json:"screening_answers_text"`
	AvailabilityText     string `json:"availability_text"`
	JobDescriptionText   string `json:"job_description_text"`
	JobID                string `json:"job_id" validate:"required,min=1"`
	LocationID           string `json:"location_id"`
}

// EvaluateResponse is the result surface returned to the caller for display.
type EvaluateResponse struct {
	ExecutionID  string         `json:"execution_id"`
	Status       DecisionStatus `json:"status"`
	Score        int            `json:"score"`
	Confidence   int            `json:"confidence"`
	Rationale    string         `json:"rationale,omitempty"`
	MissingItems []string       `json:"missing_items,omitempty"`
	ReasonCode   string         `json:"reason_code,omitempty"`
}

// Validate validates the EvaluateRequest using the validator.
func (r *EvaluateRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Application converts the request into the immutable Application artifact.
func (r *EvaluateRequest) Application() Application {
	return Application{
		ApplicationID:        r.ApplicationID,
		CVText:               r.CVText,
		ScreeningAnswersText: r.ScreeningAnswersText,
		AvailabilityText:     r.AvailabilityText,
		JobID:                r.JobID,
	}
}
