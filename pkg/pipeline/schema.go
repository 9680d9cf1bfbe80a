package pipeline

import (
	"github.com/DCODE-ARMY/Automated-Mortgage-Loan-Approval/pkg/provider"
)

// ValidationResult reports whether the application folder contains every
// required document and field.
type ValidationResult struct {
	IsValid bool `json:"is_valid"`

	MissingDocuments []string `json:"missing_documents"`
	MissingFields    []string `json:"missing_fields"`
}

// ApplicantData is the structured data extracted across all submitted
// documents.
type ApplicantData struct {
	Name    string `json:"name"`
	DOB     string `json:"dob"`
	Address string `json:"address"`

	Income        float64 `json:"income"`
	Assets        float64 `json:"assets"`
	CreditScore   int     `json:"credit_score"`
	PropertyValue float64 `json:"property_value"`

	Discrepancies []string `json:"discrepancies"`
}

// UnderwritingDecision is the final assessment produced from the extracted
// applicant data.
type UnderwritingDecision struct {
	Approved bool `json:"approved"`

	Score       float64 `json:"score"`
	Explanation string  `json:"explanation"`

	LTVRatio float64 `json:"ltv_ratio"`
	DTIRatio float64 `json:"dti_ratio"`
}

func validationSchema() *provider.Schema {
	return &provider.Schema{
		Name:        "document_validation_result",
		Description: "whether all required documents and fields are present",

		Schema: map[string]any{
			"type": "object",

			"properties": map[string]any{
				"is_valid": map[string]any{
					"type": "boolean",
				},

				"missing_documents": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},

				"missing_fields": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
			},

			"required": []string{"is_valid", "missing_documents", "missing_fields"},
		},
	}
}

func applicantSchema() *provider.Schema {
	return &provider.Schema{
		Name:        "applicant_data",
		Description: "structured applicant data extracted from the submitted documents",

		Schema: map[string]any{
			"type": "object",

			"properties": map[string]any{
				"name":    map[string]any{"type": "string"},
				"dob":     map[string]any{"type": "string", "description": "date of birth in YYYY-MM-DD format"},
				"address": map[string]any{"type": "string"},

				"income":         map[string]any{"type": "number", "description": "annual income"},
				"assets":         map[string]any{"type": "number", "description": "total asset value"},
				"credit_score":   map[string]any{"type": "integer", "minimum": 300, "maximum": 850},
				"property_value": map[string]any{"type": "number", "description": "appraised property value"},

				"discrepancies": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
			},

			"required": []string{"name", "dob", "address", "income", "assets", "credit_score", "property_value", "discrepancies"},
		},
	}
}

func decisionSchema() *provider.Schema {
	return &provider.Schema{
		Name:        "underwriting_decision",
		Description: "loan approval decision with creditworthiness score and ratios",

		Schema: map[string]any{
			"type": "object",

			"properties": map[string]any{
				"approved": map[string]any{"type": "boolean"},

				"score":       map[string]any{"type": "number", "minimum": 0, "maximum": 100},
				"explanation": map[string]any{"type": "string"},

				"ltv_ratio": map[string]any{"type": "number", "description": "loan-to-value ratio in percent"},
				"dti_ratio": map[string]any{"type": "number", "description": "debt-to-income ratio in percent"},
			},

			"required": []string{"approved", "score", "explanation", "ltv_ratio", "dti_ratio"},
		},
	}
}
