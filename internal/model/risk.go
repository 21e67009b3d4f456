package model

// RiskLevel is the triage tier of an assessment.
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskModerate RiskLevel = "moderate"
	RiskHigh     RiskLevel = "high"
)

// RiskResult is the outcome of scoring a session's answers. It is computed
// on demand and never persisted.
type RiskResult struct {
	RiskLevel         RiskLevel `json:"riskLevel"`
	Score             int       `json:"score"`
	MaxScore          int       `json:"maxScore"`
	Concerns          []string  `json:"concerns"` // Question ids answered with a concern option
	RecommendationKey string    `json:"recommendationKey"`
	MessageKey        string    `json:"messageKey"`
}
