package models

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Confidence is the fixed score attached to each priority tier.
func (p Priority) Confidence() float64 {
	switch p {
	case PriorityHigh:
		return 0.9
	case PriorityMedium:
		return 0.8
	default:
		return 0.7
	}
}

type Insight struct {
	Category        string         `json:"category"`
	Title           string         `json:"title"`
	Description     string         `json:"description"`
	Recommendation  string         `json:"recommendation"`
	DataSupport     map[string]any `json:"data_support"`
	ConfidenceScore float64        `json:"confidence_score"`
	Priority        Priority       `json:"priority"`
}
