package dto

import "expense-explorer/internal/models"

type QueryRequest struct {
	Question string         `json:"question"`
	Context  map[string]any `json:"context,omitempty"`
}

type QueryResponse struct {
	Answer         string                 `json:"answer"`
	Visualizations []models.Visualization `json:"visualizations"`
	DataPoints     []models.DataPoint     `json:"data_points"`
}

func NewQueryResponse(a models.Answer) QueryResponse {
	return QueryResponse{
		Answer:         a.Answer,
		Visualizations: a.Visualizations,
		DataPoints:     a.DataPoints,
	}
}
