package models

import "github.com/shopspring/decimal"

type VisualizationType string

const (
	VisualizationVenn         VisualizationType = "venn"
	VisualizationIntersection VisualizationType = "intersection"
	VisualizationBar          VisualizationType = "bar"
	VisualizationLine         VisualizationType = "line"
	VisualizationMetric       VisualizationType = "metric"
)

// Visualization is chart-ready data attached to a conversational answer.
type Visualization struct {
	Type        VisualizationType `json:"type"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Data        any               `json:"data"`
}

type DataPoint struct {
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
	Count  int             `json:"count"`
}

type Answer struct {
	Answer         string          `json:"answer"`
	Visualizations []Visualization `json:"visualizations"`
	DataPoints     []DataPoint     `json:"data_points"`
}
