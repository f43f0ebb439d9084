package dto

import "expense-explorer/internal/service"

type SyncResponse struct {
	Message  string `json:"message"`
	Location string `json:"location"`
	Records  int    `json:"records"`
	Skipped  int    `json:"skipped"`
	Warnings int    `json:"warnings"`
	Sample   bool   `json:"sample"`
}

func NewSyncResponse(message string, r service.SyncResult) SyncResponse {
	return SyncResponse{
		Message:  message,
		Location: r.Location,
		Records:  r.Records,
		Skipped:  r.Skipped,
		Warnings: r.Warnings,
		Sample:   r.Sample,
	}
}
