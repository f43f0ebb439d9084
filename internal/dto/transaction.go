package dto

import "expense-explorer/internal/models"

type TransactionListResponse struct {
	Transactions []models.Transaction `json:"transactions"`
	Count        int                  `json:"count"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type StatusResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}
