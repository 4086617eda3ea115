package schemas

import "time"

type CreateTransactionRequest struct {
	InvestmentID uint     `json:"investment_id"`
	Type         string   `json:"type"`
	Amount       float64  `json:"amount"`
	Price        float64  `json:"price"`
	Date         *Date    `json:"date,omitempty"`
	Fees         *float64 `json:"fees,omitempty"`
	Notes        string   `json:"notes,omitempty"`
}

// UpdateTransactionRequest replaces the mutable fields of a transaction;
// nil means "leave unchanged".
type UpdateTransactionRequest struct {
	Type   *string  `json:"type,omitempty"`
	Amount *float64 `json:"amount,omitempty"`
	Price  *float64 `json:"price,omitempty"`
	Date   *Date    `json:"date,omitempty"`
	Fees   *float64 `json:"fees,omitempty"`
	Notes  *string  `json:"notes,omitempty"`
}

type TransactionResponse struct {
	ID           uint           `json:"id"`
	InvestmentID uint           `json:"investmentId"`
	Type         string         `json:"type"`
	Amount       float64        `json:"amount"`
	Price        float64        `json:"price"`
	TotalValue   float64        `json:"totalValue"`
	Fees         float64        `json:"fees"`
	NetValue     float64        `json:"netValue"`
	Date         time.Time      `json:"date"`
	Notes        string         `json:"notes,omitempty"`
	Investment   *InvestmentRef `json:"investment,omitempty"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}

type CreateTransactionResponse struct {
	Success     bool                 `json:"success"`
	Message     string               `json:"message"`
	Transaction *TransactionResponse `json:"transaction"`
}

type ListTransactionsResponse struct {
	Success      bool                  `json:"success"`
	Transactions []TransactionResponse `json:"transactions"`
	Pagination   Pagination            `json:"pagination"`
}
