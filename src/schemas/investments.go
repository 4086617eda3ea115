package schemas

import "time"

type CreateInvestmentRequest struct {
	Symbol         string   `json:"symbol"`
	Name           string   `json:"name"`
	Quantity       float64  `json:"quantity"`
	PurchasePrice  float64  `json:"purchasePrice"`
	CurrentPrice   *float64 `json:"currentPrice,omitempty"`
	InvestmentType string   `json:"investmentType"`
	PurchaseDate   *Date    `json:"purchaseDate,omitempty"`
}

// UpdateInvestmentRequest carries only the fields present in the request;
// nil means "leave unchanged".
type UpdateInvestmentRequest struct {
	Symbol         *string  `json:"symbol,omitempty"`
	Name           *string  `json:"name,omitempty"`
	Quantity       *float64 `json:"quantity,omitempty"`
	PurchasePrice  *float64 `json:"purchasePrice,omitempty"`
	CurrentPrice   *float64 `json:"currentPrice,omitempty"`
	InvestmentType *string  `json:"investmentType,omitempty"`
	PurchaseDate   *Date    `json:"purchaseDate,omitempty"`
}

// InvestmentResponse is a holding with its derived performance metrics,
// money and percentage fields rounded at the boundary.
type InvestmentResponse struct {
	ID                   uint      `json:"id"`
	Name                 string    `json:"name"`
	Symbol               string    `json:"symbol"`
	Type                 string    `json:"type"`
	Quantity             float64   `json:"quantity"`
	PurchasePrice        float64   `json:"purchasePrice"`
	CurrentValue         float64   `json:"currentValue"`
	PurchaseDate         time.Time `json:"purchaseDate"`
	TotalInvested        float64   `json:"totalInvested"`
	ProfitLoss           float64   `json:"profitLoss"`
	ProfitLossPercentage float64   `json:"profitLossPercentage"`
	CurrentPricePerUnit  float64   `json:"currentPricePerUnit"`
	CreatedAt            time.Time `json:"createdAt"`
	UpdatedAt            time.Time `json:"updatedAt"`
}

// InvestmentRef is the short form embedded in transaction responses.
type InvestmentRef struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
	Type   string `json:"type"`
}

type CreateInvestmentResponse struct {
	Success    bool                `json:"success"`
	Message    string              `json:"message"`
	Investment *InvestmentResponse `json:"investment"`
}

type DeleteInvestmentResponse struct {
	Success           bool           `json:"success"`
	Message           string         `json:"message"`
	DeletedInvestment *InvestmentRef `json:"deletedInvestment"`
}
