package schemas

import "time"

// Pagination is the listing metadata shared by portfolio and transaction
// endpoints. Limit is null when the caller did not page.
type Pagination struct {
	Offset     int   `json:"offset"`
	Limit      *int  `json:"limit"`
	TotalCount int64 `json:"totalCount"`
	HasMore    bool  `json:"hasMore"`
}

// PortfolioSummary is the aggregate view over all of a user's holdings.
type PortfolioSummary struct {
	TotalInvested             float64 `json:"totalInvested"`
	TotalCurrentValue         float64 `json:"totalCurrentValue"`
	TotalProfitLoss           float64 `json:"totalProfitLoss"`
	TotalProfitLossPercentage float64 `json:"totalProfitLossPercentage"`
	InvestmentCount           int     `json:"investmentCount"`
	TotalCount                int64   `json:"totalCount"`
}

type PortfolioResponse struct {
	Investments []InvestmentResponse `json:"investments"`
	Summary     PortfolioSummary     `json:"summary"`
	Pagination  Pagination           `json:"pagination"`
}

// PortfolioOverview is the summary without the holding list.
type PortfolioOverview struct {
	TotalInvested             float64 `json:"totalInvested"`
	CurrentValue              float64 `json:"currentValue"`
	TotalProfitLoss           float64 `json:"totalProfitLoss"`
	TotalProfitLossPercentage float64 `json:"totalProfitLossPercentage"`
	InvestmentCount           int     `json:"investmentCount"`
}

// AllocationGroup is one asset class slice of the portfolio valuation.
type AllocationGroup struct {
	Type       string  `json:"type"`
	Value      float64 `json:"value"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// InvestmentPerformance is the per-holding row of the performance view.
type InvestmentPerformance struct {
	ID                   uint    `json:"id"`
	Symbol               string  `json:"symbol"`
	Name                 string  `json:"name"`
	Type                 string  `json:"type"`
	ProfitLoss           float64 `json:"profitLoss"`
	ProfitLossPercentage float64 `json:"profitLossPercentage"`
	CurrentValue         float64 `json:"currentValue"`
	TotalInvested        float64 `json:"totalInvested"`
	TransactionCount     int     `json:"transactionCount"`
	Fees                 float64 `json:"fees"`
}

// PortfolioMetrics aggregates the performance window.
type PortfolioMetrics struct {
	TotalInvested             float64                `json:"totalInvested"`
	CurrentValue              float64                `json:"currentValue"`
	TotalProfitLoss           float64                `json:"totalProfitLoss"`
	TotalProfitLossPercentage float64                `json:"totalProfitLossPercentage"`
	BestPerformer             *InvestmentPerformance `json:"bestPerformer"`
	WorstPerformer            *InvestmentPerformance `json:"worstPerformer"`
	TotalFees                 float64                `json:"totalFees"`
	TransactionCount          int                    `json:"transactionCount"`
	BuyTransactions           int                    `json:"buyTransactions"`
	SellTransactions          int                    `json:"sellTransactions"`
}

type PerformanceResponse struct {
	Success                bool                    `json:"success"`
	Period                 string                  `json:"period"`
	StartDate              time.Time               `json:"startDate"`
	EndDate                time.Time               `json:"endDate"`
	PortfolioMetrics       PortfolioMetrics        `json:"portfolioMetrics"`
	InvestmentPerformances []InvestmentPerformance `json:"investmentPerformances"`
}
