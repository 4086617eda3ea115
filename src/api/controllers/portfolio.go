package controllers

import (
	"context"

	"portfolio-server/src/repositories"
	"portfolio-server/src/schemas"
	"portfolio-server/src/utils"
)

// GetPortfolio returns the holdings with derived metrics plus the portfolio
// summary and pagination metadata.
func (c *Controller) GetPortfolio(ctx context.Context, userID uint, opts repositories.ListOptions) (*schemas.PortfolioResponse, error) {
	investments, err := c.Investments.ListByUser(ctx, userID, opts)
	if err != nil {
		return nil, err
	}
	totalCount, err := c.Investments.CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	responses := make([]schemas.InvestmentResponse, 0, len(investments))
	for i := range investments {
		responses = append(responses, c.Portfolio.InvestmentResponse(&investments[i]))
	}

	hasMore := false
	if opts.Limit != nil {
		hasMore = int64(opts.Offset+*opts.Limit) < totalCount
	}

	return &schemas.PortfolioResponse{
		Investments: responses,
		Summary:     c.Portfolio.Summarize(investments, totalCount),
		Pagination: schemas.Pagination{
			Offset:     opts.Offset,
			Limit:      opts.Limit,
			TotalCount: totalCount,
			HasMore:    hasMore,
		},
	}, nil
}

func (c *Controller) GetOverview(ctx context.Context, userID uint) (*schemas.PortfolioOverview, error) {
	investments, err := c.Investments.ListByUser(ctx, userID, repositories.ListOptions{})
	if err != nil {
		return nil, err
	}
	overview := c.Portfolio.Overview(investments)
	return &overview, nil
}

func (c *Controller) GetAllocation(ctx context.Context, userID uint) ([]schemas.AllocationGroup, error) {
	investments, err := c.Investments.ListByUser(ctx, userID, repositories.ListOptions{})
	if err != nil {
		return nil, err
	}
	return c.Portfolio.Allocate(investments), nil
}

func (c *Controller) GetPerformance(ctx context.Context, userID uint, period utils.Period) (*schemas.PerformanceResponse, error) {
	investments, err := c.Investments.ListByUser(ctx, userID, repositories.ListOptions{})
	if err != nil {
		return nil, err
	}
	transactions, err := c.Transactions.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	performance := c.Portfolio.Performance(investments, transactions, period, c.now())
	return &performance, nil
}
