package services

import (
	"time"

	"portfolio-server/src/models"
	"portfolio-server/src/schemas"
	"portfolio-server/src/utils"
)

// PortfolioService derives the read-only aggregate views from current
// holding and transaction state. Nothing here is persisted; every method is
// a pure function of its inputs. Money and percentage outputs are rounded to
// 2 decimal places, intermediate sums keep full precision.
type PortfolioService struct{}

func NewPortfolioService() *PortfolioService {
	return &PortfolioService{}
}

// InvestmentResponse renders one holding with its derived metrics.
func (s *PortfolioService) InvestmentResponse(investment *models.Investment) schemas.InvestmentResponse {
	return schemas.InvestmentResponse{
		ID:                   investment.ID,
		Name:                 investment.Name,
		Symbol:               investment.Symbol,
		Type:                 string(investment.Type),
		Quantity:             investment.Quantity,
		PurchasePrice:        investment.PurchasePrice,
		CurrentValue:         investment.CurrentValue,
		PurchaseDate:         investment.PurchaseDate,
		TotalInvested:        utils.Round2(investment.TotalInvested()),
		ProfitLoss:           utils.Round2(investment.ProfitLoss()),
		ProfitLossPercentage: utils.Round2(investment.ProfitLossPercentage()),
		CurrentPricePerUnit:  utils.Round2(investment.CurrentPricePerUnit()),
		CreatedAt:            investment.CreatedAt,
		UpdatedAt:            investment.UpdatedAt,
	}
}

// Summarize totals the holding set. totalCount is the unpaginated count so
// the summary stays correct on paged listings.
func (s *PortfolioService) Summarize(investments []models.Investment, totalCount int64) schemas.PortfolioSummary {
	var invested, current float64
	for i := range investments {
		invested += investments[i].TotalInvested()
		current += investments[i].CurrentValue
	}
	profitLoss := current - invested

	summary := schemas.PortfolioSummary{
		TotalInvested:     utils.Round2(invested),
		TotalCurrentValue: utils.Round2(current),
		TotalProfitLoss:   utils.Round2(profitLoss),
		InvestmentCount:   len(investments),
		TotalCount:        totalCount,
	}
	if invested > 0 {
		summary.TotalProfitLossPercentage = utils.Round2(profitLoss / invested * 100)
	}
	return summary
}

// Overview is the summary shape of the dashboard endpoint.
func (s *PortfolioService) Overview(investments []models.Investment) schemas.PortfolioOverview {
	summary := s.Summarize(investments, int64(len(investments)))
	return schemas.PortfolioOverview{
		TotalInvested:             summary.TotalInvested,
		CurrentValue:              summary.TotalCurrentValue,
		TotalProfitLoss:           summary.TotalProfitLoss,
		TotalProfitLossPercentage: summary.TotalProfitLossPercentage,
		InvestmentCount:           summary.InvestmentCount,
	}
}

// Allocate groups valuation by asset class. Groups are emitted in the fixed
// asset class order; percentages are zero when the portfolio has no value.
func (s *PortfolioService) Allocate(investments []models.Investment) []schemas.AllocationGroup {
	groups := make(map[models.InvestmentType]*schemas.AllocationGroup)
	var totalValue float64

	for i := range investments {
		investment := &investments[i]
		group, ok := groups[investment.Type]
		if !ok {
			group = &schemas.AllocationGroup{Type: string(investment.Type)}
			groups[investment.Type] = group
		}
		group.Value += investment.CurrentValue
		group.Count++
		totalValue += investment.CurrentValue
	}

	allocation := make([]schemas.AllocationGroup, 0, len(groups))
	for _, investmentType := range models.InvestmentTypes {
		group, ok := groups[investmentType]
		if !ok {
			continue
		}
		if totalValue > 0 {
			group.Percentage = utils.Round2(group.Value / totalValue * 100)
		}
		group.Value = utils.Round2(group.Value)
		allocation = append(allocation, *group)
	}
	return allocation
}

// Performance computes the time-windowed view. Transactions dated at or
// after the period cutoff are in scope for counts and fee totals; holdings
// always contribute their current profit/loss. Best and worst performers are
// picked by profit/loss percentage with the first encountered winning ties.
func (s *PortfolioService) Performance(
	investments []models.Investment,
	transactions []models.Transaction,
	period utils.Period,
	now time.Time,
) schemas.PerformanceResponse {
	cutoff := period.CutoffDate(now)

	metrics := schemas.PortfolioMetrics{}
	var invested, current float64

	periodByInvestment := make(map[uint][]models.Transaction)
	for i := range transactions {
		transaction := transactions[i]
		if transaction.Date.Before(cutoff) {
			continue
		}
		metrics.TransactionCount++
		switch transaction.Type {
		case models.TransactionTypeBuy:
			metrics.BuyTransactions++
		case models.TransactionTypeSell:
			metrics.SellTransactions++
		}
		periodByInvestment[transaction.InvestmentID] = append(periodByInvestment[transaction.InvestmentID], transaction)
	}

	performances := make([]schemas.InvestmentPerformance, 0, len(investments))
	var totalFees float64
	for i := range investments {
		investment := &investments[i]
		invested += investment.TotalInvested()
		current += investment.CurrentValue

		periodTransactions := periodByInvestment[investment.ID]
		var fees float64
		for _, transaction := range periodTransactions {
			fees += transaction.Fees
		}
		totalFees += fees

		performances = append(performances, schemas.InvestmentPerformance{
			ID:                   investment.ID,
			Symbol:               investment.Symbol,
			Name:                 investment.Name,
			Type:                 string(investment.Type),
			ProfitLoss:           utils.Round2(investment.ProfitLoss()),
			ProfitLossPercentage: utils.Round2(investment.ProfitLossPercentage()),
			CurrentValue:         utils.Round2(investment.CurrentValue),
			TotalInvested:        utils.Round2(investment.TotalInvested()),
			TransactionCount:     len(periodTransactions),
			Fees:                 utils.Round2(fees),
		})
	}

	metrics.TotalInvested = utils.Round2(invested)
	metrics.CurrentValue = utils.Round2(current)
	metrics.TotalProfitLoss = utils.Round2(current - invested)
	if invested > 0 {
		metrics.TotalProfitLossPercentage = utils.Round2((current - invested) / invested * 100)
	}
	metrics.TotalFees = utils.Round2(totalFees)

	for i := range performances {
		performance := &performances[i]
		if metrics.BestPerformer == nil || performance.ProfitLossPercentage > metrics.BestPerformer.ProfitLossPercentage {
			metrics.BestPerformer = performance
		}
		if metrics.WorstPerformer == nil || performance.ProfitLossPercentage < metrics.WorstPerformer.ProfitLossPercentage {
			metrics.WorstPerformer = performance
		}
	}

	return schemas.PerformanceResponse{
		Success:                true,
		Period:                 string(period),
		StartDate:              cutoff,
		EndDate:                now,
		PortfolioMetrics:       metrics,
		InvestmentPerformances: performances,
	}
}
