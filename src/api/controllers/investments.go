package controllers

import (
	"context"
	"strings"

	"portfolio-server/src/models"
	"portfolio-server/src/repositories"
	"portfolio-server/src/schemas"
	"portfolio-server/src/utils"
)

func validateInvestmentCreate(req *schemas.CreateInvestmentRequest) error {
	validation := &utils.ValidationError{}
	symbol := strings.TrimSpace(req.Symbol)
	if symbol == "" {
		validation.Add("symbol", "symbol is required")
	} else if len(symbol) > 10 {
		validation.Add("symbol", "symbol must be 10 characters or less")
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		validation.Add("name", "investment name is required")
	} else if len(name) > 100 {
		validation.Add("name", "name must be 100 characters or less")
	}
	if req.Quantity <= 0 {
		validation.Add("quantity", "quantity must be a positive number")
	}
	if req.PurchasePrice <= 0 {
		validation.Add("purchasePrice", "purchase price must be a positive number")
	}
	if req.CurrentPrice != nil && *req.CurrentPrice < 0 {
		validation.Add("currentPrice", "current price must be a non-negative number")
	}
	if !models.InvestmentType(req.InvestmentType).Valid() {
		validation.Add("investmentType", "investment type must be one of: stocks, bonds, mutual_funds, etf, crypto")
	}
	if req.PurchaseDate == nil {
		validation.Add("purchaseDate", "valid purchase date is required")
	}
	if validation.HasErrors() {
		return validation
	}
	return nil
}

// CreateInvestment opens a holding. The initial valuation is the current
// per-unit price times quantity, defaulting the price to the cost basis.
func (c *Controller) CreateInvestment(ctx context.Context, userID uint, req *schemas.CreateInvestmentRequest) (*models.Investment, error) {
	if err := validateInvestmentCreate(req); err != nil {
		return nil, err
	}

	symbol := strings.ToUpper(strings.TrimSpace(req.Symbol))
	existing, err := c.Investments.FindBySymbol(ctx, userID, symbol)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, &utils.DuplicateSymbolError{Symbol: symbol}
	}

	currentPrice := req.PurchasePrice
	if req.CurrentPrice != nil {
		currentPrice = *req.CurrentPrice
	}
	quantity := utils.Round6(req.Quantity)

	investment := &models.Investment{
		UserID:        userID,
		Symbol:        symbol,
		Name:          strings.TrimSpace(req.Name),
		Type:          models.InvestmentType(req.InvestmentType),
		Quantity:      quantity,
		PurchasePrice: req.PurchasePrice,
		CurrentValue:  currentPrice * quantity,
		PurchaseDate:  req.PurchaseDate.ToTime(),
	}
	if err := c.Investments.Create(ctx, investment, nil); err != nil {
		return nil, err
	}

	utils.LoggerFromContext(ctx).WithField("investment_id", investment.ID).Info("investment created")
	return investment, nil
}

func (c *Controller) GetInvestment(ctx context.Context, userID, id uint) (*models.Investment, error) {
	investment, err := c.Investments.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if investment == nil {
		return nil, &utils.NotFoundError{Resource: "investment"}
	}
	return investment, nil
}

func (c *Controller) ListInvestments(ctx context.Context, userID uint) ([]models.Investment, error) {
	return c.Investments.ListByUser(ctx, userID, repositories.ListOptions{SortBy: "created_at", Order: "DESC"})
}

// UpdateInvestment applies a partial update. Whenever quantity or the
// current per-unit price changes, the valuation is recomputed as
// newQuantity x newPerUnitPrice with the untouched side keeping its
// previous effective value.
func (c *Controller) UpdateInvestment(ctx context.Context, userID, id uint, req *schemas.UpdateInvestmentRequest) (*models.Investment, error) {
	investment, err := c.GetInvestment(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	validation := &utils.ValidationError{}
	if req.Symbol != nil {
		symbol := strings.TrimSpace(*req.Symbol)
		if symbol == "" {
			validation.Add("symbol", "symbol cannot be empty")
		} else if len(symbol) > 10 {
			validation.Add("symbol", "symbol must be 10 characters or less")
		}
	}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			validation.Add("name", "name cannot be empty")
		} else if len(name) > 100 {
			validation.Add("name", "name must be 100 characters or less")
		}
	}
	if req.Quantity != nil && *req.Quantity <= 0 {
		validation.Add("quantity", "quantity must be a positive number")
	}
	if req.PurchasePrice != nil && *req.PurchasePrice <= 0 {
		validation.Add("purchasePrice", "purchase price must be a positive number")
	}
	if req.CurrentPrice != nil && *req.CurrentPrice < 0 {
		validation.Add("currentPrice", "current price must be a non-negative number")
	}
	if req.InvestmentType != nil && !models.InvestmentType(*req.InvestmentType).Valid() {
		validation.Add("investmentType", "investment type must be one of: stocks, bonds, mutual_funds, etf, crypto")
	}
	if validation.HasErrors() {
		return nil, validation
	}

	// Capture the effective per-unit price before mutating quantity.
	newQuantity := investment.Quantity
	newCurrentPrice := investment.CurrentPricePerUnit()
	if req.Quantity != nil {
		newQuantity = utils.Round6(*req.Quantity)
	}
	if req.CurrentPrice != nil {
		newCurrentPrice = *req.CurrentPrice
	}

	if req.Symbol != nil {
		investment.Symbol = strings.ToUpper(strings.TrimSpace(*req.Symbol))
	}
	if req.Name != nil {
		investment.Name = strings.TrimSpace(*req.Name)
	}
	if req.PurchasePrice != nil {
		investment.PurchasePrice = *req.PurchasePrice
	}
	if req.InvestmentType != nil {
		investment.Type = models.InvestmentType(*req.InvestmentType)
	}
	if req.PurchaseDate != nil {
		investment.PurchaseDate = req.PurchaseDate.ToTime()
	}
	if req.Quantity != nil {
		investment.Quantity = newQuantity
	}
	if req.Quantity != nil || req.CurrentPrice != nil {
		investment.CurrentValue = newQuantity * newCurrentPrice
	}

	if err := c.Investments.Update(ctx, investment, nil); err != nil {
		return nil, err
	}
	return investment, nil
}

// DeleteInvestment removes the holding and cascades its transaction log.
func (c *Controller) DeleteInvestment(ctx context.Context, userID, id uint) (*models.Investment, error) {
	investment, err := c.GetInvestment(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if err := c.Investments.Delete(ctx, investment); err != nil {
		return nil, err
	}
	utils.LoggerFromContext(ctx).WithField("investment_id", investment.ID).Info("investment deleted")
	return investment, nil
}
