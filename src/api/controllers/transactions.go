package controllers

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"portfolio-server/src/models"
	"portfolio-server/src/repositories"
	"portfolio-server/src/schemas"
	"portfolio-server/src/utils"
)

func validateTransactionCreate(req *schemas.CreateTransactionRequest) error {
	validation := &utils.ValidationError{}
	if req.InvestmentID == 0 {
		validation.Add("investment_id", "valid investment ID is required")
	}
	if !models.TransactionType(req.Type).Valid() {
		validation.Add("type", "transaction type must be either \"buy\" or \"sell\"")
	}
	if req.Amount <= 0 {
		validation.Add("amount", "amount must be a positive number")
	}
	if req.Price <= 0 {
		validation.Add("price", "price must be a positive number")
	}
	if req.Fees != nil && *req.Fees < 0 {
		validation.Add("fees", "fees must be a non-negative number")
	}
	if validation.HasErrors() {
		return validation
	}
	return nil
}

// AppendTransaction records a ledger event and applies the incremental
// position update. The log write and the holding mutation commit together;
// any failure rolls both back.
func (c *Controller) AppendTransaction(ctx context.Context, userID uint, req *schemas.CreateTransactionRequest) (*models.Transaction, *models.Investment, error) {
	if err := validateTransactionCreate(req); err != nil {
		return nil, nil, err
	}

	investment, err := c.GetInvestment(ctx, userID, req.InvestmentID)
	if err != nil {
		return nil, nil, err
	}

	// Amounts are stored at 6 decimal places; round before the sell guard so
	// the persisted amount is the one that was checked.
	amount := utils.Round6(req.Amount)
	if models.TransactionType(req.Type) == models.TransactionTypeSell && amount > investment.Quantity {
		return nil, nil, &utils.InsufficientQuantityError{
			Requested: amount,
			Available: investment.Quantity,
		}
	}

	date := c.now()
	if req.Date != nil {
		date = req.Date.ToTime()
	}
	fees := 0.0
	if req.Fees != nil {
		fees = *req.Fees
	}
	transaction := &models.Transaction{
		UserID:       userID,
		InvestmentID: investment.ID,
		Type:         models.TransactionType(req.Type),
		Amount:       amount,
		Price:        req.Price,
		Fees:         fees,
		Date:         date,
		Notes:        strings.TrimSpace(req.Notes),
	}

	err = c.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := c.Transactions.Create(ctx, transaction, tx); err != nil {
			return err
		}
		if err := c.Ledger.ApplyTransaction(investment, transaction); err != nil {
			return err
		}
		return c.Investments.Update(ctx, investment, tx)
	})
	if err != nil {
		return nil, nil, err
	}

	utils.LoggerFromContext(ctx).WithField("transaction_id", transaction.ID).Info("transaction appended")
	return transaction, investment, nil
}

func (c *Controller) ListTransactions(ctx context.Context, userID uint, filter repositories.TransactionFilter) ([]models.Transaction, int64, error) {
	transactions, err := c.Transactions.List(ctx, userID, filter)
	if err != nil {
		return nil, 0, err
	}
	totalCount, err := c.Transactions.Count(ctx, userID, filter)
	if err != nil {
		return nil, 0, err
	}
	return transactions, totalCount, nil
}

func (c *Controller) ListInvestmentTransactions(ctx context.Context, userID, investmentID uint) ([]models.Transaction, error) {
	if _, err := c.GetInvestment(ctx, userID, investmentID); err != nil {
		return nil, err
	}
	return c.Transactions.ListByInvestment(ctx, investmentID)
}

// UpdateTransaction replaces the mutable fields and rebuilds the holding
// from its full history. A field edit can touch any point of the log, so the
// incremental path is not enough here.
func (c *Controller) UpdateTransaction(ctx context.Context, userID, id uint, req *schemas.UpdateTransactionRequest) (*models.Transaction, error) {
	transaction, err := c.Transactions.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if transaction == nil {
		return nil, &utils.NotFoundError{Resource: "transaction"}
	}

	validation := &utils.ValidationError{}
	if req.Type != nil && !models.TransactionType(*req.Type).Valid() {
		validation.Add("type", "transaction type must be either \"buy\" or \"sell\"")
	}
	if req.Amount != nil && *req.Amount <= 0 {
		validation.Add("amount", "amount must be a positive number")
	}
	if req.Price != nil && *req.Price <= 0 {
		validation.Add("price", "price must be a positive number")
	}
	if req.Fees != nil && *req.Fees < 0 {
		validation.Add("fees", "fees must be a non-negative number")
	}
	if validation.HasErrors() {
		return nil, validation
	}

	if req.Type != nil {
		transaction.Type = models.TransactionType(*req.Type)
	}
	if req.Amount != nil {
		transaction.Amount = utils.Round6(*req.Amount)
	}
	if req.Price != nil {
		transaction.Price = *req.Price
	}
	if req.Date != nil {
		transaction.Date = req.Date.ToTime()
	}
	if req.Fees != nil {
		transaction.Fees = *req.Fees
	}
	if req.Notes != nil {
		transaction.Notes = strings.TrimSpace(*req.Notes)
	}

	err = c.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := c.Transactions.Update(ctx, transaction, tx); err != nil {
			return err
		}
		return c.recalculate(ctx, userID, transaction.InvestmentID, tx)
	})
	if err != nil {
		return nil, err
	}
	return transaction, nil
}

// DeleteTransaction removes the ledger entry and rebuilds the holding from
// the remaining history, not merely reversing the deleted entry.
func (c *Controller) DeleteTransaction(ctx context.Context, userID, id uint) error {
	transaction, err := c.Transactions.GetByID(ctx, userID, id)
	if err != nil {
		return err
	}
	if transaction == nil {
		return &utils.NotFoundError{Resource: "transaction"}
	}

	return c.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := c.Transactions.Delete(ctx, transaction, tx); err != nil {
			return err
		}
		return c.recalculate(ctx, userID, transaction.InvestmentID, tx)
	})
}

// recalculate replays the investment's surviving transaction log inside the
// caller's database transaction and persists the rebuilt position.
func (c *Controller) recalculate(ctx context.Context, userID, investmentID uint, tx *gorm.DB) error {
	investment, err := c.Investments.GetByID(ctx, userID, investmentID)
	if err != nil {
		return err
	}
	if investment == nil {
		return &utils.NotFoundError{Resource: "investment"}
	}

	history, err := c.Transactions.ListByInvestmentChronological(ctx, investmentID, tx)
	if err != nil {
		return err
	}
	c.Ledger.RecalculatePosition(investment, history)
	return c.Investments.Update(ctx, investment, tx)
}

// transactionDate parses the startDate/endDate listing filters.
func TransactionDateFilter(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if parsed, err := time.Parse(layout, value); err == nil {
			return &parsed, nil
		}
	}
	return nil, utils.BadRequest("invalid date format, expected YYYY-MM-DD or RFC3339")
}
