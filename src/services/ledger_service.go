package services

import (
	"fmt"

	"portfolio-server/src/models"
	"portfolio-server/src/utils"
)

// LedgerService owns the two position update paths.
//
// The incremental path is O(1) per appended transaction and treats the
// just-posted price as the new market price for the whole position. The
// replay path rebuilds a position from its full transaction history and is
// the authoritative one whenever more than the latest transaction changed.
// The two are deliberately distinct: the incremental path overwrites the
// valuation with the latest price rather than blending it, and recalculation
// reproduces exactly that rule over the surviving history.
type LedgerService struct{}

func NewLedgerService() *LedgerService {
	return &LedgerService{}
}

// ApplyTransaction mutates the investment for a single appended transaction.
// It assumes the stored position was consistent before the append. A sell
// that would drive the quantity negative returns InvariantViolationError and
// leaves the investment untouched; callers must not persist on error.
func (s *LedgerService) ApplyTransaction(investment *models.Investment, transaction *models.Transaction) error {
	switch transaction.Type {
	case models.TransactionTypeBuy:
		investment.Quantity += transaction.Amount
	case models.TransactionTypeSell:
		newQuantity := investment.Quantity - transaction.Amount
		if newQuantity < 0 {
			return &utils.InvariantViolationError{
				Message: fmt.Sprintf("sell of %v would drive quantity below zero (held %v)", transaction.Amount, investment.Quantity),
			}
		}
		investment.Quantity = newQuantity
	default:
		return (&utils.ValidationError{}).Add("type", "transaction type must be either \"buy\" or \"sell\"")
	}

	investment.CurrentValue = investment.Quantity * transaction.Price
	return nil
}

// RecalculatePosition rebuilds quantity and valuation from the transaction
// history, ordered oldest first. The valuation price tracks the price of the
// most recently replayed transaction, buy or sell, seeded with the purchase
// price. An empty history leaves the position at zero.
func (s *LedgerService) RecalculatePosition(investment *models.Investment, history []models.Transaction) {
	quantity := 0.0
	lastPrice := investment.PurchasePrice

	for i := range history {
		transaction := &history[i]
		switch transaction.Type {
		case models.TransactionTypeBuy:
			quantity += transaction.Amount
		case models.TransactionTypeSell:
			quantity -= transaction.Amount
		}
		lastPrice = transaction.Price
	}

	investment.Quantity = quantity
	investment.CurrentValue = quantity * lastPrice
}
