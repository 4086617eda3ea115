package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"portfolio-server/src/models"
)

var transactionSortColumns = map[string]string{
	"date":   "date",
	"type":   "type",
	"amount": "amount",
	"price":  "price",
	"fees":   "fees",
}

// TransactionFilter narrows ownership-scoped transaction listings.
type TransactionFilter struct {
	Type         models.TransactionType
	InvestmentID uint
	StartDate    *time.Time
	EndDate      *time.Time
	ListOptions
}

type TransactionRepository interface {
	Create(ctx context.Context, transaction *models.Transaction, tx *gorm.DB) error
	GetByID(ctx context.Context, userID, id uint) (*models.Transaction, error)
	List(ctx context.Context, userID uint, filter TransactionFilter) ([]models.Transaction, error)
	Count(ctx context.Context, userID uint, filter TransactionFilter) (int64, error)
	ListByInvestment(ctx context.Context, investmentID uint) ([]models.Transaction, error)
	ListByInvestmentChronological(ctx context.Context, investmentID uint, tx *gorm.DB) ([]models.Transaction, error)
	ListByUser(ctx context.Context, userID uint) ([]models.Transaction, error)
	Update(ctx context.Context, transaction *models.Transaction, tx *gorm.DB) error
	Delete(ctx context.Context, transaction *models.Transaction, tx *gorm.DB) error
}

type transactionRepo struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepo{db: db}
}

func (r *transactionRepo) conn(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *transactionRepo) Create(ctx context.Context, transaction *models.Transaction, tx *gorm.DB) error {
	return r.conn(tx).WithContext(ctx).Create(transaction).Error
}

func (r *transactionRepo) GetByID(ctx context.Context, userID, id uint) (*models.Transaction, error) {
	var transaction models.Transaction
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&transaction).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &transaction, nil
}

func (r *transactionRepo) filtered(ctx context.Context, userID uint, filter TransactionFilter) *gorm.DB {
	query := r.db.WithContext(ctx).
		Model(&models.Transaction{}).
		Where("user_id = ?", userID)
	if filter.Type.Valid() {
		query = query.Where("type = ?", filter.Type)
	}
	if filter.InvestmentID != 0 {
		query = query.Where("investment_id = ?", filter.InvestmentID)
	}
	if filter.StartDate != nil {
		query = query.Where("date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("date <= ?", *filter.EndDate)
	}
	return query
}

func (r *transactionRepo) List(ctx context.Context, userID uint, filter TransactionFilter) ([]models.Transaction, error) {
	query := r.filtered(ctx, userID, filter).
		Preload("Investment").
		Order(filter.orderClause(transactionSortColumns, "date")).
		Offset(filter.Offset)
	if filter.Limit != nil {
		query = query.Limit(*filter.Limit)
	}

	var transactions []models.Transaction
	if err := query.Find(&transactions).Error; err != nil {
		return nil, err
	}
	return transactions, nil
}

func (r *transactionRepo) Count(ctx context.Context, userID uint, filter TransactionFilter) (int64, error) {
	var count int64
	err := r.filtered(ctx, userID, filter).Count(&count).Error
	return count, err
}

// ListByInvestment returns the display order, newest first.
func (r *transactionRepo) ListByInvestment(ctx context.Context, investmentID uint) ([]models.Transaction, error) {
	var transactions []models.Transaction
	err := r.db.WithContext(ctx).
		Where("investment_id = ?", investmentID).
		Order("date DESC").
		Find(&transactions).Error
	return transactions, err
}

// ListByInvestmentChronological returns the replay order for position
// recalculation, oldest first.
func (r *transactionRepo) ListByInvestmentChronological(ctx context.Context, investmentID uint, tx *gorm.DB) ([]models.Transaction, error) {
	var transactions []models.Transaction
	err := r.conn(tx).WithContext(ctx).
		Where("investment_id = ?", investmentID).
		Order("date ASC, id ASC").
		Find(&transactions).Error
	return transactions, err
}

func (r *transactionRepo) ListByUser(ctx context.Context, userID uint) ([]models.Transaction, error) {
	var transactions []models.Transaction
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date ASC").
		Find(&transactions).Error
	return transactions, err
}

func (r *transactionRepo) Update(ctx context.Context, transaction *models.Transaction, tx *gorm.DB) error {
	return r.conn(tx).WithContext(ctx).Save(transaction).Error
}

func (r *transactionRepo) Delete(ctx context.Context, transaction *models.Transaction, tx *gorm.DB) error {
	return r.conn(tx).WithContext(ctx).Delete(transaction).Error
}
