package repositories

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"portfolio-server/src/models"
)

// investmentSortColumns is the whitelist of sortable portfolio columns.
var investmentSortColumns = map[string]string{
	"name":           "name",
	"symbol":         "symbol",
	"type":           "type",
	"quantity":       "quantity",
	"purchase_price": "purchase_price",
	"current_value":  "current_value",
	"purchase_date":  "purchase_date",
	"created_at":     "created_at",
}

// ListOptions controls sorting and paging for ownership-scoped listings.
type ListOptions struct {
	SortBy string
	Order  string
	Limit  *int
	Offset int
}

func (o ListOptions) orderClause(columns map[string]string, fallback string) string {
	column, ok := columns[o.SortBy]
	if !ok {
		column = fallback
	}
	direction := "DESC"
	if strings.EqualFold(o.Order, "ASC") {
		direction = "ASC"
	}
	return column + " " + direction
}

type InvestmentRepository interface {
	Create(ctx context.Context, investment *models.Investment, tx *gorm.DB) error
	GetByID(ctx context.Context, userID, id uint) (*models.Investment, error)
	ListByUser(ctx context.Context, userID uint, opts ListOptions) ([]models.Investment, error)
	CountByUser(ctx context.Context, userID uint) (int64, error)
	FindBySymbol(ctx context.Context, userID uint, symbol string) (*models.Investment, error)
	Update(ctx context.Context, investment *models.Investment, tx *gorm.DB) error
	Delete(ctx context.Context, investment *models.Investment) error
}

type investmentRepo struct {
	db *gorm.DB
}

func NewInvestmentRepository(db *gorm.DB) InvestmentRepository {
	return &investmentRepo{db: db}
}

func (r *investmentRepo) conn(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *investmentRepo) Create(ctx context.Context, investment *models.Investment, tx *gorm.DB) error {
	return r.conn(tx).WithContext(ctx).Create(investment).Error
}

func (r *investmentRepo) GetByID(ctx context.Context, userID, id uint) (*models.Investment, error) {
	var investment models.Investment
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&investment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &investment, nil
}

func (r *investmentRepo) ListByUser(ctx context.Context, userID uint, opts ListOptions) ([]models.Investment, error) {
	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order(opts.orderClause(investmentSortColumns, "current_value")).
		Offset(opts.Offset)
	if opts.Limit != nil {
		query = query.Limit(*opts.Limit)
	}

	var investments []models.Investment
	if err := query.Find(&investments).Error; err != nil {
		return nil, err
	}
	return investments, nil
}

func (r *investmentRepo) CountByUser(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Investment{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

func (r *investmentRepo) FindBySymbol(ctx context.Context, userID uint, symbol string) (*models.Investment, error) {
	var investment models.Investment
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND symbol = ?", userID, symbol).
		First(&investment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &investment, nil
}

func (r *investmentRepo) Update(ctx context.Context, investment *models.Investment, tx *gorm.DB) error {
	return r.conn(tx).WithContext(ctx).Save(investment).Error
}

// Delete removes the holding and its transaction log in one unit of work.
// The cascade is done explicitly so it holds on every driver, not only
// where the foreign key constraint is enforced.
func (r *investmentRepo) Delete(ctx context.Context, investment *models.Investment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("investment_id = ?", investment.ID).Delete(&models.Transaction{}).Error; err != nil {
			return err
		}
		return tx.Delete(investment).Error
	})
}
