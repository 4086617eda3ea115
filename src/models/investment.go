package models

import (
	"time"
)

// InvestmentType is the asset class of a holding.
type InvestmentType string

const (
	InvestmentTypeStocks      InvestmentType = "stocks"
	InvestmentTypeBonds       InvestmentType = "bonds"
	InvestmentTypeMutualFunds InvestmentType = "mutual_funds"
	InvestmentTypeETF         InvestmentType = "etf"
	InvestmentTypeCrypto      InvestmentType = "crypto"
)

// InvestmentTypes lists the valid asset classes in display order.
var InvestmentTypes = []InvestmentType{
	InvestmentTypeStocks,
	InvestmentTypeBonds,
	InvestmentTypeMutualFunds,
	InvestmentTypeETF,
	InvestmentTypeCrypto,
}

// Valid reports whether the type is one of the fixed asset classes.
func (t InvestmentType) Valid() bool {
	for _, known := range InvestmentTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Investment is a user's position in one instrument: the quantity owned,
// the per-unit purchase price and the aggregate current valuation.
// CurrentValue is the worth of the whole position, not a per-unit price.
type Investment struct {
	ID            uint           `gorm:"primaryKey;column:id" json:"id"`
	UserID        uint           `gorm:"column:user_id;index;not null" json:"userId"`
	Name          string         `gorm:"column:name;size:100;not null" json:"name"`
	Symbol        string         `gorm:"column:symbol;size:10;index" json:"symbol"`
	Type          InvestmentType `gorm:"column:type;size:20;not null" json:"type"`
	Quantity      float64        `gorm:"column:quantity;not null" json:"quantity"`
	PurchasePrice float64        `gorm:"column:purchase_price;not null" json:"purchasePrice"`
	CurrentValue  float64        `gorm:"column:current_value;not null" json:"currentValue"`
	PurchaseDate  time.Time      `gorm:"column:purchase_date;not null" json:"purchaseDate"`
	CreatedAt     time.Time      `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`

	Transactions []Transaction `gorm:"foreignKey:InvestmentID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

func (Investment) TableName() string {
	return "investments"
}

// TotalInvested is the cost basis of the whole position.
func (i *Investment) TotalInvested() float64 {
	return i.Quantity * i.PurchasePrice
}

// ProfitLoss is the unrealized gain or loss against the cost basis.
func (i *Investment) ProfitLoss() float64 {
	return i.CurrentValue - i.TotalInvested()
}

// ProfitLossPercentage is the gain or loss relative to the amount invested,
// zero when nothing was invested.
func (i *Investment) ProfitLossPercentage() float64 {
	invested := i.TotalInvested()
	if invested <= 0 {
		return 0
	}
	return (i.CurrentValue - invested) / invested * 100
}

// CurrentPricePerUnit derives the market price from the aggregate valuation,
// falling back to the purchase price for an empty position.
func (i *Investment) CurrentPricePerUnit() float64 {
	if i.Quantity > 0 {
		return i.CurrentValue / i.Quantity
	}
	return i.PurchasePrice
}
