package models

import (
	"time"
)

// TransactionType is the direction of a ledger event.
type TransactionType string

const (
	TransactionTypeBuy  TransactionType = "buy"
	TransactionTypeSell TransactionType = "sell"
)

// Valid reports whether the type is buy or sell.
func (t TransactionType) Valid() bool {
	return t == TransactionTypeBuy || t == TransactionTypeSell
}

// Transaction is an immutable buy or sell event against one investment.
// Amount is the quantity of units moved, Price the per-unit execution price.
type Transaction struct {
	ID           uint            `gorm:"primaryKey;column:id" json:"id"`
	UserID       uint            `gorm:"column:user_id;index;not null" json:"userId"`
	InvestmentID uint            `gorm:"column:investment_id;index;not null" json:"investmentId"`
	Type         TransactionType `gorm:"column:type;size:10;index;not null" json:"type"`
	Amount       float64         `gorm:"column:amount;not null" json:"amount"`
	Price        float64         `gorm:"column:price;not null" json:"price"`
	Fees         float64         `gorm:"column:fees;default:0" json:"fees"`
	Date         time.Time       `gorm:"column:date;index;not null" json:"date"`
	Notes        string          `gorm:"column:notes;type:text" json:"notes"`
	CreatedAt    time.Time       `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time       `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`

	Investment *Investment `gorm:"foreignKey:InvestmentID" json:"-"`
}

func (Transaction) TableName() string {
	return "transactions"
}

// TotalValue is the gross value of the event.
func (t *Transaction) TotalValue() float64 {
	return t.Amount * t.Price
}

// NetValue is the gross value minus fees.
func (t *Transaction) NetValue() float64 {
	return t.TotalValue() - t.Fees
}
