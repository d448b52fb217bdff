package model

import (
	"time"

	"github.com/google/uuid"
)

// BuyOrder is a stock purchase as stored by the ORM.
type BuyOrder struct {
	BuyOrderID         uuid.UUID `gorm:"column:buy_order_id;type:char(36);primaryKey"`
	StockSymbol        string    `gorm:"column:stock_symbol;size:16;not null"`
	StockName          string    `gorm:"column:stock_name;size:128;not null"`
	DateAndTimeOfOrder time.Time `gorm:"column:date_and_time_of_order;not null"`
	Quantity           uint      `gorm:"column:quantity;not null"`
	Price              float64   `gorm:"column:price;not null"`
}

// TableName sets the table name for GORM.
func (BuyOrder) TableName() string {
	return "buy_orders"
}

// SellOrder is a stock sale as stored by the ORM.
type SellOrder struct {
	SellOrderID        uuid.UUID `gorm:"column:sell_order_id;type:char(36);primaryKey"`
	StockSymbol        string    `gorm:"column:stock_symbol;size:16;not null"`
	StockName          string    `gorm:"column:stock_name;size:128;not null"`
	DateAndTimeOfOrder time.Time `gorm:"column:date_and_time_of_order;not null"`
	Quantity           uint      `gorm:"column:quantity;not null"`
	Price              float64   `gorm:"column:price;not null"`
}

// TableName sets the table name for GORM.
func (SellOrder) TableName() string {
	return "sell_orders"
}
