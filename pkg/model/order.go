package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderRequest holds the fields shared by buy and sell orders.
type OrderRequest struct {
	StockSymbol        string    `json:"stockSymbol"        validate:"required"                 msg:"required:Stock Symbol can't be blank"`
	StockName          string    `json:"stockName"          validate:"required"                 msg:"required:Stock Name can't be blank"`
	DateAndTimeOfOrder time.Time `json:"dateAndTimeOfOrder" validate:"orderdate"                msg:"orderdate:Order date should not be older than Jan 01, 2000"`
	Quantity           uint      `json:"quantity"           validate:"min=1,max=100000"         msg:"min:Quantity should be between 1 and 100000|max:Quantity should be between 1 and 100000"`
	Price              float64   `json:"price"              validate:"min=1,max=10000"          msg:"min:Price should be between 1 and 10000|max:Price should be between 1 and 10000"`
}

// BuyOrderRequest is the data structure for placing a buy order.
type BuyOrderRequest struct {
	OrderRequest
}

// SellOrderRequest is the data structure for placing a sell order.
type SellOrderRequest struct {
	OrderRequest
}

// BuyOrderResponse is a buy order as returned by the service.
type BuyOrderResponse struct {
	BuyOrderID         uuid.UUID `json:"buyOrderId"`
	StockSymbol        string    `json:"stockSymbol"`
	StockName          string    `json:"stockName"`
	DateAndTimeOfOrder time.Time `json:"dateAndTimeOfOrder"`
	Quantity           uint      `json:"quantity"`
	Price              float64   `json:"price"`
	TradeAmount        float64   `json:"tradeAmount"`
}

// SellOrderResponse is a sell order as returned by the service.
type SellOrderResponse struct {
	SellOrderID        uuid.UUID `json:"sellOrderId"`
	StockSymbol        string    `json:"stockSymbol"`
	StockName          string    `json:"stockName"`
	DateAndTimeOfOrder time.Time `json:"dateAndTimeOfOrder"`
	Quantity           uint      `json:"quantity"`
	Price              float64   `json:"price"`
	TradeAmount        float64   `json:"tradeAmount"`
}
