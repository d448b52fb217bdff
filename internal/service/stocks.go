package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gitlab.com/dirk.krummacker/persons-service/internal/logging"
	"gitlab.com/dirk.krummacker/persons-service/internal/metrics"
	"gitlab.com/dirk.krummacker/persons-service/internal/model"
	"gitlab.com/dirk.krummacker/persons-service/internal/store"
	"gitlab.com/dirk.krummacker/persons-service/internal/validation"
	dto "gitlab.com/dirk.krummacker/persons-service/pkg/model"
)

// StocksService records stock buy and sell orders.
type StocksService struct {
	orders  store.OrderStore
	metrics *metrics.Metrics
}

// NewStocksService returns a service on top of the given store.
func NewStocksService(orders store.OrderStore, m *metrics.Metrics) *StocksService {
	return &StocksService{orders: orders, metrics: m}
}

// CreateBuyOrder validates and stores a buy order.
func (s *StocksService) CreateBuyOrder(ctx context.Context, request *dto.BuyOrderRequest) (*dto.BuyOrderResponse, error) {
	if request == nil {
		return nil, fmt.Errorf("%w: buy order request", ErrNullArgument)
	}
	if err := validation.Validate(request); err != nil {
		return nil, err
	}

	order := model.BuyOrder{
		BuyOrderID:         uuid.New(),
		StockSymbol:        request.StockSymbol,
		StockName:          request.StockName,
		DateAndTimeOfOrder: request.DateAndTimeOfOrder,
		Quantity:           request.Quantity,
		Price:              request.Price,
	}
	if err := s.orders.AddBuyOrder(ctx, &order); err != nil {
		return nil, err
	}
	s.metrics.IncrementOrdersCreated("buy")
	logging.FromContext(ctx).Info("buy order created", "order_id", order.BuyOrderID, "stock_symbol", order.StockSymbol)

	response := toBuyOrderResponse(order)
	return &response, nil
}

// CreateSellOrder validates and stores a sell order.
func (s *StocksService) CreateSellOrder(ctx context.Context, request *dto.SellOrderRequest) (*dto.SellOrderResponse, error) {
	if request == nil {
		return nil, fmt.Errorf("%w: sell order request", ErrNullArgument)
	}
	if err := validation.Validate(request); err != nil {
		return nil, err
	}

	order := model.SellOrder{
		SellOrderID:        uuid.New(),
		StockSymbol:        request.StockSymbol,
		StockName:          request.StockName,
		DateAndTimeOfOrder: request.DateAndTimeOfOrder,
		Quantity:           request.Quantity,
		Price:              request.Price,
	}
	if err := s.orders.AddSellOrder(ctx, &order); err != nil {
		return nil, err
	}
	s.metrics.IncrementOrdersCreated("sell")
	logging.FromContext(ctx).Info("sell order created", "order_id", order.SellOrderID, "stock_symbol", order.StockSymbol)

	response := toSellOrderResponse(order)
	return &response, nil
}

// GetBuyOrders returns all buy orders, newest first.
func (s *StocksService) GetBuyOrders(ctx context.Context) ([]dto.BuyOrderResponse, error) {
	orders, err := s.orders.FindBuyOrders(ctx)
	if err != nil {
		return nil, err
	}
	responses := make([]dto.BuyOrderResponse, 0, len(orders))
	for _, order := range orders {
		responses = append(responses, toBuyOrderResponse(order))
	}
	return responses, nil
}

// GetSellOrders returns all sell orders, newest first.
func (s *StocksService) GetSellOrders(ctx context.Context) ([]dto.SellOrderResponse, error) {
	orders, err := s.orders.FindSellOrders(ctx)
	if err != nil {
		return nil, err
	}
	responses := make([]dto.SellOrderResponse, 0, len(orders))
	for _, order := range orders {
		responses = append(responses, toSellOrderResponse(order))
	}
	return responses, nil
}

func toBuyOrderResponse(order model.BuyOrder) dto.BuyOrderResponse {
	return dto.BuyOrderResponse{
		BuyOrderID:         order.BuyOrderID,
		StockSymbol:        order.StockSymbol,
		StockName:          order.StockName,
		DateAndTimeOfOrder: order.DateAndTimeOfOrder,
		Quantity:           order.Quantity,
		Price:              order.Price,
		TradeAmount:        float64(order.Quantity) * order.Price,
	}
}

func toSellOrderResponse(order model.SellOrder) dto.SellOrderResponse {
	return dto.SellOrderResponse{
		SellOrderID:        order.SellOrderID,
		StockSymbol:        order.StockSymbol,
		StockName:          order.StockName,
		DateAndTimeOfOrder: order.DateAndTimeOfOrder,
		Quantity:           order.Quantity,
		Price:              order.Price,
		TradeAmount:        float64(order.Quantity) * order.Price,
	}
}
