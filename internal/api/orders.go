package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	dto "gitlab.com/dirk.krummacker/persons-service/pkg/model"
)

// findBuyOrders responds with all buy orders, newest first.
//
// Example REST API call:
//
//	> curl http://localhost:8080/orders/buy
func (h *handler) findBuyOrders(c *gin.Context) {
	orders, err := h.services.Stocks.GetBuyOrders(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.IndentedJSON(http.StatusOK, orders)
}

// createBuyOrder places the buy order specified in the request's JSON.
//
// Example REST API call:
//
//	> curl http://localhost:8080/orders/buy --request "POST" --include --header "Content-Type: application/json" --data '{"stockSymbol": "MSFT", "stockName": "Microsoft", "dateAndTimeOfOrder": "2024-01-02T10:00:00Z", "quantity": 5, "price": 370.5}'
func (h *handler) createBuyOrder(c *gin.Context) {
	var request dto.BuyOrderRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "invalid JSON"})
		return
	}
	order, err := h.services.Stocks.CreateBuyOrder(c.Request.Context(), &request)
	if err != nil {
		respondError(c, err)
		return
	}
	c.IndentedJSON(http.StatusCreated, order)
}

// findSellOrders responds with all sell orders, newest first.
func (h *handler) findSellOrders(c *gin.Context) {
	orders, err := h.services.Stocks.GetSellOrders(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.IndentedJSON(http.StatusOK, orders)
}

// createSellOrder places the sell order specified in the request's JSON.
func (h *handler) createSellOrder(c *gin.Context) {
	var request dto.SellOrderRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "invalid JSON"})
		return
	}
	order, err := h.services.Stocks.CreateSellOrder(c.Request.Context(), &request)
	if err != nil {
		respondError(c, err)
		return
	}
	c.IndentedJSON(http.StatusCreated, order)
}
