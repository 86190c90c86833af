package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/omondig/pulseboard-api/internal/application/service"
	"github.com/omondig/pulseboard-api/internal/presentation/http/dto/request"
	"github.com/omondig/pulseboard-api/internal/presentation/http/dto/response"
)

// OrderHandler handles order-related HTTP requests
type OrderHandler struct {
	orderService *service.OrderService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// List handles listing orders
func (h *OrderHandler) List(c *gin.Context) {
	var filter request.OrderFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	var customerID *uuid.UUID
	if filter.CustomerID != "" {
		id, err := uuid.Parse(filter.CustomerID)
		if err != nil {
			response.BadRequest(c, "Invalid customer ID")
			return
		}
		customerID = &id
	}

	orders, err := h.orderService.ListOrders(c.Request.Context(), filter.Status, customerID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Orders retrieved successfully", orders)
}

// Create handles creating an order
func (h *OrderHandler) Create(c *gin.Context) {
	var req request.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	order, err := h.orderService.CreateOrder(c.Request.Context(), &service.CreateOrderInput{
		CustomerID: req.CustomerID,
		Status:     req.Status,
		OrderDate:  req.OrderDate,
		Items:      toItemInputs(req.Items),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Order created successfully", order)
}

// Get handles getting a single order
func (h *OrderHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	order, err := h.orderService.GetOrder(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order retrieved successfully", order)
}

// Update handles updating an order
func (h *OrderHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	var req request.UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.UpdateOrderInput{
		ID:         id,
		CustomerID: req.CustomerID,
		Status:     req.Status,
		OrderDate:  req.OrderDate,
	}
	if req.Items != nil {
		input.Items = toItemInputs(req.Items)
	}

	order, err := h.orderService.UpdateOrder(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order updated successfully", order)
}

// Delete handles deleting an order
func (h *OrderHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	if err := h.orderService.DeleteOrder(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

func toItemInputs(items []request.OrderItemRequest) []service.OrderItemInput {
	inputs := make([]service.OrderItemInput, len(items))
	for i, item := range items {
		inputs[i] = service.OrderItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
			Category:  item.Category,
		}
	}
	return inputs
}
