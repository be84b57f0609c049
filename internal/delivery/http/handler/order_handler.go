package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/HailNail/MindArc/internal/delivery/http/middleware"
	"github.com/HailNail/MindArc/internal/domain/entities"
	"github.com/HailNail/MindArc/internal/usecase"
)

type OrderHandler struct {
	orders *usecase.OrderUseCase
}

func NewOrderHandler(orders *usecase.OrderUseCase) *OrderHandler {
	return &OrderHandler{orders: orders}
}

type orderItemRequest struct {
	Product  string `json:"product" binding:"required"`
	Quantity int    `json:"qty" binding:"required"`
	// Price is accepted but ignored: the server recomputes every line
	// from the catalog.
	Price float64 `json:"price"`
}

type createOrderRequest struct {
	OrderItems      []orderItemRequest       `json:"orderItems"`
	ShippingAddress entities.ShippingAddress `json:"shippingAddress"`
	PaymentMethod   string                   `json:"paymentMethod"`
}

func (h *OrderHandler) Create(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	items := make([]usecase.OrderItemInput, len(req.OrderItems))
	for i, item := range req.OrderItems {
		items[i] = usecase.OrderItemInput{ProductID: item.Product, Quantity: item.Quantity}
	}

	order, err := h.orders.CreateOrder(c.Request.Context(), user.ID, items, req.ShippingAddress, req.PaymentMethod)
	if err != nil {
		mapError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

func (h *OrderHandler) ListAll(c *gin.Context) {
	page, size := paginationParams(c)

	result, err := h.orders.ListOrders(c.Request.Context(), page, size)
	if err != nil {
		mapError(c, err)
		return
	}
	c.JSON(http.StatusOK, orderPageResponse(result))
}

func (h *OrderHandler) ListMine(c *gin.Context) {
	user := middleware.CurrentUser(c)
	page, size := paginationParams(c)

	result, err := h.orders.ListUserOrders(c.Request.Context(), user.ID, page, size)
	if err != nil {
		mapError(c, err)
		return
	}
	c.JSON(http.StatusOK, orderPageResponse(result))
}

func (h *OrderHandler) CountTotal(c *gin.Context) {
	total, err := h.orders.CountOrders(c.Request.Context())
	if err != nil {
		mapError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"totalOrders": total})
}

func (h *OrderHandler) Get(c *gin.Context) {
	order, err := h.orders.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

type createPaymentIntentRequest struct {
	TotalPrice float64 `json:"totalPrice" binding:"required"`
}

func (h *OrderHandler) CreatePaymentIntent(c *gin.Context) {
	var req createPaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "totalPrice is required")
		return
	}

	clientSecret, err := h.orders.CreatePaymentIntent(c.Request.Context(), req.TotalPrice)
	if err != nil {
		mapError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"clientSecret": clientSecret})
}

type payOrderRequest struct {
	ID           string `json:"id"`
	Status       string `json:"status"`
	ReceiptEmail string `json:"receipt_email"`
}

func (h *OrderHandler) Pay(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var req payOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	order, err := h.orders.MarkOrderAsPaid(c.Request.Context(), c.Param("id"), usecase.PaymentConfirmation{
		ID:           req.ID,
		Status:       req.Status,
		ReceiptEmail: req.ReceiptEmail,
	}, user.Email)
	if err != nil {
		mapError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) Deliver(c *gin.Context) {
	order, err := h.orders.MarkOrderAsDelivered(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func paginationParams(c *gin.Context) (page, size int64) {
	page, _ = strconv.ParseInt(c.Query("page"), 10, 64)
	size, _ = strconv.ParseInt(c.Query("limit"), 10, 64)
	return page, size
}

func orderPageResponse(page *usecase.OrderPage) gin.H {
	orders := page.Orders
	if orders == nil {
		orders = []entities.Order{}
	}
	return gin.H{
		"orders":      orders,
		"pageNumber":  page.PageNumber,
		"pages":       page.Pages,
		"totalOrders": page.TotalOrders,
	}
}
