package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/HailNail/MindArc/internal/delivery/http/middleware"
	"github.com/HailNail/MindArc/internal/domain/repositories"
	"github.com/HailNail/MindArc/internal/usecase"
)

type ProductHandler struct {
	catalog *usecase.CatalogUseCase
}

func NewProductHandler(catalog *usecase.CatalogUseCase) *ProductHandler {
	return &ProductHandler{catalog: catalog}
}

type productRequest struct {
	Name         string  `json:"name"`
	Image        string  `json:"image"`
	Brand        string  `json:"brand"`
	Quantity     int     `json:"quantity"`
	Category     string  `json:"category"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
	CountInStock int     `json:"countInStock"`
}

func (r productRequest) toInput() usecase.ProductInput {
	return usecase.ProductInput{
		Name:         r.Name,
		Image:        r.Image,
		Brand:        r.Brand,
		Quantity:     r.Quantity,
		CategoryID:   r.Category,
		Description:  r.Description,
		Price:        r.Price,
		CountInStock: r.CountInStock,
	}
}

func (h *ProductHandler) Create(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	product, err := h.catalog.CreateProduct(c.Request.Context(), req.toInput())
	if err != nil {
		mapError(c, err)
		return
	}
	c.JSON(http.StatusCreated, product)
}

func (h *ProductHandler) Update(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	product, err := h.catalog.UpdateProduct(c.Request.Context(), c.Param("id"), req.toInput())
	if err != nil {
		mapError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) Delete(c *gin.Context) {
	product, err := h.catalog.DeleteProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "product deleted", "id": product.ID})
}

func (h *ProductHandler) Get(c *gin.Context) {
	product, err := h.catalog.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// Search serves the storefront listing: keyword match plus pagination.
func (h *ProductHandler) Search(c *gin.Context) {
	page, _ := strconv.ParseInt(c.Query("page"), 10, 64)

	result, err := h.catalog.SearchProducts(c.Request.Context(), c.Query("keyword"), page)
	if err != nil {
		mapError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"products": result.Products,
		"page":     result.Page,
		"pages":    result.Pages,
		"hasMore":  result.HasMore,
	})
}

func (h *ProductHandler) ListAll(c *gin.Context) {
	products, err := h.catalog.ListAllProducts(c.Request.Context())
	if err != nil {
		mapError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) Top(c *gin.Context) {
	products, err := h.catalog.TopProducts(c.Request.Context())
	if err != nil {
		mapError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) New(c *gin.Context) {
	products, err := h.catalog.NewProducts(c.Request.Context())
	if err != nil {
		mapError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

type filterRequest struct {
	Checked []string  `json:"checked"`
	Radio   []float64 `json:"radio"`
}

// Filter narrows the catalog by category ids and an optional
// [min, max] price range.
func (h *ProductHandler) Filter(c *gin.Context) {
	var req filterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	filter := repositories.ProductFilter{CategoryIDs: req.Checked}
	if len(req.Radio) == 2 {
		filter.MinPrice = req.Radio[0]
		filter.MaxPrice = req.Radio[1]
	}

	products, err := h.catalog.FilterProducts(c.Request.Context(), filter)
	if err != nil {
		mapError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

type reviewRequest struct {
	Rating  int    `json:"rating" binding:"required"`
	Comment string `json:"comment"`
}

func (h *ProductHandler) AddReview(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var req reviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "rating is required")
		return
	}

	product, err := h.catalog.AddReview(c.Request.Context(), c.Param("id"), user.ID, user.Username, req.Rating, req.Comment)
	if err != nil {
		mapError(c, err)
		return
	}
	c.JSON(http.StatusCreated, product)
}
