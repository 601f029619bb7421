package handlers

import (
	"net/http"
	"time"

	"storefront/internal/middleware"
	"storefront/internal/models"
	"storefront/internal/services"

	"github.com/gin-gonic/gin"
)

// AdminHandler groups the moderation and management endpoints mounted
// behind the admin role guard.
type AdminHandler struct {
	productService  services.ProductService
	categoryService services.CategoryService
	orderService    services.OrderService
	trackingService services.OrderTrackingService
	returnService   services.OrderReturnService
	reviewService   services.ReviewService
	blogService     services.BlogService
	shippingService services.ShippingService
}

func NewAdminHandler(
	productService services.ProductService,
	categoryService services.CategoryService,
	orderService services.OrderService,
	trackingService services.OrderTrackingService,
	returnService services.OrderReturnService,
	reviewService services.ReviewService,
	blogService services.BlogService,
	shippingService services.ShippingService,
) *AdminHandler {
	return &AdminHandler{
		productService:  productService,
		categoryService: categoryService,
		orderService:    orderService,
		trackingService: trackingService,
		returnService:   returnService,
		reviewService:   reviewService,
		blogService:     blogService,
		shippingService: shippingService,
	}
}

// Products

type productRequest struct {
	Name          string  `json:"name" binding:"required"`
	Slug          string  `json:"slug" binding:"required"`
	Description   string  `json:"description"`
	Price         float64 `json:"price" binding:"required"`
	StockQuantity int     `json:"stock_quantity"`
	CategoryID    uint    `json:"category_id"`
	ImageURL      string  `json:"image_url"`
	WeightKG      float64 `json:"weight_kg"`
	IsActive      *bool   `json:"is_active"`
}

func (h *AdminHandler) CreateProduct(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "code": "VALIDATION_ERROR"})
		return
	}

	product := &models.Product{
		Name:          req.Name,
		Slug:          req.Slug,
		Description:   req.Description,
		Price:         req.Price,
		StockQuantity: req.StockQuantity,
		CategoryID:    req.CategoryID,
		ImageURL:      req.ImageURL,
		WeightKG:      req.WeightKG,
		IsActive:      true,
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}
	if product.WeightKG == 0 {
		product.WeightKG = 0.5
	}

	if err := h.productService.CreateProduct(product); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"product": product})
}

func (h *AdminHandler) UpdateProduct(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	product, err := h.productService.GetProduct(id)
	if err != nil {
		respondError(c, err)
		return
	}

	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "code": "VALIDATION_ERROR"})
		return
	}

	product.Name = req.Name
	product.Slug = req.Slug
	product.Description = req.Description
	product.Price = req.Price
	product.StockQuantity = req.StockQuantity
	product.CategoryID = req.CategoryID
	product.ImageURL = req.ImageURL
	if req.WeightKG > 0 {
		product.WeightKG = req.WeightKG
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}

	if err := h.productService.UpdateProduct(product); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"product": product})
}

func (h *AdminHandler) DeleteProduct(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	if err := h.productService.DeleteProduct(id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// Categories

func (h *AdminHandler) CreateCategory(c *gin.Context) {
	var req struct {
		Name        string `json:"name" binding:"required"`
		Slug        string `json:"slug" binding:"required"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "code": "VALIDATION_ERROR"})
		return
	}

	category := &models.Category{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		IsActive:    true,
	}
	if err := h.categoryService.CreateCategory(category); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"category": category})
}

func (h *AdminHandler) DeleteCategory(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	if err := h.categoryService.DeleteCategory(id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// Orders

func (h *AdminHandler) ListOrders(c *gin.Context) {
	limit, offset := parsePagination(c)

	orders, total, err := h.orderService.GetAllOrders(limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": orders, "total": total})
}

func (h *AdminHandler) UpdateOrderStatus(c *gin.Context) {
	claims := middleware.GetClaims(c)

	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var req struct {
		Status      string `json:"status" binding:"required"`
		Description string `json:"description"`
		Location    string `json:"location"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "code": "VALIDATION_ERROR"})
		return
	}

	err := h.trackingService.UpdateOrderStatus(id, models.OrderStatus(req.Status), req.Description, req.Location, claims.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

func (h *AdminHandler) SetTracking(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var req struct {
		Carrier           string     `json:"carrier" binding:"required"`
		TrackingNumber    string     `json:"tracking_number" binding:"required"`
		EstimatedDelivery *time.Time `json:"estimated_delivery"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "code": "VALIDATION_ERROR"})
		return
	}

	if err := h.trackingService.SetTrackingDetails(id, req.Carrier, req.TrackingNumber, req.EstimatedDelivery); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

// Returns

func (h *AdminHandler) ListReturns(c *gin.Context) {
	returns, err := h.returnService.GetAllReturns(c.Query("status"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"returns": returns})
}

func (h *AdminHandler) UpdateReturnStatus(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var req struct {
		Status       string  `json:"status" binding:"required"`
		RefundAmount float64 `json:"refund_amount"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "code": "VALIDATION_ERROR"})
		return
	}

	orderReturn, err := h.returnService.UpdateReturnStatus(id, models.ReturnStatus(req.Status), req.RefundAmount)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"return": orderReturn})
}

// Reviews

func (h *AdminHandler) ListPendingReviews(c *gin.Context) {
	reviews, err := h.reviewService.GetPendingReviews()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"reviews": reviews})
}

func (h *AdminHandler) ApproveReview(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	if err := h.reviewService.ApproveReview(id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "approved"})
}

func (h *AdminHandler) DeleteReview(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	if err := h.reviewService.DeleteReview(id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// Blog

type blogPostRequest struct {
	Title       string `json:"title" binding:"required"`
	Slug        string `json:"slug" binding:"required"`
	Excerpt     string `json:"excerpt"`
	Body        string `json:"body"`
	IsPublished bool   `json:"is_published"`
}

func (h *AdminHandler) CreatePost(c *gin.Context) {
	claims := middleware.GetClaims(c)

	var req blogPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "code": "VALIDATION_ERROR"})
		return
	}

	post := &models.BlogPost{
		Title:       req.Title,
		Slug:        req.Slug,
		Excerpt:     req.Excerpt,
		Body:        req.Body,
		AuthorID:    claims.UserID,
		IsPublished: req.IsPublished,
	}
	if err := h.blogService.CreatePost(post); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"post": post})
}

func (h *AdminHandler) UpdatePost(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	post, err := h.blogService.GetPost(id)
	if err != nil {
		respondError(c, err)
		return
	}

	var req blogPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "code": "VALIDATION_ERROR"})
		return
	}

	post.Title = req.Title
	post.Slug = req.Slug
	post.Excerpt = req.Excerpt
	post.Body = req.Body
	post.IsPublished = req.IsPublished

	if err := h.blogService.UpdatePost(post); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"post": post})
}

func (h *AdminHandler) PublishPost(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	if err := h.blogService.PublishPost(id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "published"})
}

func (h *AdminHandler) DeletePost(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	if err := h.blogService.DeletePost(id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// Shipping methods

func (h *AdminHandler) ListShippingMethods(c *gin.Context) {
	methods, err := h.shippingService.GetAllMethods()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"shipping_methods": methods})
}

func (h *AdminHandler) CreateShippingMethod(c *gin.Context) {
	var req struct {
		Name         string  `json:"name" binding:"required"`
		DisplayName  string  `json:"display_name"`
		BaseRate     float64 `json:"base_rate"`
		RatePerKG    float64 `json:"rate_per_kg"`
		DeliveryDays int     `json:"delivery_days"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "code": "VALIDATION_ERROR"})
		return
	}

	method := &models.ShippingMethod{
		Name:         req.Name,
		DisplayName:  req.DisplayName,
		BaseRate:     req.BaseRate,
		RatePerKG:    req.RatePerKG,
		DeliveryDays: req.DeliveryDays,
		IsActive:     true,
	}
	if err := h.shippingService.CreateMethod(method); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"shipping_method": method})
}
