package handlers

import (
	"net/http"
	"strconv"

	"storefront/internal/repository"
	"storefront/internal/services"

	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	productService  services.ProductService
	categoryService services.CategoryService
	reviewService   services.ReviewService
}

func NewProductHandler(productService services.ProductService, categoryService services.CategoryService, reviewService services.ReviewService) *ProductHandler {
	return &ProductHandler{
		productService:  productService,
		categoryService: categoryService,
		reviewService:   reviewService,
	}
}

func (h *ProductHandler) ListProducts(c *gin.Context) {
	limit, offset := parsePagination(c)

	categoryID, _ := strconv.ParseUint(c.Query("category_id"), 10, 64)
	minPrice, _ := strconv.ParseFloat(c.Query("min_price"), 64)
	maxPrice, _ := strconv.ParseFloat(c.Query("max_price"), 64)

	filter := repository.ProductFilter{
		CategoryID: uint(categoryID),
		MinPrice:   minPrice,
		MaxPrice:   maxPrice,
		Search:     c.Query("search"),
		ActiveOnly: true,
		Limit:      limit,
		Offset:     offset,
	}

	products, total, err := h.productService.ListProducts(filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"products": products, "total": total})
}

func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	product, err := h.productService.GetProduct(id)
	if err != nil {
		respondError(c, err)
		return
	}

	rating, err := h.reviewService.GetProductRating(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"product": product, "rating": rating})
}

func (h *ProductHandler) GetProductReviews(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	reviews, err := h.reviewService.GetProductReviews(id, false)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"reviews": reviews})
}

func (h *ProductHandler) ListCategories(c *gin.Context) {
	categories, err := h.categoryService.GetAllCategories(true)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

func (h *ProductHandler) GetCategory(c *gin.Context) {
	category, err := h.categoryService.GetCategoryBySlug(c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"category": category})
}
