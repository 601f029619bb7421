package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"storefront/internal/services"

	"github.com/gin-gonic/gin"
)

// respondError maps service sentinel errors onto HTTP statuses and the
// error codes the frontend branches on. Anything unmapped becomes a 500
// with a generic message.
func respondError(c *gin.Context, err error) {
	type mapping struct {
		target error
		status int
		code   string
	}

	mappings := []mapping{
		{services.ErrProductNotFound, http.StatusNotFound, "PRODUCT_NOT_FOUND"},
		{services.ErrProductInactive, http.StatusBadRequest, "PRODUCT_NOT_FOUND"},
		{services.ErrInsufficientStock, http.StatusBadRequest, "INSUFFICIENT_STOCK"},
		{services.ErrPriceMismatch, http.StatusBadRequest, "PRICE_MISMATCH"},
		{services.ErrInvalidShippingMethod, http.StatusBadRequest, "INVALID_SHIPPING_METHOD"},
		{services.ErrEmptyCart, http.StatusBadRequest, "CHECKOUT_ERROR"},
		{services.ErrOrderNotFound, http.StatusNotFound, "ORDER_NOT_FOUND"},
		{services.ErrOrderNotCancellable, http.StatusBadRequest, "ORDER_NOT_CANCELLABLE"},
		{services.ErrNotOrderOwner, http.StatusForbidden, "FORBIDDEN"},
		{services.ErrReturnNotEligible, http.StatusBadRequest, "RETURN_NOT_ELIGIBLE"},
		{services.ErrReturnAlreadyExists, http.StatusConflict, "RETURN_EXISTS"},
		{services.ErrReturnNotFound, http.StatusNotFound, "RETURN_NOT_FOUND"},
		{services.ErrInvalidTransition, http.StatusBadRequest, "INVALID_TRANSITION"},
		{services.ErrRefundExceedsTotal, http.StatusBadRequest, "REFUND_EXCEEDS_TOTAL"},
		{services.ErrEmailTaken, http.StatusConflict, "EMAIL_TAKEN"},
		{services.ErrInvalidCredentials, http.StatusUnauthorized, "INVALID_CREDENTIALS"},
		{services.ErrUserNotFound, http.StatusNotFound, "NOT_FOUND"},
		{services.ErrReviewExists, http.StatusConflict, "REVIEW_EXISTS"},
		{services.ErrInvalidRating, http.StatusBadRequest, "INVALID_RATING"},
		{services.ErrReviewNotFound, http.StatusNotFound, "REVIEW_NOT_FOUND"},
		{services.ErrWishlistDuplicate, http.StatusConflict, "WISHLIST_DUPLICATE"},
		{services.ErrPostNotFound, http.StatusNotFound, "POST_NOT_FOUND"},
	}

	for _, m := range mappings {
		if errors.Is(err, m.target) {
			c.JSON(m.status, gin.H{"error": err.Error(), "code": m.code})
			return
		}
	}

	log.Printf("unhandled error: %v", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error", "code": "INTERNAL_ERROR"})
}

func parseUintParam(c *gin.Context, name string) (uint, bool) {
	value, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name, "code": "VALIDATION_ERROR"})
		return 0, false
	}
	return uint(value), true
}

func parsePagination(c *gin.Context) (limit, offset int) {
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	return limit, (page - 1) * limit
}
