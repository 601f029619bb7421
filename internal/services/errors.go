package services

import "errors"

// Checkout error taxonomy. Handlers map these to error codes and HTTP
// statuses; wrap with fmt.Errorf("%w: ...") to add detail.
var (
	ErrProductNotFound       = errors.New("product not found")
	ErrProductInactive       = errors.New("product is not available")
	ErrInsufficientStock     = errors.New("insufficient stock")
	ErrPriceMismatch         = errors.New("price mismatch")
	ErrInvalidShippingMethod = errors.New("invalid shipping method")
	ErrEmptyCart             = errors.New("cart is empty")
)

var (
	ErrOrderNotFound       = errors.New("order not found")
	ErrOrderNotCancellable = errors.New("order can no longer be cancelled")
	ErrNotOrderOwner       = errors.New("order does not belong to this user")
)

var (
	ErrReturnNotEligible   = errors.New("order is not eligible for return")
	ErrReturnAlreadyExists = errors.New("return request already exists")
	ErrReturnNotFound      = errors.New("return request not found")
	ErrInvalidTransition   = errors.New("invalid status transition")
	ErrRefundExceedsTotal  = errors.New("refund amount exceeds order total")
)

var (
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
)

var (
	ErrReviewExists   = errors.New("review already exists for this product")
	ErrInvalidRating  = errors.New("rating must be between 1 and 5")
	ErrReviewNotFound = errors.New("review not found")
)

var ErrWishlistDuplicate = errors.New("product is already in the wishlist")

var ErrPostNotFound = errors.New("blog post not found")
