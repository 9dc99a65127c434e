package api

// Backend route constants
// All consumed API paths are defined here to ensure consistency and prevent typos
const (
	// Auth Routes
	RouteAuthLogin          = "/api/auth/login"
	RouteAuthRegister       = "/api/auth/register"
	RouteAuthVerify         = "/api/auth/verify"
	RouteAuthForgotPassword = "/api/auth/forgot-password"
	RouteAuthProfile        = "/api/auth/profile"

	// Service Routes
	RouteServices = "/api/services"

	// Shop Routes
	RouteProducts          = "/api/products"
	RouteProductBrands     = "/api/products/filters/brands"
	RouteProductCategories = "/api/products/filters/categories"
	RouteShopStats         = "/api/shop/stats"

	// Cart & Wishlist Routes
	RouteCart       = "/api/cart"
	RouteCartAdd    = "/api/cart/add"
	RouteCartUpdate = "/api/cart/update"
	RouteCartRemove = "/api/cart/remove"
	RouteWishlist   = "/api/product-wishlist"

	// Cobbler Routes
	RouteCobblers = "/api/cobblers"
)
