package routes

import (
	"nardoo_storefront/internal/adapter/http/handlers"
	"nardoo_storefront/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

const (
	PathOrders    = "/orders"
	PathCustomers = "/customers"
	PathAnalytics = "/analytics"
	PathDashboard = "/dashboard"
	PathProducts  = "/products"
	PathCarts     = "/carts"
	PathShipping  = "/shipping"
	PathUsers     = "/users"
	PathMerchants = "/merchants"
)

type storefrontHandlers struct {
	orders    *handlers.OrderHandler
	payments  *handlers.OrderPaymentHandler
	analytics *handlers.AnalyticsHandler
	dashboard *handlers.DashboardHandler
	catalog   *handlers.CatalogHandler
	carts     *handlers.CartHandler
	users     *handlers.UserHandler
}

func addStorefrontRoutes(rg *gin.RouterGroup, h storefrontHandlers) {
	adminOnly := handlers.RequireRole(entities.RoleAdmin)
	catalogWriters := handlers.RequireRole(entities.RoleAdmin, entities.RoleMerchantApproved)
	merchantOnly := handlers.RequireRole(entities.RoleMerchantApproved)

	orders := rg.Group(PathOrders)
	{
		orders.POST("", h.orders.CreateOrder)
		orders.GET("", adminOnly, h.orders.ListOrders)
		orders.GET("/statistics", adminOnly, h.orders.GetStatistics)
		orders.POST("/cleanup", adminOnly, h.orders.CleanupOldOrders)
		orders.GET("/:id", h.orders.GetOrder)
		orders.PATCH("/:id/status", adminOnly, h.orders.UpdateOrderStatus)
		orders.POST("/:id/coupon", h.orders.ApplyCoupon)
		orders.POST("/:id/notes", adminOnly, h.orders.AddNote)
		orders.DELETE("/:id", adminOnly, h.orders.DeleteOrder)

		orders.POST("/:id/payments", h.payments.PayOrder)
		orders.GET("/:id/payments", h.payments.ListOrderPayments)
	}

	rg.GET(PathCustomers+"/:customer_id/orders", h.orders.GetCustomerOrders)

	analytics := rg.Group(PathAnalytics)
	{
		analytics.POST("/events", h.analytics.TrackEvent)
		analytics.POST("/page-views", h.analytics.TrackPageView)
		analytics.POST("/sessions", h.analytics.StartSession)
		analytics.PATCH("/sessions/:id/end", h.analytics.EndSession)

		analytics.GET("/visits", adminOnly, h.analytics.GetVisitStatistics)
		analytics.GET("/events", adminOnly, h.analytics.GetEventStatistics)
		analytics.GET("/conversion-rate", adminOnly, h.analytics.GetConversionRate)
		analytics.GET("/behavior", adminOnly, h.analytics.GetUserBehavior)
		analytics.GET("/report", adminOnly, h.analytics.GetReport)
		analytics.POST("/cleanup", adminOnly, h.analytics.CleanupOldData)
	}

	rg.GET(PathDashboard, adminOnly, h.dashboard.Overview)

	products := rg.Group(PathProducts)
	{
		products.GET("", h.catalog.ListProducts)
		products.GET("/:id", h.catalog.GetProduct)
		products.POST("", catalogWriters, h.catalog.CreateProduct)
		products.PUT("/:id", catalogWriters, h.catalog.UpdateProduct)
		products.DELETE("/:id", catalogWriters, h.catalog.DeleteProduct)
	}

	carts := rg.Group(PathCarts)
	{
		carts.GET("/:cart_id", h.carts.GetCart)
		carts.POST("/:cart_id/items", h.carts.AddItem)
		carts.PATCH("/:cart_id/items/:product_id", h.carts.UpdateItem)
		carts.DELETE("/:cart_id/items/:product_id", h.carts.RemoveItem)
		carts.POST("/:cart_id/checkout", h.carts.Checkout)
	}

	rg.GET(PathShipping+"/quote", h.carts.QuoteShipping)

	users := rg.Group(PathUsers)
	{
		users.POST("/register", h.users.Register)
		users.POST("/login", h.users.Login)
		users.GET("/:id", adminOnly, h.users.GetUser)
	}

	merchants := rg.Group(PathMerchants)
	{
		merchants.GET("", adminOnly, h.users.ListMerchants)
		merchants.GET("/me/summary", merchantOnly, h.catalog.MerchantSummary)
		merchants.POST("/:id/approve", adminOnly, h.users.ApproveMerchant)
		merchants.POST("/:id/reject", adminOnly, h.users.RejectMerchant)
	}
}
