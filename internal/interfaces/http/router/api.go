package router

import (
	"github.com/farmstore/backend/internal/interfaces/http/handler"
	"github.com/farmstore/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// API wires all store endpoints into one registrar. Authenticate validates
// the access token; session-scoped draft endpoints additionally require the
// X-Session-ID header.
type API struct {
	Auth     *handler.AuthHandler
	Product  *handler.ProductHandler
	Category *handler.CategoryHandler
	Supply   *handler.SupplyHandler
	Sales    *handler.SalesHandler
	Stock    *handler.StockHandler
	WriteOff *handler.WriteOffHandler
	Preorder *handler.PreorderHandler

	Authenticate gin.HandlerFunc
}

// RegisterRoutes implements RouteRegistrar
func (a *API) RegisterRoutes(rg *gin.RouterGroup) {
	// Public endpoints
	auth := rg.Group("/auth")
	{
		auth.POST("/register", a.Auth.Register)
		auth.POST("/login", a.Auth.Login)
		auth.POST("/refresh", a.Auth.Refresh)
	}

	// Catalog browsing is open to unauthenticated customers
	rg.GET("/products", a.Product.List)
	rg.GET("/products/:id", a.Product.Get)
	rg.GET("/categories", a.Category.List)
	rg.GET("/categories/:id", a.Category.Get)

	// Authenticated endpoints
	authed := rg.Group("")
	authed.Use(a.Authenticate)
	{
		authed.GET("/auth/me", a.Auth.Me)

		preorders := authed.Group("/preorders")
		{
			preorders.POST("", a.Preorder.Create)
			preorders.GET("/mine", a.Preorder.ListMine)
			preorders.GET("/:id", a.Preorder.Get)
			preorders.POST("/:id/cancel", a.Preorder.Cancel)
		}
	}

	// Staff endpoints
	admin := rg.Group("")
	admin.Use(a.Authenticate, middleware.AdminOnly())
	{
		products := admin.Group("/products")
		{
			products.POST("", a.Product.Create)
			products.PUT("/:id", a.Product.Update)
			products.DELETE("/:id", a.Product.Delete)
			products.POST("/:id/image", a.Product.InitiateImageUpload)
			products.GET("/:id/batches", a.Stock.ListProductBatches)
			products.GET("/:id/availability", a.Stock.ProductAvailability)
		}

		categories := admin.Group("/categories")
		{
			categories.POST("", a.Category.Create)
			categories.PUT("/:id", a.Category.Update)
			categories.DELETE("/:id", a.Category.Delete)
			categories.POST("/:id/image", a.Category.InitiateImageUpload)
		}

		admin.GET("/stock/batches", a.Stock.ListBatches)

		writeOffs := admin.Group("/write-offs")
		{
			writeOffs.POST("", a.WriteOff.Create)
			writeOffs.GET("", a.WriteOff.List)
		}

		supply := admin.Group("/supply", middleware.RequireSessionID())
		{
			supply.GET("/draft", a.Supply.GetDraft)
			supply.POST("/draft/lines", a.Supply.AddLine)
			supply.DELETE("/draft/lines/:index", a.Supply.RemoveLine)
			supply.DELETE("/draft", a.Supply.ClearDraft)
			supply.POST("/confirm", a.Supply.Confirm)
		}

		sales := admin.Group("/sales")
		{
			draft := sales.Group("", middleware.RequireSessionID())
			{
				draft.GET("/draft", a.Sales.GetDraft)
				draft.POST("/draft/lines", a.Sales.AddLine)
				draft.DELETE("/draft/lines/:index", a.Sales.RemoveLine)
				draft.DELETE("/draft", a.Sales.ClearDraft)
				draft.POST("/confirm", a.Sales.Confirm)
			}
			sales.GET("/history", a.Sales.History)
		}

		adminPreorders := admin.Group("/admin/preorders")
		{
			adminPreorders.GET("", a.Preorder.ListAll)
			adminPreorders.POST("/:id/complete", a.Preorder.Complete)
		}
	}
}

var _ RouteRegistrar = (*API)(nil)
