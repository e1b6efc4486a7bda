// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"comanda/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	MenuHandler     *handler.MenuHandler
	ProductHandler  *handler.ProductHandler
	TableHandler    *handler.TableHandler
	SupplierHandler *handler.SupplierHandler
	RecipeHandler   *handler.RecipeHandler
	FinanceHandler  *handler.FinanceHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	menuHandler     *handler.MenuHandler
	productHandler  *handler.ProductHandler
	tableHandler    *handler.TableHandler
	supplierHandler *handler.SupplierHandler
	recipeHandler   *handler.RecipeHandler
	financeHandler  *handler.FinanceHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		menuHandler:     params.MenuHandler,
		productHandler:  params.ProductHandler,
		tableHandler:    params.TableHandler,
		supplierHandler: params.SupplierHandler,
		recipeHandler:   params.RecipeHandler,
		financeHandler:  params.FinanceHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public site routes: what diners see, no authentication
	siteGroup := e.Group("/site")
	{
		siteGroup.GET("/menu", r.menuHandler.GetPublicMenu)
		siteGroup.GET("/info", r.menuHandler.GetInfo)
		siteGroup.GET("/hours", r.menuHandler.GetHours)
	}

	// Admin routes: the management panel
	adminGroup := e.Group("/admin")
	{
		adminGroup.GET("/menu", r.menuHandler.GetAdminMenu)
		adminGroup.POST("/menu", r.menuHandler.AddMenuItem)
		adminGroup.PUT("/menu/:id", r.menuHandler.UpdateMenuItem)
		adminGroup.DELETE("/menu/:id", r.menuHandler.DeleteMenuItem)
		adminGroup.PUT("/info", r.menuHandler.UpdateInfo)
		adminGroup.PUT("/hours", r.menuHandler.UpdateHours)

		adminGroup.GET("/products", r.productHandler.ListProducts)
		adminGroup.GET("/products/categories", r.productHandler.ListCategories)
		adminGroup.POST("/products", r.productHandler.CreateProduct)
		adminGroup.PUT("/products/:id", r.productHandler.UpdateProduct)
		adminGroup.GET("/products/:id/can-delete", r.productHandler.CanDeleteProduct)
		adminGroup.DELETE("/products/:id", r.productHandler.DeleteProduct)

		adminGroup.GET("/tables", r.tableHandler.ListTables)
		adminGroup.POST("/tables", r.tableHandler.CreateTable)
		adminGroup.PUT("/tables/:number", r.tableHandler.UpdateTable)
		adminGroup.PUT("/tables/:number/status", r.tableHandler.SetTableStatus)
		adminGroup.GET("/tables/:number/qr", r.tableHandler.GetTableMenuQR)
		adminGroup.DELETE("/tables/:number", r.tableHandler.DeleteTable)

		adminGroup.GET("/suppliers", r.supplierHandler.ListSuppliers)
		adminGroup.POST("/suppliers", r.supplierHandler.CreateSupplier)
		adminGroup.PUT("/suppliers/:id", r.supplierHandler.UpdateSupplier)
		adminGroup.DELETE("/suppliers/:id", r.supplierHandler.DeleteSupplier)

		adminGroup.GET("/recipes", r.recipeHandler.ListRecipes)
		adminGroup.GET("/recipes/ingredients", r.recipeHandler.ListIngredients)
		adminGroup.POST("/recipes", r.recipeHandler.CreateRecipe)
		adminGroup.PUT("/recipes/:id", r.recipeHandler.UpdateRecipe)
		adminGroup.DELETE("/recipes/:id", r.recipeHandler.DeleteRecipe)

		adminGroup.GET("/sales", r.financeHandler.ListSales)
		adminGroup.POST("/sales", r.financeHandler.CreateSale)
		adminGroup.DELETE("/sales/:id", r.financeHandler.DeleteSale)

		adminGroup.GET("/expenses", r.financeHandler.ListExpenses)
		adminGroup.POST("/expenses", r.financeHandler.CreateExpense)
		adminGroup.PUT("/expenses/:id", r.financeHandler.UpdateExpense)
		adminGroup.DELETE("/expenses/:id", r.financeHandler.DeleteExpense)

		adminGroup.GET("/salaries", r.financeHandler.ListSalaries)
		adminGroup.POST("/salaries", r.financeHandler.CreateSalary)
		adminGroup.DELETE("/salaries/:id", r.financeHandler.DeleteSalary)
	}

	// Waiter routes: the table board with only the two quick actions
	waiterGroup := e.Group("/waiter")
	{
		waiterGroup.GET("/tables", r.tableHandler.ListTables)
		waiterGroup.POST("/tables/:number/occupy", r.tableHandler.OccupyTable)
		waiterGroup.POST("/tables/:number/release", r.tableHandler.ReleaseTable)
	}
}
