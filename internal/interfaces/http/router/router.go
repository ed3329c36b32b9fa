package router

import (
	"github.com/gin-gonic/gin"

	"github.com/svyrydov-ihor/burger-joint-web-app/internal/interfaces/http/handler"
)

func RegisterRoutes(
	r *gin.Engine,
	customers *handler.CustomerHandler,
	ingredients *handler.IngredientHandler,
	burgers *handler.BurgerHandler,
	orders *handler.OrderHandler,
	pages *handler.WebHandler,
) {
	api := r.Group("/api")
	{
		api.POST("/customers", customers.CreateCustomer)
		api.GET("/customers", customers.ListCustomers)
		api.GET("/customers/:id", customers.GetCustomer)
		api.PUT("/customers/:id", customers.UpdateCustomer)
		api.DELETE("/customers/:id", customers.DeleteCustomer)

		api.GET("/ingredients", ingredients.ListIngredients)
		api.GET("/ingredients/:id", ingredients.GetIngredient)

		api.POST("/burgers", burgers.CreateBurger)
		api.GET("/burgers", burgers.ListBurgers)
		api.GET("/burgers/:id", burgers.GetBurger)
		api.PUT("/burgers/:id", burgers.UpdateBurger)
		api.DELETE("/burgers/:id", burgers.DeleteBurger)

		api.POST("/orders", orders.CreateOrder)
		api.GET("/orders", orders.ListOrders)
		api.GET("/orders/:id", orders.GetOrder)
		api.PUT("/orders/:id", orders.UpdateOrder)
		api.DELETE("/orders/:id", orders.DeleteOrder)
	}

	r.GET("/", pages.Home)

	r.GET("/customers", pages.CustomerList)
	r.GET("/customers/new", pages.CustomerNewForm)
	r.POST("/customers/new", pages.CustomerCreate)
	r.GET("/customers/:id/edit", pages.CustomerEditForm)
	r.POST("/customers/:id/edit", pages.CustomerUpdate)
	r.POST("/customers/:id/delete", pages.CustomerDelete)

	r.GET("/burgers", pages.BurgerList)
	r.GET("/burgers/new", pages.BurgerNewForm)
	r.POST("/burgers/new", pages.BurgerCreate)
	r.GET("/burgers/:id/edit", pages.BurgerEditForm)
	r.POST("/burgers/:id/edit", pages.BurgerUpdate)
	r.POST("/burgers/:id/delete", pages.BurgerDelete)

	r.GET("/orders", pages.OrderList)
	r.GET("/orders/new", pages.OrderNewForm)
	r.POST("/orders/new", pages.OrderCreate)
	r.GET("/orders/:id/edit", pages.OrderEditForm)
	r.POST("/orders/:id/edit", pages.OrderUpdate)
	r.POST("/orders/:id/delete", pages.OrderDelete)
}
