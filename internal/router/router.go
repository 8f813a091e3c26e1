package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateEvent(c *ginext.Context)
	GetEvent(c *ginext.Context)
	ListEvents(c *ginext.Context)
	CreateRole(c *ginext.Context)
	GetRoleOccupancy(c *ginext.Context)
	Register(c *ginext.Context)
	Checkout(c *ginext.Context)
	PaymentWebhook(c *ginext.Context)
	GetTransaction(c *ginext.Context)
	CreateUser(c *ginext.Context)
	ListUsers(c *ginext.Context)
	GetUserRegistrations(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Events
		api.POST("/events", h.CreateEvent)
		api.GET("/events", h.ListEvents)
		api.GET("/events/:id", h.GetEvent)

		// Roles
		api.POST("/events/:id/roles", h.CreateRole)
		api.GET("/events/:id/roles/:role/occupancy", h.GetRoleOccupancy)

		// Registrations
		api.POST("/events/:id/roles/:role/register", h.Register)

		// Payments
		api.POST("/checkout", h.Checkout)
		api.POST("/payments/webhook", h.PaymentWebhook)
		api.GET("/transactions/:id", h.GetTransaction)

		// Users
		api.POST("/users", h.CreateUser)
		api.GET("/users", h.ListUsers)
		api.GET("/users/:id/registrations", h.GetUserRegistrations)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
