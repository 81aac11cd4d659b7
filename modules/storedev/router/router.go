package router

import (
	"engagement-scheduler/modules/storedev/controller"

	"github.com/labstack/echo/v4"
)

type StoreRouter struct {
	controller *controller.StoreController
}

func NewStoreRouter(ctrl *controller.StoreController) *StoreRouter {
	return &StoreRouter{controller: ctrl}
}

// Register mounts the collection contract at the server root, outside the
// /api/v1 envelope routes.
func (r *StoreRouter) Register(e *echo.Echo) {
	e.GET("/collection", r.controller.List)
	e.POST("/collection", r.controller.Create)
	e.GET("/collection/:id", r.controller.Get)
	e.PUT("/collection/:id", r.controller.Update)
	e.DELETE("/collection/:id", r.controller.Delete)
}
