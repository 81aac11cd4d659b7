package router

import (
	"engagement-scheduler/modules/engagement/controller"

	"github.com/labstack/echo/v4"
)

type EngagementRouter struct {
	controller *controller.EngagementController
}

func NewEngagementRouter(ctrl *controller.EngagementController) *EngagementRouter {
	return &EngagementRouter{controller: ctrl}
}

func (r *EngagementRouter) Register(e *echo.Group) {
	group := e.Group("/engagements")
	group.POST("", r.controller.Create)
	group.GET("", r.controller.List)
	group.GET("/:id", r.controller.Get)
	group.POST("/:id/slots", r.controller.SyncSlots)
}
