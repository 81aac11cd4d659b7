package router

import (
	"engagement-scheduler/modules/review/controller"

	"github.com/labstack/echo/v4"
)

type ReviewRouter struct {
	controller *controller.ReviewController
}

func NewReviewRouter(ctrl *controller.ReviewController) *ReviewRouter {
	return &ReviewRouter{controller: ctrl}
}

func (r *ReviewRouter) Register(e *echo.Group) {
	group := e.Group("/engagements")
	group.POST("/:id/approve", r.controller.Approve)
	group.POST("/:id/decline", r.controller.Decline)
}
