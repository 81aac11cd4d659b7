package router

import (
	"engagement-scheduler/modules/schedule/controller"

	"github.com/labstack/echo/v4"
)

type ScheduleRouter struct {
	controller *controller.ScheduleController
}

func NewScheduleRouter(ctrl *controller.ScheduleController) *ScheduleRouter {
	return &ScheduleRouter{controller: ctrl}
}

func (r *ScheduleRouter) Register(e *echo.Group) {
	group := e.Group("/schedule")
	group.GET("/slots", r.controller.DaySlots)
	group.GET("/selections", r.controller.ListSelections)
	group.POST("/selections", r.controller.AddSelection)
	group.DELETE("/selections/:index", r.controller.DeleteSelection)
	group.DELETE("/selections", r.controller.ClearSelections)
	group.POST("/timezone-change", r.controller.ChangeTimezone)
}
