package schedule

import (
	"engagement-scheduler/core/cache"
	"engagement-scheduler/modules/schedule/controller"
	"engagement-scheduler/modules/schedule/repository"
	"engagement-scheduler/modules/schedule/router"
	"engagement-scheduler/modules/schedule/service"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Group, c cache.Cache) *service.ScheduleService {
	repo := repository.NewSelectionRepository(c)
	svc := service.NewScheduleService(repo)
	ctrl := controller.NewScheduleController(svc)

	router.NewScheduleRouter(ctrl).Register(e)

	return svc
}
