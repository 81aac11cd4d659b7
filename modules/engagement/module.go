package engagement

import (
	"engagement-scheduler/core/cache"
	"engagement-scheduler/core/config"
	"engagement-scheduler/modules/engagement/controller"
	"engagement-scheduler/modules/engagement/repository"
	"engagement-scheduler/modules/engagement/router"
	"engagement-scheduler/modules/engagement/service"
	scheduleRepository "engagement-scheduler/modules/schedule/repository"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Group, c cache.Cache) *service.EngagementService {
	store := repository.NewStoreRepository(config.Get().Store)
	selections := scheduleRepository.NewSelectionRepository(c)

	svc := service.NewEngagementService(store, selections)
	ctrl := controller.NewEngagementController(svc)

	router.NewEngagementRouter(ctrl).Register(e)

	return svc
}
