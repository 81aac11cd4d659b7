package review

import (
	"engagement-scheduler/core/config"
	engagementRepository "engagement-scheduler/modules/engagement/repository"
	"engagement-scheduler/modules/review/controller"
	"engagement-scheduler/modules/review/router"
	"engagement-scheduler/modules/review/service"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Group) *service.ReviewService {
	store := engagementRepository.NewStoreRepository(config.Get().Store)

	svc := service.NewReviewService(store)
	ctrl := controller.NewReviewController(svc)

	router.NewReviewRouter(ctrl).Register(e)

	return svc
}
