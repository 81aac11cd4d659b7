package controller

import (
	"engagement-scheduler/core/controller"
	"engagement-scheduler/core/errors"
	"engagement-scheduler/modules/review/dto"
	"engagement-scheduler/modules/review/service"

	"github.com/labstack/echo/v4"
)

// ReviewController handles the approve/decline decision HTTP requests
type ReviewController struct {
	controller.BaseController
	ReviewService service.ReviewServiceInterface
}

func NewReviewController(svc service.ReviewServiceInterface) *ReviewController {
	return &ReviewController{
		BaseController: controller.NewBaseController(),
		ReviewService:  svc,
	}
}

// Approve handles POST /engagements/:id/approve
func (c *ReviewController) Approve(ctx echo.Context) error {
	id := ctx.Param("id")
	if id == "" {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid engagement ID")
	}

	result, appErr := c.ReviewService.Approve(ctx.Request().Context(), id)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Engagement approved successfully")
}

// Decline handles POST /engagements/:id/decline
func (c *ReviewController) Decline(ctx echo.Context) error {
	id := ctx.Param("id")
	if id == "" {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid engagement ID")
	}

	var req dto.DeclineRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	if appErr := c.ReviewService.Decline(ctx.Request().Context(), id, req.Confirm); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, nil, "Engagement declined and deleted")
}
