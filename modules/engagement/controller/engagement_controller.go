package controller

import (
	"engagement-scheduler/core/controller"
	"engagement-scheduler/core/errors"
	"engagement-scheduler/modules/engagement/dto"
	"engagement-scheduler/modules/engagement/service"

	"github.com/labstack/echo/v4"
)

// EngagementController handles engagement record HTTP requests
type EngagementController struct {
	controller.BaseController
	EngagementService service.EngagementServiceInterface
}

func NewEngagementController(svc service.EngagementServiceInterface) *EngagementController {
	return &EngagementController{
		BaseController:    controller.NewBaseController(),
		EngagementService: svc,
	}
}

// Create handles POST /engagements
func (c *EngagementController) Create(ctx echo.Context) error {
	var req dto.CreateEngagementRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.EngagementService.Create(ctx.Request().Context(), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Engagement created successfully")
}

// List handles GET /engagements?search=
func (c *EngagementController) List(ctx echo.Context) error {
	result, appErr := c.EngagementService.List(ctx.Request().Context(), ctx.QueryParam("search"))
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Success")
}

// Get handles GET /engagements/:id
func (c *EngagementController) Get(ctx echo.Context) error {
	id := ctx.Param("id")
	if id == "" {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid engagement ID")
	}

	result, appErr := c.EngagementService.Get(ctx.Request().Context(), id)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Success")
}

// SyncSlots handles POST /engagements/:id/slots
func (c *EngagementController) SyncSlots(ctx echo.Context) error {
	id := ctx.Param("id")
	if id == "" {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid engagement ID")
	}

	result, appErr := c.EngagementService.SyncSlots(ctx.Request().Context(), id)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Slots synchronized successfully")
}
