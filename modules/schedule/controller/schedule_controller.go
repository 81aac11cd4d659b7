package controller

import (
	"strconv"
	"time"

	"engagement-scheduler/core/controller"
	"engagement-scheduler/core/errors"
	"engagement-scheduler/modules/schedule/dto"
	"engagement-scheduler/modules/schedule/service"

	"github.com/labstack/echo/v4"
)

const dateLayout = "2006-01-02"

// ScheduleController handles slot grid and selection list HTTP requests
type ScheduleController struct {
	controller.BaseController
	ScheduleService service.ScheduleServiceInterface
}

func NewScheduleController(svc service.ScheduleServiceInterface) *ScheduleController {
	return &ScheduleController{
		BaseController:  controller.NewBaseController(),
		ScheduleService: svc,
	}
}

// DaySlots handles GET /schedule/slots?date&timezone&buffer
func (c *ScheduleController) DaySlots(ctx echo.Context) error {
	dateParam := ctx.QueryParam("date")
	if dateParam == "" {
		return c.BadRequest(errors.ErrInvalidInput, "date query parameter is required")
	}
	day, err := time.Parse(dateLayout, dateParam)
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "date must be formatted as YYYY-MM-DD")
	}

	timezone := ctx.QueryParam("timezone")
	buffer, _ := strconv.ParseBool(ctx.QueryParam("buffer"))

	result, appErr := c.ScheduleService.DaySlots(ctx.Request().Context(), day, timezone, buffer)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Success")
}

// ListSelections handles GET /schedule/selections
func (c *ScheduleController) ListSelections(ctx echo.Context) error {
	result, appErr := c.ScheduleService.ListSelections(ctx.Request().Context())
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Success")
}

// AddSelection handles POST /schedule/selections
func (c *ScheduleController) AddSelection(ctx echo.Context) error {
	var req dto.AddSlotRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.ScheduleService.AddSelection(ctx.Request().Context(), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Slot selected")
}

// DeleteSelection handles DELETE /schedule/selections/:index
func (c *ScheduleController) DeleteSelection(ctx echo.Context) error {
	index, err := strconv.Atoi(ctx.Param("index"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid selection index")
	}

	result, appErr := c.ScheduleService.DeleteSelection(ctx.Request().Context(), index)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Slot removed")
}

// ClearSelections handles DELETE /schedule/selections
func (c *ScheduleController) ClearSelections(ctx echo.Context) error {
	if appErr := c.ScheduleService.ClearSelections(ctx.Request().Context()); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, nil, "Selections cleared")
}

// ChangeTimezone handles POST /schedule/timezone-change
func (c *ScheduleController) ChangeTimezone(ctx echo.Context) error {
	var req dto.TimezoneChangeRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.ScheduleService.ChangeTimezone(&req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Success")
}
