package controller

import (
	"net/http"

	"engagement-scheduler/core/logger"
	"engagement-scheduler/modules/storedev/repository"

	"github.com/labstack/echo/v4"
)

// StoreController serves the collection-store contract verbatim: bare JSON
// documents and arrays, no response envelope, so the engagement repository
// can point STORE_BASE_URL at it unchanged.
type StoreController struct {
	Repo *repository.DocumentRepository
}

func NewStoreController(repo *repository.DocumentRepository) *StoreController {
	return &StoreController{Repo: repo}
}

// List handles GET /collection
func (c *StoreController) List(ctx echo.Context) error {
	docs, err := c.Repo.List(ctx.Request().Context())
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, map[string]string{"message": err.Error()})
	}
	return ctx.JSON(http.StatusOK, docs)
}

// Get handles GET /collection/:id
func (c *StoreController) Get(ctx echo.Context) error {
	doc, err := c.Repo.Get(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, map[string]string{"message": err.Error()})
	}
	if doc == nil {
		return ctx.JSON(http.StatusNotFound, map[string]string{"message": "record not found"})
	}
	return ctx.JSON(http.StatusOK, doc)
}

// Create handles POST /collection
func (c *StoreController) Create(ctx echo.Context) error {
	var body map[string]any
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, map[string]string{"message": "invalid JSON body"})
	}

	doc, err := c.Repo.Create(ctx.Request().Context(), body)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, map[string]string{"message": err.Error()})
	}

	logger.Info("StoreController:Create:Success", "id", doc["id"])
	return ctx.JSON(http.StatusCreated, doc)
}

// Update handles PUT /collection/:id
func (c *StoreController) Update(ctx echo.Context) error {
	var body map[string]any
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, map[string]string{"message": "invalid JSON body"})
	}

	doc, err := c.Repo.Update(ctx.Request().Context(), ctx.Param("id"), body)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, map[string]string{"message": err.Error()})
	}
	if doc == nil {
		return ctx.JSON(http.StatusNotFound, map[string]string{"message": "record not found"})
	}
	return ctx.JSON(http.StatusOK, doc)
}

// Delete handles DELETE /collection/:id
func (c *StoreController) Delete(ctx echo.Context) error {
	doc, err := c.Repo.Delete(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, map[string]string{"message": err.Error()})
	}
	if doc == nil {
		return ctx.JSON(http.StatusNotFound, map[string]string{"message": "record not found"})
	}
	return ctx.JSON(http.StatusOK, doc)
}
