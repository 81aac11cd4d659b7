package storedev

import (
	"context"

	"engagement-scheduler/core/database"
	"engagement-scheduler/modules/storedev/controller"
	"engagement-scheduler/modules/storedev/repository"
	"engagement-scheduler/modules/storedev/router"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Echo, db database.Database) error {
	repo := repository.NewDocumentRepository(db)
	if err := repo.InitSchema(context.Background()); err != nil {
		return err
	}

	ctrl := controller.NewStoreController(repo)
	router.NewStoreRouter(ctrl).Register(e)

	return nil
}
