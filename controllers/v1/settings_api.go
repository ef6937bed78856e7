package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"submissions-backend/controllers"
	settingshandler "submissions-backend/lib/settings"
	"submissions-backend/middleware"
	apimodels "submissions-backend/models/api"
	employeeapimodels "submissions-backend/models/api/employee"
)

type settingsApiController struct {
	controllers.BaseAPIController
}

func InitSettingsApiRouters(app *fiber.App) {
	controller := settingsApiController{}
	app.Route("settings", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Get("profile", controller.getProfile)
		router.Put("profile", controller.setProfile)
	})
}

// @Summary Профиль пользователя
// @Tags Настройки
// @Description Профиль текущего пользователя с настройками оформления
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=employeeapimodels.UserView}
// @Failure 401 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/settings/profile [get]
func (c *settingsApiController) getProfile(ctx *fiber.Ctx) error {
	userID := middleware.GetUserID(ctx)
	resp, err := settingshandler.Instance.GetProfile(userID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения профиля пользователя")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Сохранение настроек профиля
// @Tags Настройки
// @Description Сохранение настроек оформления текущего пользователя
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 employeeapimodels.ProfileSettingsData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/settings/profile [put]
func (c *settingsApiController) setProfile(ctx *fiber.Ctx) error {
	var payload employeeapimodels.ProfileSettingsData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	if err := settingshandler.Instance.SetDarkTheme(userID, payload.DarkTheme); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка сохранения настроек профиля")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
