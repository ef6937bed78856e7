package dict

import (
	"github.com/gofiber/fiber/v2"
	"submissions-backend/controllers"
	projectprovider "submissions-backend/lib/dicts/project"
	apimodels "submissions-backend/models/api"
)

type projectDictApiController struct {
	controllers.BaseAPIController
}

func InitProjectDictApiRouters(app *fiber.App) {
	controller := projectDictApiController{}
	app.Route("project", func(router fiber.Router) {
		router.Get("", controller.list)
	})
}

// @Summary Список проектов
// @Tags Справочник. Проект
// @Description Список активных проектов для выбора при создании сдачи
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]dictapimodels.ProjectView}
// @Failure 401 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/project [get]
func (c *projectDictApiController) list(ctx *fiber.Ctx) error {
	list, err := projectprovider.Instance.List()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения справочника проектов")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}
