package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"submissions-backend/controllers"
	employeehandler "submissions-backend/lib/employee"
	"submissions-backend/middleware"
	apimodels "submissions-backend/models/api"
)

type employeeApiController struct {
	controllers.BaseAPIController
}

func InitEmployeeApiRouters(app *fiber.App) {
	controller := employeeApiController{}
	app.Route("employees", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Use(middleware.ManagerRoleRequired())
		router.Get("", controller.list)
	})
}

// @Summary Реестр сотрудников
// @Tags Сотрудники
// @Description Реестр сотрудников со счетчиками сдач, доступен только руководителю
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]employeeapimodels.EmployeeView}
// @Failure 401 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employees [get]
func (c *employeeApiController) list(ctx *fiber.Ctx) error {
	list, err := employeehandler.Instance.Roster()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения реестра сотрудников")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}
