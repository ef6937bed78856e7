package apiv1

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"submissions-backend/controllers"
	xlsexport "submissions-backend/lib/export/xls"
	submissionhandler "submissions-backend/lib/submission"
	"submissions-backend/lib/workflow"
	"submissions-backend/middleware"
	apimodels "submissions-backend/models/api"
	submissionapimodels "submissions-backend/models/api/submission"
)

type submissionApiController struct {
	controllers.BaseAPIController
}

func InitSubmissionApiRouters(app *fiber.App) {
	controller := submissionApiController{}
	app.Route("submissions", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Get("", controller.list)
		router.Post("", controller.create)
		router.Get("export", controller.export)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Delete("", controller.withdraw)
			idRoute.Use(middleware.ManagerRoleRequired())
			idRoute.Patch("approve", controller.approve)
			idRoute.Patch("reject", controller.reject)
		})
	})
}

func getActor(ctx *fiber.Ctx) workflow.Actor {
	return workflow.Actor{
		UserID: middleware.GetUserID(ctx),
		Role:   middleware.GetUserRole(ctx),
	}
}

// @Summary Список сдач работ
// @Tags Сдачи работ
// @Description Список сдач работ с учетом роли, фильтров и счетчиков по статусам
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   status				query		string	false	"all/pending/approved/rejected"
// @Param   search				query		string	false	"поиск по заголовку или номеру"
// @Param   date_filter			query		string	false	"today/week/month/custom"
// @Param   date_from			query		string	false	"для custom, 2006-01-02"
// @Param   date_to				query		string	false	"для custom, 2006-01-02"
// @Param   page				query		int		false	"страница"
// @Param   limit				query		int		false	"записей на странице"
// @Success 200 {object} apimodels.ScrollerResponse{data=submissionapimodels.SubmissionListView}
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/submissions [get]
func (c *submissionApiController) list(ctx *fiber.Ctx) error {
	var filter submissionapimodels.SubmissionFilter
	if err := ctx.QueryParser(&filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("не удалось получить параметры фильтра"))
	}
	if err := filter.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	result, rowCount, err := submissionhandler.Instance.List(getActor(ctx), filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка сдач работ")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(result, rowCount))
}

// @Summary Создание сдачи работы
// @Tags Сдачи работ
// @Description Создание сдачи работы, доступно только сотруднику
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 submissionapimodels.SubmissionCreateData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/submissions [post]
func (c *submissionApiController) create(ctx *fiber.Ctx) error {
	var payload submissionapimodels.SubmissionCreateData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	id, err := submissionhandler.Instance.Create(getActor(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания сдачи работы")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Карточка сдачи работы
// @Tags Сдачи работ
// @Description Карточка сдачи работы
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string	true	"rec ID"
// @Success 200 {object} apimodels.Response{data=submissionapimodels.SubmissionView}
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/submissions/{id} [get]
func (c *submissionApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	item, err := submissionhandler.Instance.GetByID(getActor(ctx), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения сдачи работы")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(item))
}

// @Summary Согласование сдачи работы
// @Tags Сдачи работ
// @Description Согласование сдачи работы руководителем, комментарий необязателен
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string	true	"rec ID"
// @Param	body body	 submissionapimodels.DecisionData	true	"request body"
// @Success 200 {object} apimodels.Response{data=submissionapimodels.SubmissionView}
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/submissions/{id}/approve [patch]
func (c *submissionApiController) approve(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload submissionapimodels.DecisionData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	item, err := submissionhandler.Instance.Approve(getActor(ctx), id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка согласования сдачи работы")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(item))
}

// @Summary Отклонение сдачи работы
// @Tags Сдачи работ
// @Description Отклонение сдачи работы руководителем, комментарий обязателен
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string	true	"rec ID"
// @Param	body body	 submissionapimodels.DecisionData	true	"request body"
// @Success 200 {object} apimodels.Response{data=submissionapimodels.SubmissionView}
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/submissions/{id}/reject [patch]
func (c *submissionApiController) reject(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload submissionapimodels.DecisionData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	item, err := submissionhandler.Instance.Reject(getActor(ctx), id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка отклонения сдачи работы")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(item))
}

// @Summary Отзыв сдачи работы
// @Tags Сдачи работ
// @Description Отзыв сдачи работы автором, доступен пока сдача не рассмотрена
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string	true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/submissions/{id} [delete]
func (c *submissionApiController) withdraw(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = submissionhandler.Instance.Withdraw(getActor(ctx), id); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка отзыва сдачи работы")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Выгрузить реестр сдач в Excel
// @Tags Сдачи работ
// @Description Выгрузить реестр сдач в Excel с учетом роли и фильтров
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   status				query		string	false	"all/pending/approved/rejected"
// @Param   search				query		string	false	"поиск по заголовку или номеру"
// @Param   date_filter			query		string	false	"today/week/month/custom"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/submissions/export [get]
func (c *submissionApiController) export(ctx *fiber.Ctx) error {
	var filter submissionapimodels.SubmissionFilter
	if err := ctx.QueryParser(&filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("не удалось получить параметры фильтра"))
	}
	if err := filter.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := submissionhandler.Instance.VisibleList(getActor(ctx), filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения реестра сдач для выгрузки в Excel")
	}
	data, err := xlsexport.Instance.ExportSubmissionList(list)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка выгрузки реестра сдач в Excel")
	}
	fileName := fmt.Sprintf("submissions-%v.xlsx", time.Now().Format("20060102-150405"))
	ctx.Set("Content-Type", "application/vnd.ms-excel")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.SendStream(data)
}
