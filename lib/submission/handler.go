package submissionhandler

import (
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"submissions-backend/db"
	projectprovider "submissions-backend/lib/dicts/project"
	submissionfilter "submissions-backend/lib/submission/filter"
	submissionstore "submissions-backend/lib/submission/store"
	"submissions-backend/lib/utils/errs"
	"submissions-backend/lib/workflow"
	"submissions-backend/models"
	submissionapimodels "submissions-backend/models/api/submission"
	dbmodels "submissions-backend/models/db"
)

type Provider interface {
	Create(actor workflow.Actor, data submissionapimodels.SubmissionCreateData) (id string, err error)
	GetByID(actor workflow.Actor, id string) (item submissionapimodels.SubmissionView, err error)
	List(actor workflow.Actor, filter submissionapimodels.SubmissionFilter) (result submissionapimodels.SubmissionListView, rowCount int64, err error)
	VisibleList(actor workflow.Actor, filter submissionapimodels.SubmissionFilter) (list []dbmodels.Submission, err error)
	Approve(actor workflow.Actor, id string, data submissionapimodels.DecisionData) (item submissionapimodels.SubmissionView, err error)
	Reject(actor workflow.Actor, id string, data submissionapimodels.DecisionData) (item submissionapimodels.SubmissionView, err error)
	Withdraw(actor workflow.Actor, id string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:           submissionstore.NewInstance(db.DB),
		projectProvider: projectprovider.Instance,
	}
}

type impl struct {
	store           submissionstore.Provider
	projectProvider projectprovider.Provider
}

func NewWith(store submissionstore.Provider, projectProvider projectprovider.Provider) Provider {
	return impl{
		store:           store,
		projectProvider: projectProvider,
	}
}

func (i impl) Create(actor workflow.Actor, data submissionapimodels.SubmissionCreateData) (id string, err error) {
	logger := log.WithField("user_id", actor.UserID)
	if actor.Role.IsManager() {
		return "", errs.Permission("создавать сдачу работы может только сотрудник")
	}
	if err = data.Validate(); err != nil {
		return "", err
	}
	project, err := i.projectProvider.Get(data.ProjectID)
	if err != nil {
		if errs.IsNotFound(err) {
			return "", errs.Validation("проект не найден в справочнике")
		}
		return "", err
	}
	submittedAt, err := data.GetSubmittedAt()
	if err != nil {
		return "", err
	}
	rec := dbmodels.Submission{
		Title:       strings.TrimSpace(data.Title),
		Description: strings.TrimSpace(data.Description),
		ProjectID:   project.ID,
		EmployeeID:  actor.UserID,
		SubmittedAt: submittedAt,
		Attachments: data.Attachments,
		Status:      models.SubmissionStatusPending,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		logger.
			WithError(err).
			Error("ошибка создания сдачи работы")
		return "", err
	}
	logger.
		WithField("rec_id", id).
		Info("создана сдача работы")
	return id, nil
}

func (i impl) GetByID(actor workflow.Actor, id string) (item submissionapimodels.SubmissionView, err error) {
	rec, err := i.getVisibleRec(actor, id)
	if err != nil {
		return submissionapimodels.SubmissionView{}, err
	}
	return submissionapimodels.SubmissionConvert(*rec), nil
}

func (i impl) List(actor workflow.Actor, filter submissionapimodels.SubmissionFilter) (result submissionapimodels.SubmissionListView, rowCount int64, err error) {
	all, err := i.store.List()
	if err != nil {
		log.WithError(err).Error("ошибка получения списка сдач работ")
		return submissionapimodels.SubmissionListView{}, 0, err
	}
	visible, err := submissionfilter.Visible(all, actor.Role, actor.UserID, filter, time.Now())
	if err != nil {
		return submissionapimodels.SubmissionListView{}, 0, err
	}
	rowCount = int64(len(visible))

	page, limit := filter.GetPage()
	offset := (page - 1) * limit
	if offset > len(visible) {
		offset = len(visible)
	}
	end := offset + limit
	if end > len(visible) {
		end = len(visible)
	}

	items := make([]submissionapimodels.SubmissionView, 0, end-offset)
	for _, rec := range visible[offset:end] {
		items = append(items, submissionapimodels.SubmissionConvert(rec))
	}
	result = submissionapimodels.SubmissionListView{
		Items:  items,
		Counts: submissionfilter.Counts(all, actor.Role, actor.UserID),
	}
	return result, rowCount, nil
}

// VisibleList - видимый пользователю набор без пагинации, им же пользуется выгрузка в xlsx
func (i impl) VisibleList(actor workflow.Actor, filter submissionapimodels.SubmissionFilter) (list []dbmodels.Submission, err error) {
	all, err := i.store.List()
	if err != nil {
		log.WithError(err).Error("ошибка получения списка сдач работ")
		return nil, err
	}
	return submissionfilter.Visible(all, actor.Role, actor.UserID, filter, time.Now())
}

func (i impl) Approve(actor workflow.Actor, id string, data submissionapimodels.DecisionData) (item submissionapimodels.SubmissionView, err error) {
	return i.applyDecision(actor, id, models.SubmissionEventApprove, data.Comment)
}

func (i impl) Reject(actor workflow.Actor, id string, data submissionapimodels.DecisionData) (item submissionapimodels.SubmissionView, err error) {
	return i.applyDecision(actor, id, models.SubmissionEventReject, data.Comment)
}

func (i impl) applyDecision(actor workflow.Actor, id string, event models.SubmissionEvent, comment string) (item submissionapimodels.SubmissionView, err error) {
	logger := log.
		WithField("user_id", actor.UserID).
		WithField("rec_id", id)
	rec, err := i.store.GetByID(id)
	if err != nil {
		logger.WithError(err).Error("ошибка получения сдачи работы")
		return submissionapimodels.SubmissionView{}, err
	}
	if rec == nil {
		return submissionapimodels.SubmissionView{}, errs.NotFound("сдача работы не найдена")
	}
	if err = workflow.CanTransition(actor, *rec, event, comment); err != nil {
		return submissionapimodels.SubmissionView{}, err
	}
	status, ok := workflow.TargetStatus(event)
	if !ok {
		return submissionapimodels.SubmissionView{}, errs.Newf(errs.KindValidation, "неизвестное событие перехода: %v", event)
	}
	applied, err := i.store.ApplyDecision(id, status, strings.TrimSpace(comment))
	if err != nil {
		logger.WithError(err).Error("ошибка сохранения решения по сдаче работы")
		return submissionapimodels.SubmissionView{}, err
	}
	if !applied {
		// успела параллельная операция, решение уже принято
		return submissionapimodels.SubmissionView{}, errs.InvalidTransition("сдача уже рассмотрена, повторное решение невозможно")
	}
	logger.
		WithField("status", status).
		Info("принято решение по сдаче работы")
	updated, err := i.store.GetByID(id)
	if err != nil || updated == nil {
		logger.WithError(err).Error("ошибка получения сдачи работы после решения")
		return submissionapimodels.SubmissionView{}, err
	}
	return submissionapimodels.SubmissionConvert(*updated), nil
}

func (i impl) Withdraw(actor workflow.Actor, id string) error {
	logger := log.
		WithField("user_id", actor.UserID).
		WithField("rec_id", id)
	rec, err := i.store.GetByID(id)
	if err != nil {
		logger.WithError(err).Error("ошибка получения сдачи работы")
		return err
	}
	if rec == nil {
		return errs.NotFound("сдача работы не найдена")
	}
	if err = workflow.CanTransition(actor, *rec, models.SubmissionEventWithdraw, ""); err != nil {
		return err
	}
	deleted, err := i.store.Delete(id)
	if err != nil {
		logger.WithError(err).Error("ошибка отзыва сдачи работы")
		return err
	}
	if !deleted {
		return errs.InvalidTransition("сдача уже рассмотрена, отзыв невозможен")
	}
	logger.Info("сдача работы отозвана сотрудником")
	return nil
}

func (i impl) getVisibleRec(actor workflow.Actor, id string) (*dbmodels.Submission, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, errs.NotFound("сдача работы не найдена")
	}
	// сотрудник не видит чужие сдачи, наличие записи не раскрываем
	if !actor.Role.IsManager() && rec.EmployeeID != actor.UserID {
		return nil, errs.NotFound("сдача работы не найдена")
	}
	return rec, nil
}
