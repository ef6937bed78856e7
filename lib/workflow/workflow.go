package workflow

import (
	"strings"

	"submissions-backend/lib/utils/errs"
	"submissions-backend/models"
	dbmodels "submissions-backend/models/db"
)

// Actor - инициатор перехода из клеймов сессии.
type Actor struct {
	UserID string
	Role   models.UserRole
}

// Таблица переходов:
//
//	PENDING -- APPROVE  (руководитель)                    --> APPROVED
//	PENDING -- REJECT   (руководитель, комментарий не пуст) --> REJECTED
//	PENDING -- WITHDRAW (сотрудник-владелец)               --> запись удаляется
//
// APPROVED и REJECTED конечные: любой переход из них запрещен.

// CanTransition - единственная точка проверки прав на переход.
// Обработчики и контроллеры не дублируют проверки ролей по месту.
func CanTransition(actor Actor, rec dbmodels.Submission, event models.SubmissionEvent, comment string) error {
	if rec.Status.IsTerminal() {
		return errs.Newf(errs.KindInvalidTransition,
			"сдача %s уже рассмотрена (%s), повторное решение невозможно", rec.Number, rec.Status.ToHuman())
	}
	if rec.Status != models.SubmissionStatusPending {
		return errs.Newf(errs.KindInvalidTransition, "недопустимый статус сдачи: %v", rec.Status)
	}
	switch event {
	case models.SubmissionEventApprove:
		if !actor.Role.IsManager() {
			return errs.Permission("принимать работу может только руководитель")
		}
	case models.SubmissionEventReject:
		if !actor.Role.IsManager() {
			return errs.Permission("отклонять работу может только руководитель")
		}
		if strings.TrimSpace(comment) == "" {
			return errs.Validation("при отказе обязателен комментарий")
		}
	case models.SubmissionEventWithdraw:
		if actor.UserID != rec.EmployeeID {
			return errs.Permission("отозвать сдачу может только ее автор")
		}
	default:
		return errs.Newf(errs.KindValidation, "неизвестное событие перехода: %v", event)
	}
	return nil
}

// TargetStatus - статус-назначение события. Для WITHDRAW статуса нет: запись удаляется.
func TargetStatus(event models.SubmissionEvent) (models.SubmissionStatus, bool) {
	switch event {
	case models.SubmissionEventApprove:
		return models.SubmissionStatusApproved, true
	case models.SubmissionEventReject:
		return models.SubmissionStatusRejected, true
	}
	return "", false
}
