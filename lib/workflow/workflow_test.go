package workflow

import (
	"testing"

	"github.com/stretchr/testify/require"

	"submissions-backend/lib/utils/errs"
	"submissions-backend/models"
	dbmodels "submissions-backend/models/db"
)

func pendingRec(employeeID string) dbmodels.Submission {
	rec := dbmodels.Submission{
		Title:      "Фундаментные работы",
		EmployeeID: employeeID,
		Status:     models.SubmissionStatusPending,
	}
	rec.Number = "#2024-001"
	return rec
}

func TestCanTransition(t *testing.T) {
	employee := Actor{UserID: "emp-1", Role: models.EmployeeRole}
	manager := Actor{UserID: "mgr-1", Role: models.ManagerRole}

	t.Run(`руководитель может принять ожидающую сдачу`, func(t *testing.T) {
		err := CanTransition(manager, pendingRec("emp-1"), models.SubmissionEventApprove, "")
		require.Nil(t, err)
	})

	t.Run(`сотрудник не может принять сдачу`, func(t *testing.T) {
		err := CanTransition(employee, pendingRec("emp-1"), models.SubmissionEventApprove, "")
		require.NotNil(t, err)
		require.True(t, errs.IsPermission(err))
	})

	t.Run(`отказ без комментария запрещен`, func(t *testing.T) {
		err := CanTransition(manager, pendingRec("emp-1"), models.SubmissionEventReject, "   ")
		require.NotNil(t, err)
		require.True(t, errs.IsValidation(err))
	})

	t.Run(`отказ с комментарием разрешен`, func(t *testing.T) {
		err := CanTransition(manager, pendingRec("emp-1"), models.SubmissionEventReject, "нужны правки")
		require.Nil(t, err)
	})

	t.Run(`сотрудник не может отклонить сдачу даже с комментарием`, func(t *testing.T) {
		err := CanTransition(employee, pendingRec("emp-1"), models.SubmissionEventReject, "комментарий")
		require.NotNil(t, err)
		require.True(t, errs.IsPermission(err))
	})

	t.Run(`автор может отозвать ожидающую сдачу`, func(t *testing.T) {
		err := CanTransition(employee, pendingRec("emp-1"), models.SubmissionEventWithdraw, "")
		require.Nil(t, err)
	})

	t.Run(`чужую сдачу отозвать нельзя`, func(t *testing.T) {
		err := CanTransition(employee, pendingRec("emp-2"), models.SubmissionEventWithdraw, "")
		require.NotNil(t, err)
		require.True(t, errs.IsPermission(err))
	})

	t.Run(`руководитель не может отозвать чужую сдачу`, func(t *testing.T) {
		err := CanTransition(manager, pendingRec("emp-1"), models.SubmissionEventWithdraw, "")
		require.NotNil(t, err)
		require.True(t, errs.IsPermission(err))
	})

	t.Run(`конечные статусы запрещают любой переход`, func(t *testing.T) {
		for _, status := range []models.SubmissionStatus{models.SubmissionStatusApproved, models.SubmissionStatusRejected} {
			for _, event := range []models.SubmissionEvent{models.SubmissionEventApprove, models.SubmissionEventReject, models.SubmissionEventWithdraw} {
				rec := pendingRec("emp-1")
				rec.Status = status
				err := CanTransition(manager, rec, event, "комментарий")
				require.NotNil(t, err)
				require.True(t, errs.IsInvalidTransition(err))

				err = CanTransition(employee, rec, event, "комментарий")
				require.NotNil(t, err)
				require.True(t, errs.IsInvalidTransition(err))
			}
		}
	})

	t.Run(`неизвестное событие отклоняется`, func(t *testing.T) {
		err := CanTransition(manager, pendingRec("emp-1"), models.SubmissionEvent("UNKNOWN"), "")
		require.NotNil(t, err)
		require.True(t, errs.IsValidation(err))
	})
}

func TestTargetStatus(t *testing.T) {
	status, ok := TargetStatus(models.SubmissionEventApprove)
	require.True(t, ok)
	require.Equal(t, models.SubmissionStatusApproved, status)

	status, ok = TargetStatus(models.SubmissionEventReject)
	require.True(t, ok)
	require.Equal(t, models.SubmissionStatusRejected, status)

	_, ok = TargetStatus(models.SubmissionEventWithdraw)
	require.False(t, ok)
}
