package submissionhandler

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"submissions-backend/lib/utils/errs"
	"submissions-backend/lib/workflow"
	"submissions-backend/models"
	dictapimodels "submissions-backend/models/api/dict"
	submissionapimodels "submissions-backend/models/api/submission"
	dbmodels "submissions-backend/models/db"
)

const testProjectID = "proj-1"

type fakeStore struct {
	seq  int
	recs map[string]dbmodels.Submission
}

func newFakeStore() *fakeStore {
	return &fakeStore{recs: map[string]dbmodels.Submission{}}
}

func (s *fakeStore) Create(rec dbmodels.Submission) (string, error) {
	s.seq++
	rec.ID = fmt.Sprintf("rec-%d", s.seq)
	rec.Number = fmt.Sprintf("#2024-%03d", s.seq)
	s.recs[rec.ID] = rec
	return rec.ID, nil
}

func (s *fakeStore) GetByID(id string) (*dbmodels.Submission, error) {
	rec, ok := s.recs[id]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (s *fakeStore) List() ([]dbmodels.Submission, error) {
	list := make([]dbmodels.Submission, 0, len(s.recs))
	for i := 1; i <= s.seq; i++ {
		if rec, ok := s.recs[fmt.Sprintf("rec-%d", i)]; ok {
			list = append(list, rec)
		}
	}
	return list, nil
}

func (s *fakeStore) ApplyDecision(id string, status models.SubmissionStatus, comment string) (bool, error) {
	rec, ok := s.recs[id]
	if !ok || rec.Status != models.SubmissionStatusPending {
		return false, nil
	}
	rec.Status = status
	rec.Comment = comment
	s.recs[id] = rec
	return true, nil
}

func (s *fakeStore) Delete(id string) (bool, error) {
	rec, ok := s.recs[id]
	if !ok || rec.Status != models.SubmissionStatusPending {
		return false, nil
	}
	delete(s.recs, id)
	return true, nil
}

type fakeProjectProvider struct{}

func (fakeProjectProvider) Get(id string) (dbmodels.Project, error) {
	if id != testProjectID {
		return dbmodels.Project{}, errs.NotFound("проект не найден в справочнике")
	}
	rec := dbmodels.Project{Name: "Восточный проект", IsActive: true}
	rec.ID = testProjectID
	return rec, nil
}

func (fakeProjectProvider) List() ([]dictapimodels.ProjectView, error) {
	return []dictapimodels.ProjectView{{ID: testProjectID, Name: "Восточный проект"}}, nil
}

var (
	employee      = workflow.Actor{UserID: "emp-1", Role: models.EmployeeRole}
	otherEmployee = workflow.Actor{UserID: "emp-2", Role: models.EmployeeRole}
	manager       = workflow.Actor{UserID: "mgr-1", Role: models.ManagerRole}
)

func newTestHandler() (Provider, *fakeStore) {
	store := newFakeStore()
	return NewWith(store, fakeProjectProvider{}), store
}

func createData() submissionapimodels.SubmissionCreateData {
	return submissionapimodels.SubmissionCreateData{
		Title:       "Фундаментные работы",
		Description: "Заливка фундамента корпуса Б",
		ProjectID:   testProjectID,
		Date:        "2024-03-20",
		Time:        "09:30",
	}
}

func TestCreate(t *testing.T) {
	t.Run(`сотрудник создает сдачу в статусе на рассмотрении`, func(t *testing.T) {
		handler, store := newTestHandler()
		id, err := handler.Create(employee, createData())
		require.Nil(t, err)
		require.NotEmpty(t, id)

		rec := store.recs[id]
		require.Equal(t, models.SubmissionStatusPending, rec.Status)
		require.Equal(t, employee.UserID, rec.EmployeeID)
		require.Equal(t, "#2024-001", rec.Number)
	})

	t.Run(`руководитель не может создать сдачу`, func(t *testing.T) {
		handler, _ := newTestHandler()
		_, err := handler.Create(manager, createData())
		require.NotNil(t, err)
		require.True(t, errs.IsPermission(err))
	})

	t.Run(`сдача с несуществующим проектом отклоняется`, func(t *testing.T) {
		handler, _ := newTestHandler()
		data := createData()
		data.ProjectID = "missing"
		_, err := handler.Create(employee, data)
		require.NotNil(t, err)
		require.True(t, errs.IsValidation(err))
	})

	t.Run(`пустой заголовок отклоняется`, func(t *testing.T) {
		handler, _ := newTestHandler()
		data := createData()
		data.Title = " "
		_, err := handler.Create(employee, data)
		require.NotNil(t, err)
		require.True(t, errs.IsValidation(err))
	})
}

func TestDecisions(t *testing.T) {
	t.Run(`согласование переводит сдачу в принято`, func(t *testing.T) {
		handler, _ := newTestHandler()
		id, err := handler.Create(employee, createData())
		require.Nil(t, err)

		item, err := handler.Approve(manager, id, submissionapimodels.DecisionData{})
		require.Nil(t, err)
		require.Equal(t, string(models.SubmissionStatusApproved), item.Status)
	})

	t.Run(`повторное решение невозможно`, func(t *testing.T) {
		handler, _ := newTestHandler()
		id, err := handler.Create(employee, createData())
		require.Nil(t, err)

		_, err = handler.Approve(manager, id, submissionapimodels.DecisionData{})
		require.Nil(t, err)

		_, err = handler.Approve(manager, id, submissionapimodels.DecisionData{})
		require.NotNil(t, err)
		require.True(t, errs.IsInvalidTransition(err))

		_, err = handler.Reject(manager, id, submissionapimodels.DecisionData{Comment: "поздно"})
		require.NotNil(t, err)
		require.True(t, errs.IsInvalidTransition(err))
	})

	t.Run(`отказ требует комментарий`, func(t *testing.T) {
		handler, _ := newTestHandler()
		id, err := handler.Create(employee, createData())
		require.Nil(t, err)

		_, err = handler.Reject(manager, id, submissionapimodels.DecisionData{Comment: "  "})
		require.NotNil(t, err)
		require.True(t, errs.IsValidation(err))

		item, err := handler.Reject(manager, id, submissionapimodels.DecisionData{Comment: "нужны правки"})
		require.Nil(t, err)
		require.Equal(t, string(models.SubmissionStatusRejected), item.Status)
		require.Equal(t, "нужны правки", item.Comment)
	})

	t.Run(`сотрудник не может принять решение`, func(t *testing.T) {
		handler, _ := newTestHandler()
		id, err := handler.Create(employee, createData())
		require.Nil(t, err)

		_, err = handler.Approve(employee, id, submissionapimodels.DecisionData{})
		require.NotNil(t, err)
		require.True(t, errs.IsPermission(err))
	})

	t.Run(`решение по несуществующей сдаче`, func(t *testing.T) {
		handler, _ := newTestHandler()
		_, err := handler.Approve(manager, "missing", submissionapimodels.DecisionData{})
		require.NotNil(t, err)
		require.True(t, errs.IsNotFound(err))
	})
}

func TestWithdraw(t *testing.T) {
	t.Run(`автор отзывает ожидающую сдачу`, func(t *testing.T) {
		handler, store := newTestHandler()
		id, err := handler.Create(employee, createData())
		require.Nil(t, err)

		require.Nil(t, handler.Withdraw(employee, id))
		_, exists := store.recs[id]
		require.False(t, exists)
	})

	t.Run(`чужую сдачу отозвать нельзя`, func(t *testing.T) {
		handler, _ := newTestHandler()
		id, err := handler.Create(employee, createData())
		require.Nil(t, err)

		err = handler.Withdraw(otherEmployee, id)
		require.NotNil(t, err)
		require.True(t, errs.IsPermission(err))
	})

	t.Run(`рассмотренную сдачу отозвать нельзя`, func(t *testing.T) {
		handler, _ := newTestHandler()
		id, err := handler.Create(employee, createData())
		require.Nil(t, err)

		_, err = handler.Approve(manager, id, submissionapimodels.DecisionData{})
		require.Nil(t, err)

		err = handler.Withdraw(employee, id)
		require.NotNil(t, err)
		require.True(t, errs.IsInvalidTransition(err))
	})
}

func TestList(t *testing.T) {
	fill := func(t *testing.T, handler Provider) {
		id1, err := handler.Create(employee, createData())
		require.Nil(t, err)
		_, err = handler.Create(employee, createData())
		require.Nil(t, err)
		id3, err := handler.Create(otherEmployee, createData())
		require.Nil(t, err)

		_, err = handler.Approve(manager, id1, submissionapimodels.DecisionData{})
		require.Nil(t, err)
		_, err = handler.Reject(manager, id3, submissionapimodels.DecisionData{Comment: "нужны правки"})
		require.Nil(t, err)
	}

	t.Run(`сотрудник видит только свои сдачи со своими счетчиками`, func(t *testing.T) {
		handler, _ := newTestHandler()
		fill(t, handler)

		result, rowCount, err := handler.List(employee, submissionapimodels.SubmissionFilter{})
		require.Nil(t, err)
		require.EqualValues(t, 2, rowCount)
		require.Len(t, result.Items, 2)
		require.Equal(t, 2, result.Counts.All)
		require.Equal(t, 1, result.Counts.Pending)
		require.Equal(t, 1, result.Counts.Approved)
		require.Equal(t, 0, result.Counts.Rejected)
	})

	t.Run(`счетчики руководителя не зависят от вкладки статуса`, func(t *testing.T) {
		handler, _ := newTestHandler()
		fill(t, handler)

		filter := submissionapimodels.SubmissionFilter{Status: submissionapimodels.FilterStatusRejected}
		result, rowCount, err := handler.List(manager, filter)
		require.Nil(t, err)
		require.EqualValues(t, 1, rowCount)
		require.Len(t, result.Items, 1)
		require.Equal(t, 3, result.Counts.All)
		require.Equal(t, 1, result.Counts.Pending)
		require.Equal(t, 1, result.Counts.Approved)
		require.Equal(t, 1, result.Counts.Rejected)
	})

	t.Run(`пагинация отдает общее количество с учетом фильтра`, func(t *testing.T) {
		handler, _ := newTestHandler()
		fill(t, handler)

		filter := submissionapimodels.SubmissionFilter{}
		filter.Page = 1
		filter.Limit = 2
		result, rowCount, err := handler.List(manager, filter)
		require.Nil(t, err)
		require.EqualValues(t, 3, rowCount)
		require.Len(t, result.Items, 2)

		filter.Page = 2
		result, _, err = handler.List(manager, filter)
		require.Nil(t, err)
		require.Len(t, result.Items, 1)
	})
}

func TestGetByID(t *testing.T) {
	t.Run(`сотрудник не видит чужую сдачу`, func(t *testing.T) {
		handler, _ := newTestHandler()
		id, err := handler.Create(employee, createData())
		require.Nil(t, err)

		_, err = handler.GetByID(otherEmployee, id)
		require.NotNil(t, err)
		require.True(t, errs.IsNotFound(err))

		item, err := handler.GetByID(manager, id)
		require.Nil(t, err)
		require.Equal(t, id, item.ID)
	})
}
