package submissionfilter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"submissions-backend/models"
	submissionapimodels "submissions-backend/models/api/submission"
	dbmodels "submissions-backend/models/db"
)

var testNow = time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC) // среда

func testSet() []dbmodels.Submission {
	return []dbmodels.Submission{
		{
			Number:      "#2024-001",
			Title:       "Фундаментные работы",
			EmployeeID:  "emp-1",
			SubmittedAt: time.Date(2024, 3, 20, 9, 30, 0, 0, time.UTC),
			Status:      models.SubmissionStatusPending,
		},
		{
			Number:      "#2024-002",
			Title:       "Монтаж перекрытий",
			EmployeeID:  "emp-1",
			SubmittedAt: time.Date(2024, 3, 18, 14, 0, 0, 0, time.UTC),
			Status:      models.SubmissionStatusApproved,
		},
		{
			Number:      "#2024-003",
			Title:       "Отделка фасада",
			EmployeeID:  "emp-2",
			SubmittedAt: time.Date(2024, 2, 28, 10, 0, 0, 0, time.UTC),
			Status:      models.SubmissionStatusRejected,
		},
	}
}

func numbers(list []dbmodels.Submission) []string {
	result := make([]string, 0, len(list))
	for _, rec := range list {
		result = append(result, rec.Number)
	}
	return result
}

func TestVisible(t *testing.T) {
	t.Run(`сотрудник видит только свои сдачи`, func(t *testing.T) {
		list, err := Visible(testSet(), models.EmployeeRole, "emp-1", submissionapimodels.SubmissionFilter{}, testNow)
		require.Nil(t, err)
		require.Equal(t, []string{"#2024-001", "#2024-002"}, numbers(list))
	})

	t.Run(`руководитель видит все сдачи`, func(t *testing.T) {
		list, err := Visible(testSet(), models.ManagerRole, "mgr-1", submissionapimodels.SubmissionFilter{}, testNow)
		require.Nil(t, err)
		require.Len(t, list, 3)
	})

	t.Run(`фильтр по статусу`, func(t *testing.T) {
		filter := submissionapimodels.SubmissionFilter{Status: submissionapimodels.FilterStatusPending}
		list, err := Visible(testSet(), models.ManagerRole, "mgr-1", filter, testNow)
		require.Nil(t, err)
		require.Equal(t, []string{"#2024-001"}, numbers(list))

		filter.Status = submissionapimodels.FilterStatusRejected
		list, err = Visible(testSet(), models.ManagerRole, "mgr-1", filter, testNow)
		require.Nil(t, err)
		require.Equal(t, []string{"#2024-003"}, numbers(list))
	})

	t.Run(`поиск по заголовку без учета регистра`, func(t *testing.T) {
		filter := submissionapimodels.SubmissionFilter{Search: "  МОНТАЖ "}
		list, err := Visible(testSet(), models.ManagerRole, "mgr-1", filter, testNow)
		require.Nil(t, err)
		require.Equal(t, []string{"#2024-002"}, numbers(list))
	})

	t.Run(`поиск по части номера`, func(t *testing.T) {
		filter := submissionapimodels.SubmissionFilter{Search: "2024-002"}
		list, err := Visible(testSet(), models.ManagerRole, "mgr-1", filter, testNow)
		require.Nil(t, err)
		require.Equal(t, []string{"#2024-002"}, numbers(list))
	})

	t.Run(`окно за сегодня`, func(t *testing.T) {
		filter := submissionapimodels.SubmissionFilter{DateFilter: submissionapimodels.FilterDateToday}
		list, err := Visible(testSet(), models.ManagerRole, "mgr-1", filter, testNow)
		require.Nil(t, err)
		require.Equal(t, []string{"#2024-001"}, numbers(list))
	})

	t.Run(`окно за неделю с понедельника`, func(t *testing.T) {
		filter := submissionapimodels.SubmissionFilter{DateFilter: submissionapimodels.FilterDateWeek}
		list, err := Visible(testSet(), models.ManagerRole, "mgr-1", filter, testNow)
		require.Nil(t, err)
		require.Equal(t, []string{"#2024-001", "#2024-002"}, numbers(list))
	})

	t.Run(`окно за месяц не захватывает февраль`, func(t *testing.T) {
		filter := submissionapimodels.SubmissionFilter{DateFilter: submissionapimodels.FilterDateMonth}
		list, err := Visible(testSet(), models.ManagerRole, "mgr-1", filter, testNow)
		require.Nil(t, err)
		require.Equal(t, []string{"#2024-001", "#2024-002"}, numbers(list))
	})

	t.Run(`произвольный период включает границы`, func(t *testing.T) {
		filter := submissionapimodels.SubmissionFilter{
			DateFilter: submissionapimodels.FilterDateCustom,
			DateFrom:   "2024-02-28",
			DateTo:     "2024-03-18",
		}
		list, err := Visible(testSet(), models.ManagerRole, "mgr-1", filter, testNow)
		require.Nil(t, err)
		require.Equal(t, []string{"#2024-002", "#2024-003"}, numbers(list))
	})

	t.Run(`произвольный период без дат - ошибка`, func(t *testing.T) {
		filter := submissionapimodels.SubmissionFilter{DateFilter: submissionapimodels.FilterDateCustom}
		_, err := Visible(testSet(), models.ManagerRole, "mgr-1", filter, testNow)
		require.NotNil(t, err)
	})

	t.Run(`комбинация статуса и поиска`, func(t *testing.T) {
		filter := submissionapimodels.SubmissionFilter{
			Status: submissionapimodels.FilterStatusApproved,
			Search: "фундамент",
		}
		list, err := Visible(testSet(), models.ManagerRole, "mgr-1", filter, testNow)
		require.Nil(t, err)
		require.Empty(t, list)
	})
}

func TestCounts(t *testing.T) {
	t.Run(`счетчики руководителя по всем сдачам`, func(t *testing.T) {
		counts := Counts(testSet(), models.ManagerRole, "mgr-1")
		require.Equal(t, 3, counts.All)
		require.Equal(t, 1, counts.Pending)
		require.Equal(t, 1, counts.Approved)
		require.Equal(t, 1, counts.Rejected)
	})

	t.Run(`счетчики сотрудника только по своим сдачам`, func(t *testing.T) {
		counts := Counts(testSet(), models.EmployeeRole, "emp-1")
		require.Equal(t, 2, counts.All)
		require.Equal(t, 1, counts.Pending)
		require.Equal(t, 1, counts.Approved)
		require.Equal(t, 0, counts.Rejected)
	})

	t.Run(`счетчики не зависят от фильтра статуса`, func(t *testing.T) {
		// бейджи считаются по области роли целиком, вкладка статуса их не меняет
		before := Counts(testSet(), models.ManagerRole, "mgr-1")
		filter := submissionapimodels.SubmissionFilter{Status: submissionapimodels.FilterStatusRejected}
		_, err := Visible(testSet(), models.ManagerRole, "mgr-1", filter, testNow)
		require.Nil(t, err)
		after := Counts(testSet(), models.ManagerRole, "mgr-1")
		require.Equal(t, before, after)
	})
}
