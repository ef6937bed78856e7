package submissionapimodels

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func validCreateData() SubmissionCreateData {
	return SubmissionCreateData{
		Title:       "Фундаментные работы",
		Description: "Заливка фундамента корпуса Б",
		ProjectID:   "d8f1c1f2-0000-0000-0000-000000000001",
		Date:        "2024-03-20",
		Time:        "09:30",
	}
}

func TestSubmissionCreateDataValidate(t *testing.T) {
	t.Run(`корректные данные проходят проверку`, func(t *testing.T) {
		require.Nil(t, validCreateData().Validate())
	})

	t.Run(`пустой заголовок`, func(t *testing.T) {
		data := validCreateData()
		data.Title = "   "
		require.NotNil(t, data.Validate())
	})

	t.Run(`пустое описание`, func(t *testing.T) {
		data := validCreateData()
		data.Description = ""
		require.NotNil(t, data.Validate())
	})

	t.Run(`не указан проект`, func(t *testing.T) {
		data := validCreateData()
		data.ProjectID = ""
		require.NotNil(t, data.Validate())
	})

	t.Run(`не указана дата`, func(t *testing.T) {
		data := validCreateData()
		data.Date = ""
		require.NotNil(t, data.Validate())
	})

	t.Run(`неправильный формат даты`, func(t *testing.T) {
		data := validCreateData()
		data.Date = "20.03.2024"
		require.NotNil(t, data.Validate())
	})

	t.Run(`неправильный формат времени`, func(t *testing.T) {
		data := validCreateData()
		data.Time = "9 утра"
		require.NotNil(t, data.Validate())
	})

	t.Run(`время необязательно`, func(t *testing.T) {
		data := validCreateData()
		data.Time = ""
		require.Nil(t, data.Validate())
		submittedAt, err := data.GetSubmittedAt()
		require.Nil(t, err)
		require.Equal(t, time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC), submittedAt)
	})

	t.Run(`дата и время собираются в один момент`, func(t *testing.T) {
		submittedAt, err := validCreateData().GetSubmittedAt()
		require.Nil(t, err)
		require.Equal(t, time.Date(2024, 3, 20, 9, 30, 0, 0, time.UTC), submittedAt)
	})
}

func TestSubmissionFilterValidate(t *testing.T) {
	t.Run(`пустой фильтр валиден`, func(t *testing.T) {
		require.Nil(t, SubmissionFilter{}.Validate())
	})

	t.Run(`неизвестный статус`, func(t *testing.T) {
		require.NotNil(t, SubmissionFilter{Status: "archived"}.Validate())
	})

	t.Run(`неизвестный фильтр даты`, func(t *testing.T) {
		require.NotNil(t, SubmissionFilter{DateFilter: "year"}.Validate())
	})

	t.Run(`произвольный период требует обе даты`, func(t *testing.T) {
		filter := SubmissionFilter{DateFilter: FilterDateCustom, DateFrom: "2024-03-01"}
		require.NotNil(t, filter.Validate())
	})

	t.Run(`произвольный период с перепутанными датами`, func(t *testing.T) {
		filter := SubmissionFilter{DateFilter: FilterDateCustom, DateFrom: "2024-03-10", DateTo: "2024-03-01"}
		require.NotNil(t, filter.Validate())
	})

	t.Run(`корректный произвольный период`, func(t *testing.T) {
		filter := SubmissionFilter{DateFilter: FilterDateCustom, DateFrom: "2024-03-01", DateTo: "2024-03-10"}
		require.Nil(t, filter.Validate())
	})
}
