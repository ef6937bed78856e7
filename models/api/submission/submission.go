package submissionapimodels

import (
	"strings"
	"time"

	"submissions-backend/lib/utils/errs"
	dbmodels "submissions-backend/models/db"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

type SubmissionCreateData struct {
	Title       string   `json:"title"`       // заголовок работы
	Description string   `json:"description"` // подробное описание
	ProjectID   string   `json:"project_id"`  // ид проекта из справочника
	Date        string   `json:"date"`        // дата сдачи, 2006-01-02
	Time        string   `json:"time"`        // время сдачи, 15:04 (необязательно)
	Attachments []string `json:"attachments"` // имена приложенных файлов
}

func (r SubmissionCreateData) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return errs.Validation("не указан заголовок работы")
	}
	if strings.TrimSpace(r.Description) == "" {
		return errs.Validation("не указано описание работы")
	}
	if strings.TrimSpace(r.ProjectID) == "" {
		return errs.Validation("не указан проект")
	}
	if strings.TrimSpace(r.Date) == "" {
		return errs.Validation("не указана дата сдачи")
	}
	if _, err := r.GetSubmittedAt(); err != nil {
		return err
	}
	return nil
}

func (r SubmissionCreateData) GetSubmittedAt() (time.Time, error) {
	date, err := time.Parse(dateLayout, r.Date)
	if err != nil {
		return time.Time{}, errs.Validation("дата сдачи имеет неправильный формат")
	}
	if strings.TrimSpace(r.Time) == "" {
		return date, nil
	}
	t, err := time.Parse(timeLayout, r.Time)
	if err != nil {
		return time.Time{}, errs.Validation("время сдачи имеет неправильный формат")
	}
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, time.UTC), nil
}

type DecisionData struct {
	Comment string `json:"comment"` // комментарий руководителя, при отказе обязателен
}

type SubmissionView struct {
	ID           string   `json:"id"`
	Number       string   `json:"number"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	ProjectID    string   `json:"project_id"`
	ProjectName  string   `json:"project_name"`
	Date         string   `json:"date"`
	Time         string   `json:"time"`
	EmployeeID   string   `json:"employee_id"`
	EmployeeName string   `json:"employee_name"`
	Attachments  []string `json:"attachments"`
	Status       string   `json:"status"`
	StatusName   string   `json:"status_name"`
	Comment      string   `json:"comment,omitempty"`
}

func SubmissionConvert(rec dbmodels.Submission) SubmissionView {
	result := SubmissionView{
		ID:          rec.ID,
		Number:      rec.Number,
		Title:       rec.Title,
		Description: rec.Description,
		ProjectID:   rec.ProjectID,
		Date:        rec.SubmittedAt.Format(dateLayout),
		Time:        rec.SubmittedAt.Format(timeLayout),
		EmployeeID:  rec.EmployeeID,
		Attachments: rec.Attachments,
		Status:      string(rec.Status),
		StatusName:  rec.Status.ToHuman(),
		Comment:     rec.Comment,
	}
	if rec.Project != nil {
		result.ProjectName = rec.Project.Name
	}
	if rec.Employee != nil {
		result.EmployeeName = rec.Employee.GetFullName()
	}
	return result
}

// StatusCounts - счетчики для бейджей фильтра.
// Считаются по доступному пользователю набору до применения фильтра статуса,
// чтобы не менялись при переключении вкладок.
type StatusCounts struct {
	All      int `json:"all"`
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
}

type SubmissionListView struct {
	Items  []SubmissionView `json:"items"`
	Counts StatusCounts     `json:"counts"`
}
