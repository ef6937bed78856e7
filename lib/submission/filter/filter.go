// Package submissionfilter вычисляет видимый пользователю набор сдач.
// Все правила видимости собраны здесь и не зависят от хранилища и HTTP-слоя.
package submissionfilter

import (
	"strings"
	"time"

	"submissions-backend/models"
	submissionapimodels "submissions-backend/models/api/submission"
	dbmodels "submissions-backend/models/db"
)

// Visible применяет правила по порядку: область роли, статус, поиск, окно дат.
// Сотрудник видит только свои сдачи, руководитель - все.
func Visible(list []dbmodels.Submission, role models.UserRole, employeeID string,
	f submissionapimodels.SubmissionFilter, now time.Time) ([]dbmodels.Submission, error) {
	from, to, hasWindow, err := f.DateBounds(now)
	if err != nil {
		return nil, err
	}
	search := strings.ToLower(strings.TrimSpace(f.Search))

	result := make([]dbmodels.Submission, 0, len(list))
	for _, rec := range RoleScoped(list, role, employeeID) {
		if !statusMatch(rec, f.Status) {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(rec.Title), search) &&
			!strings.Contains(strings.ToLower(rec.Number), search) {
			continue
		}
		if hasWindow && (rec.SubmittedAt.Before(from) || !rec.SubmittedAt.Before(to)) {
			continue
		}
		result = append(result, rec)
	}
	return result, nil
}

// RoleScoped - доступный роли набор без остальных фильтров.
func RoleScoped(list []dbmodels.Submission, role models.UserRole, employeeID string) []dbmodels.Submission {
	if role.IsManager() {
		return list
	}
	result := make([]dbmodels.Submission, 0, len(list))
	for _, rec := range list {
		if rec.EmployeeID == employeeID {
			result = append(result, rec)
		}
	}
	return result
}

// Counts считает бейджи по доступному роли набору до фильтра статуса,
// чтобы цифры не менялись при переключении вкладок статуса.
func Counts(list []dbmodels.Submission, role models.UserRole, employeeID string) submissionapimodels.StatusCounts {
	counts := submissionapimodels.StatusCounts{}
	for _, rec := range RoleScoped(list, role, employeeID) {
		counts.All++
		switch rec.Status {
		case models.SubmissionStatusPending:
			counts.Pending++
		case models.SubmissionStatusApproved:
			counts.Approved++
		case models.SubmissionStatusRejected:
			counts.Rejected++
		}
	}
	return counts
}

func statusMatch(rec dbmodels.Submission, status submissionapimodels.FilterStatus) bool {
	switch status {
	case "", submissionapimodels.FilterStatusAll:
		return true
	case submissionapimodels.FilterStatusPending:
		return rec.Status == models.SubmissionStatusPending
	case submissionapimodels.FilterStatusApproved:
		return rec.Status == models.SubmissionStatusApproved
	case submissionapimodels.FilterStatusRejected:
		return rec.Status == models.SubmissionStatusRejected
	}
	return false
}
