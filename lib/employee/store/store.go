package employeestore

import (
	"gorm.io/gorm"

	"submissions-backend/models"
	dbmodels "submissions-backend/models/db"
)

type Provider interface {
	ListWithCounts() (list []dbmodels.EmployeeWithCounts, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

// ListWithCounts выводит реестр сотрудников со счетчиками из сдач работ,
// а не из отдельной таблицы.
func (i impl) ListWithCounts() (list []dbmodels.EmployeeWithCounts, err error) {
	list = []dbmodels.EmployeeWithCounts{}
	err = i.db.
		Model(&dbmodels.AppUser{}).
		Select(`app_users.*,
			count(s.id) as total_submissions,
			count(s.id) filter (where s.status = ?) as pending_submissions,
			count(s.id) filter (where s.status = ?) as approved_submissions`,
			models.SubmissionStatusPending, models.SubmissionStatusApproved).
		Joins("left join submissions as s on s.employee_id = app_users.id").
		Where("app_users.is_active = true").
		Where("app_users.role = ?", models.EmployeeRole).
		Group("app_users.id").
		Order("app_users.last_name, app_users.first_name").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
