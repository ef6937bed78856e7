package dbmodels

import (
	"fmt"
	"time"

	"submissions-backend/models"
	employeeapimodels "submissions-backend/models/api/employee"
)

type AppUser struct {
	BaseModel
	Password  string `gorm:"type:varchar(128)"`
	FirstName string `gorm:"type:varchar(150)"`
	LastName  string `gorm:"type:varchar(150)"`
	Email     string `gorm:"type:varchar(255);uniqueIndex"`
	JobTitle  string `gorm:"type:varchar(255)"`
	IsActive  bool
	Role      models.UserRole `gorm:"type:varchar(50)"`
	DarkTheme bool
	LastLogin time.Time
}

func (r AppUser) GetFullName() string {
	return fmt.Sprintf("%s %s", r.FirstName, r.LastName)
}

func (r AppUser) ToModel() employeeapimodels.UserView {
	return employeeapimodels.UserView{
		ID:        r.ID,
		Email:     r.Email,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		JobTitle:  r.JobTitle,
		Role:      string(r.Role),
		RoleName:  r.Role.ToHuman(),
		DarkTheme: r.DarkTheme,
	}
}

// EmployeeWithCounts - сотрудник со счетчиками сдач, выводится запросом с группировкой
type EmployeeWithCounts struct {
	AppUser
	TotalSubmissions    int64
	PendingSubmissions  int64
	ApprovedSubmissions int64
}

func (r EmployeeWithCounts) ToModel() employeeapimodels.EmployeeView {
	return employeeapimodels.EmployeeView{
		UserView:            r.AppUser.ToModel(),
		TotalSubmissions:    r.TotalSubmissions,
		PendingSubmissions:  r.PendingSubmissions,
		ApprovedSubmissions: r.ApprovedSubmissions,
	}
}
