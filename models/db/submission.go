package dbmodels

import (
	"time"

	"github.com/lib/pq"

	"submissions-backend/models"
)

// Submission - сдача работы сотрудником на рассмотрение руководителю.
// Number назначается при создании и не меняется.
// Comment заполняется только решением руководителя: пока статус PENDING - комментарий пуст.
type Submission struct {
	BaseModel
	Number      string `gorm:"type:varchar(50);uniqueIndex"`
	Title       string `gorm:"type:varchar(255)"`
	Description string
	ProjectID   string `gorm:"type:varchar(36)"`
	Project     *Project
	EmployeeID  string `gorm:"type:varchar(36);index"`
	Employee    *AppUser `gorm:"foreignKey:EmployeeID"`
	SubmittedAt time.Time
	Attachments pq.StringArray          `gorm:"type:text[]"`
	Status      models.SubmissionStatus `gorm:"type:varchar(50);index"`
	Comment     string
}
