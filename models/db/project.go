package dbmodels

import dictapimodels "submissions-backend/models/api/dict"

type Project struct {
	BaseModel
	Name     string `gorm:"type:varchar(255);uniqueIndex"`
	IsActive bool
}

func (p Project) ToModel() dictapimodels.ProjectView {
	return dictapimodels.ProjectView{
		ID:   p.ID,
		Name: p.Name,
	}
}
