package projectstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "submissions-backend/models/db"
)

type Provider interface {
	Add(rec dbmodels.Project) (id string, err error)
	GetByID(id string) (rec *dbmodels.Project, err error)
	List() (list []dbmodels.Project, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Add(rec dbmodels.Project) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (rec *dbmodels.Project, err error) {
	rec = &dbmodels.Project{}
	err = i.db.
		Where("id = ?", id).
		First(rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return rec, nil
}

func (i impl) List() (list []dbmodels.Project, err error) {
	list = []dbmodels.Project{}
	err = i.db.
		Where("is_active = true").
		Order("name").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
