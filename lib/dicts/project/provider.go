package projectprovider

import (
	"submissions-backend/db"
	projectstore "submissions-backend/lib/dicts/project/store"
	"submissions-backend/lib/utils/errs"
	dictapimodels "submissions-backend/models/api/dict"
	dbmodels "submissions-backend/models/db"
)

type Provider interface {
	Get(id string) (dbmodels.Project, error)
	List() ([]dictapimodels.ProjectView, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: projectstore.NewInstance(db.DB),
	}
}

type impl struct {
	store projectstore.Provider
}

func (i impl) Get(id string) (dbmodels.Project, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return dbmodels.Project{}, err
	}
	if rec == nil {
		return dbmodels.Project{}, errs.NotFound("проект не найден в справочнике")
	}
	return *rec, nil
}

func (i impl) List() ([]dictapimodels.ProjectView, error) {
	list, err := i.store.List()
	if err != nil {
		return nil, err
	}
	result := make([]dictapimodels.ProjectView, 0, len(list))
	for _, rec := range list {
		result = append(result, rec.ToModel())
	}
	return result, nil
}
