package employeehandler

import (
	log "github.com/sirupsen/logrus"

	"submissions-backend/db"
	employeestore "submissions-backend/lib/employee/store"
	employeeapimodels "submissions-backend/models/api/employee"
)

type Provider interface {
	Roster() (list []employeeapimodels.EmployeeView, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: employeestore.NewInstance(db.DB),
	}
}

type impl struct {
	store employeestore.Provider
}

func (i impl) Roster() (list []employeeapimodels.EmployeeView, err error) {
	recs, err := i.store.ListWithCounts()
	if err != nil {
		log.WithError(err).Error("ошибка получения реестра сотрудников")
		return nil, err
	}
	list = make([]employeeapimodels.EmployeeView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, rec.ToModel())
	}
	return list, nil
}
