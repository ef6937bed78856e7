package db

import (
	log "github.com/sirupsen/logrus"

	projectstore "submissions-backend/lib/dicts/project/store"
	usersstore "submissions-backend/lib/users/store"
	authhelpers "submissions-backend/lib/utils/auth-helpers"
	"submissions-backend/models"
	dbmodels "submissions-backend/models/db"
)

func InitPreload() {
	fillProjects()
	addDemoUsers()
}

var defaultProjects = []string{
	"Восточный проект",
	"Северный филиал",
	"Жилой комплекс",
	"Торговая башня",
	"Элитные виллы",
}

func fillProjects() {
	log.Info("предзаполнение справочника проектов")
	store := projectstore.NewInstance(DB)
	list, err := store.List()
	if err != nil {
		log.WithError(err).Error("ошибка предзаполнения справочника проектов")
		return
	}
	if len(list) > 0 {
		log.Info("справочник проектов заполнен")
		return
	}
	for _, name := range defaultProjects {
		rec := dbmodels.Project{
			Name:     name,
			IsActive: true,
		}
		if _, err = store.Add(rec); err != nil {
			log.
				WithError(err).
				WithField("name", name).
				Error("ошибка добавления проекта")
			return
		}
	}
	log.Info("проекты добавлены")
}

// демо-пользователи для пустой базы, пароль: password
func addDemoUsers() {
	store := usersstore.NewInstance(DB)
	list, err := store.List()
	if err != nil {
		log.WithError(err).Error("ошибка добавления демо-пользователей")
		return
	}
	if len(list) > 0 {
		return
	}
	demoUsers := []dbmodels.AppUser{
		{
			Email:     "employee@example.com",
			Password:  authhelpers.GetMD5Hash("password"),
			FirstName: "Ахмед",
			LastName:  "Мухаммед",
			JobTitle:  "Инженер-архитектор",
			IsActive:  true,
			Role:      models.EmployeeRole,
		},
		{
			Email:     "manager@example.com",
			Password:  authhelpers.GetMD5Hash("password"),
			FirstName: "Сара",
			LastName:  "Ахмед",
			JobTitle:  "Руководитель проектов",
			IsActive:  true,
			Role:      models.ManagerRole,
		},
	}
	for _, rec := range demoUsers {
		if _, err = store.Create(rec); err != nil {
			log.
				WithError(err).
				WithField("email", rec.Email).
				Error("ошибка добавления демо-пользователя")
			return
		}
	}
	log.Info("демо-пользователи добавлены")
}
