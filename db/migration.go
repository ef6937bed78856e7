package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	dbmodels "submissions-backend/models/db"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("Запуск миграций")
	if err := DB.AutoMigrate(&dbmodels.AppUser{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры AppUser")
	}
	if err := DB.AutoMigrate(&dbmodels.Session{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Session")
	}
	if err := DB.AutoMigrate(&dbmodels.Project{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Project")
	}
	if err := DB.AutoMigrate(&dbmodels.Submission{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Submission")
	}
	log.Info("Миграция прошла успешно")
	return nil
}
