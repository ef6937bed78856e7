package settingshandler

import (
	log "github.com/sirupsen/logrus"

	"submissions-backend/db"
	usersstore "submissions-backend/lib/users/store"
	"submissions-backend/lib/utils/errs"
	employeeapimodels "submissions-backend/models/api/employee"
)

type Provider interface {
	GetProfile(userID string) (employeeapimodels.UserView, error)
	SetDarkTheme(userID string, darkTheme bool) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		usersStore: usersstore.NewInstance(db.DB),
	}
}

type impl struct {
	usersStore usersstore.Provider
}

func (i impl) GetProfile(userID string) (employeeapimodels.UserView, error) {
	user, err := i.usersStore.GetByID(userID)
	if err != nil {
		return employeeapimodels.UserView{}, err
	}
	if user == nil {
		return employeeapimodels.UserView{}, errs.NotFound("пользователь не найден")
	}
	return user.ToModel(), nil
}

// SetDarkTheme хранит выбор темы на пользователе, чтобы он переживал повторный вход
func (i impl) SetDarkTheme(userID string, darkTheme bool) error {
	err := i.usersStore.Update(userID, map[string]interface{}{"DarkTheme": darkTheme})
	if err != nil {
		log.
			WithError(err).
			WithField("user_id", userID).
			Error("ошибка сохранения темы оформления")
		return err
	}
	return nil
}
