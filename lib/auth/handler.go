package authhandler

import (
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"submissions-backend/config"
	"submissions-backend/db"
	sessionstore "submissions-backend/lib/auth/session-store"
	usersstore "submissions-backend/lib/users/store"
	authhelpers "submissions-backend/lib/utils/auth-helpers"
	authutils "submissions-backend/lib/utils/auth-utils"
	"submissions-backend/lib/utils/errs"
	authapimodels "submissions-backend/models/api/auth"
	employeeapimodels "submissions-backend/models/api/employee"
	dbmodels "submissions-backend/models/db"
)

type Provider interface {
	Login(data authapimodels.LoginRequest) (response authapimodels.JWTResponse, err error)
	RestoreSession(refreshToken string) (response authapimodels.JWTResponse, err error)
	Logout(userID string) error
	Me(userID string) (employeeapimodels.UserView, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		usersStore:   usersstore.NewInstance(db.DB),
		sessionStore: sessionstore.NewInstance(db.DB),
	}
}

type impl struct {
	usersStore   usersstore.Provider
	sessionStore sessionstore.Provider
}

func (i impl) Login(data authapimodels.LoginRequest) (response authapimodels.JWTResponse, err error) {
	logger := log.WithField("email", data.Email)
	user, err := i.usersStore.FindByEmail(data.Email)
	if err != nil {
		logger.
			WithError(err).
			Error("ошибка поиска пользователя по почте")
		return authapimodels.JWTResponse{}, err
	}
	if user == nil || !user.IsActive {
		logger.Debug("пользователь с такой почтой не найден")
		return authapimodels.JWTResponse{}, errs.Authentication("неверная почта или пароль")
	}
	if authhelpers.GetMD5Hash(data.Password) != user.Password {
		logger.Debug("пользователь не прошел проверку пароля")
		return authapimodels.JWTResponse{}, errs.Authentication("неверная почта или пароль")
	}
	tokenString, err := authutils.GetToken(user.ID, user.GetFullName(), user.Role)
	if err != nil {
		logger.WithError(err).Error("ошибка генерации JWT")
		return authapimodels.JWTResponse{}, err
	}
	response = authapimodels.JWTResponse{
		Token: tokenString,
	}
	if data.RememberMe {
		refreshToken, err := i.rememberSession(user.ID)
		if err != nil {
			logger.WithError(err).Error("ошибка сохранения сессии")
			return authapimodels.JWTResponse{}, err
		}
		response.RefreshToken = refreshToken
	}
	err = i.usersStore.Update(user.ID, map[string]interface{}{"LastLogin": time.Now()})
	if err != nil {
		logger.
			WithError(err).
			Error("ошибка обновления даты последнего входа")
	}
	return response, nil
}

func (i impl) rememberSession(userID string) (refreshToken string, err error) {
	refreshToken = uuid.NewString()
	rec := dbmodels.Session{
		UserID:       userID,
		RefreshToken: refreshToken,
		ExpiresAt:    time.Now().AddDate(0, 0, config.Conf.Auth.SessionExpireInDays),
	}
	_, err = i.sessionStore.Create(rec)
	if err != nil {
		return "", err
	}
	return refreshToken, nil
}

// RestoreSession читается один раз при старте клиента, если был выбран "запомнить меня"
func (i impl) RestoreSession(refreshToken string) (response authapimodels.JWTResponse, err error) {
	rec, err := i.sessionStore.FindByToken(refreshToken)
	if err != nil {
		log.WithError(err).Error("ошибка поиска сохраненной сессии")
		return authapimodels.JWTResponse{}, err
	}
	if rec == nil || rec.User == nil || !rec.User.IsActive {
		return authapimodels.JWTResponse{}, errs.Authentication("сессия не найдена")
	}
	if rec.ExpiresAt.Before(time.Now()) {
		return authapimodels.JWTResponse{}, errs.Authentication("срок сессии истек, требуется вход")
	}
	tokenString, err := authutils.GetToken(rec.User.ID, rec.User.GetFullName(), rec.User.Role)
	if err != nil {
		log.WithError(err).Error("ошибка генерации JWT")
		return authapimodels.JWTResponse{}, err
	}
	return authapimodels.JWTResponse{
		Token:        tokenString,
		RefreshToken: refreshToken,
	}, nil
}

func (i impl) Logout(userID string) error {
	err := i.sessionStore.DeleteByUser(userID)
	if err != nil {
		log.
			WithError(err).
			WithField("user_id", userID).
			Error("ошибка удаления сохраненных сессий")
		return err
	}
	return nil
}

func (i impl) Me(userID string) (employeeapimodels.UserView, error) {
	user, err := i.usersStore.GetByID(userID)
	if err != nil {
		return employeeapimodels.UserView{}, err
	}
	if user == nil {
		return employeeapimodels.UserView{}, errs.NotFound("пользователь не найден")
	}
	return user.ToModel(), nil
}
