package authapimodels

import (
	"net/mail"
	"strings"

	"submissions-backend/lib/utils/errs"
)

type LoginRequest struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	RememberMe bool   `json:"remember_me"` // запомнить вход на этом устройстве
}

func (r LoginRequest) Validate() error {
	if _, err := mail.ParseAddress(r.Email); err != nil {
		return errs.Validation("почта имеет неправильный формат")
	}
	if len(strings.TrimSpace(r.Password)) == 0 {
		return errs.Validation("не указан пароль")
	}
	return nil
}
