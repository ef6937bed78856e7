package authapimodels

import (
	"strings"

	"submissions-backend/lib/utils/errs"
)

type JWTResponse struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refresh_token,omitempty"`
}

type RestoreSessionRequest struct {
	RefreshToken string `json:"refresh_token"`
}

func (r RestoreSessionRequest) Validate() error {
	if len(strings.TrimSpace(r.RefreshToken)) == 0 {
		return errs.Validation("refresh token не должен быть пустым")
	}
	return nil
}
