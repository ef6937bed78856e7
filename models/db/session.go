package dbmodels

import "time"

// Session - запомненный вход ("запомнить меня на этом устройстве").
// Читается один раз при старте клиента для восстановления сессии.
type Session struct {
	BaseModel
	UserID       string `gorm:"type:varchar(36);index"`
	User         *AppUser `gorm:"foreignKey:UserID"`
	RefreshToken string `gorm:"type:varchar(36);uniqueIndex"`
	ExpiresAt    time.Time
}
