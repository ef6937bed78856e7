package sessionstore

import (
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	dbmodels "submissions-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Session) (id string, err error)
	FindByToken(refreshToken string) (rec *dbmodels.Session, err error)
	DeleteByUser(userID string) error
	DeleteExpired(now time.Time) (deleted int64, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Session) (id string, err error) {
	err = i.db.Omit(clause.Associations).
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) FindByToken(refreshToken string) (rec *dbmodels.Session, err error) {
	rec = &dbmodels.Session{}
	err = i.db.
		Where("refresh_token = ?", refreshToken).
		Preload("User").
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

func (i impl) DeleteByUser(userID string) error {
	return i.db.
		Where("user_id = ?", userID).
		Delete(&dbmodels.Session{}).
		Error
}

func (i impl) DeleteExpired(now time.Time) (deleted int64, err error) {
	tx := i.db.
		Where("expires_at < ?", now).
		Delete(&dbmodels.Session{})
	if tx.Error != nil {
		return 0, tx.Error
	}
	return tx.RowsAffected, nil
}
