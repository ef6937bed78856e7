package usersstore

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "submissions-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.AppUser) (id string, err error)
	GetByID(userID string) (rec *dbmodels.AppUser, err error)
	FindByEmail(email string) (rec *dbmodels.AppUser, err error)
	ExistByEmail(email string) (bool, error)
	List() (list []dbmodels.AppUser, err error)
	Update(userID string, updMap map[string]interface{}) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.AppUser) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(userID string) (rec *dbmodels.AppUser, err error) {
	rec = &dbmodels.AppUser{}
	err = i.db.
		Where("id = ?", userID).
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

func (i impl) FindByEmail(email string) (rec *dbmodels.AppUser, err error) {
	rec = &dbmodels.AppUser{}
	err = i.db.
		Where("LOWER(email) = ?", strings.ToLower(email)).
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

func (i impl) ExistByEmail(email string) (bool, error) {
	var exists bool
	err := i.db.Model(&dbmodels.AppUser{}).
		Select("count(*) > 0").
		Where("LOWER(email) = ?", strings.ToLower(email)).
		Find(&exists).
		Error
	return exists, err
}

func (i impl) List() (list []dbmodels.AppUser, err error) {
	list = []dbmodels.AppUser{}
	err = i.db.
		Where("is_active = true").
		Order("last_name, first_name").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) Update(userID string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.AppUser{}).
		Where("id = ?", userID).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("пользователь не найден")
	}
	return nil
}
