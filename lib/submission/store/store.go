package submissionstore

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"submissions-backend/models"
	dbmodels "submissions-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Submission) (id string, err error)
	GetByID(id string) (rec *dbmodels.Submission, err error)
	List() (list []dbmodels.Submission, err error)
	ApplyDecision(id string, status models.SubmissionStatus, comment string) (applied bool, err error)
	Delete(id string) (deleted bool, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

// Create назначает сквозной номер сдачи в рамках года (#2024-001).
// Номер выдается в транзакции, после создания не меняется.
func (i impl) Create(rec dbmodels.Submission) (id string, err error) {
	err = i.db.Transaction(func(tx *gorm.DB) error {
		number, err := nextNumber(tx, time.Now().Year())
		if err != nil {
			return errors.Wrap(err, "ошибка выдачи номера сдачи")
		}
		rec.Number = number
		return tx.Omit(clause.Associations).
			Create(&rec).
			Error
	})
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func nextNumber(tx *gorm.DB, year int) (string, error) {
	var count int64
	err := tx.Model(&dbmodels.Submission{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("number like ?", fmt.Sprintf("#%d-%%", year)).
		Count(&count).
		Error
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("#%d-%03d", year, count+1), nil
}

func (i impl) GetByID(id string) (rec *dbmodels.Submission, err error) {
	rec = &dbmodels.Submission{}
	err = i.db.
		Where("id = ?", id).
		Preload(clause.Associations).
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

func (i impl) List() (list []dbmodels.Submission, err error) {
	list = []dbmodels.Submission{}
	err = i.db.
		Preload(clause.Associations).
		Order("submitted_at desc, number desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

// ApplyDecision переводит сдачу из PENDING в конечный статус.
// Условие по статусу в запросе дает "первый успел" при одновременных решениях:
// повторная попытка вернет applied=false, а не перезапишет решение.
func (i impl) ApplyDecision(id string, status models.SubmissionStatus, comment string) (applied bool, err error) {
	tx := i.db.
		Model(&dbmodels.Submission{}).
		Where("id = ?", id).
		Where("status = ?", models.SubmissionStatusPending).
		Updates(map[string]interface{}{
			"status":  status,
			"comment": comment,
		})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

// Delete удаляет запись только пока она на рассмотрении (отзыв сотрудником).
func (i impl) Delete(id string) (deleted bool, err error) {
	tx := i.db.
		Where("id = ?", id).
		Where("status = ?", models.SubmissionStatusPending).
		Delete(&dbmodels.Submission{})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}
