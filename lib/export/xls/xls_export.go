package xlsexport

import (
	"bytes"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	dbmodels "submissions-backend/models/db"
)

type Provider interface {
	ExportSubmissionList(list []dbmodels.Submission) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var submissionHeaders = []string{"Номер", "Заголовок", "Проект", "Сотрудник", "Дата сдачи", "Статус", "Комментарий руководителя"}

func (i impl) ExportSubmissionList(list []dbmodels.Submission) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("ошибка закрытия файла")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, submissionHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка формирования заголовка в xlsx")
	}
	if len(list) != 0 {
		if _, err = writeSubmissionData(f, sheet, list, row); err != nil {
			return nil, errors.Wrap(err, "ошибка формирования таблицы с данными в xlsx")
		}
	}
	f.SetSheetName(sheet, "Реестр сдач")
	return f.WriteToBuffer()
}

func writeSubmissionData(f *excelize.File, sheet string, list []dbmodels.Submission, row int) (int, error) {
	for _, item := range list {
		row++
		// "Номер"
		col := 1
		if err := writeColumn(f, sheet, col, row, item.Number); err != nil {
			return row, err
		}

		// "Заголовок"
		col++
		if err := writeColumn(f, sheet, col, row, item.Title); err != nil {
			return row, err
		}

		// "Проект"
		col++
		if item.Project != nil {
			if err := writeColumn(f, sheet, col, row, item.Project.Name); err != nil {
				return row, err
			}
		}

		// "Сотрудник"
		col++
		if item.Employee != nil {
			if err := writeColumn(f, sheet, col, row, item.Employee.GetFullName()); err != nil {
				return row, err
			}
		}

		// "Дата сдачи"
		col++
		if err := writeColumn(f, sheet, col, row, item.SubmittedAt.Format("02.01.2006 15:04")); err != nil {
			return row, err
		}

		// "Статус"
		col++
		if err := writeColumn(f, sheet, col, row, item.Status.ToHuman()); err != nil {
			return row, err
		}

		// "Комментарий руководителя"
		col++
		if err := writeColumn(f, sheet, col, row, item.Comment); err != nil {
			return row, err
		}
	}
	return row, nil
}
