package submissionapimodels

import (
	"time"

	"submissions-backend/lib/utils/errs"
	apimodels "submissions-backend/models/api"
)

type FilterStatus string

const (
	FilterStatusAll      FilterStatus = "all"
	FilterStatusPending  FilterStatus = "pending"
	FilterStatusApproved FilterStatus = "approved"
	FilterStatusRejected FilterStatus = "rejected"
)

type FilterDate string

const (
	FilterDateAll    FilterDate = ""
	FilterDateToday  FilterDate = "today"
	FilterDateWeek   FilterDate = "week"
	FilterDateMonth  FilterDate = "month"
	FilterDateCustom FilterDate = "custom"
)

type SubmissionFilter struct {
	Status     FilterStatus `json:"status" query:"status"`           // all/pending/approved/rejected
	Search     string       `json:"search" query:"search"`           // поиск по заголовку или номеру
	DateFilter FilterDate   `json:"date_filter" query:"date_filter"` // today/week/month/custom, пусто - без ограничения
	DateFrom   string       `json:"date_from" query:"date_from"`     // для custom, 2006-01-02
	DateTo     string       `json:"date_to" query:"date_to"`         // для custom, 2006-01-02
	apimodels.Pagination
}

func (f SubmissionFilter) Validate() error {
	switch f.Status {
	case "", FilterStatusAll, FilterStatusPending, FilterStatusApproved, FilterStatusRejected:
	default:
		return errs.Newf(errs.KindValidation, "неизвестный фильтр статуса: %v", f.Status)
	}
	switch f.DateFilter {
	case FilterDateAll, FilterDateToday, FilterDateWeek, FilterDateMonth:
	case FilterDateCustom:
		if _, _, err := f.customRange(); err != nil {
			return err
		}
	default:
		return errs.Newf(errs.KindValidation, "неизвестный фильтр даты: %v", f.DateFilter)
	}
	return nil
}

func (f SubmissionFilter) customRange() (from, to time.Time, err error) {
	if f.DateFrom == "" || f.DateTo == "" {
		return time.Time{}, time.Time{}, errs.Validation("для произвольного периода нужны даты начала и конца")
	}
	from, err = time.Parse(dateLayout, f.DateFrom)
	if err != nil {
		return time.Time{}, time.Time{}, errs.Validation("дата начала периода имеет неправильный формат")
	}
	to, err = time.Parse(dateLayout, f.DateTo)
	if err != nil {
		return time.Time{}, time.Time{}, errs.Validation("дата конца периода имеет неправильный формат")
	}
	if to.Before(from) {
		return time.Time{}, time.Time{}, errs.Validation("дата конца периода раньше даты начала")
	}
	return from, to, nil
}

// DateBounds возвращает границы окна [from, to) для фильтра даты
// относительно переданного момента времени. ok=false - окно не задано.
func (f SubmissionFilter) DateBounds(now time.Time) (from, to time.Time, ok bool, err error) {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	switch f.DateFilter {
	case FilterDateAll:
		return time.Time{}, time.Time{}, false, nil
	case FilterDateToday:
		return day, day.AddDate(0, 0, 1), true, nil
	case FilterDateWeek:
		// неделя с понедельника
		offset := (int(day.Weekday()) + 6) % 7
		monday := day.AddDate(0, 0, -offset)
		return monday, monday.AddDate(0, 0, 7), true, nil
	case FilterDateMonth:
		first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return first, first.AddDate(0, 1, 0), true, nil
	case FilterDateCustom:
		from, to, err = f.customRange()
		if err != nil {
			return time.Time{}, time.Time{}, false, err
		}
		return from, to.AddDate(0, 0, 1), true, nil
	}
	return time.Time{}, time.Time{}, false, errs.Newf(errs.KindValidation, "неизвестный фильтр даты: %v", f.DateFilter)
}
