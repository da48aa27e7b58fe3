package types

import (
	"database/sql/driver"
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// DateString represents a calendar day in "YYYY-MM-DD" format.
// It deliberately carries no time component and no timezone: all
// booking-relevant comparisons are done on local calendar days to
// avoid off-by-one errors at midnight boundaries.
type DateString string

// NewDateString создает DateString из time.Time (берёт локальный календарный день)
func NewDateString(t time.Time) DateString {
	return DateString(t.Format(dateLayout))
}

// NewDateStringFromString парсит строку в формате YYYY-MM-DD
func NewDateStringFromString(s string) (DateString, error) {
	if _, err := time.Parse(dateLayout, s); err != nil {
		return "", fmt.Errorf("invalid date string format: %v", err)
	}
	return DateString(s), nil
}

// Validate проверяет корректность формата даты
func (d DateString) Validate() error {
	_, err := time.Parse(dateLayout, string(d))
	if err != nil {
		return fmt.Errorf("invalid date string format: %v", err)
	}
	return nil
}

// Time возвращает дату как time.Time (полночь, локальная зона)
func (d DateString) Time() (time.Time, error) {
	t, err := time.ParseInLocation(dateLayout, string(d), time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date string format: %v", err)
	}
	return t, nil
}

// IsZero проверяет, что дата не задана
func (d DateString) IsZero() bool {
	return d == ""
}

// IsBefore проверяет, что дата строго раньше другой
// Формат YYYY-MM-DD сравнивается лексикографически корректно
func (d DateString) IsBefore(other DateString) bool {
	return string(d) < string(other)
}

// IsAfter проверяет, что дата строго позже другой
func (d DateString) IsAfter(other DateString) bool {
	return string(d) > string(other)
}

// Year возвращает год даты
func (d DateString) Year() (int, error) {
	t, err := d.Time()
	if err != nil {
		return 0, err
	}
	return t.Year(), nil
}

// Month возвращает месяц даты
func (d DateString) Month() (time.Month, error) {
	t, err := d.Time()
	if err != nil {
		return 0, err
	}
	return t.Month(), nil
}

// String возвращает строковое представление даты
func (d DateString) String() string {
	return string(d)
}

// Value реализует driver.Valuer для записи в БД
func (d DateString) Value() (driver.Value, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return string(d), nil
}

// Scan реализует sql.Scanner для чтения из БД
func (d *DateString) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		*d = DateString(v)
	case []byte:
		*d = DateString(v)
	case time.Time:
		*d = NewDateString(v)
	default:
		return fmt.Errorf("unsupported scan type for DateString: %T", src)
	}
	return nil
}
