package get_month_availability

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_month_availability: invalid input data")

	// ErrFetchFailed возвращается, когда месяц не удалось загрузить.
	// Ошибка восстановимая: месяц остаётся незакэшированным и повторный
	// запрос приведёт к новой попытке
	ErrFetchFailed = errors.New("get_month_availability: failed to fetch month")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_month_availability: internal error")
)
