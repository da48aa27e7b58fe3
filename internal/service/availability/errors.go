package availability

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных параметрах запроса
	ErrInvalidInput = errors.New("availability: invalid input data")

	// ErrFetchFailed возвращается, когда не удалось получить слоты от AcademyService.
	// Ошибка не фатальна: месяц остаётся незакэшированным и будет запрошен повторно
	ErrFetchFailed = errors.New("availability: failed to fetch month")
)
