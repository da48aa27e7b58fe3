package coupons

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных параметрах запроса
	ErrInvalidInput = errors.New("coupons: invalid input data")

	// ErrValidationFailed возвращается при недоступности AcademyService.
	// Вызывающая сторона обязана сбросить ранее применённую скидку
	ErrValidationFailed = errors.New("coupons: validation request failed")
)
