package academyservice

import (
	"errors"
	"fmt"
)

var (
	// ErrScheduleNotFound возвращается, когда расписание не найдено
	ErrScheduleNotFound = errors.New("academyservice client: schedule not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("academyservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("academyservice client: invalid response")

	// ErrBookingRejected возвращается, когда бэкенд отклонил бронирование
	ErrBookingRejected = errors.New("academyservice client: booking rejected")
)

// RejectionError ошибка отклонения бронирования с оригинальным сообщением бэкенда.
// Сообщение доводится до пользователя дословно.
type RejectionError struct {
	Message string
}

// Error реализует интерфейс error
func (e *RejectionError) Error() string {
	return fmt.Sprintf("booking rejected by backend: %s", e.Message)
}

// Unwrap позволяет использовать errors.Is(err, ErrBookingRejected)
func (e *RejectionError) Unwrap() error {
	return ErrBookingRejected
}
