package submit_booking

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("submit_booking: invalid input data")

	// ErrPreconditionFailed возвращается при нарушении локальных предусловий.
	// Все нарушения агрегируются в одно сообщение; сетевой вызов не выполняется
	ErrPreconditionFailed = errors.New("submit_booking: preconditions not satisfied")

	// ErrScheduleNotFound возвращается, когда расписание не найдено
	ErrScheduleNotFound = errors.New("submit_booking: schedule not found")

	// ErrScheduleNotBookable возвращается, когда гейт расписания блокирует отправку
	ErrScheduleNotBookable = errors.New("submit_booking: schedule gate violation")

	// ErrSubmissionInFlight возвращается при повторной отправке, пока
	// предыдущая ещё выполняется — защита от дублирующихся бронирований
	ErrSubmissionInFlight = errors.New("submit_booking: submission already in flight")

	// ErrBackendRejected возвращается, когда бэкенд отклонил бронирование.
	// Черновик при этом остаётся нетронутым
	ErrBackendRejected = errors.New("submit_booking: rejected by backend")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("submit_booking: internal error")
)

// PreconditionError агрегированное сообщение о нарушенных предусловиях
type PreconditionError struct {
	Message string
}

// Error реализует интерфейс error
func (e *PreconditionError) Error() string {
	return fmt.Sprintf("preconditions not satisfied: %s", e.Message)
}

// Unwrap позволяет использовать errors.Is(err, ErrPreconditionFailed)
func (e *PreconditionError) Unwrap() error {
	return ErrPreconditionFailed
}

// GateViolationError нарушение гейта расписания с пользовательским сообщением
type GateViolationError struct {
	Message string
}

// Error реализует интерфейс error
func (e *GateViolationError) Error() string {
	return fmt.Sprintf("schedule gate violation: %s", e.Message)
}

// Unwrap позволяет использовать errors.Is(err, ErrScheduleNotBookable)
func (e *GateViolationError) Unwrap() error {
	return ErrScheduleNotBookable
}

// BackendRejectionError отклонение бэкендом с дословным сообщением причины
type BackendRejectionError struct {
	Message string
}

// Error реализует интерфейс error
func (e *BackendRejectionError) Error() string {
	return fmt.Sprintf("rejected by backend: %s", e.Message)
}

// Unwrap позволяет использовать errors.Is(err, ErrBackendRejected)
func (e *BackendRejectionError) Unwrap() error {
	return ErrBackendRejected
}
