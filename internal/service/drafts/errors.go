package drafts

import "errors"

var (
	// ErrRestoreNotCompleted возвращается при попытке сохранить черновик
	// до завершения восстановления. Преждевременная запись затёрла бы
	// валидные сохранённые данные пустым начальным состоянием
	ErrRestoreNotCompleted = errors.New("drafts: restore has not completed for this draft")

	// ErrNoParticipants возвращается при попытке сохранить черновик без участников
	ErrNoParticipants = errors.New("drafts: draft must keep at least one participant")

	// ErrTooManyParticipants возвращается при превышении лимита участников
	ErrTooManyParticipants = errors.New("drafts: too many participants")

	// ErrInvalidInput возвращается при некорректных данных черновика
	ErrInvalidInput = errors.New("drafts: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("drafts: internal error")
)
