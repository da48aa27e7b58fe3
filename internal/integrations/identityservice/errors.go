package identityservice

import "errors"

var (
	// ErrUnauthorized возвращается при недействительном или просроченном токене
	ErrUnauthorized = errors.New("identityservice client: unauthorized")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("identityservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("identityservice client: invalid response")
)
