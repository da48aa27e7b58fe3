package draft

import "errors"

var (
	// ErrDraftNotFound возвращается, когда черновик не найден
	ErrDraftNotFound = errors.New("draft storage: draft not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("draft storage: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("draft storage: failed to execute query")

	// ErrScanRow возвращается при ошибке чтения строки результата
	ErrScanRow = errors.New("draft storage: failed to scan row")

	// ErrEncodePayload возвращается при ошибке сериализации черновика
	ErrEncodePayload = errors.New("draft storage: failed to encode payload")

	// ErrDecodePayload возвращается при ошибке десериализации черновика
	ErrDecodePayload = errors.New("draft storage: failed to decode payload")
)
