package finder

import "errors"

var (
	// ErrCriteriaIncomplete возвращается при попытке поиска с режимом
	// custom без указанного времени - такой запрос не отправляется
	ErrCriteriaIncomplete = errors.New("finder: criteria incomplete, custom mode requires custom time")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("finder: invalid input data")
)
