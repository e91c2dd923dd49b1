package find_available_rooms

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("find_available_rooms: invalid input data")

	// ErrCustomTimeRequired возвращается, когда выбран режим custom,
	// но время запроса не указано
	ErrCustomTimeRequired = errors.New("find_available_rooms: custom time is required for custom mode")

	// ErrBuildingNotFound возвращается, когда указанное здание
	// отсутствует в каталоге
	ErrBuildingNotFound = errors.New("find_available_rooms: building not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("find_available_rooms: internal error")
)
