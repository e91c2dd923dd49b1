package book_room

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("book_room: invalid input data")

	// ErrInvalidInterval возвращается, когда конец бронирования
	// не позже его начала
	ErrInvalidInterval = errors.New("book_room: booking end must be after start")

	// ErrRoomNotFound возвращается, когда помещение отсутствует в каталоге
	ErrRoomNotFound = errors.New("book_room: room not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("book_room: internal error")
)
