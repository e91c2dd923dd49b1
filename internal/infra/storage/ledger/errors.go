package ledger

import "errors"

var (
	// ErrInvalidInterval возвращается, когда конец бронирования
	// не позже его начала
	ErrInvalidInterval = errors.New("ledger: booking end must be after start")
)
