package get_buildings

import (
	"context"

	"github.com/m04kA/SMC-RoomFinderService/internal/domain"
)

// CatalogProvider интерфейс каталога зданий
type CatalogProvider interface {
	GetBuildings(ctx context.Context) ([]domain.Building, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
