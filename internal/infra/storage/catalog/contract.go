package catalog

import (
	"github.com/m04kA/SMC-RoomFinderService/pkg/dbmetrics"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor
