package finder

import (
	"github.com/m04kA/SMC-RoomFinderService/internal/domain"
	"github.com/m04kA/SMC-RoomFinderService/pkg/types"
)

// State снимок состояния сессии поиска. Возвращается наружу только
// копией: вызывающая сторона не может повлиять на внутреннее состояние
type State struct {
	Buildings  []domain.Building         // Каталог зданий для фильтра
	Criteria   domain.FilterCriteria     // Текущие выборы пользователя
	Day        domain.Weekday            // День последнего поиска
	QueryTime  types.TimeString          // Время последнего поиска
	Results    []domain.RoomAvailability // Результаты последнего поиска
	Bookings   []domain.Booking          // Активные локальные брони
	IsSearched bool                      // Выполнялся ли уже поиск
	LastError  string                    // Ошибка последнего поиска ("" - нет)
}

// session внутреннее состояние одной пользовательской сессии.
// Все переходы выполняются атомарно под мьютексом сервиса;
// generation растет с каждым новым поиском, чтобы устаревший
// результат не перезаписал более новый (last-writer-wins)
type session struct {
	buildings  []domain.Building
	criteria   domain.FilterCriteria
	day        domain.Weekday
	queryTime  types.TimeString
	results    []domain.RoomAvailability
	isSearched bool
	lastError  string
	generation uint64
}

// newSession создает сессию с критериями по умолчанию: все здания,
// режим "сейчас"
func newSession() *session {
	return &session{
		criteria: domain.FilterCriteria{Mode: domain.ModeNow},
		results:  make([]domain.RoomAvailability, 0),
	}
}

// snapshot делает глубокую копию наружного представления состояния
func (s *session) snapshot(bookings []domain.Booking) State {
	buildings := make([]domain.Building, len(s.buildings))
	copy(buildings, s.buildings)

	results := make([]domain.RoomAvailability, len(s.results))
	copy(results, s.results)

	criteria := s.criteria
	if s.criteria.BuildingID != nil {
		id := *s.criteria.BuildingID
		criteria.BuildingID = &id
	}
	if s.criteria.CustomTime != nil {
		t := *s.criteria.CustomTime
		criteria.CustomTime = &t
	}

	return State{
		Buildings:  buildings,
		Criteria:   criteria,
		Day:        s.day,
		QueryTime:  s.queryTime,
		Results:    results,
		Bookings:   bookings,
		IsSearched: s.isSearched,
		LastError:  s.lastError,
	}
}
