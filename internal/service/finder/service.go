package finder

import (
	"context"
	"fmt"
	"sync"

	"github.com/m04kA/SMC-RoomFinderService/internal/domain"
	bookRoom "github.com/m04kA/SMC-RoomFinderService/internal/usecase/book_room"
	findRooms "github.com/m04kA/SMC-RoomFinderService/internal/usecase/find_available_rooms"
	"github.com/m04kA/SMC-RoomFinderService/pkg/types"
)

// Service оркестратор поисковых сессий. Хранит критерии и результаты
// каждой пользовательской сессии и является единственным владельцем
// этого состояния: все переходы выполняются атомарно под мьютексом,
// а сам поиск делегируется чистому use case
type Service struct {
	mu       sync.Mutex
	sessions map[int64]*session

	searchUC SearchUseCase
	bookUC   BookUseCase
	ledger   BookingLedger
	catalog  CatalogProvider
	logger   Logger
}

// NewService создает новый экземпляр оркестратора
func NewService(
	searchUC SearchUseCase,
	bookUC BookUseCase,
	bookingLedger BookingLedger,
	catalog CatalogProvider,
	logger Logger,
) *Service {
	return &Service{
		sessions: make(map[int64]*session),
		searchUC: searchUC,
		bookUC:   bookUC,
		ledger:   bookingLedger,
		catalog:  catalog,
		logger:   logger,
	}
}

// sessionLocked возвращает сессию пользователя, создавая её при первом
// обращении. Вызывается только под мьютексом
func (s *Service) sessionLocked(userID int64) *session {
	sess, ok := s.sessions[userID]
	if !ok {
		sess = newSession()
		s.sessions[userID] = sess
	}
	return sess
}

// State возвращает снимок состояния сессии, подгружая каталог зданий
// при первом обращении
func (s *Service) State(ctx context.Context, userID int64) (State, error) {
	if err := s.ensureBuildings(ctx, userID); err != nil {
		return State{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sessionLocked(userID).snapshot(s.ledger.List()), nil
}

// ensureBuildings загружает список зданий в сессию, если он еще не загружен.
// Ошибка каталога фиксируется в состоянии сессии, частичных данных нет
func (s *Service) ensureBuildings(ctx context.Context, userID int64) error {
	s.mu.Lock()
	if len(s.sessionLocked(userID).buildings) > 0 {
		s.mu.Unlock()
		return nil
	}
	s.mu.Unlock()

	buildings, err := s.catalog.GetBuildings(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.sessionLocked(userID)

	if err != nil {
		s.logger.Error("Finder: failed to load buildings for user=%d: %v", userID, err)
		sess.lastError = "failed to load buildings"
		return nil
	}

	sess.buildings = buildings
	return nil
}

// SelectBuilding записывает выбор здания (nil - все здания)
func (s *Service) SelectBuilding(ctx context.Context, userID int64, buildingID *string) (State, error) {
	if buildingID != nil && *buildingID == "" {
		return State{}, fmt.Errorf("%w: buildingID must not be empty", ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.sessionLocked(userID)
	sess.criteria.BuildingID = buildingID

	s.logger.Info("Finder: user=%d selected building=%v", userID, buildingID)
	return sess.snapshot(s.ledger.List()), nil
}

// SelectTimeMode записывает выбор режима времени
func (s *Service) SelectTimeMode(ctx context.Context, userID int64, mode domain.TimeMode) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.sessionLocked(userID)
	sess.criteria.Mode = mode

	s.logger.Info("Finder: user=%d selected mode=%s", userID, mode)
	return sess.snapshot(s.ledger.List()), nil
}

// SelectCustomTime записывает время запроса для режима custom
func (s *Service) SelectCustomTime(ctx context.Context, userID int64, t types.TimeString) (State, error) {
	if err := t.Validate(); err != nil {
		return State{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.sessionLocked(userID)
	sess.criteria.CustomTime = &t

	s.logger.Info("Finder: user=%d selected custom time=%s", userID, t)
	return sess.snapshot(s.ledger.List()), nil
}

// Search выполняет поиск по текущим критериям сессии и сохраняет
// результат. Новый поиск вытесняет незавершенный предыдущий: результат
// устаревшего вызова отбрасывается (last-writer-wins)
func (s *Service) Search(ctx context.Context, userID int64) (State, error) {
	if err := s.ensureBuildings(ctx, userID); err != nil {
		return State{}, err
	}

	// Начало перехода: фиксируем критерии и поколение поиска
	s.mu.Lock()
	sess := s.sessionLocked(userID)

	if !sess.criteria.IsComplete() {
		s.mu.Unlock()
		s.logger.Warn("Finder: user=%d search rejected, criteria incomplete", userID)
		return State{}, ErrCriteriaIncomplete
	}

	sess.generation++
	gen := sess.generation
	req := &findRooms.Request{
		BuildingID: sess.criteria.BuildingID,
		Mode:       sess.criteria.Mode,
		CustomTime: sess.criteria.CustomTime,
	}
	s.mu.Unlock()

	// Сам поиск выполняется вне мьютекса
	resp, err := s.searchUC.Execute(ctx, req)

	// Завершение перехода: применяем результат атомарно
	s.mu.Lock()
	defer s.mu.Unlock()
	sess = s.sessionLocked(userID)

	if sess.generation != gen {
		// Поиск вытеснен более новым - его результат не применяется
		s.logger.Info("Finder: user=%d search superseded (gen=%d, current=%d)", userID, gen, sess.generation)
		return sess.snapshot(s.ledger.List()), nil
	}

	if err != nil {
		s.logger.Error("Finder: user=%d search failed: %v", userID, err)
		sess.lastError = err.Error()
		return sess.snapshot(s.ledger.List()), err
	}

	sess.results = resp.Rooms
	sess.day = resp.Day
	sess.queryTime = resp.QueryTime
	sess.isSearched = true
	sess.lastError = ""

	s.logger.Info("Finder: user=%d search done, found=%d rooms", userID, len(resp.Rooms))
	return sess.snapshot(s.ledger.List()), nil
}

// Book бронирует помещение на сегодня и перезапускает поиск,
// чтобы результаты отразили новую бронь
func (s *Service) Book(ctx context.Context, userID int64, roomID string, start, end types.TimeString) (State, error) {
	_, err := s.bookUC.Execute(ctx, &bookRoom.Request{
		RoomID: roomID,
		Start:  start,
		End:    end,
	})
	if err != nil {
		return State{}, err
	}

	s.logger.Info("Finder: user=%d booked room=%s %s-%s", userID, roomID, start, end)
	return s.Search(ctx, userID)
}

// CancelBookings снимает все брони помещения и перезапускает поиск
func (s *Service) CancelBookings(ctx context.Context, userID int64, roomID string) (State, error) {
	if roomID == "" {
		return State{}, fmt.Errorf("%w: roomID is required", ErrInvalidInput)
	}

	removed := s.ledger.Cancel(roomID)
	s.logger.Info("Finder: user=%d cancelled %d bookings for room=%s", userID, removed, roomID)

	return s.Search(ctx, userID)
}
