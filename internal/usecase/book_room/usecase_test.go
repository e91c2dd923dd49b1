package book_room

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomFinderService/internal/domain"
	"github.com/m04kA/SMC-RoomFinderService/internal/infra/storage/ledger"
	"github.com/m04kA/SMC-RoomFinderService/pkg/types"
)

type fakeCatalog struct {
	rooms    []domain.Room
	roomsErr error
}

func (f *fakeCatalog) GetRooms(_ context.Context) ([]domain.Room, error) {
	return f.rooms, f.roomsErr
}

type fakeLedger struct {
	added  []domain.Booking
	addErr error
}

func (f *fakeLedger) Add(roomID string, day domain.Weekday, start, end types.TimeString) (*domain.Booking, error) {
	if f.addErr != nil {
		return nil, f.addErr
	}
	booking := domain.Booking{
		ID:        "booking-1",
		RoomID:    roomID,
		Day:       day,
		Start:     start,
		End:       end,
		CreatedAt: time.Now(),
	}
	f.added = append(f.added, booking)
	return &booking, nil
}

type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	return f.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(catalog *fakeCatalog, bookingLedger *fakeLedger, now time.Time) *UseCase {
	uc := NewUseCase(catalog, bookingLedger, nopLogger{})
	uc.timeProvider = &fakeClock{now: now}
	return uc
}

func TestUseCase_Execute(t *testing.T) {
	catalog := &fakeCatalog{
		rooms: []domain.Room{
			{ID: "r1", BuildingID: "b1", Name: "101"},
		},
	}
	// Понедельник
	monday := time.Date(2026, time.September, 7, 11, 0, 0, 0, time.UTC)

	t.Run("books room for current day", func(t *testing.T) {
		bookingLedger := &fakeLedger{}
		uc := newTestUseCase(catalog, bookingLedger, monday)

		resp, err := uc.Execute(context.Background(), &Request{
			RoomID: "r1",
			Start:  "12:00",
			End:    "13:00",
		})

		require.NoError(t, err)
		assert.Equal(t, "r1", resp.RoomID)
		assert.Equal(t, domain.Monday, resp.Day)
		assert.Equal(t, types.TimeString("12:00"), resp.Start)
		assert.Equal(t, types.TimeString("13:00"), resp.End)
		require.Len(t, bookingLedger.added, 1)
		assert.Equal(t, domain.Monday, bookingLedger.added[0].Day)
	})

	t.Run("room not found", func(t *testing.T) {
		uc := newTestUseCase(catalog, &fakeLedger{}, monday)

		_, err := uc.Execute(context.Background(), &Request{
			RoomID: "r404",
			Start:  "12:00",
			End:    "13:00",
		})

		assert.ErrorIs(t, err, ErrRoomNotFound)
	})

	t.Run("catalog failure", func(t *testing.T) {
		uc := newTestUseCase(&fakeCatalog{roomsErr: errors.New("connection refused")}, &fakeLedger{}, monday)

		_, err := uc.Execute(context.Background(), &Request{
			RoomID: "r1",
			Start:  "12:00",
			End:    "13:00",
		})

		assert.ErrorIs(t, err, ErrInternal)
	})

	t.Run("ledger interval error mapped", func(t *testing.T) {
		bookingLedger := &fakeLedger{addErr: ledger.ErrInvalidInterval}
		uc := newTestUseCase(catalog, bookingLedger, monday)

		_, err := uc.Execute(context.Background(), &Request{
			RoomID: "r1",
			Start:  "12:00",
			End:    "13:00",
		})

		assert.ErrorIs(t, err, ErrInvalidInterval)
	})
}

func TestUseCase_Execute_Validation(t *testing.T) {
	monday := time.Date(2026, time.September, 7, 11, 0, 0, 0, time.UTC)
	catalog := &fakeCatalog{
		rooms: []domain.Room{{ID: "r1", BuildingID: "b1", Name: "101"}},
	}

	tests := []struct {
		name    string
		req     *Request
		wantErr error
	}{
		{
			name:    "missing room id",
			req:     &Request{Start: "12:00", End: "13:00"},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "missing start",
			req:     &Request{RoomID: "r1", End: "13:00"},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "missing end",
			req:     &Request{RoomID: "r1", Start: "12:00"},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "malformed start",
			req:     &Request{RoomID: "r1", Start: "noon", End: "13:00"},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "end equals start",
			req:     &Request{RoomID: "r1", Start: "12:00", End: "12:00"},
			wantErr: ErrInvalidInterval,
		},
		{
			name:    "end before start",
			req:     &Request{RoomID: "r1", Start: "13:00", End: "12:00"},
			wantErr: ErrInvalidInterval,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bookingLedger := &fakeLedger{}
			uc := newTestUseCase(catalog, bookingLedger, monday)

			_, err := uc.Execute(context.Background(), tt.req)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, bookingLedger.added)
		})
	}
}
