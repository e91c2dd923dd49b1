package book_room

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomFinderService/internal/api/middleware"
	"github.com/m04kA/SMC-RoomFinderService/internal/service/finder"
	bookRoomUC "github.com/m04kA/SMC-RoomFinderService/internal/usecase/book_room"
	"github.com/m04kA/SMC-RoomFinderService/pkg/types"
)

type fakeFinder struct {
	roomID string
	start  types.TimeString
	end    types.TimeString

	state finder.State
	err   error
}

func (f *fakeFinder) Book(_ context.Context, _ int64, roomID string, start, end types.TimeString) (finder.State, error) {
	f.roomID = roomID
	f.start = start
	f.end = end
	return f.state, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func performRequest(h *Handler, body string, withUser bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	if withUser {
		req.Header.Set(middleware.HeaderUserID, "1")
	}
	rec := httptest.NewRecorder()
	middleware.Auth(http.HandlerFunc(h.Handle)).ServeHTTP(rec, req)
	return rec
}

func TestHandler_Handle(t *testing.T) {
	t.Run("books room", func(t *testing.T) {
		fake := &fakeFinder{}
		h := NewHandler(fake, nopLogger{})

		rec := performRequest(h, `{"roomId": "r1", "start": "12:00", "end": "13:00"}`, true)

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "r1", fake.roomID)
		assert.Equal(t, types.TimeString("12:00"), fake.start)
		assert.Equal(t, types.TimeString("13:00"), fake.end)
	})

	t.Run("malformed json", func(t *testing.T) {
		h := NewHandler(&fakeFinder{}, nopLogger{})

		rec := performRequest(h, `{`, true)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed times", func(t *testing.T) {
		h := NewHandler(&fakeFinder{}, nopLogger{})

		rec := performRequest(h, `{"roomId": "r1", "start": "noon", "end": "13:00"}`, true)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("invalid interval", func(t *testing.T) {
		h := NewHandler(&fakeFinder{err: bookRoomUC.ErrInvalidInterval}, nopLogger{})

		rec := performRequest(h, `{"roomId": "r1", "start": "13:00", "end": "12:00"}`, true)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("room not found", func(t *testing.T) {
		h := NewHandler(&fakeFinder{err: bookRoomUC.ErrRoomNotFound}, nopLogger{})

		rec := performRequest(h, `{"roomId": "r404", "start": "12:00", "end": "13:00"}`, true)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("missing user header", func(t *testing.T) {
		h := NewHandler(&fakeFinder{}, nopLogger{})

		rec := performRequest(h, `{"roomId": "r1", "start": "12:00", "end": "13:00"}`, false)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
