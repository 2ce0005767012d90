package wire

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"theater-booking/internal/adaptor"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// routing only; none of these requests reaches a service
func newTestRouter(t *testing.T) http.Handler {
	log := zaptest.NewLogger(t)
	return setupRouter(&adaptor.Handler{
		Attendee:    adaptor.NewAttendeeHandler(nil, log),
		Play:        adaptor.NewPlayHandler(nil, log),
		Reservation: adaptor.NewReservationHandler(nil, log),
	}, log)
}

func TestRouter_ReservationsAreImmutable(t *testing.T) {
	router := newTestRouter(t)

	for _, method := range []string{http.MethodPut, http.MethodPatch} {
		t.Run(method, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(method, "/api/reservations/0b6b5d2c-3f0e-4c55-9a5e-3c1c2f4b8e11", nil))

			assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)

			var body map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, false, body["status"])
		})
	}
}

func TestRouter_UnknownRoute(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter(t).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/tickets", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}

func TestRouter_OperationalEndpoints(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "theater_http_requests_total")
}
