package booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T) (*gin.Engine, *fixture) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	f := newFixture(t)
	r := gin.New()
	NewHandler(f.svc).RegisterRoutes(r.Group("/api"))
	return r, f
}

func perform(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandler_CreateRequest(t *testing.T) {
	r, _ := newTestEngine(t)

	rec := perform(r, http.MethodPost, "/api/booking-requests",
		`{"studioId":"S1","roomId":"R1","userId":"u1","date":"2024-06-20","startTime":"14:00","endTime":"16:00"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var got map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "pending", got["status"])
	assert.Equal(t, "Downtown Studios", got["studioName"])
}

func TestHandler_CreateRequest_Conflict(t *testing.T) {
	r, f := newTestEngine(t)
	f.createRequest(t, "u1", "2024-06-20", "14:00", "16:00")

	rec := perform(r, http.MethodPost, "/api/booking-requests",
		`{"studioId":"S1","roomId":"R1","userId":"u2","date":"2024-06-20","startTime":"15:00","endTime":"17:00"}`)
	require.Equal(t, http.StatusConflict, rec.Code)

	var got map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "CONFLICT", got["code"])
	assert.Equal(t, "Room is already booked for the selected time", got["error"])
}

func TestHandler_DecideRequest(t *testing.T) {
	r, f := newTestEngine(t)
	req := f.createRequest(t, "u1", "2024-06-20", "14:00", "16:00")

	rec := perform(r, http.MethodPut, "/api/booking-requests/"+req.ID, `{"action":"approve"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var got map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Booking approved successfully", got["message"])
	require.Contains(t, got, "booking")

	rec = perform(r, http.MethodPut, "/api/booking-requests/"+req.ID, `{"action":"approve"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestHandler_DecideRequest_InvalidAction(t *testing.T) {
	r, f := newTestEngine(t)
	req := f.createRequest(t, "u1", "2024-06-20", "14:00", "16:00")

	rec := perform(r, http.MethodPut, "/api/booking-requests/"+req.ID, `{"action":"maybe"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var got map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Invalid action. Use 'approve' or 'reject'", got["error"])
	assert.Equal(t, "INVALID_ACTION", got["code"])
}

func TestHandler_CancelBooking(t *testing.T) {
	r, f := newTestEngine(t)
	req := f.createRequest(t, "u1", "2024-06-20", "14:00", "16:00")
	out, err := f.svc.Decide(context.Background(), req.ID, "approve")
	require.NoError(t, err)

	rec := perform(r, http.MethodPut, "/api/bookings/"+out.Booking.ID+"/cancel", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Booking cancelled successfully", got["message"])

	rec = perform(r, http.MethodPut, "/api/bookings/"+out.Booking.ID+"/cancel", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Booking is already cancelled", got["message"])
}

func TestHandler_GetBooking_NotFound(t *testing.T) {
	r, _ := newTestEngine(t)
	rec := perform(r, http.MethodGet, "/api/bookings/missing", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
