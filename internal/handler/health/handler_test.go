package health

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type pinger struct {
	err error
}

func (p pinger) PingContext(ctx context.Context) error { return p.err }

func setupRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h.RegisterRoutes(&r.RouterGroup)
	return r
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestHealthCheck(t *testing.T) {
	r := setupRouter(NewHandler("2.0.0", pinger{err: errors.New("down")}))

	w := get(r, "/health")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"healthy","version":"2.0.0"}`, w.Body.String())

	w = get(r, "/health/live")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestReadinessCheck(t *testing.T) {
	w := get(setupRouter(NewHandler("1.0.0", pinger{})), "/health/ready")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"UP"}`, w.Body.String())

	w = get(setupRouter(NewHandler("1.0.0", pinger{err: errors.New("connection refused")})), "/health/ready")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.JSONEq(t, `{"status":"DOWN","reason":"Database connection failed"}`, w.Body.String())
}
