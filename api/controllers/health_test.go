package controllers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/amendezc/audiophile-backend/pkg/config"
)

type stubPinger struct {
	err error
}

func (p *stubPinger) Ping(_ context.Context) error {
	return p.err
}

func testConfig() *config.Config {
	return &config.Config{App: config.AppConfig{Env: "development"}}
}

func TestHealthLive(t *testing.T) {
	resp := httptest.NewRecorder()
	HealthLive(testConfig())(resp, httptest.NewRequest(http.MethodGet, "/health/live", nil))

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "development", resp.Header().Get("X-Audiophile-Env"))
}

func TestHealthReadyAllDependenciesUp(t *testing.T) {
	resp := httptest.NewRecorder()
	HealthReady(testConfig(), testLogger(), &stubPinger{}, &stubPinger{})(resp, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

	assert.Equal(t, http.StatusOK, resp.Code)
}

func TestHealthReadyDatabaseDown(t *testing.T) {
	resp := httptest.NewRecorder()
	HealthReady(testConfig(), testLogger(), &stubPinger{err: errors.New("refused")}, &stubPinger{})(resp, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

	assert.Equal(t, http.StatusServiceUnavailable, resp.Code)
}
