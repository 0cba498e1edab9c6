package service

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthzHandleRespondsOK(t *testing.T) {
	h := &HealthzServer{}
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)

	h.Handle(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

func TestShutdownBeforeStartIsSafe(t *testing.T) {
	svc := New()
	require.NotNil(t, svc.Healthz)
	require.NotNil(t, svc.Metrics)

	// Neither listener was ever bound; shutting down must be a no-op.
	assert.NoError(t, svc.Healthz.Shutdown())
	assert.NoError(t, svc.Metrics.Shutdown())
	svc.Shutdown()
}
